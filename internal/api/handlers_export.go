package api

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ranli8/fit8/internal/services"
)

func (handler *Handler) ExportSummary(c *fiber.Ctx) error {
	from, to, ok := handler.exportRangeFromRequest(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid date range")
	}

	summary, err := handler.exportService.BuildSummary(from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "build export summary failed")
	}
	return c.JSON(summary)
}

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	from, to, ok := handler.exportRangeFromRequest(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid date range")
	}

	entries, err := handler.exportService.BuildJSONEntries(from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "build export failed")
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename="fit8_export.json"`)
	return c.JSON(fiber.Map{"entries": entries})
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	from, to, ok := handler.exportRangeFromRequest(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid date range")
	}

	rows, err := handler.exportService.BuildCSVRows(from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "build export failed")
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(services.ExportCSVHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "write export failed")
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "write export failed")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "write export failed")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="fit8_export.csv"`)
	return c.Send(output.Bytes())
}

func (handler *Handler) exportRangeFromRequest(c *fiber.Ctx) (*time.Time, *time.Time, bool) {
	from, err := handler.parseOptionalDateQuery(c, "from")
	if err != nil {
		return nil, nil, false
	}
	to, err := handler.parseOptionalDateQuery(c, "to")
	if err != nil {
		return nil, nil, false
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, false
	}
	return from, to, true
}
