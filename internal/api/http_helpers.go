package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const requestDateLayout = "2006-01-02"

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func (handler *Handler) parseDateParam(c *fiber.Ctx, name string) (time.Time, error) {
	raw := c.Params(name)
	parsed, err := time.ParseInLocation(requestDateLayout, raw, handler.location)
	if err != nil {
		return time.Time{}, err
	}
	return parsed, nil
}

// parseOptionalDateQuery returns nil when the query parameter is absent.
func (handler *Handler) parseOptionalDateQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation(requestDateLayout, raw, handler.location)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
