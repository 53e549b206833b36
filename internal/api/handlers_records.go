package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ranli8/fit8/internal/services"
)

type recordPayload struct {
	Weight              *float64 `json:"weight"`
	BodyFatPercent      *float64 `json:"body_fat_percent"`
	TrainingMinutes     int      `json:"training_minutes"`
	TrainingCalories    int      `json:"training_calories"`
	WaterML             int      `json:"water_ml"`
	SleepHours          float64  `json:"sleep_hours"`
	Mood                int      `json:"mood"`
	DietOK              bool     `json:"diet_ok"`
	Notes               string   `json:"notes"`
	TrainingCompletedAt *string  `json:"training_completed_at"`
}

func (handler *Handler) GetRecords(c *fiber.Ctx) error {
	from, err := handler.parseOptionalDateQuery(c, "from")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, err := handler.parseOptionalDateQuery(c, "to")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}

	records, err := handler.recordService.FetchRecordsForOptionalRange(from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load records failed")
	}
	return c.JSON(fiber.Map{"records": records})
}

func (handler *Handler) GetRecord(c *fiber.Ctx) error {
	day, err := handler.parseDateParam(c, "date")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	record, found, err := handler.recordService.FetchRecordByDate(day)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load record failed")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "no record for date")
	}
	return c.JSON(record)
}

func (handler *Handler) UpsertRecord(c *fiber.Ctx) error {
	day, err := handler.parseDateParam(c, "date")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	payload := recordPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	input, validationError := handler.buildRecordInput(payload)
	if validationError != "" {
		return apiError(c, fiber.StatusBadRequest, validationError)
	}

	record, unlocked, err := handler.recordService.UpsertDailyRecord(day, input, time.Now().In(handler.location))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "save record failed")
	}
	return c.JSON(fiber.Map{
		"record":   record,
		"unlocked": unlocked,
	})
}

func (handler *Handler) DeleteRecord(c *fiber.Ctx) error {
	day, err := handler.parseDateParam(c, "date")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	if err := handler.recordService.DeleteRecordByDate(day, time.Now().In(handler.location)); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "delete record failed")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) buildRecordInput(payload recordPayload) (services.RecordInput, string) {
	input := services.RecordInput{
		Weight:           payload.Weight,
		BodyFatPercent:   payload.BodyFatPercent,
		TrainingMinutes:  payload.TrainingMinutes,
		TrainingCalories: payload.TrainingCalories,
		WaterML:          payload.WaterML,
		SleepHours:       payload.SleepHours,
		Mood:             payload.Mood,
		DietOK:           payload.DietOK,
		Notes:            payload.Notes,
	}

	if message := validateRecordInput(input); message != "" {
		return services.RecordInput{}, message
	}

	if payload.TrainingCompletedAt != nil && *payload.TrainingCompletedAt != "" {
		completedAt, err := time.ParseInLocation(time.RFC3339, *payload.TrainingCompletedAt, handler.location)
		if err != nil {
			return services.RecordInput{}, "invalid training_completed_at"
		}
		localized := completedAt.In(handler.location)
		input.TrainingCompletedAt = &localized
	}

	return input, ""
}
