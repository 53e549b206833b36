package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/ranli8/fit8/internal/models"
	"github.com/ranli8/fit8/internal/services"
)

func (handler *Handler) GetWorkoutPlanWeek(c *fiber.Ctx) error {
	week, err := handler.planWeekFromRequest(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid week")
	}

	days, err := handler.planService.WorkoutWeek(week)
	if err != nil {
		if errors.Is(err, services.ErrWeekOutOfRange) {
			return apiError(c, fiber.StatusBadRequest, "week must be between 1 and 8")
		}
		return apiError(c, fiber.StatusInternalServerError, "load workout plan failed")
	}
	return c.JSON(fiber.Map{"week": week, "days": days})
}

func (handler *Handler) GetDietPlanWeek(c *fiber.Ctx) error {
	week, err := handler.planWeekFromRequest(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid week")
	}

	entry, err := handler.planService.DietWeek(week)
	if err != nil {
		if errors.Is(err, services.ErrWeekOutOfRange) {
			return apiError(c, fiber.StatusBadRequest, "week must be between 1 and 8")
		}
		return apiError(c, fiber.StatusInternalServerError, "load diet plan failed")
	}
	return c.JSON(entry)
}

// planWeekFromRequest defaults to the current program week, clamped into
// 1..8 so a finished program still shows the final week's plan.
func (handler *Handler) planWeekFromRequest(c *fiber.Ctx) (int, error) {
	if raw := c.Query("week"); raw != "" {
		week := c.QueryInt("week", 0)
		if week == 0 {
			return 0, errors.New("invalid week")
		}
		return week, nil
	}

	stats, found, err := handler.repositories.Stats.Load()
	if err != nil || !found {
		return 0, errors.New("stats unavailable")
	}
	week := stats.CurrentWeek
	if week > models.ProgramWeeks {
		week = models.ProgramWeeks
	}
	if week < 1 {
		week = 1
	}
	return week, nil
}
