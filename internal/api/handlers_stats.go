package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ranli8/fit8/internal/models"
	"github.com/ranli8/fit8/internal/services"
)

type statsOverview struct {
	TotalWorkouts       int    `json:"total_workouts"`
	TotalActiveDays     int    `json:"total_active_days"`
	CurrentStreak       int    `json:"current_streak"`
	MaxStreak           int    `json:"max_streak"`
	TotalCaloriesBurned int    `json:"total_calories_burned"`
	TotalPoints         int    `json:"total_points"`
	CurrentWeek         int    `json:"current_week"`
	ProgramFinished     bool   `json:"program_finished"`
	ProgramStart        string `json:"program_start"`
}

func (handler *Handler) GetStatsOverview(c *fiber.Ctx) error {
	stats, found, err := handler.repositories.Stats.Load()
	if err != nil || !found {
		return apiError(c, fiber.StatusInternalServerError, "load stats failed")
	}

	currentWeek := stats.CurrentWeek
	if currentWeek > models.ProgramWeeks {
		currentWeek = models.ProgramWeeks
	}

	return c.JSON(statsOverview{
		TotalWorkouts:       stats.TotalWorkouts,
		TotalActiveDays:     stats.TotalActiveDays,
		CurrentStreak:       stats.CurrentStreak,
		MaxStreak:           stats.MaxStreak,
		TotalCaloriesBurned: stats.TotalCaloriesBurned,
		TotalPoints:         stats.TotalPoints,
		CurrentWeek:         currentWeek,
		ProgramFinished:     stats.CurrentWeek > models.ProgramWeeks,
		ProgramStart:        stats.ProgramStart.Format(requestDateLayout),
	})
}

type averagesResponse struct {
	WeightAverage   *float64 `json:"weight_average"`
	BodyFatAverage  *float64 `json:"body_fat_average"`
	CaloriesInRange int      `json:"calories_in_range"`
}

// GetAverages distinguishes "no observations" (null) from a genuine zero
// average; clients render null as "no data yet".
func (handler *Handler) GetAverages(c *fiber.Ctx) error {
	from, err := handler.parseOptionalDateQuery(c, "from")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, err := handler.parseOptionalDateQuery(c, "to")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}

	now := time.Now().In(handler.location)
	fromDay := now.AddDate(0, 0, -29)
	toDay := now
	if from != nil {
		fromDay = *from
	}
	if to != nil {
		toDay = *to
	}

	records, err := handler.recordService.FetchAllRecords()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load records failed")
	}

	response := averagesResponse{
		CaloriesInRange: services.TotalCaloriesBurned(records, fromDay, toDay),
	}
	if average, ok := services.AverageOverRange(records, services.MetricWeight, fromDay, toDay); ok {
		response.WeightAverage = &average
	}
	if average, ok := services.AverageOverRange(records, services.MetricBodyFat, fromDay, toDay); ok {
		response.BodyFatAverage = &average
	}
	return c.JSON(response)
}

func (handler *Handler) GetAdvice(c *fiber.Ctx) error {
	records, err := handler.recordService.FetchAllRecords()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load records failed")
	}
	stats, found, err := handler.repositories.Stats.Load()
	if err != nil || !found {
		return apiError(c, fiber.StatusInternalServerError, "load stats failed")
	}

	advice := services.BuildAdvice(records, stats, time.Now().In(handler.location))
	return c.JSON(fiber.Map{"advice": advice})
}
