package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/ranli8/fit8/internal/services"
)

func (handler *Handler) GetAchievements(c *fiber.Ctx) error {
	achievements, err := handler.achievementService.ListAll()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load achievements failed")
	}

	unlockedCount := 0
	for _, achievement := range achievements {
		if achievement.Unlocked {
			unlockedCount++
		}
	}

	return c.JSON(fiber.Map{
		"achievements":   achievements,
		"total":          len(achievements),
		"unlocked_count": unlockedCount,
	})
}

// GetRecentUnlocks is the poll-based view over the unlock event bus for
// clients that do not hold a subscription.
func (handler *Handler) GetRecentUnlocks(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	return c.JSON(fiber.Map{"events": handler.unlockBus.RecentEvents(limit)})
}

type progressPayload struct {
	Value int `json:"value"`
}

func (handler *Handler) UpdateAchievementProgress(c *fiber.Ctx) error {
	achievementID := c.Params("id")

	payload := progressPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if payload.Value < 0 {
		return apiError(c, fiber.StatusBadRequest, "progress value must be non-negative")
	}

	if err := handler.achievementService.UpdateProgress(achievementID, payload.Value); err != nil {
		if errors.Is(err, services.ErrUnknownAchievement) {
			return apiError(c, fiber.StatusNotFound, "achievement not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "update progress failed")
	}
	return c.JSON(fiber.Map{"ok": true})
}
