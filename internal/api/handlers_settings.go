package api

import (
	"github.com/gofiber/fiber/v2"
)

// ClearAllData wipes records, meals, achievements and stats, then reseeds
// the fixed catalogs so the app is back at a fresh first run. The owner
// row survives; the user keeps their PIN.
func (handler *Handler) ClearAllData(c *fiber.Ctx) error {
	repositories := handler.repositories
	if err := repositories.DailyRecords.DeleteAll(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "clear data failed")
	}
	if err := repositories.Meals.DeleteAll(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "clear data failed")
	}
	if err := repositories.Achievements.DeleteAll(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "clear data failed")
	}
	if err := repositories.Stats.DeleteAll(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "clear data failed")
	}

	if err := handler.Seed(handler.nowAtLocation()); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "reseed failed")
	}
	return c.JSON(fiber.Map{"ok": true})
}
