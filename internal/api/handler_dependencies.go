package api

import (
	"fmt"
	"time"

	"github.com/ranli8/fit8/internal/db"
	"github.com/ranli8/fit8/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.unlockBus = services.NewUnlockBus()
	handler.authService = services.NewAuthService(handler.repositories.Owners)
	handler.achievementService = services.NewAchievementService(handler.repositories.Achievements, handler.unlockBus)
	handler.recordService = services.NewRecordService(
		handler.repositories.DailyRecords,
		handler.repositories.Stats,
		handler.achievementService,
		handler.location,
	)
	handler.mealService = services.NewMealService(handler.repositories.Meals, handler.location)
	handler.planService = services.NewPlanService(handler.repositories.Plans)
	handler.exportService = services.NewExportService(handler.recordService, handler.location)
	return handler
}

// Seed brings the fixed catalogs and the stats singleton into existence.
// Every seeder is insert-if-empty, so calling this on each start is safe.
func (handler *Handler) Seed(programStart time.Time) error {
	if err := handler.repositories.Stats.EnsureExists(services.DateAtLocation(programStart, handler.location)); err != nil {
		return fmt.Errorf("ensure stats row: %w", err)
	}
	if err := handler.achievementService.SeedCatalog(); err != nil {
		return fmt.Errorf("seed achievement catalog: %w", err)
	}
	if err := handler.planService.SeedPlans(); err != nil {
		return fmt.Errorf("seed plans: %w", err)
	}
	return nil
}
