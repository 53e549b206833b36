package db

import (
	"time"

	"github.com/ranli8/fit8/internal/models"
	"gorm.io/gorm"
)

type UserStatsRepository struct {
	database *gorm.DB
}

func NewUserStatsRepository(database *gorm.DB) *UserStatsRepository {
	return &UserStatsRepository{database: database}
}

func (repo *UserStatsRepository) Load() (models.UserStats, bool, error) {
	stats := models.UserStats{}
	result := repo.database.Where("id = ?", models.UserStatsID).Limit(1).Find(&stats)
	if result.Error != nil {
		return models.UserStats{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.UserStats{}, false, nil
	}
	return stats, true, nil
}

// EnsureExists creates the singleton stats row on first run; a later call
// is a no-op so the program start date is never overwritten.
func (repo *UserStatsRepository) EnsureExists(programStart time.Time) error {
	_, found, err := repo.Load()
	if err != nil {
		return err
	}
	if found {
		return nil
	}
	stats := models.UserStats{
		ID:           models.UserStatsID,
		CurrentWeek:  1,
		ProgramStart: programStart,
	}
	return repo.database.Create(&stats).Error
}

// Save writes every derived counter but deliberately leaves total_points
// alone: points are credited transactionally on unlock and must not be
// clobbered by a stats rebuild.
func (repo *UserStatsRepository) Save(stats *models.UserStats) error {
	return repo.database.Model(&models.UserStats{}).
		Where("id = ?", models.UserStatsID).
		Updates(map[string]any{
			"total_workouts":        stats.TotalWorkouts,
			"total_active_days":     stats.TotalActiveDays,
			"current_streak":        stats.CurrentStreak,
			"max_streak":            stats.MaxStreak,
			"total_calories_burned": stats.TotalCaloriesBurned,
			"current_week":          stats.CurrentWeek,
			"updated_at":            time.Now(),
		}).Error
}

func (repo *UserStatsRepository) DeleteAll() error {
	return repo.database.Where("1 = 1").Delete(&models.UserStats{}).Error
}
