package db

import (
	"github.com/ranli8/fit8/internal/models"
	"gorm.io/gorm"
)

type PlanRepository struct {
	database *gorm.DB
}

func NewPlanRepository(database *gorm.DB) *PlanRepository {
	return &PlanRepository{database: database}
}

func (repo *PlanRepository) CountWorkoutDays() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.WorkoutPlanDay{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *PlanRepository) CreateWorkoutDays(days []models.WorkoutPlanDay) error {
	if len(days) == 0 {
		return nil
	}
	return repo.database.Create(&days).Error
}

func (repo *PlanRepository) ListWorkoutWeek(week int) ([]models.WorkoutPlanDay, error) {
	days := make([]models.WorkoutPlanDay, 0)
	if err := repo.database.Where("week = ?", week).Order("day ASC").Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

func (repo *PlanRepository) CountDietEntries() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.DietPlanEntry{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *PlanRepository) CreateDietEntries(entries []models.DietPlanEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return repo.database.Create(&entries).Error
}

func (repo *PlanRepository) FindDietWeek(week int) (models.DietPlanEntry, bool, error) {
	entry := models.DietPlanEntry{}
	result := repo.database.Where("week = ?", week).Limit(1).Find(&entry)
	if result.Error != nil {
		return models.DietPlanEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DietPlanEntry{}, false, nil
	}
	return entry, true, nil
}
