package db

import (
	"time"

	"github.com/ranli8/fit8/internal/models"
	"gorm.io/gorm"
)

type MealRecordRepository struct {
	database *gorm.DB
}

func NewMealRecordRepository(database *gorm.DB) *MealRecordRepository {
	return &MealRecordRepository{database: database}
}

func (repo *MealRecordRepository) ListByDayRange(dayStart time.Time, dayEnd time.Time) ([]models.MealRecord, error) {
	meals := make([]models.MealRecord, 0)
	if err := repo.database.
		Where("date >= ? AND date < ?", dayStart, dayEnd).
		Order("created_at ASC, id ASC").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (repo *MealRecordRepository) Create(meal *models.MealRecord) error {
	return repo.database.Create(meal).Error
}

func (repo *MealRecordRepository) DeleteByID(mealID uint) (bool, error) {
	result := repo.database.Delete(&models.MealRecord{}, mealID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *MealRecordRepository) DeleteAll() error {
	return repo.database.Where("1 = 1").Delete(&models.MealRecord{}).Error
}
