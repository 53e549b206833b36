package models

import "time"

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

type MealRecord struct {
	ID           uint      `gorm:"primaryKey"`
	Date         time.Time `gorm:"type:date;not null;index"`
	MealType     string    `gorm:"not null;default:breakfast"`
	Name         string    `gorm:"not null"`
	Calories     int       `gorm:"not null;default:0"`
	ProteinGrams float64   `gorm:"not null;default:0"`
	CarbsGrams   float64   `gorm:"not null;default:0"`
	FatGrams     float64   `gorm:"not null;default:0"`
	CreatedAt    time.Time
}

func IsValidMealType(mealType string) bool {
	switch mealType {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}
