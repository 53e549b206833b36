package models

import "time"

// DailyRecord holds everything the user logged for one calendar day.
// At most one row exists per date; weight and body fat stay nil until
// the user actually records them, zero is a valid reading.
type DailyRecord struct {
	Date                time.Time `gorm:"type:date;primaryKey"`
	Weight              *float64
	BodyFatPercent      *float64
	TrainingMinutes     int     `gorm:"not null;default:0"`
	TrainingCalories    int     `gorm:"not null;default:0"`
	WaterML             int     `gorm:"column:water_ml;not null;default:0"`
	SleepHours          float64 `gorm:"not null;default:0"`
	Mood                int     `gorm:"not null;default:3"`
	DietOK              bool    `gorm:"column:diet_ok;not null;default:false"`
	Notes               string
	TrainingCompletedAt *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
