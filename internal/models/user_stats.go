package models

import "time"

// UserStatsID is the fixed key of the single stats row.
const UserStatsID uint = 1

const ProgramWeeks = 8

// UserStats is the singleton aggregate derived from the daily record
// history. It is rebuilt by pure reducers and persisted under UserStatsID;
// only TotalPoints is mutated outside the rebuild (on achievement unlock).
type UserStats struct {
	ID                  uint `gorm:"primaryKey"`
	TotalWorkouts       int  `gorm:"not null;default:0"`
	TotalActiveDays     int  `gorm:"not null;default:0"`
	CurrentStreak       int  `gorm:"not null;default:0"`
	MaxStreak           int  `gorm:"not null;default:0"`
	TotalCaloriesBurned int  `gorm:"not null;default:0"`
	TotalPoints         int  `gorm:"not null;default:0"`
	// CurrentWeek is 1-8 while the program runs and keeps counting past 8
	// once it is finished (the weekly evaluator relies on that).
	CurrentWeek  int       `gorm:"not null;default:1"`
	ProgramStart time.Time `gorm:"type:date;not null"`
	UpdatedAt    time.Time
}
