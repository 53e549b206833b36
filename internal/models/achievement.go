package models

import "time"

// AchievementCategory is a closed set; the evaluator switches over every
// member and treats anything else as a programming error.
type AchievementCategory string

const (
	CategoryCheckin    AchievementCategory = "checkin"
	CategoryTraining   AchievementCategory = "training"
	CategoryWeekly     AchievementCategory = "weekly"
	CategoryWeightLoss AchievementCategory = "weight_loss"
	CategoryBodyFat    AchievementCategory = "body_fat"
	CategoryDiet       AchievementCategory = "diet"
	CategoryCalories   AchievementCategory = "calories"
	CategoryData       AchievementCategory = "data"
	CategorySpecial    AchievementCategory = "special"
)

func AllAchievementCategories() []AchievementCategory {
	return []AchievementCategory{
		CategoryCheckin,
		CategoryTraining,
		CategoryWeekly,
		CategoryWeightLoss,
		CategoryBodyFat,
		CategoryDiet,
		CategoryCalories,
		CategoryData,
		CategorySpecial,
	}
}

// Special achievements are condition-based rather than threshold-based,
// so the evaluator needs their ids.
const (
	AchievementEarlyBird     = "early_bird"
	AchievementNightOwl      = "night_owl"
	AchievementPerfectionist = "perfectionist"
)

type Achievement struct {
	ID           string              `gorm:"primaryKey"`
	Title        string              `gorm:"not null"`
	Description  string              `gorm:"not null;default:''"`
	Category     AchievementCategory `gorm:"not null;index"`
	TargetValue  int                 `gorm:"not null;default:0"`
	CurrentValue int                 `gorm:"not null;default:0"`
	Unlocked     bool                `gorm:"not null;default:false"`
	UnlockedAt   *time.Time
	Points       int `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DefaultAchievementCatalog returns the fixed catalog seeded once at first
// run. Ids are stable; points are immutable after seeding.
func DefaultAchievementCatalog() []Achievement {
	return []Achievement{
		{ID: "first_checkin", Title: "First Check-in", Description: "Log your first active day", Category: CategoryCheckin, TargetValue: 1, Points: 10},
		{ID: "checkin_streak_3", Title: "Warming Up", Description: "Check in 3 days in a row", Category: CategoryCheckin, TargetValue: 3, Points: 20},
		{ID: "checkin_streak_7", Title: "One Full Week", Description: "Check in 7 days in a row", Category: CategoryCheckin, TargetValue: 7, Points: 50},
		{ID: "checkin_streak_14", Title: "Habit Forming", Description: "Check in 14 days in a row", Category: CategoryCheckin, TargetValue: 14, Points: 100},
		{ID: "checkin_streak_30", Title: "Unstoppable", Description: "Check in 30 days in a row", Category: CategoryCheckin, TargetValue: 30, Points: 200},
		{ID: "first_workout", Title: "First Sweat", Description: "Complete your first workout", Category: CategoryTraining, TargetValue: 1, Points: 10},
		{ID: "workouts_10", Title: "Getting Serious", Description: "Complete 10 workouts", Category: CategoryTraining, TargetValue: 10, Points: 50},
		{ID: "workouts_50", Title: "Iron Will", Description: "Complete 50 workouts", Category: CategoryTraining, TargetValue: 50, Points: 200},
		{ID: "week_1_complete", Title: "Week One Down", Description: "Finish week 1 of the program", Category: CategoryWeekly, TargetValue: 1, Points: 30},
		{ID: "week_4_complete", Title: "Halfway There", Description: "Finish week 4 of the program", Category: CategoryWeekly, TargetValue: 4, Points: 100},
		{ID: "program_complete", Title: "Eight Week Finisher", Description: "Finish the full 8-week program", Category: CategoryWeekly, TargetValue: 8, Points: 500},
		{ID: "lose_2kg", Title: "Lighter Already", Description: "Lose 2 kg since the program start", Category: CategoryWeightLoss, TargetValue: 2, Points: 60},
		{ID: "lose_5kg", Title: "Major Progress", Description: "Lose 5 kg since the program start", Category: CategoryWeightLoss, TargetValue: 5, Points: 150},
		{ID: "body_fat_down_2", Title: "Leaner", Description: "Drop body fat by 2 percentage points", Category: CategoryBodyFat, TargetValue: 2, Points: 80},
		{ID: "first_diet_day", Title: "Clean Plate", Description: "Stick to the diet plan for a day", Category: CategoryDiet, TargetValue: 1, Points: 10},
		{ID: "diet_streak_7", Title: "Disciplined Eater", Description: "Stick to the diet plan 7 days in a row", Category: CategoryDiet, TargetValue: 7, Points: 60},
		{ID: "burn_1000", Title: "Furnace", Description: "Burn 1000 kcal in a single session", Category: CategoryCalories, TargetValue: 1000, Points: 80},
		{ID: "first_weight_log", Title: "On the Record", Description: "Save your first weight measurement", Category: CategoryData, TargetValue: 1, Points: 10},
		{ID: AchievementEarlyBird, Title: "Early Bird", Description: "Finish a workout before 6 AM", Category: CategorySpecial, Points: 30},
		{ID: AchievementNightOwl, Title: "Night Owl", Description: "Finish a workout after 10 PM", Category: CategorySpecial, Points: 30},
		{ID: AchievementPerfectionist, Title: "Perfectionist", Description: "Train, eat clean and log weight on the same day", Category: CategorySpecial, Points: 50},
	}
}
