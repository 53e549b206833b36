package models

type WorkoutPlanDay struct {
	ID              uint   `gorm:"primaryKey"`
	Week            int    `gorm:"not null;uniqueIndex:uidx_week_day"`
	Day             int    `gorm:"not null;uniqueIndex:uidx_week_day"`
	Title           string `gorm:"not null"`
	Focus           string `gorm:"not null;default:''"`
	DurationMinutes int    `gorm:"not null;default:0"`
	IsRestDay       bool   `gorm:"not null;default:false"`
}

type DietPlanEntry struct {
	ID                 uint   `gorm:"primaryKey"`
	Week               int    `gorm:"not null;uniqueIndex"`
	Theme              string `gorm:"not null"`
	Guidance           string `gorm:"not null;default:''"`
	DailyCalorieTarget int    `gorm:"not null;default:1700"`
}

type planWeekTemplate struct {
	Focus           string
	WorkoutTitle    string
	DurationMinutes int
}

var workoutWeekTemplates = []planWeekTemplate{
	{Focus: "Foundation", WorkoutTitle: "Full-body basics", DurationMinutes: 25},
	{Focus: "Endurance", WorkoutTitle: "Cardio intervals", DurationMinutes: 30},
	{Focus: "Strength", WorkoutTitle: "Lower-body strength", DurationMinutes: 30},
	{Focus: "Strength", WorkoutTitle: "Upper-body strength", DurationMinutes: 35},
	{Focus: "Power", WorkoutTitle: "HIIT circuits", DurationMinutes: 35},
	{Focus: "Power", WorkoutTitle: "Tabata and core", DurationMinutes: 40},
	{Focus: "Peak", WorkoutTitle: "Combined circuits", DurationMinutes: 40},
	{Focus: "Peak", WorkoutTitle: "Final challenge", DurationMinutes: 45},
}

// DefaultWorkoutPlan expands the 8 weekly templates into 56 plan days.
// Days 3 and 7 of every week are rest days.
func DefaultWorkoutPlan() []WorkoutPlanDay {
	days := make([]WorkoutPlanDay, 0, ProgramWeeks*7)
	for weekIndex, template := range workoutWeekTemplates {
		week := weekIndex + 1
		for day := 1; day <= 7; day++ {
			planDay := WorkoutPlanDay{
				Week:  week,
				Day:   day,
				Focus: template.Focus,
			}
			if day == 3 || day == 7 {
				planDay.Title = "Rest and recovery"
				planDay.IsRestDay = true
			} else {
				planDay.Title = template.WorkoutTitle
				planDay.DurationMinutes = template.DurationMinutes
			}
			days = append(days, planDay)
		}
	}
	return days
}

func DefaultDietPlan() []DietPlanEntry {
	return []DietPlanEntry{
		{Week: 1, Theme: "Reset", Guidance: "Cut sugary drinks, eat three regular meals", DailyCalorieTarget: 1800},
		{Week: 2, Theme: "Portions", Guidance: "Half a plate of vegetables at lunch and dinner", DailyCalorieTarget: 1750},
		{Week: 3, Theme: "Protein", Guidance: "Add a palm-sized protein portion to every meal", DailyCalorieTarget: 1700},
		{Week: 4, Theme: "Hydration", Guidance: "2 litres of water daily, no late-night snacks", DailyCalorieTarget: 1700},
		{Week: 5, Theme: "Slow carbs", Guidance: "Swap refined carbs for whole grains", DailyCalorieTarget: 1650},
		{Week: 6, Theme: "Meal prep", Guidance: "Prepare lunches ahead, keep snacks under 200 kcal", DailyCalorieTarget: 1650},
		{Week: 7, Theme: "Consistency", Guidance: "Repeat the week that worked best for you", DailyCalorieTarget: 1700},
		{Week: 8, Theme: "Maintenance", Guidance: "Practice eating out while staying on target", DailyCalorieTarget: 1700},
	}
}
