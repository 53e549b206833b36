package db

import "gorm.io/gorm"

type Repositories struct {
	DailyRecords *DailyRecordRepository
	Meals        *MealRecordRepository
	Achievements *AchievementRepository
	Stats        *UserStatsRepository
	Plans        *PlanRepository
	Owners       *OwnerRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		DailyRecords: NewDailyRecordRepository(database),
		Meals:        NewMealRecordRepository(database),
		Achievements: NewAchievementRepository(database),
		Stats:        NewUserStatsRepository(database),
		Plans:        NewPlanRepository(database),
		Owners:       NewOwnerRepository(database),
	}
}
