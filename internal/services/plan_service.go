package services

import (
	"errors"
	"fmt"

	"github.com/ranli8/fit8/internal/models"
)

var ErrWeekOutOfRange = errors.New("program week out of range")

type PlanStore interface {
	CountWorkoutDays() (int64, error)
	CreateWorkoutDays(days []models.WorkoutPlanDay) error
	ListWorkoutWeek(week int) ([]models.WorkoutPlanDay, error)
	CountDietEntries() (int64, error)
	CreateDietEntries(entries []models.DietPlanEntry) error
	FindDietWeek(week int) (models.DietPlanEntry, bool, error)
}

type PlanService struct {
	plans PlanStore
}

func NewPlanService(plans PlanStore) *PlanService {
	return &PlanService{plans: plans}
}

// SeedPlans fills the workout and diet plan tables on first run. Both
// seeders follow the same insert-if-empty contract as the achievement
// catalog and are safe to call on every start.
func (service *PlanService) SeedPlans() error {
	workoutCount, err := service.plans.CountWorkoutDays()
	if err != nil {
		return fmt.Errorf("count workout plan days: %w", err)
	}
	if workoutCount == 0 {
		if err := service.plans.CreateWorkoutDays(models.DefaultWorkoutPlan()); err != nil {
			return fmt.Errorf("seed workout plan: %w", err)
		}
	}

	dietCount, err := service.plans.CountDietEntries()
	if err != nil {
		return fmt.Errorf("count diet plan entries: %w", err)
	}
	if dietCount == 0 {
		if err := service.plans.CreateDietEntries(models.DefaultDietPlan()); err != nil {
			return fmt.Errorf("seed diet plan: %w", err)
		}
	}

	return nil
}

func (service *PlanService) WorkoutWeek(week int) ([]models.WorkoutPlanDay, error) {
	if week < 1 || week > models.ProgramWeeks {
		return nil, ErrWeekOutOfRange
	}
	return service.plans.ListWorkoutWeek(week)
}

func (service *PlanService) DietWeek(week int) (models.DietPlanEntry, error) {
	if week < 1 || week > models.ProgramWeeks {
		return models.DietPlanEntry{}, ErrWeekOutOfRange
	}
	entry, found, err := service.plans.FindDietWeek(week)
	if err != nil {
		return models.DietPlanEntry{}, err
	}
	if !found {
		return models.DietPlanEntry{}, ErrWeekOutOfRange
	}
	return entry, nil
}
