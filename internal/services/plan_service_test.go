package services

import (
	"errors"
	"testing"

	"github.com/ranli8/fit8/internal/models"
)

type stubPlanStore struct {
	workoutDays []models.WorkoutPlanDay
	dietEntries []models.DietPlanEntry
}

func (store *stubPlanStore) CountWorkoutDays() (int64, error) {
	return int64(len(store.workoutDays)), nil
}

func (store *stubPlanStore) CreateWorkoutDays(days []models.WorkoutPlanDay) error {
	store.workoutDays = append(store.workoutDays, days...)
	return nil
}

func (store *stubPlanStore) ListWorkoutWeek(week int) ([]models.WorkoutPlanDay, error) {
	listed := make([]models.WorkoutPlanDay, 0, 7)
	for _, day := range store.workoutDays {
		if day.Week == week {
			listed = append(listed, day)
		}
	}
	return listed, nil
}

func (store *stubPlanStore) CountDietEntries() (int64, error) {
	return int64(len(store.dietEntries)), nil
}

func (store *stubPlanStore) CreateDietEntries(entries []models.DietPlanEntry) error {
	store.dietEntries = append(store.dietEntries, entries...)
	return nil
}

func (store *stubPlanStore) FindDietWeek(week int) (models.DietPlanEntry, bool, error) {
	for _, entry := range store.dietEntries {
		if entry.Week == week {
			return entry, true, nil
		}
	}
	return models.DietPlanEntry{}, false, nil
}

func TestSeedPlansIsIdempotent(t *testing.T) {
	store := &stubPlanStore{}
	service := NewPlanService(store)

	if err := service.SeedPlans(); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	if len(store.workoutDays) != models.ProgramWeeks*7 {
		t.Fatalf("expected %d workout days, got %d", models.ProgramWeeks*7, len(store.workoutDays))
	}
	if len(store.dietEntries) != models.ProgramWeeks {
		t.Fatalf("expected %d diet entries, got %d", models.ProgramWeeks, len(store.dietEntries))
	}

	if err := service.SeedPlans(); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	if len(store.workoutDays) != models.ProgramWeeks*7 || len(store.dietEntries) != models.ProgramWeeks {
		t.Fatal("second seed must not add rows")
	}
}

func TestWorkoutWeekBounds(t *testing.T) {
	store := &stubPlanStore{}
	service := NewPlanService(store)
	if err := service.SeedPlans(); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	week, err := service.WorkoutWeek(3)
	if err != nil {
		t.Fatalf("week fetch failed: %v", err)
	}
	if len(week) != 7 {
		t.Fatalf("expected 7 plan days, got %d", len(week))
	}

	restDays := 0
	for _, day := range week {
		if day.IsRestDay {
			restDays++
		}
	}
	if restDays != 2 {
		t.Fatalf("expected 2 rest days per week, got %d", restDays)
	}

	for _, badWeek := range []int{0, 9, -1} {
		if _, err := service.WorkoutWeek(badWeek); !errors.Is(err, ErrWeekOutOfRange) {
			t.Fatalf("expected ErrWeekOutOfRange for week %d, got %v", badWeek, err)
		}
	}
}

func TestDietWeek(t *testing.T) {
	store := &stubPlanStore{}
	service := NewPlanService(store)
	if err := service.SeedPlans(); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	entry, err := service.DietWeek(5)
	if err != nil {
		t.Fatalf("diet week fetch failed: %v", err)
	}
	if entry.Week != 5 || entry.Theme == "" {
		t.Fatalf("unexpected entry: %+v", entry)
	}

	if _, err := service.DietWeek(12); !errors.Is(err, ErrWeekOutOfRange) {
		t.Fatalf("expected ErrWeekOutOfRange, got %v", err)
	}
}
