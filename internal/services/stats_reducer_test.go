package services

import (
	"testing"
	"time"

	"github.com/ranli8/fit8/internal/models"
)

func TestProgramWeek(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{name: "before the start", now: start.AddDate(0, 0, -3), want: 1},
		{name: "first day", now: start, want: 1},
		{name: "last day of week 1", now: start.AddDate(0, 0, 6), want: 1},
		{name: "first day of week 2", now: start.AddDate(0, 0, 7), want: 2},
		{name: "last program week", now: start.AddDate(0, 0, 52), want: 8},
		{name: "past the program", now: start.AddDate(0, 0, 56), want: 9},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := ProgramWeek(start, testCase.now); got != testCase.want {
				t.Fatalf("expected week %d, got %d", testCase.want, got)
			}
		})
	}
}

func TestProgramWeekAcrossDSTTransition(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// DST starts 2026-03-29 in Berlin, making that a 23-hour day. The week
	// boundary must still land exactly 7 calendar days after the start.
	start := time.Date(2026, 3, 25, 0, 0, 0, 0, berlin)

	if got := ProgramWeek(start, time.Date(2026, 3, 31, 12, 0, 0, 0, berlin)); got != 1 {
		t.Fatalf("expected week 1 on day 7, got %d", got)
	}
	if got := ProgramWeek(start, time.Date(2026, 4, 1, 0, 0, 0, 0, berlin)); got != 2 {
		t.Fatalf("expected week 2 after 7 calendar days, got %d", got)
	}
	if got := ProgramWeek(start, time.Date(2026, 5, 20, 0, 0, 0, 0, berlin)); got != 9 {
		t.Fatalf("expected week 9 after 56 calendar days, got %d", got)
	}
}

func TestRebuildUserStatsRecomputesCounters(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 11, 20, 0, 0, 0, time.UTC)

	records := []models.DailyRecord{
		{Date: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), TrainingMinutes: 30, TrainingCalories: 300},
		{Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), WaterML: 2000},
		{Date: time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), TrainingMinutes: 45, TrainingCalories: 400},
	}

	previous := models.UserStats{
		ID:           models.UserStatsID,
		ProgramStart: start,
		TotalPoints:  240,
	}

	stats := RebuildUserStats(previous, records, now)

	if stats.TotalWorkouts != 2 {
		t.Fatalf("expected 2 workouts, got %d", stats.TotalWorkouts)
	}
	if stats.TotalActiveDays != 3 {
		t.Fatalf("expected 3 active days, got %d", stats.TotalActiveDays)
	}
	if stats.CurrentStreak != 3 {
		t.Fatalf("expected streak 3, got %d", stats.CurrentStreak)
	}
	if stats.MaxStreak != 3 {
		t.Fatalf("expected max streak 3, got %d", stats.MaxStreak)
	}
	if stats.TotalCaloriesBurned != 700 {
		t.Fatalf("expected 700 calories, got %d", stats.TotalCaloriesBurned)
	}
	if stats.CurrentWeek != 2 {
		t.Fatalf("expected week 2, got %d", stats.CurrentWeek)
	}
}

func TestRebuildUserStatsCarriesPointsAndStart(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	previous := models.UserStats{ID: models.UserStatsID, ProgramStart: start, TotalPoints: 510}

	stats := RebuildUserStats(previous, nil, start.AddDate(0, 0, 10))

	if stats.TotalPoints != 510 {
		t.Fatalf("rebuild must not touch points, got %d", stats.TotalPoints)
	}
	if !stats.ProgramStart.Equal(start) {
		t.Fatalf("rebuild must carry the program start, got %v", stats.ProgramStart)
	}
	if stats.TotalWorkouts != 0 || stats.CurrentStreak != 0 {
		t.Fatal("counters must be zero on an empty history")
	}
}
