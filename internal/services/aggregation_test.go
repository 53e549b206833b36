package services

import (
	"testing"
	"time"

	"github.com/ranli8/fit8/internal/models"
)

func mustParseAggregationDay(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		t.Fatalf("parse day %s: %v", value, err)
	}
	return parsed
}

func activeRecordOn(t *testing.T, day string) models.DailyRecord {
	t.Helper()
	return models.DailyRecord{Date: mustParseAggregationDay(t, day), TrainingMinutes: 30}
}

func TestCurrentStreakCountsConsecutiveActiveDays(t *testing.T) {
	records := []models.DailyRecord{
		activeRecordOn(t, "2026-03-04"),
		activeRecordOn(t, "2026-03-05"),
		activeRecordOn(t, "2026-03-06"),
		activeRecordOn(t, "2026-03-07"),
		activeRecordOn(t, "2026-03-08"),
		activeRecordOn(t, "2026-03-09"),
		activeRecordOn(t, "2026-03-10"),
	}

	// 2026-03-03 is missing, so the streak stops at exactly 7.
	if got := CurrentStreak(records, mustParseAggregationDay(t, "2026-03-10")); got != 7 {
		t.Fatalf("expected streak 7, got %d", got)
	}
}

func TestCurrentStreakZeroWhenAsOfInactive(t *testing.T) {
	records := []models.DailyRecord{
		activeRecordOn(t, "2026-03-08"),
		activeRecordOn(t, "2026-03-09"),
		// The reference day exists but has no activity at all.
		{Date: mustParseAggregationDay(t, "2026-03-10")},
	}

	if got := CurrentStreak(records, mustParseAggregationDay(t, "2026-03-10")); got != 0 {
		t.Fatalf("expected streak 0 for inactive reference day, got %d", got)
	}

	if got := CurrentStreak(records, mustParseAggregationDay(t, "2026-03-11")); got != 0 {
		t.Fatalf("expected streak 0 for missing reference day, got %d", got)
	}
}

func TestCurrentStreakEmptyHistory(t *testing.T) {
	if got := CurrentStreak(nil, mustParseAggregationDay(t, "2026-03-10")); got != 0 {
		t.Fatalf("expected streak 0 on empty history, got %d", got)
	}
}

func TestActivityPredicate(t *testing.T) {
	tests := []struct {
		name   string
		record models.DailyRecord
		want   bool
	}{
		{name: "training counts", record: models.DailyRecord{TrainingMinutes: 10}, want: true},
		{name: "water counts", record: models.DailyRecord{WaterML: 500}, want: true},
		{name: "diet counts", record: models.DailyRecord{DietOK: true}, want: true},
		{name: "weight alone does not count", record: models.DailyRecord{Weight: floatPointer(70)}, want: false},
		{name: "empty record", record: models.DailyRecord{}, want: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := RecordHasActivity(testCase.record); got != testCase.want {
				t.Fatalf("expected %v, got %v", testCase.want, got)
			}
		})
	}
}

func TestMaxStreakFindsLongestRun(t *testing.T) {
	records := []models.DailyRecord{
		activeRecordOn(t, "2026-01-01"),
		activeRecordOn(t, "2026-01-02"),
		// gap
		activeRecordOn(t, "2026-01-05"),
		activeRecordOn(t, "2026-01-06"),
		activeRecordOn(t, "2026-01-07"),
		activeRecordOn(t, "2026-01-08"),
		// inactive day breaks the run
		{Date: mustParseAggregationDay(t, "2026-01-09")},
		activeRecordOn(t, "2026-01-10"),
	}

	if got := MaxStreak(records); got != 4 {
		t.Fatalf("expected max streak 4, got %d", got)
	}
	if got := MaxStreak(nil); got != 0 {
		t.Fatalf("expected max streak 0 on empty history, got %d", got)
	}
}

func TestTotalWorkoutDays(t *testing.T) {
	records := []models.DailyRecord{
		activeRecordOn(t, "2026-01-01"),
		{Date: mustParseAggregationDay(t, "2026-01-02"), WaterML: 1000},
		activeRecordOn(t, "2026-01-03"),
	}

	if got := TotalWorkoutDays(records); got != 2 {
		t.Fatalf("expected 2 workout days, got %d", got)
	}
}

func TestAverageOverRangeDistinguishesAbsentFromZero(t *testing.T) {
	from := mustParseAggregationDay(t, "2026-02-01")
	to := mustParseAggregationDay(t, "2026-02-28")

	records := []models.DailyRecord{
		{Date: mustParseAggregationDay(t, "2026-02-03"), TrainingMinutes: 20},
		{Date: mustParseAggregationDay(t, "2026-02-04"), TrainingMinutes: 20},
	}

	if _, ok := AverageOverRange(records, MetricWeight, from, to); ok {
		t.Fatal("expected no weight average when no observations exist")
	}

	records = append(records, models.DailyRecord{
		Date:   mustParseAggregationDay(t, "2026-02-10"),
		Weight: floatPointer(71),
	}, models.DailyRecord{
		Date:   mustParseAggregationDay(t, "2026-02-20"),
		Weight: floatPointer(69),
	})

	average, ok := AverageOverRange(records, MetricWeight, from, to)
	if !ok {
		t.Fatal("expected a weight average")
	}
	if average != 70 {
		t.Fatalf("expected average 70, got %f", average)
	}
}

func TestAverageOverRangeRespectsBounds(t *testing.T) {
	records := []models.DailyRecord{
		{Date: mustParseAggregationDay(t, "2026-02-01"), BodyFatPercent: floatPointer(25)},
		{Date: mustParseAggregationDay(t, "2026-03-01"), BodyFatPercent: floatPointer(99)},
	}

	average, ok := AverageOverRange(records, MetricBodyFat,
		mustParseAggregationDay(t, "2026-02-01"),
		mustParseAggregationDay(t, "2026-02-28"))
	if !ok || average != 25 {
		t.Fatalf("expected average 25 from the in-range observation, got %f ok=%v", average, ok)
	}
}

func TestTotalCaloriesBurnedSumsRange(t *testing.T) {
	records := []models.DailyRecord{
		{Date: mustParseAggregationDay(t, "2026-02-01"), TrainingCalories: 300},
		{Date: mustParseAggregationDay(t, "2026-02-02"), TrainingCalories: 450},
		{Date: mustParseAggregationDay(t, "2026-03-01"), TrainingCalories: 999},
	}

	got := TotalCaloriesBurned(records,
		mustParseAggregationDay(t, "2026-02-01"),
		mustParseAggregationDay(t, "2026-02-28"))
	if got != 750 {
		t.Fatalf("expected 750 calories, got %d", got)
	}

	if got := TotalCaloriesBurned(nil, mustParseAggregationDay(t, "2026-02-01"), mustParseAggregationDay(t, "2026-02-28")); got != 0 {
		t.Fatalf("expected 0 calories on empty history, got %d", got)
	}
}

func TestWeightChangeNeedsTwoObservations(t *testing.T) {
	since := mustParseAggregationDay(t, "2026-01-01")

	if _, ok := WeightChange(nil, since); ok {
		t.Fatal("expected no change on empty history")
	}

	single := []models.DailyRecord{
		{Date: mustParseAggregationDay(t, "2026-01-05"), Weight: floatPointer(80)},
	}
	if _, ok := WeightChange(single, since); ok {
		t.Fatal("expected no change with a single observation")
	}

	records := append(single, models.DailyRecord{
		Date:   mustParseAggregationDay(t, "2026-02-05"),
		Weight: floatPointer(76.5),
	})
	change, ok := WeightChange(records, since)
	if !ok {
		t.Fatal("expected a weight change")
	}
	if change != -3.5 {
		t.Fatalf("expected change -3.5, got %f", change)
	}
}

func TestWeightChangeIgnoresObservationsBeforeSince(t *testing.T) {
	records := []models.DailyRecord{
		{Date: mustParseAggregationDay(t, "2025-12-01"), Weight: floatPointer(90)},
		{Date: mustParseAggregationDay(t, "2026-01-10"), Weight: floatPointer(80)},
		{Date: mustParseAggregationDay(t, "2026-02-10"), Weight: floatPointer(78)},
	}

	change, ok := WeightChange(records, mustParseAggregationDay(t, "2026-01-01"))
	if !ok || change != -2 {
		t.Fatalf("expected change -2 from the in-range baseline, got %f ok=%v", change, ok)
	}
}

func TestDietStreak(t *testing.T) {
	records := []models.DailyRecord{
		{Date: mustParseAggregationDay(t, "2026-03-08"), DietOK: true},
		{Date: mustParseAggregationDay(t, "2026-03-09"), DietOK: true},
		{Date: mustParseAggregationDay(t, "2026-03-10"), DietOK: true},
	}

	if got := DietStreak(records, mustParseAggregationDay(t, "2026-03-10")); got != 3 {
		t.Fatalf("expected diet streak 3, got %d", got)
	}
	if got := DietStreak(records, mustParseAggregationDay(t, "2026-03-11")); got != 0 {
		t.Fatalf("expected diet streak 0 for a missing day, got %d", got)
	}
}

func floatPointer(value float64) *float64 {
	return &value
}
