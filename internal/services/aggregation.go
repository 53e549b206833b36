package services

import (
	"sort"
	"time"

	"github.com/ranli8/fit8/internal/models"
)

// MetricField selects which optional measurement an aggregation reads.
type MetricField string

const (
	MetricWeight  MetricField = "weight"
	MetricBodyFat MetricField = "body_fat"
)

// All functions in this file are pure and total: they take an immutable
// record slice (any order is tolerated, records are indexed by day) and
// never panic on empty input. Where a value can be genuinely absent they
// return an explicit ok flag instead of collapsing to zero.

// CurrentStreak counts consecutive active days walking backward from asOf.
// An inactive or missing asOf day means the streak is 0 regardless of
// earlier history.
func CurrentStreak(records []models.DailyRecord, asOf time.Time) int {
	recordsByDay := indexRecordsByDay(records)

	streak := 0
	day := DateAtLocation(asOf, asOf.Location())
	for {
		record, found := recordsByDay[dateKey(day)]
		if !found || !RecordHasActivity(record) {
			return streak
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
}

// MaxStreak returns the longest run of consecutive active days in the
// whole history, scanning it once.
func MaxStreak(records []models.DailyRecord) int {
	activeDays := make([]time.Time, 0, len(records))
	for _, record := range records {
		if RecordHasActivity(record) {
			activeDays = append(activeDays, DateAtLocation(record.Date, record.Date.Location()))
		}
	}
	if len(activeDays) == 0 {
		return 0
	}

	sort.Slice(activeDays, func(i, j int) bool {
		return activeDays[i].Before(activeDays[j])
	})

	longest := 1
	current := 1
	for index := 1; index < len(activeDays); index++ {
		if SameDay(activeDays[index-1].AddDate(0, 0, 1), activeDays[index]) {
			current++
		} else if !SameDay(activeDays[index-1], activeDays[index]) {
			current = 1
		}
		if current > longest {
			longest = current
		}
	}
	return longest
}

// DietStreak counts consecutive diet-ok days walking backward from asOf.
func DietStreak(records []models.DailyRecord, asOf time.Time) int {
	recordsByDay := indexRecordsByDay(records)

	streak := 0
	day := DateAtLocation(asOf, asOf.Location())
	for {
		record, found := recordsByDay[dateKey(day)]
		if !found || !record.DietOK {
			return streak
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
}

func TotalWorkoutDays(records []models.DailyRecord) int {
	count := 0
	for _, record := range records {
		if record.TrainingMinutes > 0 {
			count++
		}
	}
	return count
}

func TotalActiveDays(records []models.DailyRecord) int {
	count := 0
	for _, record := range records {
		if RecordHasActivity(record) {
			count++
		}
	}
	return count
}

// AverageOverRange averages the non-nil observations of the given field in
// [from, to]. ok is false when the filtered set is empty; callers must not
// treat that as a recorded average of zero.
func AverageOverRange(records []models.DailyRecord, field MetricField, from time.Time, to time.Time) (float64, bool) {
	sum := 0.0
	count := 0
	for _, record := range records {
		if !withinDayRange(record.Date, from, to) {
			continue
		}
		value := metricValue(record, field)
		if value == nil {
			continue
		}
		sum += *value
		count++
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

// TotalCaloriesBurned sums training calories in [from, to]. Calories are
// non-nullable with default 0, so an empty range correctly sums to 0.
func TotalCaloriesBurned(records []models.DailyRecord, from time.Time, to time.Time) int {
	total := 0
	for _, record := range records {
		if withinDayRange(record.Date, from, to) {
			total += record.TrainingCalories
		}
	}
	return total
}

// WeightChange returns the latest weight minus the observation nearest to
// since. ok is false with fewer than two weight observations on or after
// that date.
func WeightChange(records []models.DailyRecord, since time.Time) (float64, bool) {
	observations := metricObservations(records, MetricWeight, since)
	if len(observations) < 2 {
		return 0, false
	}
	return observations[len(observations)-1].value - observations[0].value, true
}

// BodyFatChange mirrors WeightChange for the body-fat series.
func BodyFatChange(records []models.DailyRecord, since time.Time) (float64, bool) {
	observations := metricObservations(records, MetricBodyFat, since)
	if len(observations) < 2 {
		return 0, false
	}
	return observations[len(observations)-1].value - observations[0].value, true
}

// HasAnyWeightRecord reports whether a weight was ever saved.
func HasAnyWeightRecord(records []models.DailyRecord) bool {
	for _, record := range records {
		if record.Weight != nil {
			return true
		}
	}
	return false
}

type metricObservation struct {
	day   time.Time
	value float64
}

func metricObservations(records []models.DailyRecord, field MetricField, since time.Time) []metricObservation {
	sinceDay := DateAtLocation(since, since.Location())
	observations := make([]metricObservation, 0, len(records))
	for _, record := range records {
		value := metricValue(record, field)
		if value == nil {
			continue
		}
		day := DateAtLocation(record.Date, record.Date.Location())
		if day.Before(sinceDay) {
			continue
		}
		observations = append(observations, metricObservation{day: day, value: *value})
	}
	sort.Slice(observations, func(i, j int) bool {
		return observations[i].day.Before(observations[j].day)
	})
	return observations
}

func metricValue(record models.DailyRecord, field MetricField) *float64 {
	switch field {
	case MetricWeight:
		return record.Weight
	case MetricBodyFat:
		return record.BodyFatPercent
	}
	return nil
}

func withinDayRange(value time.Time, from time.Time, to time.Time) bool {
	day := DateAtLocation(value, value.Location())
	fromDay := DateAtLocation(from, from.Location())
	toDay := DateAtLocation(to, to.Location())
	return !day.Before(fromDay) && !day.After(toDay)
}

func indexRecordsByDay(records []models.DailyRecord) map[string]models.DailyRecord {
	indexed := make(map[string]models.DailyRecord, len(records))
	for _, record := range records {
		indexed[dateKey(DateAtLocation(record.Date, record.Date.Location()))] = record
	}
	return indexed
}
