package services

import (
	"time"

	"github.com/ranli8/fit8/internal/models"
)

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

func SameDay(a time.Time, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// RecordHasActivity is the canonical activity predicate used for streaks
// and active-day counts: any training, any water, or a diet day counts.
func RecordHasActivity(record models.DailyRecord) bool {
	if record.TrainingMinutes > 0 {
		return true
	}
	if record.WaterML > 0 {
		return true
	}
	return record.DietOK
}

func dateKey(value time.Time) string {
	return value.Format("2006-01-02")
}
