package services

import (
	"time"

	"github.com/ranli8/fit8/internal/models"
)

// ProgramWeek returns the 1-based program week for now. It keeps counting
// past models.ProgramWeeks once the program is over; the weekly achievement
// evaluator depends on seeing week 9 after the final week completes.
func ProgramWeek(programStart time.Time, now time.Time) int {
	startDay := DateAtLocation(programStart, programStart.Location())
	nowDay := DateAtLocation(now, programStart.Location())
	if nowDay.Before(startDay) {
		return 1
	}
	return calendarDaysBetween(startDay, nowDay)/7 + 1
}

// calendarDaysBetween counts whole calendar days from one midnight to
// another. Both dates are re-anchored in UTC first so a DST transition
// (a 23- or 25-hour local day) cannot shift the count.
func calendarDaysBetween(from time.Time, to time.Time) int {
	fromUTC := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toUTC := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toUTC.Sub(fromUTC) / (24 * time.Hour))
}

// RebuildUserStats recomputes every derived counter from the full record
// history. It is a pure reducer: TotalPoints and ProgramStart are carried
// over from previous untouched, points change only on unlock.
func RebuildUserStats(previous models.UserStats, records []models.DailyRecord, now time.Time) models.UserStats {
	stats := models.UserStats{
		ID:           models.UserStatsID,
		ProgramStart: previous.ProgramStart,
		TotalPoints:  previous.TotalPoints,
	}

	stats.TotalWorkouts = TotalWorkoutDays(records)
	stats.TotalActiveDays = TotalActiveDays(records)
	stats.CurrentStreak = CurrentStreak(records, now)
	stats.MaxStreak = MaxStreak(records)
	stats.CurrentWeek = ProgramWeek(previous.ProgramStart, now)

	total := 0
	for _, record := range records {
		total += record.TrainingCalories
	}
	stats.TotalCaloriesBurned = total

	return stats
}
