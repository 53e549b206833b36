package services

import (
	"fmt"
	"time"

	"github.com/ranli8/fit8/internal/models"
)

const adviceLookbackDays = 7

// BuildAdvice turns the recent history and the stats aggregate into short
// coaching lines. Deterministic given its inputs, so callers can cache or
// test it without a store.
func BuildAdvice(records []models.DailyRecord, stats models.UserStats, now time.Time) []string {
	advice := make([]string, 0, 6)

	switch {
	case stats.CurrentStreak == 0:
		advice = append(advice, "No active day yet today. A short workout or hitting your water goal keeps the program moving.")
	case stats.CurrentStreak < 3:
		advice = append(advice, fmt.Sprintf("You are on a %d-day streak. Three days in a row builds the habit.", stats.CurrentStreak))
	default:
		advice = append(advice, fmt.Sprintf("Strong %d-day streak. Keep the chain unbroken.", stats.CurrentStreak))
	}

	weekAgo := now.AddDate(0, 0, -adviceLookbackDays+1)
	if change, ok := WeightChange(records, weekAgo); ok {
		if change < 0 {
			advice = append(advice, fmt.Sprintf("Weight is down %.1f kg over the last week. The plan is working.", -change))
		} else if change > 0 {
			advice = append(advice, fmt.Sprintf("Weight is up %.1f kg this week. Check your portions against the diet plan.", change))
		}
	}

	recent := recordsInLastDays(records, now, adviceLookbackDays)
	if len(recent) > 0 {
		lowWaterDays := 0
		shortSleepDays := 0
		for _, record := range recent {
			if record.WaterML < 1500 {
				lowWaterDays++
			}
			if record.SleepHours > 0 && record.SleepHours < 7 {
				shortSleepDays++
			}
		}
		if lowWaterDays > len(recent)/2 {
			advice = append(advice, "Hydration has been low most days this week. Aim for 2 litres.")
		}
		if shortSleepDays > len(recent)/2 {
			advice = append(advice, "You have been sleeping under 7 hours. Recovery drives results as much as training.")
		}
	}

	if stats.CurrentWeek >= 1 && stats.CurrentWeek <= models.ProgramWeeks {
		advice = append(advice, fmt.Sprintf("You are in week %d of %d. Check this week's plan for today's session.", stats.CurrentWeek, models.ProgramWeeks))
	} else if stats.CurrentWeek > models.ProgramWeeks {
		advice = append(advice, "Program complete. Maintenance mode: keep two to three sessions a week.")
	}

	return advice
}

func recordsInLastDays(records []models.DailyRecord, now time.Time, days int) []models.DailyRecord {
	cutoff := DateAtLocation(now, now.Location()).AddDate(0, 0, -(days - 1))
	recent := make([]models.DailyRecord, 0, days)
	for _, record := range records {
		if !DateAtLocation(record.Date, record.Date.Location()).Before(cutoff) {
			recent = append(recent, record)
		}
	}
	return recent
}
