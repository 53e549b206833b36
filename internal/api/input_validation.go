package api

import "github.com/ranli8/fit8/internal/services"

const (
	maxTrainingMinutes  = 24 * 60
	maxTrainingCalories = 10000
	maxWaterML          = 20000
	maxSleepHours       = 24
	maxNotesLength      = 2000
)

func validateRecordInput(input services.RecordInput) string {
	if input.Weight != nil && (*input.Weight <= 0 || *input.Weight > 500) {
		return "weight out of range"
	}
	if input.BodyFatPercent != nil && (*input.BodyFatPercent <= 0 || *input.BodyFatPercent >= 100) {
		return "body fat percent out of range"
	}
	if input.TrainingMinutes < 0 || input.TrainingMinutes > maxTrainingMinutes {
		return "training minutes out of range"
	}
	if input.TrainingCalories < 0 || input.TrainingCalories > maxTrainingCalories {
		return "training calories out of range"
	}
	if input.WaterML < 0 || input.WaterML > maxWaterML {
		return "water intake out of range"
	}
	if input.SleepHours < 0 || input.SleepHours > maxSleepHours {
		return "sleep hours out of range"
	}
	if input.Mood < 1 || input.Mood > 5 {
		return "mood must be between 1 and 5"
	}
	if len(input.Notes) > maxNotesLength {
		return "notes too long"
	}
	return ""
}

func validateMealInput(input services.MealInput) string {
	if input.Calories < 0 || input.Calories > maxTrainingCalories {
		return "calories out of range"
	}
	if input.ProteinGrams < 0 || input.CarbsGrams < 0 || input.FatGrams < 0 {
		return "macros must be non-negative"
	}
	return ""
}
