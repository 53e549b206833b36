package api

import (
	"strings"
	"testing"

	"github.com/ranli8/fit8/internal/services"
)

func TestValidateRecordInput(t *testing.T) {
	weight := 72.0
	badWeight := 600.0
	badBodyFat := 100.0

	tests := []struct {
		name        string
		input       services.RecordInput
		wantMessage string
	}{
		{
			name:  "valid full record",
			input: services.RecordInput{Weight: &weight, TrainingMinutes: 45, TrainingCalories: 400, WaterML: 2000, SleepHours: 7.5, Mood: 4},
		},
		{
			name:        "weight too high",
			input:       services.RecordInput{Weight: &badWeight, Mood: 3},
			wantMessage: "weight out of range",
		},
		{
			name:        "body fat at limit",
			input:       services.RecordInput{BodyFatPercent: &badBodyFat, Mood: 3},
			wantMessage: "body fat percent out of range",
		},
		{
			name:        "training longer than a day",
			input:       services.RecordInput{TrainingMinutes: 1441, Mood: 3},
			wantMessage: "training minutes out of range",
		},
		{
			name:        "negative water",
			input:       services.RecordInput{WaterML: -1, Mood: 3},
			wantMessage: "water intake out of range",
		},
		{
			name:        "mood zero",
			input:       services.RecordInput{Mood: 0},
			wantMessage: "mood must be between 1 and 5",
		},
		{
			name:        "mood too high",
			input:       services.RecordInput{Mood: 6},
			wantMessage: "mood must be between 1 and 5",
		},
		{
			name:        "notes too long",
			input:       services.RecordInput{Mood: 3, Notes: strings.Repeat("x", maxNotesLength+1)},
			wantMessage: "notes too long",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := validateRecordInput(testCase.input); got != testCase.wantMessage {
				t.Fatalf("expected %q, got %q", testCase.wantMessage, got)
			}
		})
	}
}

func TestValidateMealInput(t *testing.T) {
	if got := validateMealInput(services.MealInput{Calories: 500, ProteinGrams: 30}); got != "" {
		t.Fatalf("expected a valid meal, got %q", got)
	}
	if got := validateMealInput(services.MealInput{Calories: -10}); got == "" {
		t.Fatal("negative calories must be rejected")
	}
	if got := validateMealInput(services.MealInput{ProteinGrams: -1}); got == "" {
		t.Fatal("negative macros must be rejected")
	}
}
