package services

import (
	"math"

	"github.com/ranli8/fit8/internal/models"
)

// Fixed daily macro targets for the 8-week program.
const (
	TargetCalories     = 1700
	TargetProteinGrams = 120.0
	TargetCarbsGrams   = 170.0
	TargetFatGrams     = 45.0
)

type NutritionSummary struct {
	TotalCalories int     `json:"total_calories"`
	TotalProtein  float64 `json:"total_protein"`
	TotalCarbs    float64 `json:"total_carbs"`
	TotalFat      float64 `json:"total_fat"`

	// Percent-of-target values, each clamped to [0, 100].
	CaloriesPercent int `json:"calories_percent"`
	ProteinPercent  int `json:"protein_percent"`
	CarbsPercent    int `json:"carbs_percent"`
	FatPercent      int `json:"fat_percent"`

	// OverallScore awards 25 points per macro inside its on-track band:
	// calories within ±10% of target, protein at least 80% of target,
	// carbs and fat no more than 120% of target.
	OverallScore int `json:"overall_score"`
}

func BuildNutritionSummary(meals []models.MealRecord) NutritionSummary {
	summary := NutritionSummary{}
	for _, meal := range meals {
		summary.TotalCalories += meal.Calories
		summary.TotalProtein += meal.ProteinGrams
		summary.TotalCarbs += meal.CarbsGrams
		summary.TotalFat += meal.FatGrams
	}

	summary.CaloriesPercent = percentOfTarget(float64(summary.TotalCalories), TargetCalories)
	summary.ProteinPercent = percentOfTarget(summary.TotalProtein, TargetProteinGrams)
	summary.CarbsPercent = percentOfTarget(summary.TotalCarbs, TargetCarbsGrams)
	summary.FatPercent = percentOfTarget(summary.TotalFat, TargetFatGrams)

	score := 0
	if caloriesOnTrack(summary.TotalCalories) {
		score += 25
	}
	if summary.TotalProtein >= 0.8*TargetProteinGrams {
		score += 25
	}
	if summary.TotalCarbs <= 1.2*TargetCarbsGrams {
		score += 25
	}
	if summary.TotalFat <= 1.2*TargetFatGrams {
		score += 25
	}
	summary.OverallScore = score

	return summary
}

func caloriesOnTrack(totalCalories int) bool {
	deviation := math.Abs(float64(totalCalories) - TargetCalories)
	return deviation <= 0.1*TargetCalories
}

func percentOfTarget(value float64, target float64) int {
	if target <= 0 {
		return 0
	}
	percent := int(math.Round(value / target * 100))
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}
