package models

import "testing"

func TestDefaultAchievementCatalog(t *testing.T) {
	catalog := DefaultAchievementCatalog()

	if len(catalog) != 21 {
		t.Fatalf("expected 21 catalog entries, got %d", len(catalog))
	}

	seenIDs := make(map[string]bool, len(catalog))
	seenCategories := make(map[AchievementCategory]bool)
	for _, achievement := range catalog {
		if achievement.ID == "" || achievement.Title == "" {
			t.Fatalf("entry missing id or title: %+v", achievement)
		}
		if seenIDs[achievement.ID] {
			t.Fatalf("duplicate achievement id %s", achievement.ID)
		}
		seenIDs[achievement.ID] = true

		if achievement.Points <= 0 {
			t.Fatalf("%s must award points, got %d", achievement.ID, achievement.Points)
		}
		if achievement.Unlocked || achievement.UnlockedAt != nil {
			t.Fatalf("%s must seed locked", achievement.ID)
		}
		if achievement.Category != CategorySpecial && achievement.TargetValue <= 0 {
			t.Fatalf("%s needs a positive target, got %d", achievement.ID, achievement.TargetValue)
		}
		seenCategories[achievement.Category] = true
	}

	for _, category := range AllAchievementCategories() {
		if !seenCategories[category] {
			t.Fatalf("category %s has no catalog entry", category)
		}
	}
}

func TestDefaultWorkoutPlanShape(t *testing.T) {
	plan := DefaultWorkoutPlan()

	if len(plan) != ProgramWeeks*7 {
		t.Fatalf("expected %d plan days, got %d", ProgramWeeks*7, len(plan))
	}

	for _, day := range plan {
		wantRest := day.Day == 3 || day.Day == 7
		if day.IsRestDay != wantRest {
			t.Fatalf("week %d day %d: rest=%v, want %v", day.Week, day.Day, day.IsRestDay, wantRest)
		}
		if !day.IsRestDay && day.DurationMinutes <= 0 {
			t.Fatalf("week %d day %d: workout day needs a duration", day.Week, day.Day)
		}
	}
}

func TestDefaultDietPlanCoversEveryWeek(t *testing.T) {
	plan := DefaultDietPlan()

	if len(plan) != ProgramWeeks {
		t.Fatalf("expected %d diet entries, got %d", ProgramWeeks, len(plan))
	}
	for index, entry := range plan {
		if entry.Week != index+1 {
			t.Fatalf("entry %d covers week %d", index, entry.Week)
		}
		if entry.DailyCalorieTarget <= 0 {
			t.Fatalf("week %d needs a calorie target", entry.Week)
		}
	}
}
