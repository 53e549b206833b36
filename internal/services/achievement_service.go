package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ranli8/fit8/internal/models"
)

var (
	ErrUnknownAchievement = errors.New("achievement id not in catalog")
	ErrUnknownCategory    = errors.New("unknown achievement category")
)

type AchievementStore interface {
	Count() (int64, error)
	CreateBatch(achievements []models.Achievement) error
	ListAll() ([]models.Achievement, error)
	ListLockedByCategory(category models.AchievementCategory) ([]models.Achievement, error)
	FindByID(achievementID string) (models.Achievement, bool, error)
	Save(achievement *models.Achievement) error
	UnlockAndAward(achievement *models.Achievement) error
}

// AchievementService owns the locked -> unlocked state machine. Unlocks
// are monotonic: nothing here ever flips an achievement back to locked.
type AchievementService struct {
	store AchievementStore
	bus   *UnlockBus
}

func NewAchievementService(store AchievementStore, bus *UnlockBus) *AchievementService {
	return &AchievementService{store: store, bus: bus}
}

// SeedCatalog inserts the full fixed catalog if and only if the table is
// empty. A second call is a complete no-op.
func (service *AchievementService) SeedCatalog() error {
	count, err := service.store.Count()
	if err != nil {
		return fmt.Errorf("count achievements: %w", err)
	}
	if count > 0 {
		return nil
	}
	return service.store.CreateBatch(models.DefaultAchievementCatalog())
}

func (service *AchievementService) ListAll() ([]models.Achievement, error) {
	return service.store.ListAll()
}

// EvaluateCategory evaluates every locked achievement of a threshold-based
// category against metric, unlocking all that qualify in one pass. Each
// unlock awards its own points; nothing is deduplicated or capped.
// CategorySpecial has no single metric and is evaluated by EvaluateSpecial.
func (service *AchievementService) EvaluateCategory(category models.AchievementCategory, metric int, now time.Time) ([]models.Achievement, error) {
	if category == models.CategorySpecial {
		return nil, fmt.Errorf("%w: special achievements need a day record", ErrUnknownCategory)
	}

	locked, err := service.store.ListLockedByCategory(category)
	if err != nil {
		return nil, err
	}

	unlockedNow := make([]models.Achievement, 0)
	for index := range locked {
		met, err := categoryThresholdMet(category, locked[index].TargetValue, metric)
		if err != nil {
			return unlockedNow, err
		}
		if !met {
			continue
		}
		if err := service.unlock(&locked[index], metric, now); err != nil {
			return unlockedNow, err
		}
		unlockedNow = append(unlockedNow, locked[index])
	}
	return unlockedNow, nil
}

// EvaluateSpecial checks the condition-based achievements against the
// day's record: a workout finished before 06:00 or after 22:00, and a day
// with training, diet and a weight measurement all logged.
func (service *AchievementService) EvaluateSpecial(record models.DailyRecord, now time.Time) ([]models.Achievement, error) {
	locked, err := service.store.ListLockedByCategory(models.CategorySpecial)
	if err != nil {
		return nil, err
	}

	unlockedNow := make([]models.Achievement, 0)
	for index := range locked {
		if !specialConditionMet(locked[index].ID, record) {
			continue
		}
		if err := service.unlock(&locked[index], 1, now); err != nil {
			return unlockedNow, err
		}
		unlockedNow = append(unlockedNow, locked[index])
	}
	return unlockedNow, nil
}

// UpdateProgress records partial progress on a locked achievement for
// display only. It never unlocks and never awards points.
func (service *AchievementService) UpdateProgress(achievementID string, value int) error {
	achievement, found, err := service.store.FindByID(achievementID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrUnknownAchievement, achievementID)
	}
	if achievement.Unlocked {
		return nil
	}
	achievement.CurrentValue = value
	return service.store.Save(&achievement)
}

func (service *AchievementService) unlock(achievement *models.Achievement, metric int, now time.Time) error {
	if achievement.Unlocked {
		return nil
	}

	unlockedAt := now
	achievement.Unlocked = true
	achievement.UnlockedAt = &unlockedAt
	achievement.CurrentValue = metric

	// Persisting the row and crediting the points happen in one store
	// transaction; the event goes out only after that succeeds.
	if err := service.store.UnlockAndAward(achievement); err != nil {
		return fmt.Errorf("unlock %s: %w", achievement.ID, err)
	}

	if service.bus != nil {
		service.bus.Publish(*achievement, now)
	}
	return nil
}

func categoryThresholdMet(category models.AchievementCategory, target int, metric int) (bool, error) {
	switch category {
	case models.CategoryWeekly:
		// Finishing week N is observable once the current week moved past N.
		return metric > target, nil
	case models.CategoryCheckin,
		models.CategoryTraining,
		models.CategoryWeightLoss,
		models.CategoryBodyFat,
		models.CategoryDiet,
		models.CategoryCalories,
		models.CategoryData:
		return metric >= target, nil
	case models.CategorySpecial:
		return false, nil
	}
	return false, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
}

func specialConditionMet(achievementID string, record models.DailyRecord) bool {
	switch achievementID {
	case models.AchievementEarlyBird:
		return record.TrainingMinutes > 0 &&
			record.TrainingCompletedAt != nil &&
			record.TrainingCompletedAt.Hour() < 6
	case models.AchievementNightOwl:
		return record.TrainingMinutes > 0 &&
			record.TrainingCompletedAt != nil &&
			record.TrainingCompletedAt.Hour() >= 22
	case models.AchievementPerfectionist:
		return record.TrainingMinutes > 0 && record.DietOK && record.Weight != nil
	}
	return false
}
