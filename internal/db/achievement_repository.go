package db

import (
	"github.com/ranli8/fit8/internal/models"
	"gorm.io/gorm"
)

type AchievementRepository struct {
	database *gorm.DB
}

func NewAchievementRepository(database *gorm.DB) *AchievementRepository {
	return &AchievementRepository{database: database}
}

func (repo *AchievementRepository) Count() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Achievement{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *AchievementRepository) CreateBatch(achievements []models.Achievement) error {
	if len(achievements) == 0 {
		return nil
	}
	return repo.database.Create(&achievements).Error
}

func (repo *AchievementRepository) ListAll() ([]models.Achievement, error) {
	achievements := make([]models.Achievement, 0)
	if err := repo.database.Order("category ASC, target_value ASC, id ASC").Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}

func (repo *AchievementRepository) ListLockedByCategory(category models.AchievementCategory) ([]models.Achievement, error) {
	achievements := make([]models.Achievement, 0)
	if err := repo.database.
		Where("category = ? AND unlocked = ?", category, false).
		Order("target_value ASC, id ASC").
		Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}

func (repo *AchievementRepository) FindByID(achievementID string) (models.Achievement, bool, error) {
	achievement := models.Achievement{}
	result := repo.database.Where("id = ?", achievementID).Limit(1).Find(&achievement)
	if result.Error != nil {
		return models.Achievement{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Achievement{}, false, nil
	}
	return achievement, true, nil
}

func (repo *AchievementRepository) Save(achievement *models.Achievement) error {
	return repo.database.Save(achievement).Error
}

// UnlockAndAward persists the unlocked achievement and credits its points
// to the stats row in one transaction, so a failure leaves neither applied.
func (repo *AchievementRepository) UnlockAndAward(achievement *models.Achievement) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(achievement).Error; err != nil {
			return err
		}
		return tx.Model(&models.UserStats{}).
			Where("id = ?", models.UserStatsID).
			UpdateColumn("total_points", gorm.Expr("total_points + ?", achievement.Points)).
			Error
	})
}

func (repo *AchievementRepository) DeleteAll() error {
	return repo.database.Where("1 = 1").Delete(&models.Achievement{}).Error
}
