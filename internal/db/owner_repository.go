package db

import (
	"github.com/ranli8/fit8/internal/models"
	"gorm.io/gorm"
)

type OwnerRepository struct {
	database *gorm.DB
}

func NewOwnerRepository(database *gorm.DB) *OwnerRepository {
	return &OwnerRepository{database: database}
}

func (repo *OwnerRepository) Count() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Owner{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *OwnerRepository) First() (models.Owner, bool, error) {
	owner := models.Owner{}
	result := repo.database.Order("id ASC").Limit(1).Find(&owner)
	if result.Error != nil {
		return models.Owner{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Owner{}, false, nil
	}
	return owner, true, nil
}

func (repo *OwnerRepository) Create(owner *models.Owner) error {
	return repo.database.Create(owner).Error
}

func (repo *OwnerRepository) Save(owner *models.Owner) error {
	return repo.database.Save(owner).Error
}
