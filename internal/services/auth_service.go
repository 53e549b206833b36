package services

import (
	"errors"

	"github.com/ranli8/fit8/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrOwnerExists  = errors.New("owner already set up")
	ErrOwnerMissing = errors.New("owner not set up")
	ErrInvalidPIN   = errors.New("pin must be 4 to 8 digits")
	ErrWrongPIN     = errors.New("wrong pin")
)

type OwnerStore interface {
	Count() (int64, error)
	First() (models.Owner, bool, error)
	Create(owner *models.Owner) error
	Save(owner *models.Owner) error
}

// AuthService manages the single device owner and its PIN.
type AuthService struct {
	owners OwnerStore
}

func NewAuthService(owners OwnerStore) *AuthService {
	return &AuthService{owners: owners}
}

func (service *AuthService) RequiresSetup() (bool, error) {
	count, err := service.owners.Count()
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func (service *AuthService) SetupPIN(pin string) (models.Owner, error) {
	if !IsValidPIN(pin) {
		return models.Owner{}, ErrInvalidPIN
	}

	count, err := service.owners.Count()
	if err != nil {
		return models.Owner{}, err
	}
	if count > 0 {
		return models.Owner{}, ErrOwnerExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return models.Owner{}, err
	}

	owner := models.Owner{PINHash: string(hash)}
	if err := service.owners.Create(&owner); err != nil {
		return models.Owner{}, err
	}
	return owner, nil
}

func (service *AuthService) VerifyPIN(pin string) (models.Owner, error) {
	owner, found, err := service.owners.First()
	if err != nil {
		return models.Owner{}, err
	}
	if !found {
		return models.Owner{}, ErrOwnerMissing
	}
	if bcrypt.CompareHashAndPassword([]byte(owner.PINHash), []byte(pin)) != nil {
		return models.Owner{}, ErrWrongPIN
	}
	return owner, nil
}

func (service *AuthService) ChangePIN(currentPIN string, newPIN string) error {
	if !IsValidPIN(newPIN) {
		return ErrInvalidPIN
	}

	owner, err := service.VerifyPIN(currentPIN)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPIN), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	owner.PINHash = string(hash)
	return service.owners.Save(&owner)
}

func IsValidPIN(pin string) bool {
	if len(pin) < 4 || len(pin) > 8 {
		return false
	}
	for _, char := range pin {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}
