package services

import (
	"errors"
	"strings"
	"time"

	"github.com/ranli8/fit8/internal/models"
)

var (
	ErrInvalidMealType = errors.New("invalid meal type")
	ErrEmptyMealName   = errors.New("meal name is required")
	ErrMealNotFound    = errors.New("meal not found")
)

type MealStore interface {
	ListByDayRange(dayStart time.Time, dayEnd time.Time) ([]models.MealRecord, error)
	Create(meal *models.MealRecord) error
	DeleteByID(mealID uint) (bool, error)
}

type MealInput struct {
	MealType     string
	Name         string
	Calories     int
	ProteinGrams float64
	CarbsGrams   float64
	FatGrams     float64
}

type MealService struct {
	meals    MealStore
	location *time.Location
}

func NewMealService(meals MealStore, location *time.Location) *MealService {
	if location == nil {
		location = time.UTC
	}
	return &MealService{meals: meals, location: location}
}

func (service *MealService) AddMeal(day time.Time, payload MealInput) (models.MealRecord, error) {
	mealType := strings.TrimSpace(strings.ToLower(payload.MealType))
	if !models.IsValidMealType(mealType) {
		return models.MealRecord{}, ErrInvalidMealType
	}
	name := strings.TrimSpace(payload.Name)
	if name == "" {
		return models.MealRecord{}, ErrEmptyMealName
	}

	dayStart, _ := DayRange(day, service.location)
	meal := models.MealRecord{
		Date:         dayStart,
		MealType:     mealType,
		Name:         name,
		Calories:     payload.Calories,
		ProteinGrams: payload.ProteinGrams,
		CarbsGrams:   payload.CarbsGrams,
		FatGrams:     payload.FatGrams,
	}
	if err := service.meals.Create(&meal); err != nil {
		return models.MealRecord{}, err
	}
	return meal, nil
}

func (service *MealService) FetchMealsForDay(day time.Time) ([]models.MealRecord, error) {
	dayStart, dayEnd := DayRange(day, service.location)
	return service.meals.ListByDayRange(dayStart, dayEnd)
}

func (service *MealService) DeleteMeal(mealID uint) error {
	deleted, err := service.meals.DeleteByID(mealID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMealNotFound
	}
	return nil
}

// NutritionForDay aggregates the day's meals against the fixed targets.
func (service *MealService) NutritionForDay(day time.Time) (NutritionSummary, error) {
	meals, err := service.FetchMealsForDay(day)
	if err != nil {
		return NutritionSummary{}, err
	}
	return BuildNutritionSummary(meals), nil
}
