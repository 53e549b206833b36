package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/ranli8/fit8/internal/services"
)

type mealPayload struct {
	MealType     string  `json:"meal_type"`
	Name         string  `json:"name"`
	Calories     int     `json:"calories"`
	ProteinGrams float64 `json:"protein_grams"`
	CarbsGrams   float64 `json:"carbs_grams"`
	FatGrams     float64 `json:"fat_grams"`
}

func (handler *Handler) GetMeals(c *fiber.Ctx) error {
	day, err := handler.parseDateParam(c, "date")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	meals, err := handler.mealService.FetchMealsForDay(day)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load meals failed")
	}
	return c.JSON(fiber.Map{"meals": meals})
}

func (handler *Handler) AddMeal(c *fiber.Ctx) error {
	day, err := handler.parseDateParam(c, "date")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	payload := mealPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	input := services.MealInput{
		MealType:     payload.MealType,
		Name:         payload.Name,
		Calories:     payload.Calories,
		ProteinGrams: payload.ProteinGrams,
		CarbsGrams:   payload.CarbsGrams,
		FatGrams:     payload.FatGrams,
	}
	if message := validateMealInput(input); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	meal, err := handler.mealService.AddMeal(day, input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMealType) || errors.Is(err, services.ErrEmptyMealName) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "save meal failed")
	}
	return c.Status(fiber.StatusCreated).JSON(meal)
}

func (handler *Handler) DeleteMeal(c *fiber.Ctx) error {
	mealID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid meal id")
	}
	if err := handler.mealService.DeleteMeal(uint(mealID)); err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			return apiError(c, fiber.StatusNotFound, "meal not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "delete meal failed")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) GetNutritionSummary(c *fiber.Ctx) error {
	day, err := handler.parseDateParam(c, "date")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	summary, err := handler.mealService.NutritionForDay(day)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "build nutrition summary failed")
	}
	return c.JSON(summary)
}
