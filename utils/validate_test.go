package utils

import (
	"testing"

	"github.com/yusuf1for1pc-sudo/NutriTrackai/models"

	"github.com/stretchr/testify/assert"
)

func validMeal() models.Meal {
	return models.Meal{
		Name:     "Chicken salad",
		Calories: 420,
		Carbs:    20,
		Protein:  35,
		Fat:      22,
	}
}

func TestValidateMealOK(t *testing.T) {
	assert.Empty(t, ValidateMeal(validMeal()))
}

func TestValidateMealCalorieBounds(t *testing.T) {
	m := validMeal()

	m.Calories = 0
	assert.Contains(t, ValidateMeal(m), "Calories must be between 1 and 2000")

	// 2000 is inclusive, 2001 is not
	m.Calories = 2000
	m.Carbs, m.Protein, m.Fat = 0, 0, 0
	assert.Empty(t, ValidateMeal(m))

	m.Calories = 2001
	assert.Contains(t, ValidateMeal(m), "Calories must be between 1 and 2000")
}

func TestValidateMealMacroBounds(t *testing.T) {
	m := validMeal()
	m.Carbs = 301
	assert.Contains(t, ValidateMeal(m), "Carbs must be between 0 and 300g")

	m = validMeal()
	m.Protein = -1
	assert.Contains(t, ValidateMeal(m), "Protein must be between 0 and 150g")

	m = validMeal()
	m.Fat = 151
	assert.Contains(t, ValidateMeal(m), "Fat must be between 0 and 150g")
}

func TestValidateMealNameRequired(t *testing.T) {
	m := validMeal()
	m.Name = "   "
	assert.Contains(t, ValidateMeal(m), "Meal name is required")
}

func TestValidateMealCollectsAllErrors(t *testing.T) {
	m := models.Meal{Name: "", Calories: 0, Carbs: -5, Protein: 200, Fat: -2}
	assert.Len(t, ValidateMeal(m), 5)
}

func TestValidateMealMacroMismatchDoesNotBlock(t *testing.T) {
	// 900 kcal claimed vs 4*10+4*10+9*10 = 170 from macros: way past the
	// 25% tolerance, but still only a warning.
	m := models.Meal{Name: "Mystery plate", Calories: 900, Carbs: 10, Protein: 10, Fat: 10}
	assert.Empty(t, ValidateMeal(m))
}
