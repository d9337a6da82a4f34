package services

import (
	"testing"
	"time"

	"github.com/yusuf1for1pc-sudo/NutriTrackai/models"

	"github.com/stretchr/testify/assert"
)

func mealAt(ts string, calories, carbs, protein, fat float64) models.Meal {
	at, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		panic(err)
	}
	return models.Meal{
		Name:     "test meal",
		Calories: calories,
		Carbs:    carbs,
		Protein:  protein,
		Fat:      fat,
		LoggedAt: at,
	}
}

func TestSumForDateEmpty(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, DayMacros{}, SumForDate(nil, day))
	assert.Equal(t, DayMacros{}, SumForDate([]models.Meal{}, day))
}

func TestSumForDateSumsTheDay(t *testing.T) {
	day := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	meals := []models.Meal{
		mealAt("2025-03-10T08:00:00Z", 400, 50, 20, 12),
		mealAt("2025-03-10T13:30:00Z", 650, 70, 35, 25),
		mealAt("2025-03-11T08:00:00Z", 500, 60, 25, 15), // next day, excluded
	}

	got := SumForDate(meals, day)
	assert.Equal(t, DayMacros{Calories: 1050, Carbs: 120, Protein: 55, Fat: 37, MealCount: 2}, got)
}

func TestSumForDateBoundariesInclusive(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	meals := []models.Meal{
		mealAt("2025-03-10T00:00:00.000Z", 100, 10, 5, 3),
		mealAt("2025-03-10T23:59:59.999Z", 200, 20, 10, 6),
		mealAt("2025-03-09T23:59:59.999Z", 999, 99, 99, 99), // day before
		mealAt("2025-03-11T00:00:00.000Z", 999, 99, 99, 99), // day after
	}

	got := SumForDate(meals, day)
	assert.Equal(t, 2, got.MealCount)
	assert.Equal(t, 300.0, got.Calories)
}

func TestSumForDateUsesUTCDay(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	// 2025-03-10T01:00+03:00 is 2025-03-09T22:00Z — previous UTC day
	offset := time.FixedZone("UTC+3", 3*60*60)
	meal := models.Meal{Calories: 100, LoggedAt: time.Date(2025, 3, 10, 1, 0, 0, 0, offset)}

	got := SumForDate([]models.Meal{meal}, day)
	assert.Equal(t, 0, got.MealCount)
}
