package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/yusuf1for1pc-sudo/NutriTrackai/models"

	"github.com/stretchr/testify/assert"
)

func historyFixture() []models.Meal {
	return []models.Meal{
		{Name: "Greek Salad", Calories: 250, Carbs: 15, Protein: 8, Fat: 18,
			LoggedAt: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)},
		{Name: "Chicken salad wrap", Calories: 450, Carbs: 40, Protein: 32, Fat: 14,
			LoggedAt: time.Date(2025, 3, 11, 13, 0, 0, 0, time.UTC)},
		{Name: "Protein shake", Calories: 180, Carbs: 8, Protein: 30, Fat: 3,
			LoggedAt: time.Date(2025, 3, 11, 16, 0, 0, 0, time.UTC)},
		{Name: "Pizza", Calories: 850, Carbs: 90, Protein: 35, Fat: 38,
			LoggedAt: time.Date(2025, 3, 12, 19, 0, 0, 0, time.UTC)},
	}
}

func TestFilterMealsSearchCaseInsensitive(t *testing.T) {
	got := FilterMeals(historyFixture(), HistoryFilter{Query: "SALAD"})
	assert.Len(t, got, 2)
	assert.Equal(t, "Greek Salad", got[0].Name)
	assert.Equal(t, "Chicken salad wrap", got[1].Name)
}

func TestFilterMealsByDate(t *testing.T) {
	d := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	got := FilterMeals(historyFixture(), HistoryFilter{Date: &d})
	assert.Len(t, got, 2)
}

func TestFilterMealsMacroPredicates(t *testing.T) {
	meals := historyFixture()

	assert.Len(t, FilterMeals(meals, HistoryFilter{Macro: "high_protein"}), 3) // protein >= 20
	assert.Len(t, FilterMeals(meals, HistoryFilter{Macro: "low_carb"}), 2)     // carbs <= 30
	assert.Len(t, FilterMeals(meals, HistoryFilter{Macro: "high_fat"}), 2)     // fat >= 15
	assert.Len(t, FilterMeals(meals, HistoryFilter{Macro: "low_calorie"}), 2)  // calories <= 300
	assert.Len(t, FilterMeals(meals, HistoryFilter{Macro: "all"}), 4)
}

func TestFilterMealsComposeWithAND(t *testing.T) {
	// A salad exists, but not on the 12th: AND semantics means empty result
	d := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	got := FilterMeals(historyFixture(), HistoryFilter{Query: "salad", Date: &d})
	assert.Empty(t, got)

	// Same query on the 11th plus a macro filter narrows to the wrap
	d = time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	got = FilterMeals(historyFixture(), HistoryFilter{Query: "salad", Date: &d, Macro: "high_protein"})
	assert.Len(t, got, 1)
	assert.Equal(t, "Chicken salad wrap", got[0].Name)
}

func TestPaginate(t *testing.T) {
	meals := make([]models.Meal, 23)
	for i := range meals {
		meals[i].Name = fmt.Sprintf("meal %d", i)
	}

	page1 := Paginate(meals, 1)
	assert.Len(t, page1.Meals, 10)
	assert.Equal(t, 3, page1.TotalPages)
	assert.Equal(t, 23, page1.TotalItems)
	assert.Equal(t, "meal 0", page1.Meals[0].Name)

	// last page is partial
	page3 := Paginate(meals, 3)
	assert.Len(t, page3.Meals, 3)
	assert.Equal(t, "meal 20", page3.Meals[0].Name)

	// past the end comes back empty, not an error
	assert.Empty(t, Paginate(meals, 4).Meals)

	// page < 1 clamps to the first page
	assert.Equal(t, page1.Meals, Paginate(meals, 0).Meals)
}

func TestPaginateEmptyList(t *testing.T) {
	page := Paginate(nil, 1)
	assert.Empty(t, page.Meals)
	assert.Equal(t, 0, page.TotalPages)
	assert.Equal(t, 0, page.TotalItems)
}
