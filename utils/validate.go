package utils

import (
	"log"
	"math"
	"strings"

	"github.com/yusuf1for1pc-sudo/NutriTrackai/models"
)

// ValidateMeal returns every blocking problem with a candidate meal, not just
// the first one. An empty slice means the meal is saveable. Manual entries
// block on these; AI-estimated ones are allowed through by the caller.
func ValidateMeal(meal models.Meal) []string {
	var errs []string

	if strings.TrimSpace(meal.Name) == "" {
		errs = append(errs, "Meal name is required")
	}
	if meal.Calories <= 0 || meal.Calories > 2000 {
		errs = append(errs, "Calories must be between 1 and 2000")
	}
	if meal.Carbs < 0 || meal.Carbs > 300 {
		errs = append(errs, "Carbs must be between 0 and 300g")
	}
	if meal.Protein < 0 || meal.Protein > 150 {
		errs = append(errs, "Protein must be between 0 and 150g")
	}
	if meal.Fat < 0 || meal.Fat > 150 {
		errs = append(errs, "Fat must be between 0 and 150g")
	}

	// Consistency check is advisory only: photo estimates routinely disagree
	// with 4/4/9 arithmetic, so a mismatch never blocks the save.
	if meal.Calories > 0 {
		macroCalories := meal.Carbs*4 + meal.Protein*4 + meal.Fat*9
		if math.Abs(meal.Calories-macroCalories) > 0.25*meal.Calories {
			log.Printf("calorie-macro mismatch for %q: %.0f kcal vs %.0f from macros",
				meal.Name, meal.Calories, macroCalories)
		}
	}

	return errs
}
