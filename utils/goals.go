package utils

import (
	"math"
)

// Daily targets derived from a profile. All values are rounded whole numbers;
// the macro grams are each rounded independently, so 4c+4p+9f will usually
// not land exactly on Calories.
type Goals struct {
	Calories int `json:"calories"`
	Carbs    int `json:"carbs"`
	Protein  int `json:"protein"`
	Fat      int `json:"fat"`
}

type GoalInput struct {
	Gender   string
	Age      int
	Weight   float64 // kg
	Height   float64 // cm
	Activity string
	GoalType string
}

var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// Legacy goal-type labels from the old settings screen, mapped onto the
// canonical maintain/cut/bulk enum.
var goalTypeAliases = map[string]string{
	"balanced":    "maintain",
	"fat_loss":    "cut",
	"weight_loss": "cut",
	"muscle_gain": "bulk",
	"weight_gain": "bulk",
}

// CanonicalGoalType collapses the legacy vocabulary to maintain/cut/bulk.
// Anything unrecognized falls back to maintain (no calorie adjustment).
func CanonicalGoalType(goalType string) string {
	switch goalType {
	case "maintain", "cut", "bulk":
		return goalType
	}
	if mapped, ok := goalTypeAliases[goalType]; ok {
		return mapped
	}
	return "maintain"
}

// CalculateGoals derives daily calorie and macro targets via Mifflin-St Jeor.
// A profile missing weight, height, age or activity returns all zeros — the
// "not onboarded yet" signal, not an error.
func CalculateGoals(in GoalInput) Goals {
	if in.Weight <= 0 || in.Height <= 0 || in.Age <= 0 || in.Activity == "" {
		return Goals{}
	}

	bmr := 10*in.Weight + 6.25*in.Height - 5*float64(in.Age) - 161
	if in.Gender == "male" {
		bmr = 10*in.Weight + 6.25*in.Height - 5*float64(in.Age) + 5
	}

	factor, ok := activityMultipliers[in.Activity]
	if !ok {
		factor = 1.2
	}

	calories := bmr * factor
	switch CanonicalGoalType(in.GoalType) {
	case "cut":
		calories -= 500
	case "bulk":
		calories += 500
	}

	// 40% carbs, 30% protein, 30% fat at 4/4/9 kcal per gram
	return Goals{
		Calories: int(math.Round(calories)),
		Carbs:    int(math.Round(calories * 0.40 / 4)),
		Protein:  int(math.Round(calories * 0.30 / 4)),
		Fat:      int(math.Round(calories * 0.30 / 9)),
	}
}
