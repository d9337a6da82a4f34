package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateGoalsWorkedExample(t *testing.T) {
	// 70kg/175cm/25y male, moderate activity, maintain:
	// BMR 1673.75, TDEE 2594.3125
	got := CalculateGoals(GoalInput{
		Gender:   "male",
		Weight:   70,
		Height:   175,
		Age:      25,
		Activity: "moderate",
		GoalType: "maintain",
	})

	assert.Equal(t, 2594, got.Calories)
	assert.Equal(t, 259, got.Carbs)
	assert.Equal(t, 195, got.Protein)
	assert.Equal(t, 86, got.Fat)
}

func TestCalculateGoalsDeterministic(t *testing.T) {
	in := GoalInput{Gender: "female", Weight: 60, Height: 165, Age: 30, Activity: "light", GoalType: "cut"}
	first := CalculateGoals(in)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, CalculateGoals(in))
	}
}

func TestCalculateGoalsIncompleteProfile(t *testing.T) {
	complete := GoalInput{Gender: "male", Weight: 70, Height: 175, Age: 25, Activity: "moderate"}

	cases := map[string]func(GoalInput) GoalInput{
		"no weight":   func(in GoalInput) GoalInput { in.Weight = 0; return in },
		"no height":   func(in GoalInput) GoalInput { in.Height = 0; return in },
		"no age":      func(in GoalInput) GoalInput { in.Age = 0; return in },
		"no activity": func(in GoalInput) GoalInput { in.Activity = ""; return in },
	}
	for name, strip := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, Goals{}, CalculateGoals(strip(complete)))
		})
	}

	// Gender missing is not disqualifying, it just takes the non-male branch
	noGender := complete
	noGender.Gender = ""
	assert.NotEqual(t, Goals{}, CalculateGoals(noGender))
}

func TestCalculateGoalsCutAndBulkOffsets(t *testing.T) {
	base := GoalInput{Gender: "male", Weight: 80, Height: 180, Age: 35, Activity: "active"}

	maintain := CalculateGoals(base)

	cut := base
	cut.GoalType = "cut"
	assert.Equal(t, maintain.Calories-500, CalculateGoals(cut).Calories)

	bulk := base
	bulk.GoalType = "bulk"
	assert.Equal(t, maintain.Calories+500, CalculateGoals(bulk).Calories)
}

func TestCalculateGoalsGenderBranches(t *testing.T) {
	in := GoalInput{Weight: 70, Height: 175, Age: 25, Activity: "sedentary"}

	in.Gender = "female"
	female := CalculateGoals(in)
	in.Gender = "other"
	other := CalculateGoals(in)
	in.Gender = "unspecified"
	unknown := CalculateGoals(in)

	// Everything except "male" uses the -161 constant
	assert.Equal(t, female, other)
	assert.Equal(t, female, unknown)

	in.Gender = "male"
	assert.Greater(t, CalculateGoals(in).Calories, female.Calories)
}

func TestCalculateGoalsUnknownActivityDefaultsToSedentary(t *testing.T) {
	in := GoalInput{Gender: "male", Weight: 70, Height: 175, Age: 25}

	in.Activity = "sedentary"
	sedentary := CalculateGoals(in)
	in.Activity = "couch_potato"
	assert.Equal(t, sedentary, CalculateGoals(in))
}

func TestCanonicalGoalType(t *testing.T) {
	cases := map[string]string{
		"maintain":    "maintain",
		"cut":         "cut",
		"bulk":        "bulk",
		"balanced":    "maintain",
		"fat_loss":    "cut",
		"weight_loss": "cut",
		"muscle_gain": "bulk",
		"weight_gain": "bulk",
		"":            "maintain",
		"keto":        "maintain",
	}
	for in, want := range cases {
		assert.Equal(t, want, CanonicalGoalType(in), "input %q", in)
	}
}
