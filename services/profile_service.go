package services

import (
	"errors"

	"github.com/yusuf1for1pc-sudo/NutriTrackai/config"
	"github.com/yusuf1for1pc-sudo/NutriTrackai/models"
	"github.com/yusuf1for1pc-sudo/NutriTrackai/utils"

	"gorm.io/gorm"
)

type ProfileInput struct {
	Gender   string  `json:"gender"`
	Age      int     `json:"age"`
	Weight   float64 `json:"weight"`
	Height   float64 `json:"height"`
	Activity string  `json:"activity"`
	GoalType string  `json:"goal_type"`
}

func GetProfile(userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := config.DB.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Not onboarded yet: zero-value profile, zero goals
		return &models.Profile{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// SaveProfile upserts the biometric fields and refreshes the cached goal
// numbers in the same write. Goals are never edited directly; they always
// come out of the calculator.
func SaveProfile(userID uint, in ProfileInput) (*models.Profile, error) {
	var profile models.Profile
	err := config.DB.Where("user_id = ?", userID).First(&profile).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile.UserID = userID
	if in.Gender != "" {
		profile.Gender = in.Gender
	}
	if in.Age > 0 {
		profile.Age = in.Age
	}
	if in.Weight > 0 {
		profile.Weight = in.Weight
	}
	if in.Height > 0 {
		profile.Height = in.Height
	}
	if in.Activity != "" {
		profile.Activity = in.Activity
	}
	if in.GoalType != "" {
		profile.GoalType = utils.CanonicalGoalType(in.GoalType)
	}

	goals := utils.CalculateGoals(utils.GoalInput{
		Gender:   profile.Gender,
		Age:      profile.Age,
		Weight:   profile.Weight,
		Height:   profile.Height,
		Activity: profile.Activity,
		GoalType: profile.GoalType,
	})
	profile.DailyCalories = goals.Calories
	profile.CarbsGoal = goals.Carbs
	profile.ProteinGoal = goals.Protein
	profile.FatGoal = goals.Fat

	if err := config.DB.Save(&profile).Error; err != nil {
		return nil, err
	}

	// A populated profile marks onboarding as done.
	if goals.Calories > 0 {
		config.DB.Model(&models.User{}).
			Where("id = ?", userID).
			Update("onboarded", true)
	}

	return &profile, nil
}

// ProfileSummary is the profile response shape: stored fields plus derived
// BMI, omitted when biometrics are missing.
func ProfileSummary(profile *models.Profile) map[string]any {
	out := map[string]any{
		"gender":         profile.Gender,
		"age":            profile.Age,
		"weight":         profile.Weight,
		"height":         profile.Height,
		"activity":       profile.Activity,
		"goal_type":      profile.GoalType,
		"daily_calories": profile.DailyCalories,
		"carbs_goal":     profile.CarbsGoal,
		"protein_goal":   profile.ProteinGoal,
		"fat_goal":       profile.FatGoal,
	}

	if bmi, category, err := utils.BMI(profile.Weight, profile.Height); err == nil {
		out["bmi"] = bmi
		out["bmi_category"] = category
	}
	return out
}
