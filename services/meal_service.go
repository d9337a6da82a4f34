package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/yusuf1for1pc-sudo/NutriTrackai/config"
	"github.com/yusuf1for1pc-sudo/NutriTrackai/models"
	"github.com/yusuf1for1pc-sudo/NutriTrackai/utils"
)

type MealService struct {
	hub  *RealtimeHub
	push *PushService
}

func NewMealService(hub *RealtimeHub, push *PushService) *MealService {
	return &MealService{hub: hub, push: push}
}

type MealInput struct {
	Name     string    `json:"name" binding:"required"`
	Portion  string    `json:"portion"`
	Brand    string    `json:"brand"`
	Notes    string    `json:"notes"`
	Calories float64   `json:"calories"`
	Carbs    float64   `json:"carbs"`
	Protein  float64   `json:"protein"`
	Fat      float64   `json:"fat"`
	Source   string    `json:"source"`
	PhotoURL string    `json:"photo_url"`
	LoggedAt time.Time `json:"logged_at"`
}

// ValidationError carries the full advisory error list back to the handler.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Errors, "; ")
}

// AddMeal validates and stores a meal, then advances the streak and fans the
// new day totals out to connected clients. Validation only blocks manual
// entries; AI estimates are stored as-is.
func (s *MealService) AddMeal(userID uint, in MealInput) (*models.Meal, error) {
	meal := models.Meal{
		UserID:   userID,
		Name:     in.Name,
		Portion:  in.Portion,
		Brand:    in.Brand,
		Notes:    in.Notes,
		Calories: in.Calories,
		Carbs:    in.Carbs,
		Protein:  in.Protein,
		Fat:      in.Fat,
		Source:   in.Source,
		PhotoURL: in.PhotoURL,
		LoggedAt: in.LoggedAt,
	}
	if meal.Source == "" {
		meal.Source = models.MealSourceManual
	}
	if meal.LoggedAt.IsZero() {
		meal.LoggedAt = time.Now().UTC()
	}

	if errs := utils.ValidateMeal(meal); len(errs) > 0 && meal.Source != models.MealSourceAI {
		return nil, &ValidationError{Errors: errs}
	}

	if err := config.DB.Create(&meal).Error; err != nil {
		return nil, err
	}

	s.afterMealWrite(userID, meal.LoggedAt, true)
	return &meal, nil
}

func (s *MealService) GetMeal(userID, mealID uint) (*models.Meal, error) {
	var meal models.Meal
	err := config.DB.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

func (s *MealService) ListMeals(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := config.DB.
		Where("user_id = ?", userID).
		Order("logged_at DESC").
		Find(&meals).Error
	return meals, err
}

// ListMealsForDate returns the meals logged on one UTC calendar day,
// inclusive of both endpoints.
func (s *MealService) ListMealsForDate(userID uint, date time.Time) ([]models.Meal, error) {
	start := dayStartUTC(date)
	end := dayEndUTC(date)

	var meals []models.Meal
	err := config.DB.
		Where("user_id = ? AND logged_at >= ? AND logged_at <= ?", userID, start, end).
		Order("logged_at DESC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) UpdateMeal(userID, mealID uint, in MealInput) (*models.Meal, error) {
	var meal models.Meal
	if err := config.DB.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error; err != nil {
		return nil, err
	}

	meal.Name = in.Name
	meal.Portion = in.Portion
	meal.Brand = in.Brand
	meal.Notes = in.Notes
	meal.Calories = in.Calories
	meal.Carbs = in.Carbs
	meal.Protein = in.Protein
	meal.Fat = in.Fat
	if !in.LoggedAt.IsZero() {
		meal.LoggedAt = in.LoggedAt
	}

	if errs := utils.ValidateMeal(meal); len(errs) > 0 && meal.Source != models.MealSourceAI {
		return nil, &ValidationError{Errors: errs}
	}

	if err := config.DB.Save(&meal).Error; err != nil {
		return nil, err
	}

	s.afterMealWrite(userID, meal.LoggedAt, false)
	return &meal, nil
}

func (s *MealService) DeleteMeal(userID, mealID uint) error {
	res := config.DB.
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.Meal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("meal not found")
	}

	s.afterMealWrite(userID, time.Now().UTC(), false)
	return nil
}

// afterMealWrite recomputes the affected day, broadcasts it, and (on create)
// advances the streak, pushing a congratulation at milestones.
func (s *MealService) afterMealWrite(userID uint, day time.Time, created bool) {
	meals, err := s.ListMealsForDate(userID, day)
	if err == nil && s.hub != nil {
		s.hub.BroadcastProgress(userID, map[string]any{
			"kind":   "progress.updated",
			"date":   dayStartUTC(day).Format("2006-01-02"),
			"totals": SumForDate(meals, day),
		})
	}

	if !created {
		return
	}

	streak, changed, err := RecordLoggingDay(userID, day)
	if err != nil || !changed {
		return
	}
	if s.push != nil && IsStreakMilestone(streak.CurrentStreak) {
		title := fmt.Sprintf("%d-day streak!", streak.CurrentStreak)
		body := fmt.Sprintf("You've logged meals %d days in a row. Keep it going!", streak.CurrentStreak)
		s.push.PushToUser(userID, title, body, map[string]string{
			"type":   "streak.milestone",
			"streak": fmt.Sprintf("%d", streak.CurrentStreak),
		})
	}
}
