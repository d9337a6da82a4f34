package services

import (
	"time"
)

// Dashboard is everything the home screen needs for one day: the cached
// goals, the day's consumed totals, per-macro progress and the streak.
type Dashboard struct {
	Date     string             `json:"date"`
	Goals    map[string]int     `json:"goals"`
	Consumed DayMacros          `json:"consumed"`
	Progress map[string]float64 `json:"progress"`
	Streak   struct {
		Current int `json:"current_streak"`
		Longest int `json:"longest_streak"`
	} `json:"streak"`
}

func pct(consumed float64, goal int) float64 {
	if goal <= 0 {
		return 0
	}
	p := consumed / float64(goal)
	if p > 1 {
		return 1
	}
	return p
}

type DashboardService struct {
	meals *MealService
}

func NewDashboardService(meals *MealService) *DashboardService {
	return &DashboardService{meals: meals}
}

// ForDate assembles the dashboard for a UTC calendar day. An incomplete
// profile simply yields zero goals and zero progress; that state drives the
// client's onboarding prompt rather than an error.
func (s *DashboardService) ForDate(userID uint, date time.Time) (*Dashboard, error) {
	profile, err := GetProfile(userID)
	if err != nil {
		return nil, err
	}

	meals, err := s.meals.ListMealsForDate(userID, date)
	if err != nil {
		return nil, err
	}
	consumed := SumForDate(meals, date)

	streak, err := GetStreak(userID)
	if err != nil {
		return nil, err
	}

	out := &Dashboard{
		Date: dayStartUTC(date).Format("2006-01-02"),
		Goals: map[string]int{
			"calories": profile.DailyCalories,
			"carbs":    profile.CarbsGoal,
			"protein":  profile.ProteinGoal,
			"fat":      profile.FatGoal,
		},
		Consumed: consumed,
		Progress: map[string]float64{
			"calories": pct(consumed.Calories, profile.DailyCalories),
			"carbs":    pct(consumed.Carbs, profile.CarbsGoal),
			"protein":  pct(consumed.Protein, profile.ProteinGoal),
			"fat":      pct(consumed.Fat, profile.FatGoal),
		},
	}
	out.Streak.Current = streak.CurrentStreak
	out.Streak.Longest = streak.LongestStreak

	return out, nil
}
