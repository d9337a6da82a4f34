package services

import (
	"time"

	"github.com/yusuf1for1pc-sudo/NutriTrackai/models"
)

// DayMacros is the derived per-day aggregate shown on the dashboard. Not
// persisted; recomputed from the meal list on demand.
type DayMacros struct {
	Calories  float64 `json:"calories"`
	Carbs     float64 `json:"carbs"`
	Protein   float64 `json:"protein"`
	Fat       float64 `json:"fat"`
	MealCount int     `json:"meal_count"`
}

// Day boundaries are UTC everywhere: the app stores timestamps in UTC and
// slices days on UTC midnight, so a meal at 23:59:59.999Z still belongs to
// that date.
func dayStartUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func dayEndUTC(t time.Time) time.Time {
	return dayStartUTC(t).Add(24*time.Hour - time.Nanosecond)
}

func sameUTCDate(a, b time.Time) bool {
	return dayStartUTC(a).Equal(dayStartUTC(b))
}

// SumForDate folds the meals logged on the given UTC calendar day into a
// DayMacros. Both day endpoints are inclusive. Zero meals → all zeros.
func SumForDate(meals []models.Meal, date time.Time) DayMacros {
	start, end := dayStartUTC(date), dayEndUTC(date)

	var out DayMacros
	for _, m := range meals {
		at := m.LoggedAt.UTC()
		if at.Before(start) || at.After(end) {
			continue
		}
		out.Calories += m.Calories
		out.Carbs += m.Carbs
		out.Protein += m.Protein
		out.Fat += m.Fat
		out.MealCount++
	}
	return out
}
