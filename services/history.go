package services

import (
	"strings"
	"time"

	"github.com/yusuf1for1pc-sudo/NutriTrackai/models"
)

const historyPageSize = 10

// HistoryFilter narrows a meal list for the history view. Zero-value fields
// are skipped; set fields compose with AND.
type HistoryFilter struct {
	Query string     // case-insensitive substring on the meal name
	Date  *time.Time // exact UTC calendar date
	Macro string     // all | high_protein | low_carb | high_fat | low_calorie
}

type HistoryPage struct {
	Meals      []models.Meal `json:"meals"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
	TotalItems int           `json:"total_items"`
}

func matchesMacro(m models.Meal, macro string) bool {
	switch macro {
	case "high_protein":
		return m.Protein >= 20
	case "low_carb":
		return m.Carbs <= 30
	case "high_fat":
		return m.Fat >= 15
	case "low_calorie":
		return m.Calories <= 300
	default:
		return true
	}
}

// FilterMeals applies the search, date and macro criteria in memory. The
// store hands the full list over; filtering stays client-side like the
// history screen it backs.
func FilterMeals(meals []models.Meal, f HistoryFilter) []models.Meal {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]models.Meal, 0, len(meals))
	for _, m := range meals {
		if query != "" && !strings.Contains(strings.ToLower(m.Name), query) {
			continue
		}
		if f.Date != nil && !sameUTCDate(m.LoggedAt, *f.Date) {
			continue
		}
		if f.Macro != "" && f.Macro != "all" && !matchesMacro(m, f.Macro) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Paginate slices a filtered list into 1-indexed pages of 10. Pages past the
// end come back empty rather than erroring.
func Paginate(meals []models.Meal, page int) HistoryPage {
	if page < 1 {
		page = 1
	}

	total := len(meals)
	totalPages := (total + historyPageSize - 1) / historyPageSize

	start := (page - 1) * historyPageSize
	if start > total {
		start = total
	}
	end := start + historyPageSize
	if end > total {
		end = total
	}

	return HistoryPage{
		Meals:      meals[start:end],
		Page:       page,
		TotalPages: totalPages,
		TotalItems: total,
	}
}
