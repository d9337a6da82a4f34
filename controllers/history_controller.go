package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/yusuf1for1pc-sudo/NutriTrackai/services"

	"github.com/gin-gonic/gin"
)

type HistoryController struct {
	Svc *services.MealService
}

func NewHistoryController(svc *services.MealService) *HistoryController {
	return &HistoryController{Svc: svc}
}

// GetHistory serves the history view: the full meal list run through the
// search/date/macro filters (AND-composed) and paged 10 at a time.
func (h *HistoryController) GetHistory(c *gin.Context) {
	userID := c.GetUint("userID")

	filter := services.HistoryFilter{
		Query: c.Query("q"),
		Macro: c.DefaultQuery("macro", "all"),
	}
	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		filter.Date = &date
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	meals, err := h.Svc.ListMeals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, services.Paginate(services.FilterMeals(meals, filter), page))
}
