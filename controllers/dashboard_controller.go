package controllers

import (
	"net/http"
	"time"

	"github.com/yusuf1for1pc-sudo/NutriTrackai/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Svc *services.DashboardService
}

func NewDashboardController(svc *services.DashboardService) *DashboardController {
	return &DashboardController{Svc: svc}
}

// GetDashboard returns goals, consumed totals, progress and streak for one
// UTC day, defaulting to today.
func (h *DashboardController) GetDashboard(c *gin.Context) {
	userID := c.GetUint("userID")

	date := time.Now().UTC()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	dashboard, err := h.Svc.ForDate(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

func GetStreak(c *gin.Context) {
	userID := c.GetUint("userID")

	streak, err := services.GetStreak(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"current_streak": streak.CurrentStreak,
		"longest_streak": streak.LongestStreak,
	})
}
