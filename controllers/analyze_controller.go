package controllers

import (
	"net/http"

	"github.com/yusuf1for1pc-sudo/NutriTrackai/services"
	"github.com/yusuf1for1pc-sudo/NutriTrackai/utils"

	"github.com/gin-gonic/gin"
)

type AnalyzeController struct {
	Vision    *services.VisionService
	Nutrition *services.NutritionService
}

func NewAnalyzeController(vision *services.VisionService, nutrition *services.NutritionService) *AnalyzeController {
	return &AnalyzeController{Vision: vision, Nutrition: nutrition}
}

type AnalyzeRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// AnalyzePhoto stores the photo, detects what's in it and returns a meal
// candidate with source "ai". Nothing is saved to the meal log here — the
// client reviews the estimate and posts it to /meals if the user accepts.
func (h *AnalyzeController) AnalyzePhoto(c *gin.Context) {
	userID := c.GetUint("userID")

	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	photoURL, err := utils.UploadMealPhoto(req.ImageBase64, userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	labels, err := h.Vision.DetectFoodLabels(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "photo_url": photoURL})
		return
	}

	estimate, err := h.Nutrition.EstimateFromLabels(labels)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "photo_url": photoURL})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"estimate":  estimate,
		"labels":    labels,
		"photo_url": photoURL,
	})
}
