package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MealSourceAI     = "ai"
	MealSourceManual = "manual"
)

// Meal is one logged food intake event. LoggedAt is the time the food was
// eaten, not the row creation time.
type Meal struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null" json:"user_id"`
	Name     string    `gorm:"not null" json:"name"`
	Portion  string    `json:"portion,omitempty"`
	Brand    string    `json:"brand,omitempty"`
	Notes    string    `json:"notes,omitempty"`
	Calories float64   `json:"calories"`
	Carbs    float64   `json:"carbs"`
	Protein  float64   `json:"protein"`
	Fat      float64   `json:"fat"`
	Source   string    `gorm:"default:manual" json:"source"`
	PhotoURL string    `json:"photo_url,omitempty"`
	LoggedAt time.Time `gorm:"index;not null" json:"logged_at"`
}
