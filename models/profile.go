package models

import (
	"gorm.io/gorm"
)

// Profile holds the biometric snapshot collected at onboarding plus the
// goal numbers cached from the last recomputation. The cached goals are
// refreshed on every profile write, never edited directly.
type Profile struct {
	gorm.Model
	UserID   uint   `gorm:"uniqueIndex;not null"`
	Gender   string // "male" | "female" | "other"
	Age      int
	Weight   float64 // kg
	Height   float64 // cm
	Activity string  // sedentary | light | moderate | active | very_active
	GoalType string  // maintain | cut | bulk

	DailyCalories int
	CarbsGoal     int
	ProteinGoal   int
	FatGoal       int
}
