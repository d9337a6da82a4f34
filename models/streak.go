package models

import (
	"time"

	"gorm.io/gorm"
)

// Streak tracks consecutive logging days per user. LastLogged is a UTC
// calendar date (midnight). LongestStreak never decreases.
type Streak struct {
	gorm.Model
	UserID        uint `gorm:"uniqueIndex;not null"`
	CurrentStreak int
	LongestStreak int
	LastLogged    time.Time
}
