package services

import (
	"errors"
	"time"

	"github.com/yusuf1for1pc-sudo/NutriTrackai/config"
	"github.com/yusuf1for1pc-sudo/NutriTrackai/models"

	"gorm.io/gorm"
)

// Streak milestones worth a push notification.
var streakMilestones = map[int]bool{7: true, 30: true, 100: true}

// advanceStreak applies one logging event dated `today` to a streak record.
// Idempotent within a day: the second meal logged on the same date changes
// nothing. A gap of two or more days resets current to 1 and keeps longest.
func advanceStreak(s models.Streak, today time.Time) (models.Streak, bool) {
	today = dayStartUTC(today)

	if s.CurrentStreak == 0 {
		s.CurrentStreak = 1
		s.LongestStreak = 1
		s.LastLogged = today
		return s, true
	}

	last := dayStartUTC(s.LastLogged)
	switch {
	case last.Equal(today):
		return s, false
	case last.Equal(today.AddDate(0, 0, -1)):
		s.CurrentStreak++
		if s.CurrentStreak > s.LongestStreak {
			s.LongestStreak = s.CurrentStreak
		}
	default:
		s.CurrentStreak = 1
	}
	s.LastLogged = today
	return s, true
}

// RecordLoggingDay runs once per meal creation and persists the advanced
// streak. Returns the up-to-date record plus whether anything changed.
func RecordLoggingDay(userID uint, at time.Time) (*models.Streak, bool, error) {
	var streak models.Streak
	err := config.DB.Where("user_id = ?", userID).First(&streak).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	streak.UserID = userID

	updated, changed := advanceStreak(streak, at)
	if !changed {
		return &streak, false, nil
	}

	if err := config.DB.Save(&updated).Error; err != nil {
		return nil, false, err
	}
	return &updated, true, nil
}

func GetStreak(userID uint) (*models.Streak, error) {
	var streak models.Streak
	err := config.DB.Where("user_id = ?", userID).First(&streak).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.Streak{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &streak, nil
}

func IsStreakMilestone(days int) bool {
	return streakMilestones[days]
}
