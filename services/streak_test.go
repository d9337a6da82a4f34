package services

import (
	"testing"
	"time"

	"github.com/yusuf1for1pc-sudo/NutriTrackai/models"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAdvanceStreakFirstLog(t *testing.T) {
	s, changed := advanceStreak(models.Streak{}, date(2025, 3, 10))

	assert.True(t, changed)
	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, 1, s.LongestStreak)
	assert.Equal(t, date(2025, 3, 10), s.LastLogged)
}

func TestAdvanceStreakSameDayIdempotent(t *testing.T) {
	s, _ := advanceStreak(models.Streak{}, date(2025, 3, 10))

	// Second meal on the same day changes nothing
	again, changed := advanceStreak(s, date(2025, 3, 10))
	assert.False(t, changed)
	assert.Equal(t, s, again)

	// Even later in the same UTC day
	_, changed = advanceStreak(s, time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC))
	assert.False(t, changed)
}

func TestAdvanceStreakConsecutiveDays(t *testing.T) {
	s, _ := advanceStreak(models.Streak{}, date(2025, 3, 10))
	s, changed := advanceStreak(s, date(2025, 3, 11))

	assert.True(t, changed)
	assert.Equal(t, 2, s.CurrentStreak)
	assert.Equal(t, 2, s.LongestStreak)
}

func TestAdvanceStreakGapResetsKeepsLongest(t *testing.T) {
	s := models.Streak{CurrentStreak: 5, LongestStreak: 8, LastLogged: date(2025, 3, 10)}

	// Skipped the 11th, logging on the 12th
	s, changed := advanceStreak(s, date(2025, 3, 12))
	assert.True(t, changed)
	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, 8, s.LongestStreak)
	assert.Equal(t, date(2025, 3, 12), s.LastLogged)
}

func TestAdvanceStreakLongestOnlyGrows(t *testing.T) {
	s := models.Streak{CurrentStreak: 3, LongestStreak: 3, LastLogged: date(2025, 3, 10)}

	s, _ = advanceStreak(s, date(2025, 3, 11))
	assert.Equal(t, 4, s.CurrentStreak)
	assert.Equal(t, 4, s.LongestStreak)

	s, _ = advanceStreak(s, date(2025, 3, 20))
	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, 4, s.LongestStreak)
}

func TestIsStreakMilestone(t *testing.T) {
	assert.True(t, IsStreakMilestone(7))
	assert.True(t, IsStreakMilestone(30))
	assert.True(t, IsStreakMilestone(100))
	assert.False(t, IsStreakMilestone(6))
	assert.False(t, IsStreakMilestone(0))
}
