package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForXP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		totalXP int
		want    int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{199, 2},
		{250, 3},
		{1000, 11},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForXP(tt.totalXP), "xp=%d", tt.totalXP)
	}
}

func TestNewUserStats(t *testing.T) {
	t.Parallel()

	stats := NewUserStats("u1")
	assert.Equal(t, "u1", stats.UserID)
	assert.Equal(t, 1, stats.Level)
	assert.Zero(t, stats.TotalXP)
	assert.True(t, stats.LastActivityDate.IsZero())
}
