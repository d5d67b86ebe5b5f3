package models

import "time"

const xpPerLevel = 100

type UserStats struct {
	UserID            string    `json:"user_id"`
	TotalXP           int       `json:"total_xp"`
	Level             int       `json:"level"`
	QuizzesCompleted  int       `json:"quizzes_completed"`
	LecturesCompleted int       `json:"lectures_completed"`
	CurrentStreak     int       `json:"current_streak"`
	LongestStreak     int       `json:"longest_streak"`
	LastActivityDate  time.Time `json:"last_activity_date"`
}

// LevelForXP derives the level from cumulative XP: 100 XP per level,
// starting at level 1, no cap.
func LevelForXP(totalXP int) int {
	return totalXP/xpPerLevel + 1
}

// NewUserStats returns the lazily-created zero record for a user.
func NewUserStats(userID string) UserStats {
	return UserStats{
		UserID: userID,
		Level:  LevelForXP(0),
	}
}

type SyncStatus struct {
	IsSyncing  bool       `json:"is_syncing"`
	IsOnline   bool       `json:"is_online"`
	LastSyncAt *time.Time `json:"last_sync_at,omitempty"`
}

type SyncResult struct {
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Processed  int       `json:"processed"`
	Synced     int       `json:"synced"`
	Failed     int       `json:"failed"`
}
