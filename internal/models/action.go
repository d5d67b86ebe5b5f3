package models

import (
	"encoding/json"
	"time"
)

type ActionKind string

const (
	ActionQuizAnswer      ActionKind = "quiz_answer"
	ActionLectureComplete ActionKind = "lecture_complete"
	ActionFavoriteAdd     ActionKind = "favorite_add"
	ActionFavoriteRemove  ActionKind = "favorite_remove"
)

// OfflineAction is a user mutation recorded while the remote authority
// was unreachable. It stays queued until a confirmed remote success.
type OfflineAction struct {
	ID         string          `json:"id"`
	Kind       ActionKind      `json:"kind"`
	Payload    json.RawMessage `json:"payload"`
	EnqueuedAt time.Time       `json:"enqueued_at"`
	Attempts   int             `json:"attempts"`
}

type QuizAnswerPayload struct {
	UserID         string `json:"user_id"`
	QuizID         string `json:"quiz_id"`
	SelectedAnswer int    `json:"selected_answer"`
	TimeSpent      int    `json:"time_spent,omitempty"`
}

type LectureCompletePayload struct {
	UserID    string `json:"user_id"`
	LectureID string `json:"lecture_id"`
}

type FavoritePayload struct {
	UserID      string `json:"user_id"`
	ContentID   string `json:"content_id"`
	ContentType string `json:"content_type"`
}

type QuizAnswerResult struct {
	IsCorrect     bool   `json:"is_correct"`
	CorrectAnswer int    `json:"correct_answer"`
	Explanation   string `json:"explanation"`
	XPEarned      int    `json:"xp_earned"`
	Pending       bool   `json:"pending,omitempty"`
	ActionID      string `json:"action_id,omitempty"`
}

type LectureCompleteResult struct {
	XPEarned int `json:"xp_earned"`
}
