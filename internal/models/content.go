package models

import "time"

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Quiz struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correct_answer_index"`
	Explanation        string   `json:"explanation"`
	Difficulty         string   `json:"difficulty"`
	CategoryID         string   `json:"category_id"`
	XPReward           int      `json:"xp_reward"`
}

type Lecture struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	AudioURL   string `json:"audio_url"`
	Duration   int    `json:"duration"`
	CategoryID string `json:"category_id"`
	XPReward   int    `json:"xp_reward"`
}

// CategorySnapshot and friends are the wholesale-replaced cache slices.
// A fetch either fully replaces one of them or leaves it untouched.
type CategorySnapshot struct {
	Items      []Category `json:"items"`
	CapturedAt time.Time  `json:"captured_at"`
}

type QuizSnapshot struct {
	Items      []Quiz    `json:"items"`
	CapturedAt time.Time `json:"captured_at"`
}

type LectureSnapshot struct {
	Items      []Lecture `json:"items"`
	CapturedAt time.Time `json:"captured_at"`
}
