package models

import "time"

type ConditionKind string

const (
	ConditionQuizzesCompleted  ConditionKind = "quizzes_completed"
	ConditionLecturesCompleted ConditionKind = "lectures_completed"
	ConditionLevelReached      ConditionKind = "level_reached"
	ConditionXPEarned          ConditionKind = "xp_earned"
	ConditionStreak            ConditionKind = "streak"
)

// BadgeCondition is a typed unlock predicate over UserStats.
type BadgeCondition struct {
	Kind      ConditionKind `json:"kind"`
	Threshold int           `json:"threshold"`
}

// Met reports whether the predicate holds for the given stats.
func (c BadgeCondition) Met(s UserStats) bool {
	switch c.Kind {
	case ConditionQuizzesCompleted:
		return s.QuizzesCompleted >= c.Threshold
	case ConditionLecturesCompleted:
		return s.LecturesCompleted >= c.Threshold
	case ConditionLevelReached:
		return s.Level >= c.Threshold
	case ConditionXPEarned:
		return s.TotalXP >= c.Threshold
	case ConditionStreak:
		return s.CurrentStreak >= c.Threshold
	}
	return false
}

type Badge struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Icon        string         `json:"icon"`
	Condition   BadgeCondition `json:"condition"`
	XPReward    int            `json:"xp_reward"`
}

// UserBadge records a single unlock. At most one per (user, badge) pair.
type UserBadge struct {
	UserID     string    `json:"user_id"`
	BadgeID    string    `json:"badge_id"`
	UnlockedAt time.Time `json:"unlocked_at"`
}

// DefaultBadges is the static badge catalog shipped with the app.
func DefaultBadges() []Badge {
	return []Badge{
		{ID: "first-steps", Name: "First Steps", Description: "Complete your first quiz", Icon: "Trophy",
			Condition: BadgeCondition{Kind: ConditionQuizzesCompleted, Threshold: 1}, XPReward: 10},
		{ID: "quiz-master", Name: "Quiz Master", Description: "Complete 10 quizzes", Icon: "Award",
			Condition: BadgeCondition{Kind: ConditionQuizzesCompleted, Threshold: 10}, XPReward: 50},
		{ID: "scholar", Name: "Scholar", Description: "Complete 25 quizzes", Icon: "GraduationCap",
			Condition: BadgeCondition{Kind: ConditionQuizzesCompleted, Threshold: 25}, XPReward: 100},
		{ID: "story-listener", Name: "Story Listener", Description: "Listen to your first story", Icon: "Headphones",
			Condition: BadgeCondition{Kind: ConditionLecturesCompleted, Threshold: 1}, XPReward: 10},
		{ID: "story-enthusiast", Name: "Story Enthusiast", Description: "Listen to 5 stories", Icon: "BookOpen",
			Condition: BadgeCondition{Kind: ConditionLecturesCompleted, Threshold: 5}, XPReward: 30},
		{ID: "level-up", Name: "Level Up", Description: "Reach level 5", Icon: "Star",
			Condition: BadgeCondition{Kind: ConditionLevelReached, Threshold: 5}, XPReward: 25},
		{ID: "dedicated-learner", Name: "Dedicated Learner", Description: "Reach level 10", Icon: "Crown",
			Condition: BadgeCondition{Kind: ConditionLevelReached, Threshold: 10}, XPReward: 75},
		{ID: "xp-collector", Name: "XP Collector", Description: "Earn 500 XP", Icon: "Zap",
			Condition: BadgeCondition{Kind: ConditionXPEarned, Threshold: 500}, XPReward: 50},
		{ID: "consistent", Name: "Consistent", Description: "Maintain a 3-day streak", Icon: "Flame",
			Condition: BadgeCondition{Kind: ConditionStreak, Threshold: 3}, XPReward: 30},
		{ID: "dedicated", Name: "Dedicated", Description: "Maintain a 7-day streak", Icon: "Target",
			Condition: BadgeCondition{Kind: ConditionStreak, Threshold: 7}, XPReward: 75},
	}
}
