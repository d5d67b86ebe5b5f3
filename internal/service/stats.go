package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Devdiop221/deenquest/internal/models"
	"github.com/Devdiop221/deenquest/internal/storage/store"
	"go.uber.org/zap"
)

func statsKey(userID string) string  { return "user_stats:" + userID }
func badgesKey(userID string) string { return "user_badges:" + userID }

// StatsS is the only writer of UserStats. Callers must serialize calls
// per user; with that, add-and-recompute needs no locking. The local
// record is advisory — the remote authority owns the canonical copy
// once synced, so pushes to it are best-effort.
type StatsS struct {
	api     StatsAPII
	storage StorageI
	monitor MonitorI
	badges  []models.Badge
	log     *zap.Logger
}

func NewStatsService(api StatsAPII, storage StorageI, monitor MonitorI, badges []models.Badge, log *zap.Logger) *StatsS {
	return &StatsS{
		api:     api,
		storage: storage,
		monitor: monitor,
		badges:  badges,
		log:     log,
	}
}

// RecordActivity applies one activity to the user's cumulative stats:
// XP, completion counters, derived level, streak, last-activity date.
// Storage failures propagate so the triggering user action can surface
// them — a silently lost XP award is a correctness bug.
func (s *StatsS) RecordActivity(ctx context.Context, userID string, xpGained int, quizCompleted, lectureCompleted bool) (models.UserStats, error) {
	if userID == "" {
		return models.UserStats{}, errors.New("user id is empty")
	}
	if xpGained < 0 {
		return models.UserStats{}, errors.New("xp gained must be non-negative")
	}

	stats, err := s.loadStats(ctx, userID)
	if err != nil {
		return models.UserStats{}, err
	}

	now := time.Now()

	stats.TotalXP += xpGained
	if quizCompleted {
		stats.QuizzesCompleted++
	}
	if lectureCompleted {
		stats.LecturesCompleted++
	}
	stats.Level = models.LevelForXP(stats.TotalXP)
	rollStreak(&stats, now)
	stats.LastActivityDate = now

	if err := s.persistStats(ctx, stats); err != nil {
		return models.UserStats{}, err
	}

	if s.monitor.CurrentlyOnline() {
		if err := s.api.PushUserStats(ctx, stats); err != nil {
			s.log.Warn("failed to push user stats", zap.String("user_id", userID), zap.Error(err))
		}
	}

	return stats, nil
}

// EvaluateBadges awards every badge whose condition now holds and was
// not unlocked before, and returns the newly unlocked ones. Calling it
// again with unchanged stats returns nothing: unlocked badges are
// excluded up front, which is what makes awarding idempotent.
func (s *StatsS) EvaluateBadges(ctx context.Context, userID string) ([]models.Badge, error) {
	if userID == "" {
		return nil, errors.New("user id is empty")
	}

	stats, err := s.loadStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	unlocked, err := s.loadBadges(ctx, userID)
	if err != nil {
		return nil, err
	}

	unlockedIDs := make(map[string]bool, len(unlocked))
	for _, ub := range unlocked {
		unlockedIDs[ub.BadgeID] = true
	}

	var newly []models.Badge
	for _, badge := range s.badges {
		if unlockedIDs[badge.ID] {
			continue
		}
		if !badge.Condition.Met(stats) {
			continue
		}

		unlocked = append(unlocked, models.UserBadge{
			UserID:     userID,
			BadgeID:    badge.ID,
			UnlockedAt: time.Now(),
		})
		if err := s.persistBadges(ctx, userID, unlocked); err != nil {
			return newly, err
		}

		if s.monitor.CurrentlyOnline() {
			if err := s.api.AwardBadge(ctx, unlocked[len(unlocked)-1]); err != nil {
				s.log.Warn("failed to push badge unlock",
					zap.String("user_id", userID), zap.String("badge_id", badge.ID), zap.Error(err))
			}
		}

		newly = append(newly, badge)
		s.log.Info("badge unlocked", zap.String("user_id", userID), zap.String("badge_id", badge.ID))
	}

	return newly, nil
}

// UserStats returns the user's stats. On first read the record is
// hydrated from the remote when online, so a reinstalled device picks
// up its history instead of starting over.
func (s *StatsS) UserStats(ctx context.Context, userID string) (models.UserStats, error) {
	if userID == "" {
		return models.UserStats{}, errors.New("user id is empty")
	}
	return s.loadStats(ctx, userID)
}

// Badges returns the user's unlocked badges.
func (s *StatsS) Badges(ctx context.Context, userID string) ([]models.UserBadge, error) {
	return s.loadBadges(ctx, userID)
}

func (s *StatsS) loadStats(ctx context.Context, userID string) (models.UserStats, error) {
	data, err := s.storage.Get(ctx, statsKey(userID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return s.hydrateStats(ctx, userID), nil
		}
		return models.UserStats{}, fmt.Errorf("failed to load user stats: %w", err)
	}

	var stats models.UserStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return models.UserStats{}, fmt.Errorf("failed to decode user stats: %w", err)
	}
	return stats, nil
}

// hydrateStats seeds the local stats record for a user the device has
// never seen: from the remote canonical copy when reachable, otherwise
// a fresh zero record.
func (s *StatsS) hydrateStats(ctx context.Context, userID string) models.UserStats {
	stats := models.NewUserStats(userID)

	if s.monitor.CurrentlyOnline() {
		remote, err := s.api.FetchUserStats(ctx, userID)
		if err != nil {
			s.log.Info("no remote stats to hydrate from", zap.String("user_id", userID), zap.Error(err))
		} else {
			stats = remote
		}
	}

	if err := s.persistStats(ctx, stats); err != nil {
		s.log.Warn("failed to persist hydrated stats", zap.String("user_id", userID), zap.Error(err))
	}
	return stats
}

func (s *StatsS) persistStats(ctx context.Context, stats models.UserStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to encode user stats: %w", err)
	}
	if err := s.storage.Set(ctx, statsKey(stats.UserID), data); err != nil {
		return fmt.Errorf("failed to persist user stats: %w", err)
	}
	return nil
}

func (s *StatsS) loadBadges(ctx context.Context, userID string) ([]models.UserBadge, error) {
	data, err := s.storage.Get(ctx, badgesKey(userID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return s.hydrateBadges(ctx, userID), nil
		}
		return nil, fmt.Errorf("failed to load user badges: %w", err)
	}

	var badges []models.UserBadge
	if err := json.Unmarshal(data, &badges); err != nil {
		return nil, fmt.Errorf("failed to decode user badges: %w", err)
	}
	return badges, nil
}

// hydrateBadges mirrors hydrateStats for the unlocked badge list. The
// empty list is persisted too, so a known-empty set is not refetched.
func (s *StatsS) hydrateBadges(ctx context.Context, userID string) []models.UserBadge {
	var badges []models.UserBadge

	if s.monitor.CurrentlyOnline() {
		remote, err := s.api.FetchUserBadges(ctx, userID)
		if err != nil {
			s.log.Info("no remote badges to hydrate from", zap.String("user_id", userID), zap.Error(err))
		} else {
			badges = remote
		}
	}

	if err := s.persistBadges(ctx, userID, badges); err != nil {
		s.log.Warn("failed to persist hydrated badges", zap.String("user_id", userID), zap.Error(err))
	}
	return badges
}

func (s *StatsS) persistBadges(ctx context.Context, userID string, badges []models.UserBadge) error {
	data, err := json.Marshal(badges)
	if err != nil {
		return fmt.Errorf("failed to encode user badges: %w", err)
	}
	if err := s.storage.Set(ctx, badgesKey(userID), data); err != nil {
		return fmt.Errorf("failed to persist user badges: %w", err)
	}
	return nil
}

// rollStreak advances the daily streak: same calendar day keeps it,
// the next day extends it, any gap resets it to 1.
func rollStreak(stats *models.UserStats, now time.Time) {
	today := dateOf(now)

	switch {
	case stats.LastActivityDate.IsZero():
		stats.CurrentStreak = 1
	case dateOf(stats.LastActivityDate).Equal(today):
		// second activity today, streak unchanged
	case dateOf(stats.LastActivityDate).AddDate(0, 0, 1).Equal(today):
		stats.CurrentStreak++
	default:
		stats.CurrentStreak = 1
	}

	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
