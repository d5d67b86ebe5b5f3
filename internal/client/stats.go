package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Devdiop221/deenquest/internal/models"
)

// StatsAPI mirrors locally advanced stats and badge unlocks to the
// remote authority, which owns the canonical copies once synced.
type StatsAPI struct {
	baseURL string
	client  *http.Client
}

func NewStatsAPI(baseURL string, client *http.Client) *StatsAPI {
	return &StatsAPI{baseURL: baseURL, client: client}
}

func (s *StatsAPI) PushUserStats(ctx context.Context, stats models.UserStats) error {
	url := s.baseURL + "/users/" + stats.UserID + "/stats"
	if err := postJSON(ctx, s.client, url, stats, nil); err != nil {
		return fmt.Errorf("failed to push user stats: %w", err)
	}
	return nil
}

func (s *StatsAPI) AwardBadge(ctx context.Context, ub models.UserBadge) error {
	url := s.baseURL + "/users/" + ub.UserID + "/badges"
	if err := postJSON(ctx, s.client, url, ub, nil); err != nil {
		return fmt.Errorf("failed to award badge: %w", err)
	}
	return nil
}

func (s *StatsAPI) FetchUserStats(ctx context.Context, userID string) (models.UserStats, error) {
	var stats models.UserStats
	url := s.baseURL + "/users/" + userID + "/stats"
	if err := getJSON(ctx, s.client, url, &stats); err != nil {
		return models.UserStats{}, fmt.Errorf("failed to fetch user stats: %w", err)
	}
	return stats, nil
}

func (s *StatsAPI) FetchUserBadges(ctx context.Context, userID string) ([]models.UserBadge, error) {
	var badges []models.UserBadge
	url := s.baseURL + "/users/" + userID + "/badges"
	if err := getJSON(ctx, s.client, url, &badges); err != nil {
		return nil, fmt.Errorf("failed to fetch user badges: %w", err)
	}
	return badges, nil
}
