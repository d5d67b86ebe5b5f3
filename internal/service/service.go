package service

import (
	"context"
	"fmt"

	"github.com/Devdiop221/deenquest/internal/config"
	"github.com/Devdiop221/deenquest/internal/models"
	"github.com/Devdiop221/deenquest/internal/storage/cache"
	"go.uber.org/zap"
)

type ContentAPII interface {
	Categories(ctx context.Context) ([]models.Category, error)
	Quizzes(ctx context.Context) ([]models.Quiz, error)
	Lectures(ctx context.Context) ([]models.Lecture, error)
}

type ActionAPII interface {
	SubmitQuizAnswer(ctx context.Context, p models.QuizAnswerPayload) (models.QuizAnswerResult, error)
	CompleteLecture(ctx context.Context, p models.LectureCompletePayload) (models.LectureCompleteResult, error)
	AddFavorite(ctx context.Context, p models.FavoritePayload) error
	RemoveFavorite(ctx context.Context, p models.FavoritePayload) error
}

type StatsAPII interface {
	PushUserStats(ctx context.Context, stats models.UserStats) error
	AwardBadge(ctx context.Context, ub models.UserBadge) error
	FetchUserStats(ctx context.Context, userID string) (models.UserStats, error)
	FetchUserBadges(ctx context.Context, userID string) ([]models.UserBadge, error)
}

type APII interface {
	ContentAPII
	ActionAPII
	StatsAPII
}

type QueueI interface {
	Enqueue(ctx context.Context, kind models.ActionKind, payload any) (string, error)
	PeekAll(ctx context.Context) ([]models.OfflineAction, error)
	Remove(ctx context.Context, actionID string) error
	MarkAttempt(ctx context.Context, actionID string) error
	Clear(ctx context.Context) error
}

type MonitorI interface {
	CurrentlyOnline() bool
	Subscribe(fn func(online bool))
}

type StorageI interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	DeleteAll(ctx context.Context, keys []string) error
}

type ResultCacheI interface {
	SetResult(actionID string, result models.QuizAnswerResult)
	Result(actionID string) (models.QuizAnswerResult, bool)
	DeleteResult(actionID string)
}

type Service struct {
	*ContentS
	*ActionS
	*StatsS
	*SyncS

	queue   QueueI
	storage StorageI
}

func InitServices(api APII, storage StorageI, q QueueI, monitor MonitorI, cfg config.SyncConfig, log *zap.Logger) *Service {
	results := cache.NewCache()

	return &Service{
		ContentS: NewContentService(api, storage, monitor, log),
		ActionS:  NewActionService(api, q, monitor, results, log),
		StatsS:   NewStatsService(api, storage, monitor, models.DefaultBadges(), log),
		SyncS:    NewSyncService(api, q, monitor, storage, results, cfg.ActionTimeout, log),
		queue:    q,
		storage:  storage,
	}
}

// Reset wipes everything the device holds for a user. Sign-out only.
func (s *Service) Reset(ctx context.Context, userID string) error {
	if err := s.queue.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear queue: %w", err)
	}

	keys := []string{
		keyCategories,
		keyQuizzes,
		keyLectures,
		lastSyncKey,
		statsKey(userID),
		badgesKey(userID),
	}
	if err := s.storage.DeleteAll(ctx, keys); err != nil {
		return fmt.Errorf("failed to clear stored data: %w", err)
	}

	return nil
}
