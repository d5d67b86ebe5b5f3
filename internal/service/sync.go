package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Devdiop221/deenquest/internal/models"
	"github.com/Devdiop221/deenquest/internal/storage/store"
	"go.uber.org/zap"
)

var ErrSyncInProgress = errors.New("sync already in progress")

const lastSyncKey = "last_sync_at"

// stuckAttempts is the attempt count past which a queued action is
// logged as likely stuck (it is still retried, never dropped).
const stuckAttempts = 5

// SyncS drains the offline action queue against the remote authority.
// At most one drain runs at a time; a request arriving mid-drain is
// rejected, not queued. Delivery is at-least-once.
type SyncS struct {
	api           ActionAPII
	queue         QueueI
	monitor       MonitorI
	storage       StorageI
	results       ResultCacheI
	actionTimeout time.Duration
	log           *zap.Logger

	syncing atomic.Bool

	mu         sync.Mutex
	lastSyncAt *time.Time
}

func NewSyncService(api ActionAPII, q QueueI, monitor MonitorI, storage StorageI, results ResultCacheI, actionTimeout time.Duration, log *zap.Logger) *SyncS {
	s := &SyncS{
		api:           api,
		queue:         q,
		monitor:       monitor,
		storage:       storage,
		results:       results,
		actionTimeout: actionTimeout,
		log:           log,
	}

	s.restoreLastSync()

	monitor.Subscribe(func(online bool) {
		if !online {
			return
		}
		go func() {
			if _, err := s.Sync(context.Background()); err != nil && !errors.Is(err, ErrSyncInProgress) {
				s.log.Warn("auto sync failed", zap.Error(err))
			}
		}()
	})

	return s
}

// Sync runs one full drain over a snapshot of the queue. A failed action
// stays queued in its original position and does not abort the drain.
func (s *SyncS) Sync(ctx context.Context) (models.SyncResult, error) {
	if !s.syncing.CompareAndSwap(false, true) {
		return models.SyncResult{}, ErrSyncInProgress
	}
	defer s.syncing.Store(false)

	result := models.SyncResult{StartedAt: time.Now()}

	actions, err := s.queue.PeekAll(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to snapshot queue: %w", err)
	}

	for _, action := range actions {
		result.Processed++

		if err := s.submit(ctx, action); err != nil {
			result.Failed++
			s.logFailure(action, err)
			if err := s.queue.MarkAttempt(ctx, action.ID); err != nil {
				s.log.Warn("failed to record attempt", zap.String("action_id", action.ID), zap.Error(err))
			}
			continue
		}

		if err := s.queue.Remove(ctx, action.ID); err != nil {
			// the action was delivered; if removal fails it will be
			// delivered again and the remote must absorb the duplicate
			s.log.Warn("failed to remove synced action", zap.String("action_id", action.ID), zap.Error(err))
			continue
		}

		result.Synced++
	}

	s.recordLastSync(ctx, time.Now())
	result.FinishedAt = time.Now()

	s.log.Info("sync finished",
		zap.Int("processed", result.Processed),
		zap.Int("synced", result.Synced),
		zap.Int("failed", result.Failed))

	return result, nil
}

// Status reports sync state for user-facing feedback.
func (s *SyncS) Status() models.SyncStatus {
	s.mu.Lock()
	last := s.lastSyncAt
	s.mu.Unlock()

	return models.SyncStatus{
		IsSyncing:  s.syncing.Load(),
		IsOnline:   s.monitor.CurrentlyOnline(),
		LastSyncAt: last,
	}
}

func (s *SyncS) submit(ctx context.Context, action models.OfflineAction) error {
	ctx, cancel := context.WithTimeout(ctx, s.actionTimeout)
	defer cancel()

	switch action.Kind {
	case models.ActionQuizAnswer:
		var p models.QuizAnswerPayload
		if err := json.Unmarshal(action.Payload, &p); err != nil {
			return fmt.Errorf("failed to decode payload: %w", err)
		}
		result, err := s.api.SubmitQuizAnswer(ctx, p)
		if err != nil {
			return err
		}
		// resolve the provisional outcome the UI handed out offline
		s.results.SetResult(action.ID, result)
		return nil

	case models.ActionLectureComplete:
		var p models.LectureCompletePayload
		if err := json.Unmarshal(action.Payload, &p); err != nil {
			return fmt.Errorf("failed to decode payload: %w", err)
		}
		_, err := s.api.CompleteLecture(ctx, p)
		return err

	case models.ActionFavoriteAdd:
		var p models.FavoritePayload
		if err := json.Unmarshal(action.Payload, &p); err != nil {
			return fmt.Errorf("failed to decode payload: %w", err)
		}
		return s.api.AddFavorite(ctx, p)

	case models.ActionFavoriteRemove:
		var p models.FavoritePayload
		if err := json.Unmarshal(action.Payload, &p); err != nil {
			return fmt.Errorf("failed to decode payload: %w", err)
		}
		return s.api.RemoveFavorite(ctx, p)
	}

	return fmt.Errorf("unknown action kind %q", action.Kind)
}

func (s *SyncS) logFailure(action models.OfflineAction, err error) {
	fields := []zap.Field{
		zap.String("action_id", action.ID),
		zap.String("kind", string(action.Kind)),
		zap.Int("attempts", action.Attempts+1),
		zap.Error(err),
	}
	if action.Attempts+1 >= stuckAttempts {
		s.log.Warn("action keeps failing, possibly rejected by remote", fields...)
		return
	}
	s.log.Info("action submission failed, kept queued", fields...)
}

func (s *SyncS) recordLastSync(ctx context.Context, at time.Time) {
	s.mu.Lock()
	s.lastSyncAt = &at
	s.mu.Unlock()

	data, err := json.Marshal(at)
	if err != nil {
		return
	}
	if err := s.storage.Set(ctx, lastSyncKey, data); err != nil {
		s.log.Warn("failed to persist last sync time", zap.Error(err))
	}
}

func (s *SyncS) restoreLastSync() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := s.storage.Get(ctx, lastSyncKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.log.Warn("failed to load last sync time", zap.Error(err))
		}
		return
	}

	var at time.Time
	if err := json.Unmarshal(data, &at); err != nil {
		s.log.Warn("failed to decode last sync time", zap.Error(err))
		return
	}

	s.mu.Lock()
	s.lastSyncAt = &at
	s.mu.Unlock()
}
