package service

import (
	"context"
	"fmt"

	"github.com/Devdiop221/deenquest/internal/models"
	"go.uber.org/zap"
)

const offlineExplanation = "Answer submitted offline. Results will be available when you reconnect."

// ActionS is the write path the UI talks to. Online writes go straight
// to the remote; an offline write, or an online write that fails, is
// accepted optimistically and queued for the next sync drain.
type ActionS struct {
	api     ActionAPII
	queue   QueueI
	monitor MonitorI
	results ResultCacheI
	log     *zap.Logger
}

func NewActionService(api ActionAPII, q QueueI, monitor MonitorI, results ResultCacheI, log *zap.Logger) *ActionS {
	return &ActionS{
		api:     api,
		queue:   q,
		monitor: monitor,
		results: results,
		log:     log,
	}
}

// SubmitAnswer returns the confirmed result when the remote is
// reachable, otherwise a provisional pending result whose true outcome
// becomes available through Result after a drain.
func (a *ActionS) SubmitAnswer(ctx context.Context, p models.QuizAnswerPayload) (models.QuizAnswerResult, error) {
	if a.monitor.CurrentlyOnline() {
		result, err := a.api.SubmitQuizAnswer(ctx, p)
		if err == nil {
			return result, nil
		}
		a.log.Warn("online quiz submission failed, queueing",
			zap.String("quiz_id", p.QuizID), zap.Error(err))
	}

	actionID, err := a.queue.Enqueue(ctx, models.ActionQuizAnswer, p)
	if err != nil {
		return models.QuizAnswerResult{}, fmt.Errorf("failed to queue quiz answer: %w", err)
	}

	result := models.QuizAnswerResult{
		Pending:     true,
		ActionID:    actionID,
		Explanation: offlineExplanation,
	}
	a.results.SetResult(actionID, result)

	return result, nil
}

// Result returns the outcome for a previously queued submission. Once
// the drain confirms it against the remote, Pending flips to false and
// the entry is evicted on this read so the cache only carries outcomes
// the UI has not seen yet.
func (a *ActionS) Result(actionID string) (models.QuizAnswerResult, bool) {
	result, ok := a.results.Result(actionID)
	if ok && !result.Pending {
		a.results.DeleteResult(actionID)
	}
	return result, ok
}

// CompleteLecture marks a lecture finished. The returned flag reports
// whether the write was queued instead of confirmed.
func (a *ActionS) CompleteLecture(ctx context.Context, p models.LectureCompletePayload) (models.LectureCompleteResult, bool, error) {
	if a.monitor.CurrentlyOnline() {
		result, err := a.api.CompleteLecture(ctx, p)
		if err == nil {
			return result, false, nil
		}
		a.log.Warn("online lecture completion failed, queueing",
			zap.String("lecture_id", p.LectureID), zap.Error(err))
	}

	if _, err := a.queue.Enqueue(ctx, models.ActionLectureComplete, p); err != nil {
		return models.LectureCompleteResult{}, false, fmt.Errorf("failed to queue lecture completion: %w", err)
	}
	return models.LectureCompleteResult{}, true, nil
}

// AddFavorite favorites a quiz or lecture, queueing when offline.
func (a *ActionS) AddFavorite(ctx context.Context, p models.FavoritePayload) (bool, error) {
	if a.monitor.CurrentlyOnline() {
		err := a.api.AddFavorite(ctx, p)
		if err == nil {
			return false, nil
		}
		a.log.Warn("online favorite add failed, queueing",
			zap.String("content_id", p.ContentID), zap.Error(err))
	}

	if _, err := a.queue.Enqueue(ctx, models.ActionFavoriteAdd, p); err != nil {
		return false, fmt.Errorf("failed to queue favorite add: %w", err)
	}
	return true, nil
}

// RemoveFavorite unfavorites a quiz or lecture, queueing when offline.
// An add/remove pair queued offline is not cancelled client-side; both
// replay in order.
func (a *ActionS) RemoveFavorite(ctx context.Context, p models.FavoritePayload) (bool, error) {
	if a.monitor.CurrentlyOnline() {
		err := a.api.RemoveFavorite(ctx, p)
		if err == nil {
			return false, nil
		}
		a.log.Warn("online favorite remove failed, queueing",
			zap.String("content_id", p.ContentID), zap.Error(err))
	}

	if _, err := a.queue.Enqueue(ctx, models.ActionFavoriteRemove, p); err != nil {
		return false, fmt.Errorf("failed to queue favorite remove: %w", err)
	}
	return true, nil
}
