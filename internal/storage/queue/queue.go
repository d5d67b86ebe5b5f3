// Package queue is the persisted offline action log: an append-only FIFO
// of user mutations awaiting submission to the remote authority.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Devdiop221/deenquest/internal/models"
	"github.com/Devdiop221/deenquest/internal/storage/store"
	"github.com/google/uuid"
)

const queueKey = "offline_queue"

// KV is the slice of the durable store the queue needs.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Queue keeps enqueue order. There is no reordering, coalescing, or
// deduplication: an add/remove pair for the same item both stay queued
// and replay in order.
type Queue struct {
	mu sync.Mutex
	kv KV
}

func New(kv KV) *Queue {
	return &Queue{kv: kv}
}

// Enqueue appends an action to the tail of the log and returns its id.
// It never touches the network.
func (q *Queue) Enqueue(ctx context.Context, kind models.ActionKind, payload any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	actions, err := q.load(ctx)
	if err != nil {
		return "", err
	}

	action := models.OfflineAction{
		ID:         uuid.New().String(),
		Kind:       kind,
		Payload:    data,
		EnqueuedAt: time.Now(),
	}
	actions = append(actions, action)

	if err := q.persist(ctx, actions); err != nil {
		return "", err
	}

	return action.ID, nil
}

// PeekAll returns the queued actions oldest first, without removing them.
func (q *Queue) PeekAll(ctx context.Context) ([]models.OfflineAction, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	actions, err := q.load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.OfflineAction, len(actions))
	copy(out, actions)
	return out, nil
}

// Remove deletes the action with the given id. Removing an id that is
// not queued is a no-op.
func (q *Queue) Remove(ctx context.Context, actionID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	actions, err := q.load(ctx)
	if err != nil {
		return err
	}

	kept := actions[:0]
	for _, a := range actions {
		if a.ID != actionID {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(actions) {
		return nil
	}

	return q.persist(ctx, kept)
}

// MarkAttempt increments the delivery attempt counter of a queued action.
// Unknown ids are ignored.
func (q *Queue) MarkAttempt(ctx context.Context, actionID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	actions, err := q.load(ctx)
	if err != nil {
		return err
	}

	for i := range actions {
		if actions[i].ID == actionID {
			actions[i].Attempts++
			return q.persist(ctx, actions)
		}
	}
	return nil
}

// Clear empties the log. Only used on explicit data reset (sign-out).
func (q *Queue) Clear(ctx context.Context) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.persist(ctx, []models.OfflineAction{})
}

func (q *Queue) load(ctx context.Context) ([]models.OfflineAction, error) {
	data, err := q.kv.Get(ctx, queueKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load queue: %w", err)
	}

	var actions []models.OfflineAction
	if err := json.Unmarshal(data, &actions); err != nil {
		return nil, fmt.Errorf("failed to decode queue: %w", err)
	}
	return actions, nil
}

func (q *Queue) persist(ctx context.Context, actions []models.OfflineAction) error {
	data, err := json.Marshal(actions)
	if err != nil {
		return fmt.Errorf("failed to encode queue: %w", err)
	}
	if err := q.kv.Set(ctx, queueKey, data); err != nil {
		return fmt.Errorf("failed to persist queue: %w", err)
	}
	return nil
}
