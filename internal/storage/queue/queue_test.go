package queue

import (
	"context"
	"sync"
	"testing"

	"github.com/Devdiop221/deenquest/internal/models"
	"github.com/Devdiop221/deenquest/internal/storage/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string][]byte)}
}

func (m *memKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.data[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return value, nil
}

func (m *memKV) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func TestQueue_Enqueue(t *testing.T) {
	t.Parallel()

	q := New(newMemKV())
	ctx := context.Background()

	id1, err := q.Enqueue(ctx, models.ActionQuizAnswer, models.QuizAnswerPayload{UserID: "u1", QuizID: "q1", SelectedAnswer: 2})
	require.NoError(t, err)
	require.NotEmpty(t, id1)

	id2, err := q.Enqueue(ctx, models.ActionFavoriteAdd, models.FavoritePayload{UserID: "u1", ContentID: "q7", ContentType: "quiz"})
	require.NoError(t, err)
	require.NotEmpty(t, id2)
	require.NotEqual(t, id1, id2)

	actions, err := q.PeekAll(ctx)
	require.NoError(t, err)
	require.Len(t, actions, 2)

	// oldest first
	assert.Equal(t, id1, actions[0].ID)
	assert.Equal(t, models.ActionQuizAnswer, actions[0].Kind)
	assert.Equal(t, id2, actions[1].ID)
	assert.Equal(t, models.ActionFavoriteAdd, actions[1].Kind)
	assert.False(t, actions[0].EnqueuedAt.IsZero())
	assert.Zero(t, actions[0].Attempts)
}

func TestQueue_Enqueue_survivesReload(t *testing.T) {
	t.Parallel()

	kv := newMemKV()
	ctx := context.Background()

	q := New(kv)
	id, err := q.Enqueue(ctx, models.ActionLectureComplete, models.LectureCompletePayload{UserID: "u1", LectureID: "l1"})
	require.NoError(t, err)

	// a fresh queue over the same store sees the same log
	reopened := New(kv)
	actions, err := reopened.PeekAll(ctx)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, id, actions[0].ID)
}

func TestQueue_PeekAll_empty(t *testing.T) {
	t.Parallel()

	q := New(newMemKV())

	actions, err := q.PeekAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, actions)
}

func TestQueue_Remove(t *testing.T) {
	t.Parallel()

	q := New(newMemKV())
	ctx := context.Background()

	id1, err := q.Enqueue(ctx, models.ActionFavoriteAdd, models.FavoritePayload{ContentID: "c1"})
	require.NoError(t, err)
	id2, err := q.Enqueue(ctx, models.ActionFavoriteRemove, models.FavoritePayload{ContentID: "c2"})
	require.NoError(t, err)
	id3, err := q.Enqueue(ctx, models.ActionFavoriteAdd, models.FavoritePayload{ContentID: "c3"})
	require.NoError(t, err)

	require.NoError(t, q.Remove(ctx, id2))

	actions, err := q.PeekAll(ctx)
	require.NoError(t, err)
	require.Len(t, actions, 2)
	assert.Equal(t, id1, actions[0].ID)
	assert.Equal(t, id3, actions[1].ID)

	// unknown id is a no-op
	require.NoError(t, q.Remove(ctx, "missing"))

	actions, err = q.PeekAll(ctx)
	require.NoError(t, err)
	assert.Len(t, actions, 2)
}

func TestQueue_MarkAttempt(t *testing.T) {
	t.Parallel()

	q := New(newMemKV())
	ctx := context.Background()

	id, err := q.Enqueue(ctx, models.ActionQuizAnswer, models.QuizAnswerPayload{QuizID: "q1"})
	require.NoError(t, err)

	require.NoError(t, q.MarkAttempt(ctx, id))
	require.NoError(t, q.MarkAttempt(ctx, id))
	require.NoError(t, q.MarkAttempt(ctx, "missing"))

	actions, err := q.PeekAll(ctx)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, 2, actions[0].Attempts)
}

func TestQueue_Clear(t *testing.T) {
	t.Parallel()

	q := New(newMemKV())
	ctx := context.Background()

	_, err := q.Enqueue(ctx, models.ActionQuizAnswer, models.QuizAnswerPayload{QuizID: "q1"})
	require.NoError(t, err)
	_, err = q.Enqueue(ctx, models.ActionQuizAnswer, models.QuizAnswerPayload{QuizID: "q2"})
	require.NoError(t, err)

	require.NoError(t, q.Clear(ctx))

	actions, err := q.PeekAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, actions)
}

func TestQueue_PeekAll_returnsCopy(t *testing.T) {
	t.Parallel()

	q := New(newMemKV())
	ctx := context.Background()

	id, err := q.Enqueue(ctx, models.ActionQuizAnswer, models.QuizAnswerPayload{QuizID: "q1"})
	require.NoError(t, err)

	actions, err := q.PeekAll(ctx)
	require.NoError(t, err)
	actions[0].ID = "mutated"

	again, err := q.PeekAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, id, again[0].ID)
}
