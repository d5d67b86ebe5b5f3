package store

import (
	"context"
	"testing"

	"github.com/Devdiop221/deenquest/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(config.StoreConfig{Dir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func TestStore_SetGet(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k1", []byte("v1")))

	got, err := s.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), got)
}

func TestStore_Get_missing(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	_, err := s.Get(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Set_overwrites(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k1", []byte("old")))
	require.NoError(t, s.Set(ctx, "k1", []byte("new")))

	got, err := s.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k1", []byte("v1")))
	require.NoError(t, s.Delete(ctx, "k1"))

	_, err := s.Get(ctx, "k1")
	require.ErrorIs(t, err, ErrNotFound)

	// deleting an absent key is a no-op
	require.NoError(t, s.Delete(ctx, "k1"))
}

func TestStore_DeleteAll(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k1", []byte("v1")))
	require.NoError(t, s.Set(ctx, "k2", []byte("v2")))
	require.NoError(t, s.Set(ctx, "k3", []byte("v3")))

	require.NoError(t, s.DeleteAll(ctx, []string{"k1", "k3", "absent"}))

	_, err := s.Get(ctx, "k1")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(ctx, "k3")
	require.ErrorIs(t, err, ErrNotFound)

	got, err := s.Get(ctx, "k2")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)

	require.NoError(t, s.DeleteAll(ctx, nil))
}

func TestStore_reopenKeepsData(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx := context.Background()

	s, err := Open(config.StoreConfig{Dir: dir})
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "k1", []byte("v1")))
	require.NoError(t, s.Close())

	reopened, err := Open(config.StoreConfig{Dir: dir})
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), got)
}
