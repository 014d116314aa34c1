package memory

import (
	"context"
	"testing"
	"time"

	"mycloudmen/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*KVStore, *time.Time) {
	t.Helper()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewKVStore(time.Hour)
	store.now = func() time.Time { return now }
	t.Cleanup(func() { _ = store.Close() })

	return store, &now
}

func TestKVStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	require.NoError(t, store.Set(ctx, "k", []byte("v"), 0))

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	require.NoError(t, store.Delete(ctx, "k", "missing"))
	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestKVStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store, now := newTestStore(t)

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))
	assert.Equal(t, 1, store.Len())

	*now = now.Add(59 * time.Second)
	_, err := store.Get(ctx, "k")
	require.NoError(t, err)

	*now = now.Add(time.Second)
	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)

	store.cleanup()
	assert.Equal(t, 0, store.Len())
}

func TestKVStore_GetDel(t *testing.T) {
	ctx := context.Background()
	store, now := newTestStore(t)

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))

	got, err := store.GetDel(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	_, err = store.GetDel(ctx, "k")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "stale", []byte("v"), time.Minute))
	*now = now.Add(time.Minute)
	_, err = store.GetDel(ctx, "stale")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
	assert.Equal(t, 0, store.Len())
}

func TestKVStore_ValuesAreCopied(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	value := []byte("abc")
	require.NoError(t, store.Set(ctx, "k", value, 0))
	value[0] = 'x'

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)

	got[1] = 'y'
	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestKVStore_CloseIsIdempotent(t *testing.T) {
	store := NewKVStore(time.Millisecond)
	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}
