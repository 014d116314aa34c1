package redis

import (
	"context"
	"testing"
	"time"

	"mycloudmen/internal/domain/repository"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKVStore(t *testing.T) (*KVStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewKVStore(client, "test:"), mr
}

func TestKVStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestKVStore(t)

	require.NoError(t, store.Set(ctx, "session:s1:user", []byte(`{"id":"u1"}`), time.Minute))
	assert.True(t, mr.Exists("test:session:s1:user"))

	got, err := store.Get(ctx, "session:s1:user")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"u1"}`, string(got))

	require.NoError(t, store.Delete(ctx, "session:s1:user", "session:s1:target"))
	_, err = store.Get(ctx, "session:s1:user")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestKVStore_GetDel(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestKVStore(t)

	require.NoError(t, store.Set(ctx, "session:s1:login", []byte(`{"state":"st-1"}`), time.Minute))

	got, err := store.GetDel(ctx, "session:s1:login")
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":"st-1"}`, string(got))
	assert.False(t, mr.Exists("test:session:s1:login"))

	_, err = store.GetDel(ctx, "session:s1:login")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestKVStore_TTL(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestKVStore(t)

	require.NoError(t, store.Set(ctx, "k", []byte("v"), 30*time.Second))
	assert.Equal(t, 30*time.Second, mr.TTL("test:k"))

	mr.FastForward(31 * time.Second)
	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestKVStore_NoTTL(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestKVStore(t)

	require.NoError(t, store.Set(ctx, "k", []byte("v"), 0))
	assert.Equal(t, time.Duration(0), mr.TTL("test:k"))
	assert.NoError(t, store.Delete(ctx))
}

func TestKVStore_ConnectionError(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestKVStore(t)
	mr.Close()

	_, err := store.Get(ctx, "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrKeyNotFound)
}
