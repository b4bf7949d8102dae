package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scoring-api/internal/repository"
)

func TestMemoryStore_Get(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()

	t.Run("Отсутствующий ключ", func(t *testing.T) {
		_, err := store.Get(ctx, "i:1")
		assert.ErrorIs(t, err, repository.ErrKeyNotFound)
	})

	t.Run("Записанный ключ", func(t *testing.T) {
		store.Set("i:1", `["books"]`)
		value, err := store.Get(ctx, "i:1")
		require.NoError(t, err)
		assert.Equal(t, `["books"]`, value)
	})
}

func TestMemoryStore_Cache(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()

	t.Run("Пустой кэш", func(t *testing.T) {
		_, ok := store.CacheGet(ctx, "uid:abc")
		assert.False(t, ok)
	})

	t.Run("Запись и чтение", func(t *testing.T) {
		store.CacheSet(ctx, "uid:abc", 3.0, time.Hour)
		value, ok := store.CacheGet(ctx, "uid:abc")
		require.True(t, ok)
		assert.InDelta(t, 3.0, value, 0.001)
	})

	t.Run("Истекший срок жизни", func(t *testing.T) {
		store.CacheSet(ctx, "uid:expired", 1.5, -time.Second)
		_, ok := store.CacheGet(ctx, "uid:expired")
		assert.False(t, ok)
	})
}
