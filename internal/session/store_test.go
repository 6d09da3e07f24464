package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sara-web/internal/cache"
)

func TestTokenLifecycle(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemoryCache()
	store := NewStore(c, time.Hour)

	token, err := store.Token(ctx, "sid-1")
	require.NoError(t, err)
	assert.Empty(t, token)

	has, err := store.HasToken(ctx, "sid-1")
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, store.SetToken(ctx, "sid-1", "jwt-123"))

	has, err = store.HasToken(ctx, "sid-1")
	require.NoError(t, err)
	assert.True(t, has)

	token, err = store.Token(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "jwt-123", token)

	raw, err := c.Get(ctx, "sara_token:sid-1")
	require.NoError(t, err)
	assert.Equal(t, "jwt-123", raw)

	other, err := store.Token(ctx, "sid-2")
	require.NoError(t, err)
	assert.Empty(t, other)

	require.NoError(t, store.ClearToken(ctx, "sid-1"))
	token, err = store.Token(ctx, "sid-1")
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestPopFlashConsumes(t *testing.T) {
	ctx := context.Background()
	store := NewStore(cache.NewMemoryCache(), time.Hour)

	f, err := store.PopFlash(ctx, "sid-1")
	require.NoError(t, err)
	assert.Nil(t, f)

	require.NoError(t, store.SetFlash(ctx, "sid-1", Flash{Kind: FlashSuccess, Message: "RDV annulé avec succès"}, 3*time.Second))

	f, err = store.PopFlash(ctx, "sid-1")
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, FlashSuccess, f.Kind)
	assert.Equal(t, "RDV annulé avec succès", f.Message)

	f, err = store.PopFlash(ctx, "sid-1")
	require.NoError(t, err)
	assert.Nil(t, f)
}

func TestFlashExpires(t *testing.T) {
	ctx := context.Background()
	store := NewStore(cache.NewMemoryCache(), time.Hour)

	require.NoError(t, store.SetFlash(ctx, "sid-1", Flash{Kind: FlashError, Message: "boom"}, 20*time.Millisecond))
	time.Sleep(40 * time.Millisecond)

	f, err := store.PopFlash(ctx, "sid-1")
	require.NoError(t, err)
	assert.Nil(t, f)
}

func TestFlashLifetime(t *testing.T) {
	assert.Equal(t, 3*time.Second, Flash{Kind: FlashSuccess}.Lifetime())
	assert.Equal(t, 5*time.Second, Flash{Kind: FlashError}.Lifetime())
	assert.Equal(t, int64(5000), Flash{Kind: FlashError}.LifetimeMillis())
}
