package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestMemoryCacheGetSetDelete(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	_, err := c.Get(ctx, "sara_token:abc")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, c.Set(ctx, "sara_token:abc", "jwt", 0))
	val, err := c.Get(ctx, "sara_token:abc")
	require.NoError(t, err)
	assert.Equal(t, "jwt", val)

	exists, err := c.Exists(ctx, "sara_token:abc")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, c.Delete(ctx, "sara_token:abc"))
	exists, err = c.Exists(ctx, "sara_token:abc")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryCacheExpiration(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{t: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)}
	c := newMemoryCache(clock.now)

	require.NoError(t, c.Set(ctx, "flash:abc", "hello", 3*time.Second))

	clock.advance(2999 * time.Millisecond)
	val, err := c.Get(ctx, "flash:abc")
	require.NoError(t, err)
	assert.Equal(t, "hello", val)

	clock.advance(time.Millisecond)
	_, err = c.Get(ctx, "flash:abc")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, c.entries)
}

func TestMemoryCacheJSON(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	type flash struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	}

	require.NoError(t, c.SetJSON(ctx, "flash:abc", flash{Kind: "success", Message: "ok"}, time.Minute))

	var got flash
	require.NoError(t, c.GetJSON(ctx, "flash:abc", &got))
	assert.Equal(t, flash{Kind: "success", Message: "ok"}, got)

	require.NoError(t, c.Set(ctx, "broken", "{not json", 0))
	assert.Error(t, c.GetJSON(ctx, "broken", &got))
}
