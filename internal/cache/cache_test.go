package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// implementations returns every Cache under test. Redis is included when
// REDIS_TEST_URL points at a server.
func implementations(t *testing.T) map[string]Cache {
	t.Helper()
	impls := map[string]Cache{"memory": NewMemoryCache()}

	if url := os.Getenv("REDIS_TEST_URL"); url != "" {
		rc, err := NewRedisCache(url)
		require.NoError(t, err)
		t.Cleanup(func() { rc.Close() })
		impls["redis"] = rc
	}
	return impls
}

func TestCacheContract(t *testing.T) {
	for name, c := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			key := "sara_test:" + uuid.NewString()
			t.Cleanup(func() { c.Delete(ctx, key) })

			_, err := c.Get(ctx, key)
			assert.ErrorIs(t, err, ErrNotFound)

			exists, err := c.Exists(ctx, key)
			require.NoError(t, err)
			assert.False(t, exists)

			require.NoError(t, c.Set(ctx, key, "jwt", time.Minute))
			val, err := c.Get(ctx, key)
			require.NoError(t, err)
			assert.Equal(t, "jwt", val)

			exists, err = c.Exists(ctx, key)
			require.NoError(t, err)
			assert.True(t, exists)

			require.NoError(t, c.SetJSON(ctx, key, map[string]string{"kind": "success"}, time.Minute))
			var got map[string]string
			require.NoError(t, c.GetJSON(ctx, key, &got))
			assert.Equal(t, map[string]string{"kind": "success"}, got)

			require.NoError(t, c.Delete(ctx, key))
			err = c.GetJSON(ctx, key, &got)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestCacheContractExpiry(t *testing.T) {
	for name, c := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			key := "sara_test:" + uuid.NewString()

			require.NoError(t, c.Set(ctx, key, "flash", 50*time.Millisecond))
			time.Sleep(120 * time.Millisecond)

			_, err := c.Get(ctx, key)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestNewRedisCacheUnreachable(t *testing.T) {
	_, err := NewRedisCache("redis://127.0.0.1:1/0")
	assert.Error(t, err)
}
