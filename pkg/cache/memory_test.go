package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	type payload struct {
		Name string `json:"name"`
	}

	var dest payload
	found, err := c.Get(ctx, "missing", &dest)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "key", payload{Name: "value"}, time.Minute))

	found, err = c.Get(ctx, "key", &dest)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "value", dest.Name)

	require.NoError(t, c.Delete(ctx, "key"))
	found, _ = c.Get(ctx, "key", &dest)
	assert.False(t, found)
}

func TestMemoryCacheDeletePattern(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "publisher:1", 1, time.Minute))
	require.NoError(t, c.Set(ctx, "publisher:2", 2, time.Minute))
	require.NoError(t, c.Set(ctx, "author:1", 3, time.Minute))

	require.NoError(t, c.DeletePattern(ctx, "publisher:*"))

	var dest int
	found, _ := c.Get(ctx, "publisher:1", &dest)
	assert.False(t, found)
	found, _ = c.Get(ctx, "publisher:2", &dest)
	assert.False(t, found)
	found, _ = c.Get(ctx, "author:1", &dest)
	assert.True(t, found)
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", "v", time.Nanosecond))
	time.Sleep(time.Millisecond)

	var dest string
	found, err := c.Get(ctx, "key", &dest)
	require.NoError(t, err)
	assert.False(t, found)
}
