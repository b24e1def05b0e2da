package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheRoundTrip(t *testing.T) {
	c := New(10)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k1", []byte("v1")))

	payload, found, err := c.Get(ctx, "k1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("v1"), payload)

	_, found, err = c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCacheOverwriteDoesNotGrow(t *testing.T) {
	c := New(10)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k1", []byte("v1")))
	require.NoError(t, c.Set(ctx, "k1", []byte("v2")))

	assert.Equal(t, 1, c.Len())

	payload, found, _ := c.Get(ctx, "k1")
	assert.True(t, found)
	assert.Equal(t, []byte("v2"), payload)
}

func TestCacheEvictsOldestHalfWhenFull(t *testing.T) {
	c := New(4)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, c.Set(ctx, fmt.Sprintf("k%d", i), []byte("v")))
	}

	// 5 entries exceeded the limit of 4, dropping the oldest two.
	assert.Equal(t, 3, c.Len())

	_, found, _ := c.Get(ctx, "k0")
	assert.False(t, found)
	_, found, _ = c.Get(ctx, "k1")
	assert.False(t, found)
	_, found, _ = c.Get(ctx, "k4")
	assert.True(t, found)
}

func TestCacheFlush(t *testing.T) {
	c := New(10)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k1", []byte("v1")))
	require.NoError(t, c.Flush(ctx))

	assert.Equal(t, 0, c.Len())
	_, found, _ := c.Get(ctx, "k1")
	assert.False(t, found)
}

func TestCacheName(t *testing.T) {
	assert.Equal(t, "memory", New(0).Name())
}
