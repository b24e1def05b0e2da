package redis

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/contract-portal/backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	client, err := NewClient(context.Background(), mr.Host(), port, "", 0, time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return client, mr
}

func TestClientRoundTrip(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "abc", []byte(`{"x":1}`)))

	payload, found, err := client.Get(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`{"x":1}`), payload)
}

func TestClientMiss(t *testing.T) {
	client, _ := newTestClient(t)

	_, found, err := client.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestClientEntriesExpire(t *testing.T) {
	client, mr := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "abc", []byte("v")))

	mr.FastForward(2 * time.Minute)

	_, found, err := client.Get(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestClientFlushDropsQueryKeys(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "a", []byte("1")))
	require.NoError(t, client.Set(ctx, "b", []byte("2")))

	require.NoError(t, client.Flush(ctx))

	_, found, _ := client.Get(ctx, "a")
	assert.False(t, found)
	_, found, _ = client.Get(ctx, "b")
	assert.False(t, found)
}

func TestClientConnectFailure(t *testing.T) {
	_, err := NewClient(context.Background(), "127.0.0.1", 1, "", 0, time.Minute)
	assert.Error(t, err)
}

func TestClientName(t *testing.T) {
	client, _ := newTestClient(t)
	assert.Equal(t, "redis", client.Name())
}
