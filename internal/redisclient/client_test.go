package redisclient

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInquiryGuardClaimsOnce(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("Integration test - requires REDIS_TEST_ADDR")
	}

	client, err := NewClient(addr, "", 0)
	require.NoError(t, err)
	defer client.Close()

	guard := NewInquiryGuard(client, time.Minute)
	ctx := context.Background()
	key := uuid.NewString()

	first, err := guard.Claim(ctx, key)
	require.NoError(t, err)
	assert.True(t, first)

	second, err := guard.Claim(ctx, key)
	require.NoError(t, err)
	assert.False(t, second)

	ttl, err := client.GetClient().TTL(ctx, "idempotency:inquiry:"+key).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestNewClientUnreachable(t *testing.T) {
	_, err := NewClient("127.0.0.1:1", "", 0)
	assert.Error(t, err)
}
