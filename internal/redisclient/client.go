package redisclient

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
}

// NewClient creates a new Redis client and checks the connection
func NewClient(addr, password string, db int) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// GetClient returns the underlying Redis client
func (c *Client) GetClient() *redis.Client {
	return c.rdb
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}

// ClaimIdempotencyKey stores key with a TTL if it is not already present.
// Returns false when the key was claimed before.
func (c *Client) ClaimIdempotencyKey(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := c.rdb.SetNX(ctx, fmt.Sprintf("idempotency:%s", key), time.Now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("claim idempotency key: %w", err)
	}
	return ok, nil
}

// InquiryGuard deduplicates inquiry submissions carrying the same Idempotency-Key
type InquiryGuard struct {
	client *Client
	ttl    time.Duration
}

// NewInquiryGuard creates a guard whose claims expire after ttl
func NewInquiryGuard(client *Client, ttl time.Duration) *InquiryGuard {
	return &InquiryGuard{client: client, ttl: ttl}
}

// Claim reports whether this is the first submission for key
func (g *InquiryGuard) Claim(ctx context.Context, key string) (bool, error) {
	return g.client.ClaimIdempotencyKey(ctx, "inquiry:"+key, g.ttl)
}
