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

// NewClient creates a new Redis client and verifies connectivity.
func NewClient(addr, password string, db int) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
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

// SetSession stores a session token with TTL.
func (c *Client) SetSession(ctx context.Context, token string, payload []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, fmt.Sprintf("session:%s", token), payload, ttl).Err()
}

// GetSession retrieves the payload for a token. Returns nil, nil when the
// session does not exist or has expired.
func (c *Client) GetSession(ctx context.Context, token string) ([]byte, error) {
	payload, err := c.rdb.Get(ctx, fmt.Sprintf("session:%s", token)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// DeleteSession removes a session token.
func (c *Client) DeleteSession(ctx context.Context, token string) error {
	return c.rdb.Del(ctx, fmt.Sprintf("session:%s", token)).Err()
}

// MarkAlertSent records that an alert with the given key was dispatched,
// returning false when it was already marked within the TTL window. Keeps
// repeated low-stock reads from spamming the alert channel.
func (c *Client) MarkAlertSent(ctx context.Context, alertKey string, ttl time.Duration) (bool, error) {
	return c.rdb.SetNX(ctx, fmt.Sprintf("alert:%s", alertKey), "1", ttl).Result()
}
