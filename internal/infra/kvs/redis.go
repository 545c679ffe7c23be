package kvs

import (
	"context"
	"time"

	"book-manager/internal/infra"
	"book-manager/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Client wraps the Redis connection used as the session-token store.
// A key is an opaque access token, the value is the holder's user ID.
type Client struct {
	rdb *redis.Client
}

func NewClient(cfg config.RedisConfig) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.Addr(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to connect to redis", err, infra.KindKVSFailure)
	}

	return &Client{rdb: rdb}, nil
}

func (c *Client) SetToken(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	if err := c.rdb.Set(ctx, token, userID.String(), ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to store access token", err, infra.KindKVSFailure)
	}
	return nil
}

// GetToken resolves an access token to its user ID. Returns (nil, nil) when the
// token is unknown or expired.
func (c *Client) GetToken(ctx context.Context, token string) (*uuid.UUID, error) {
	val, err := c.rdb.Get(ctx, token).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to look up access token", err, infra.KindKVSFailure)
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt access token entry", err, infra.KindKVSFailure)
	}
	return &userID, nil
}

func (c *Client) DeleteToken(ctx context.Context, token string) error {
	if err := c.rdb.Del(ctx, token).Err(); err != nil {
		return infra.WrapRepoErr("failed to delete access token", err, infra.KindKVSFailure)
	}
	return nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
