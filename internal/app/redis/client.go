package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"storerating/internal/app/config"
)

const jwtPrefix = "jwt."

// Client оборачивает Redis: blacklist для отозванных JWT и доступ к
// низкоуровневому клиенту для kv-хранилища.
type Client struct {
	cfg    config.RedisConfig
	client *goredis.Client
}

func New(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:        fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Username:    cfg.User,
		Password:    cfg.Password,
		DialTimeout: cfg.DialTimeout,
		ReadTimeout: cfg.ReadTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Client{cfg: cfg, client: client}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// Unwrap отдает низкоуровневый клиент (нужен redis-бэкенду kv-хранилища)
func (c *Client) Unwrap() *goredis.Client {
	return c.client
}

// WriteJWTToBlacklist добавляет токен в blacklist до истечения его срока
func (c *Client) WriteJWTToBlacklist(ctx context.Context, jwtStr string, jwtTTL time.Duration) error {
	return c.client.Set(ctx, jwtPrefix+jwtStr, true, jwtTTL).Err()
}

// CheckJWTInBlacklist возвращает nil если токен в blacklist
func (c *Client) CheckJWTInBlacklist(ctx context.Context, jwtStr string) error {
	return c.client.Get(ctx, jwtPrefix+jwtStr).Err()
}
