package redisbus

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/habitloop/habitloop-backend/internal/pkg/logger"
)

// Bus wraps the redis client for the two things this service needs it
// for: publishing account events for the external account service, and
// short-lived caching of computed streak stats. All methods are nil-safe
// so the app can run without redis (cache misses, dropped signals are
// logged).
type Bus struct {
	log     *logger.Logger
	rdb     *goredis.Client
	channel string
}

func New(log *logger.Logger) (*Bus, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	channel := strings.TrimSpace(os.Getenv("REDIS_ACCOUNT_CHANNEL"))
	if channel == "" {
		channel = "account.events"
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Bus{
		log:     log.With("client", "RedisBus"),
		rdb:     rdb,
		channel: channel,
	}, nil
}

func (b *Bus) Close() error {
	if b == nil || b.rdb == nil {
		return nil
	}
	return b.rdb.Close()
}

type accountEvent struct {
	Kind       string    `json:"kind"`
	UserID     string    `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// DeletionConfirmed publishes the "user confirmed deletion" signal. The
// external account service owns the actual deletion.
func (b *Bus) DeletionConfirmed(ctx context.Context, userID uuid.UUID) error {
	if b == nil || b.rdb == nil {
		return fmt.Errorf("redis bus not initialized")
	}
	raw, err := json.Marshal(accountEvent{
		Kind:       "account.deletion.confirmed",
		UserID:     userID.String(),
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	return b.rdb.Publish(ctx, b.channel, raw).Err()
}

// GetCache fetches a cached JSON value into out; ok is false on miss or
// when redis is absent.
func (b *Bus) GetCache(ctx context.Context, key string, out any) (bool, error) {
	if b == nil || b.rdb == nil {
		return false, nil
	}
	raw, err := b.rdb.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

func (b *Bus) SetCache(ctx context.Context, key string, value any, ttl time.Duration) error {
	if b == nil || b.rdb == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return b.rdb.Set(ctx, key, raw, ttl).Err()
}

func (b *Bus) DeleteCache(ctx context.Context, keys ...string) error {
	if b == nil || b.rdb == nil || len(keys) == 0 {
		return nil
	}
	return b.rdb.Del(ctx, keys...).Err()
}
