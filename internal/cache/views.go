package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ViewCounter tracks per-article page views in Redis. A (article, ip) pair
// counts once per dedup window; repeat hits inside the window are ignored.
type ViewCounter struct {
	client   *redis.Client
	dedupTTL time.Duration
}

// NewViewCounter connects to Redis and verifies the connection.
func NewViewCounter(redisURL, password string, dedupTTL time.Duration) (*ViewCounter, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &ViewCounter{client: rdb, dedupTTL: dedupTTL}, nil
}

// Hit registers a view from the given IP. Returns whether the view was
// counted (false when the IP already viewed the article inside the window).
func (v *ViewCounter) Hit(ctx context.Context, articleID int64, ip string) (bool, error) {
	if v == nil || v.client == nil {
		// No-op for testing/mock mode
		return false, nil
	}

	dedupKey := fmt.Sprintf("views:dedup:%d:%s", articleID, ip)
	set, err := v.client.SetNX(ctx, dedupKey, 1, v.dedupTTL).Result()
	if err != nil {
		return false, err
	}
	if !set {
		return false, nil
	}

	countKey := fmt.Sprintf("views:count:%d", articleID)
	if err := v.client.Incr(ctx, countKey).Err(); err != nil {
		return false, err
	}
	return true, nil
}

// Count returns the accumulated view count for an article.
func (v *ViewCounter) Count(ctx context.Context, articleID int64) (int64, error) {
	if v == nil || v.client == nil {
		return 0, nil
	}

	countKey := fmt.Sprintf("views:count:%d", articleID)
	n, err := v.client.Get(ctx, countKey).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Close releases the underlying Redis connection.
func (v *ViewCounter) Close() error {
	if v == nil || v.client == nil {
		return nil
	}
	return v.client.Close()
}
