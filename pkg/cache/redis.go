package cache

import (
	"context"
	"fmt"
	"time"

	"content-analytics/pkg/config"

	"github.com/redis/go-redis/v9"
)

// AnalyticsKeyPrefix namespaces cached report results. A rebuild deletes
// every key under it.
const AnalyticsKeyPrefix = "analytics:"

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

// DeleteByPattern removes every key matching pattern and returns how many were deleted.
func DeleteByPattern(ctx context.Context, client *redis.Client, pattern string) (int64, error) {
	var deleted int64
	iter := client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		n, err := client.Del(ctx, iter.Val()).Result()
		if err != nil {
			return deleted, fmt.Errorf("failed to delete %s: %w", iter.Val(), err)
		}
		deleted += n
	}
	if err := iter.Err(); err != nil {
		return deleted, fmt.Errorf("failed to scan %s: %w", pattern, err)
	}
	return deleted, nil
}
