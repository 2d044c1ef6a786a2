package cache

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"nba-voice-stats/internal/domain"
)

const DefaultRedisKey = "nba:per_game_stats"

// RedisCache keeps the CSV payload under a single key so several machines
// can share one scrape.
type RedisCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func NewRedisCache(redisURL, key string, ttl time.Duration) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return NewRedisCacheWithClient(client, key, ttl), nil
}

func NewRedisCacheWithClient(client *redis.Client, key string, ttl time.Duration) *RedisCache {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisCache{client: client, key: key, ttl: ttl}
}

func (rc *RedisCache) Close() error {
	return rc.client.Close()
}

func (rc *RedisCache) Load(ctx context.Context) (*domain.StatsTable, bool, error) {
	payload, err := rc.client.Get(ctx, rc.key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", rc.key, err)
	}

	table, err := DecodeCSV(strings.NewReader(payload))
	if err != nil {
		return nil, false, fmt.Errorf("decoding %s: %w", rc.key, err)
	}
	return table, true, nil
}

// Save stores the table. A zero TTL keeps it until overwritten.
func (rc *RedisCache) Save(ctx context.Context, table *domain.StatsTable) error {
	var buf bytes.Buffer
	if err := EncodeCSV(&buf, table); err != nil {
		return fmt.Errorf("encoding stats: %w", err)
	}
	if err := rc.client.Set(ctx, rc.key, buf.String(), rc.ttl).Err(); err != nil {
		return fmt.Errorf("writing %s: %w", rc.key, err)
	}
	return nil
}
