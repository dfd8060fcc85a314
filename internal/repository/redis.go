package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Teknetic/templink/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// Redis key prefixes
	LinkURLKeyPrefix    = "tl:url:"
	LinkURLCacheTTL     = 24 * time.Hour
	PVKeyPrefix         = "tl:pv:"
	UVKeyPrefix         = "tl:uv:"
	SourceKeyPrefix     = "tl:source:"
	StatsExpireDuration = 24 * time.Hour
)

// RedisRepository handles Redis operations. It carries the advisory state
// only: the URL cache for the read path and realtime counters. View-cap
// accounting lives in MySQL.
type RedisRepository struct {
	client *redis.Client
	cfg    *config.RedisConfig
}

// NewRedisRepository creates a new Redis repository
func NewRedisRepository(cfg *config.RedisConfig) *RedisRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis")
	} else {
		log.Info().Msg("Redis connected successfully")
	}

	return &RedisRepository{
		client: rdb,
		cfg:    cfg,
	}
}

// GetClient returns the Redis client
func (r *RedisRepository) GetClient() *redis.Client {
	return r.client
}

// CacheLinkURL caches the destination URL for a slug
func (r *RedisRepository) CacheLinkURL(ctx context.Context, slug, originalURL string, ttl time.Duration) error {
	return r.client.Set(ctx, r.linkURLKey(slug), originalURL, ttl).Err()
}

// GetCachedLinkURL retrieves the cached destination URL for a slug
func (r *RedisRepository) GetCachedLinkURL(ctx context.Context, slug string) (string, error) {
	return r.client.Get(ctx, r.linkURLKey(slug)).Result()
}

// InvalidateLink drops the cached URL for a slug, called on deactivation so
// a dead link never resolves from cache
func (r *RedisRepository) InvalidateLink(ctx context.Context, slug string) error {
	return r.client.Del(ctx, r.linkURLKey(slug)).Err()
}

// IncrementPV increments the page view count for a slug
func (r *RedisRepository) IncrementPV(ctx context.Context, slug string) (int64, error) {
	key := r.pvKey(slug)
	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	// Set expiration if this is the first increment
	if count == 1 {
		r.client.Expire(ctx, key, StatsExpireDuration)
	}
	return count, nil
}

// GetPV gets the page view count for a slug
func (r *RedisRepository) GetPV(ctx context.Context, slug string) (int64, error) {
	return r.client.Get(ctx, r.pvKey(slug)).Int64()
}

// AddUV adds a unique visitor for a slug
func (r *RedisRepository) AddUV(ctx context.Context, slug, visitorID string) (bool, error) {
	key := r.uvKey(slug)
	day := time.Now().Format("2006-01-02")
	dailyKey := fmt.Sprintf("%s:%s", key, day)

	added, err := r.client.SAdd(ctx, dailyKey, visitorID).Result()
	if err != nil {
		return false, err
	}
	r.client.Expire(ctx, dailyKey, StatsExpireDuration)

	return added > 0, nil
}

// GetUV gets the unique visitor count for a slug
func (r *RedisRepository) GetUV(ctx context.Context, slug string) (int64, error) {
	pattern := fmt.Sprintf("%s:*", r.uvKey(slug))
	var keys []string

	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}

	if err := iter.Err(); err != nil {
		return 0, err
	}

	var totalUV int64
	for _, key := range keys {
		count, err := r.client.SCard(ctx, key).Result()
		if err != nil {
			continue
		}
		totalUV += count
	}

	return totalUV, nil
}

// AddSource adds a source visit for a slug
func (r *RedisRepository) AddSource(ctx context.Context, slug, source string) error {
	key := r.sourceKey(slug)
	day := time.Now().Format("2006-01-02")
	dailyKey := fmt.Sprintf("%s:%s:%s", key, source, day)

	count, err := r.client.Incr(ctx, dailyKey).Result()
	if err != nil {
		return err
	}
	if count == 1 {
		r.client.Expire(ctx, dailyKey, StatsExpireDuration)
	}

	return nil
}

// GetSources gets the accumulated source counts for a slug
func (r *RedisRepository) GetSources(ctx context.Context, slug string) (map[string]int64, error) {
	pattern := fmt.Sprintf("%s:*", r.sourceKey(slug))
	sources := make(map[string]int64)

	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		count, err := r.client.Get(ctx, key).Int64()
		if err != nil {
			continue
		}
		// Extract source name from key
		prefix := r.sourceKey(slug)
		sourceName := key[len(prefix)+1:]
		// Remove the date part
		if idx := strings.LastIndex(sourceName, ":"); idx > 0 {
			sourceName = sourceName[:idx]
		}
		sources[sourceName] += count
	}

	return sources, iter.Err()
}

// Close closes the Redis connection
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

// Helper functions to build Redis keys

func (r *RedisRepository) linkURLKey(slug string) string {
	return LinkURLKeyPrefix + slug
}

func (r *RedisRepository) pvKey(slug string) string {
	return PVKeyPrefix + slug
}

func (r *RedisRepository) uvKey(slug string) string {
	return UVKeyPrefix + slug
}

func (r *RedisRepository) sourceKey(slug string) string {
	return SourceKeyPrefix + slug
}
