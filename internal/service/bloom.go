package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Teknetic/templink/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// SlugBloomService answers "might this slug exist" ahead of the store,
// keeping slug generation cheap as the link table grows
type SlugBloomService struct {
	client    RedisClient
	capacity  int64
	errorRate float64
}

// RedisClient defines the interface for Redis client operations
type RedisClient interface {
	Do(ctx context.Context, args ...interface{}) *redis.Cmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// NewSlugBloomService creates a new SlugBloomService
func NewSlugBloomService(client RedisClient, cfg *config.BloomConfig) *SlugBloomService {
	bs := &SlugBloomService{
		client:    client,
		capacity:  cfg.Capacity,
		errorRate: cfg.ErrorRate,
	}

	// Initialize Bloom Filter if needed
	bs.initBloomFilter(context.Background())

	return bs
}

const slugBloomKey = "templink:slugs:bloom"

// initBloomFilter initializes the Bloom Filter
func (bs *SlugBloomService) initBloomFilter(ctx context.Context) {
	// Check if Bloom Filter exists
	exists, err := bs.client.Exists(ctx, slugBloomKey).Result()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to check Bloom Filter existence")
		return
	}

	if exists > 0 {
		log.Info().Msg("Slug Bloom Filter already exists")
		return
	}

	// Create Bloom Filter
	cmd := bs.client.Do(ctx, "BF.RESERVE", slugBloomKey, bs.errorRate, bs.capacity)
	if err := cmd.Err(); err != nil {
		// BF.RESERVE may not be available, use BF.ADD instead
		log.Warn().Err(err).Msg("BF.RESERVE not available, using dynamic Bloom Filter")
	} else {
		log.Info().Msgf("Slug Bloom Filter created with capacity=%d, error_rate=%f", bs.capacity, bs.errorRate)
	}
}

// Add adds a slug to the Bloom Filter
func (bs *SlugBloomService) Add(ctx context.Context, slug string) error {
	// Try BF.ADD first (RedisBloom module)
	cmd := bs.client.Do(ctx, "BF.ADD", slugBloomKey, slug)
	if err := cmd.Err(); err != nil {
		// Fallback to regular SET if Bloom Filter not available
		log.Warn().Err(err).Msg("BF.ADD not available, using SET as fallback")
		return bs.client.Set(ctx, bs.fallbackKey(slug), 1, 0).Err()
	}
	return nil
}

// Exists checks if a slug might exist. False negatives never happen; false
// positives only cost an extra store lookup.
func (bs *SlugBloomService) Exists(ctx context.Context, slug string) (bool, error) {
	// Try BF.EXISTS first
	cmd := bs.client.Do(ctx, "BF.EXISTS", slugBloomKey, slug)
	result, err := cmd.Int()
	if err == nil {
		return result == 1, nil
	}

	// Fallback to regular GET if Bloom Filter not available
	log.Warn().Err(err).Msg("BF.EXISTS not available, using GET as fallback")
	exists, err := bs.client.Exists(ctx, bs.fallbackKey(slug)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

// Fallback key when Bloom Filter is not available
func (bs *SlugBloomService) fallbackKey(slug string) string {
	return fmt.Sprintf("%s:fb:%s", slugBloomKey, slug)
}

// GetCapacity returns the capacity of the Bloom Filter
func (bs *SlugBloomService) GetCapacity() int64 {
	return bs.capacity
}

// IsAvailable checks if the Bloom Filter is available
func (bs *SlugBloomService) IsAvailable(ctx context.Context) bool {
	cmd := bs.client.Do(ctx, "BF.INFO", slugBloomKey)
	return cmd.Err() == nil
}

// Reset clears the Bloom Filter (use with caution)
func (bs *SlugBloomService) Reset(ctx context.Context) error {
	return bs.client.Del(ctx, slugBloomKey).Err()
}
