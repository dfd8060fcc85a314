package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Teknetic/templink/internal/config"
)

func newTestRedisRepo(t *testing.T) (*RedisRepository, *miniredis.Miniredis) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})

	return &RedisRepository{
		client: client,
		cfg: &config.RedisConfig{
			Addr:     s.Addr(),
			Password: "",
			DB:       0,
		},
	}, s
}

func TestNewRedisRepository(t *testing.T) {
	s := miniredis.RunT(t)
	defer s.Close()

	cfg := &config.RedisConfig{
		Addr:     s.Addr(),
		Password: "",
		DB:       0,
	}

	repo := NewRedisRepository(cfg)

	assert.NotNil(t, repo)
	assert.NotNil(t, repo.client)
	assert.Equal(t, cfg, repo.cfg)

	repo.Close()
}

func TestRedisRepository_LinkURLCache(t *testing.T) {
	repo, _ := newTestRedisRepo(t)
	defer repo.Close()

	ctx := context.Background()

	err := repo.CacheLinkURL(ctx, "abc12345", "https://example.com", LinkURLCacheTTL)
	require.NoError(t, err)

	url, err := repo.GetCachedLinkURL(ctx, "abc12345")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", url)

	t.Run("miss returns redis.Nil", func(t *testing.T) {
		_, err := repo.GetCachedLinkURL(ctx, "missing1")
		assert.ErrorIs(t, err, redis.Nil)
	})

	t.Run("invalidate drops the entry", func(t *testing.T) {
		err := repo.InvalidateLink(ctx, "abc12345")
		require.NoError(t, err)

		_, err = repo.GetCachedLinkURL(ctx, "abc12345")
		assert.ErrorIs(t, err, redis.Nil)
	})

	t.Run("invalidate unknown slug is a no-op", func(t *testing.T) {
		err := repo.InvalidateLink(ctx, "missing1")
		assert.NoError(t, err)
	})
}

func TestRedisRepository_PV(t *testing.T) {
	repo, _ := newTestRedisRepo(t)
	defer repo.Close()

	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		count, err := repo.IncrementPV(ctx, "abc12345")
		require.NoError(t, err)
		assert.Equal(t, i, count)
	}

	pv, err := repo.GetPV(ctx, "abc12345")
	require.NoError(t, err)
	assert.Equal(t, int64(3), pv)
}

func TestRedisRepository_UV(t *testing.T) {
	repo, _ := newTestRedisRepo(t)
	defer repo.Close()

	ctx := context.Background()

	added, err := repo.AddUV(ctx, "abc12345", "visitor-1")
	require.NoError(t, err)
	assert.True(t, added)

	// Same visitor again does not add
	added, err = repo.AddUV(ctx, "abc12345", "visitor-1")
	require.NoError(t, err)
	assert.False(t, added)

	added, err = repo.AddUV(ctx, "abc12345", "visitor-2")
	require.NoError(t, err)
	assert.True(t, added)

	uv, err := repo.GetUV(ctx, "abc12345")
	require.NoError(t, err)
	assert.Equal(t, int64(2), uv)
}

func TestRedisRepository_Sources(t *testing.T) {
	repo, _ := newTestRedisRepo(t)
	defer repo.Close()

	ctx := context.Background()

	require.NoError(t, repo.AddSource(ctx, "abc12345", "google"))
	require.NoError(t, repo.AddSource(ctx, "abc12345", "google"))
	require.NoError(t, repo.AddSource(ctx, "abc12345", "direct"))

	sources, err := repo.GetSources(ctx, "abc12345")
	require.NoError(t, err)

	assert.Equal(t, int64(2), sources["google"])
	assert.Equal(t, int64(1), sources["direct"])
}

func TestRedisRepository_StatsIsolatedPerSlug(t *testing.T) {
	repo, _ := newTestRedisRepo(t)
	defer repo.Close()

	ctx := context.Background()

	_, err := repo.IncrementPV(ctx, "first111")
	require.NoError(t, err)

	_, err = repo.GetPV(ctx, "second22")
	assert.ErrorIs(t, err, redis.Nil)
}
