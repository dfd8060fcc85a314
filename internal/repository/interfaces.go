package repository

import (
	"context"
	"time"

	"github.com/Teknetic/templink/internal/model"
)

// MySQLRepositoryInterface defines the interface for MySQL operations
type MySQLRepositoryInterface interface {
	GetDB() interface{}

	SaveLink(ctx context.Context, link *model.Link) error
	GetLinkBySlug(ctx context.Context, slug string) (*model.Link, error)
	GetLinkAnyStatus(ctx context.Context, slug string) (*model.Link, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	RedeemView(ctx context.Context, slug string) (bool, error)
	DeactivateLink(ctx context.Context, slug string) error
	DeactivateIfExhausted(ctx context.Context, slug string) (bool, error)
	DeactivateExpiredLinks(ctx context.Context) (int64, error)
	RecentLinks(ctx context.Context, limit int) ([]model.Link, error)

	SaveAnalyticsEvent(ctx context.Context, event *model.AnalyticsEvent) error
	GetRecentEvents(ctx context.Context, slug string, limit int) ([]model.AnalyticsEvent, error)

	SaveUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetActiveUserByEmail(ctx context.Context, email string) (*model.User, error)
	EmailExists(ctx context.Context, email, excludeUserID string) (bool, error)
	UpdateUserLastLogin(ctx context.Context, id string, at time.Time) error
	UpdateUserPassword(ctx context.Context, id, digest string) error
	UpdateUserEmail(ctx context.Context, id, email string) error
	UpdateUserName(ctx context.Context, id, name string) error
	UpdateUserPlan(ctx context.Context, id string, plan model.Plan) error
	MarkUserVerified(ctx context.Context, id string) error
	DeactivateUser(ctx context.Context, id string) error
	GetUserStats(ctx context.Context, userID string) (*model.UserStats, error)

	SaveToken(ctx context.Context, token *model.Token) error
	ConsumeToken(ctx context.Context, secret string, kind model.TokenKind, now time.Time) (*model.Token, error)

	Close() error
}

// RedisRepositoryInterface defines the interface for Redis operations
type RedisRepositoryInterface interface {
	GetClient() interface{}
	CacheLinkURL(ctx context.Context, slug, originalURL string, ttl time.Duration) error
	GetCachedLinkURL(ctx context.Context, slug string) (string, error)
	InvalidateLink(ctx context.Context, slug string) error
	IncrementPV(ctx context.Context, slug string) (int64, error)
	GetPV(ctx context.Context, slug string) (int64, error)
	AddUV(ctx context.Context, slug, visitorID string) (bool, error)
	GetUV(ctx context.Context, slug string) (int64, error)
	AddSource(ctx context.Context, slug, source string) error
	GetSources(ctx context.Context, slug string) (map[string]int64, error)
	Close() error
}
