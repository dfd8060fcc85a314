package service

import (
	"context"
	"time"

	"github.com/Teknetic/templink/internal/model"
)

// LinkStoreInterface defines the persistence operations LinkService needs
// (narrowed from the repository for testing)
type LinkStoreInterface interface {
	SaveLink(ctx context.Context, link *model.Link) error
	GetLinkBySlug(ctx context.Context, slug string) (*model.Link, error)
	GetLinkAnyStatus(ctx context.Context, slug string) (*model.Link, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	RedeemView(ctx context.Context, slug string) (bool, error)
	DeactivateLink(ctx context.Context, slug string) error
	DeactivateIfExhausted(ctx context.Context, slug string) (bool, error)
	RecentLinks(ctx context.Context, limit int) ([]model.Link, error)
	GetRecentEvents(ctx context.Context, slug string, limit int) ([]model.AnalyticsEvent, error)
}

// UserStoreInterface defines the persistence operations AuthService needs
type UserStoreInterface interface {
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
}

// TokenStoreInterface defines the persistence operations TokenService needs
type TokenStoreInterface interface {
	SaveToken(ctx context.Context, token *model.Token) error
	ConsumeToken(ctx context.Context, secret string, kind model.TokenKind, now time.Time) (*model.Token, error)
}

// LinkCacheInterface defines the Redis cache operations LinkService needs
type LinkCacheInterface interface {
	CacheLinkURL(ctx context.Context, slug, originalURL string, ttl time.Duration) error
	GetCachedLinkURL(ctx context.Context, slug string) (string, error)
	InvalidateLink(ctx context.Context, slug string) error
}

// StatsStoreInterface defines the Redis counter operations AnalyticsService needs
type StatsStoreInterface interface {
	IncrementPV(ctx context.Context, slug string) (int64, error)
	GetPV(ctx context.Context, slug string) (int64, error)
	AddUV(ctx context.Context, slug, visitorID string) (bool, error)
	GetUV(ctx context.Context, slug string) (int64, error)
	AddSource(ctx context.Context, slug, source string) error
	GetSources(ctx context.Context, slug string) (map[string]int64, error)
}

// SlugBloomInterface defines the Bloom Filter operations for slug collision checks
type SlugBloomInterface interface {
	Add(ctx context.Context, slug string) error
	Exists(ctx context.Context, slug string) (bool, error)
	GetCapacity() int64
	IsAvailable(ctx context.Context) bool
	Reset(ctx context.Context) error
}

// PasswordHasher is the secret-hashing collaborator; digests are one-way and salted
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// SessionSigner issues tamper-evident session credentials
type SessionSigner interface {
	Sign(user *model.User) (string, error)
}

// Notifier is the delivery collaborator for account mail. Implementations
// only report that delivery was attempted.
type Notifier interface {
	SendVerification(ctx context.Context, email, name, secret string) error
	SendPasswordReset(ctx context.Context, email, name, secret string) error
	SendWelcome(ctx context.Context, email, name string) error
}

// EventSink receives the durable analytics event for each successful
// redemption, either straight into the store or through the message queue
type EventSink interface {
	Record(ctx context.Context, event *model.AnalyticsEvent) error
}

// LinkServiceInterface defines the link lifecycle operations
type LinkServiceInterface interface {
	Create(ctx context.Context, req *model.CreateLinkRequest, creatorIP, creatorID string) (*model.CreateLinkResponse, error)
	Resolve(ctx context.Context, slug string) (*model.Link, error)
	Redeem(ctx context.Context, slug, password string, visitor model.Visitor) (*model.RedeemResult, error)
	Deactivate(ctx context.Context, slug, requesterID string) error
	Report(ctx context.Context, slug string) (*model.LinkReport, error)
	RecentLinks(ctx context.Context, limit int) ([]model.Link, error)
}

// AnalyticsServiceInterface defines the realtime stats operations
type AnalyticsServiceInterface interface {
	RecordAccess(ctx context.Context, slug, clientIP, userAgent, referer string) error
	GetStats(ctx context.Context, slug string) (*model.LinkStats, error)
}

// TokenServiceInterface defines the single-use token operations
type TokenServiceInterface interface {
	Issue(ctx context.Context, userID string, kind model.TokenKind, ttl time.Duration) (string, error)
	Redeem(ctx context.Context, secret string, kind model.TokenKind) (*model.Token, error)
}

// AuthServiceInterface defines the account operations
type AuthServiceInterface interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	GetUser(ctx context.Context, userID string) (*model.User, error)
	UserStats(ctx context.Context, userID string) (*model.UserStats, error)
	RequestEmailVerification(ctx context.Context, userID string) error
	VerifyEmail(ctx context.Context, secret string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, secret, newPassword string) error
	ChangePassword(ctx context.Context, userID string, req *model.ChangePasswordRequest) error
	UpdateProfile(ctx context.Context, userID string, req *model.UpdateProfileRequest) (*model.User, error)
	UpdatePlan(ctx context.Context, userID string, plan model.Plan) (*model.User, error)
	DeactivateAccount(ctx context.Context, userID, password string) error
}
