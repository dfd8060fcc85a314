package repository

import (
	"context"
	"time"

	"github.com/Teknetic/templink/internal/config"
	"github.com/Teknetic/templink/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MySQLRepository handles MySQL operations
type MySQLRepository struct {
	db *gorm.DB
}

// NewMySQLRepository creates a new MySQL repository
func NewMySQLRepository(cfg *config.MySQLConfig) *MySQLRepository {
	// Configure GORM logger
	var gormLogger logger.Interface
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		// Surface unique-key violations as gorm.ErrDuplicatedKey so the
		// services can map insert races to their conflict errors
		TranslateError: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MySQL")
	}

	// Auto migrate tables
	if err := db.AutoMigrate(&model.Link{}, &model.AnalyticsEvent{}, &model.User{}, &model.Token{}); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	log.Info().Msg("MySQL connected successfully")

	return &MySQLRepository{db: db}
}

// GetDB returns the GORM DB instance
func (r *MySQLRepository) GetDB() *gorm.DB {
	return r.db
}

// SaveLink persists a new link
func (r *MySQLRepository) SaveLink(ctx context.Context, link *model.Link) error {
	return r.db.WithContext(ctx).Create(link).Error
}

// GetLinkBySlug retrieves an active link by slug
func (r *MySQLRepository) GetLinkBySlug(ctx context.Context, slug string) (*model.Link, error) {
	var link model.Link
	err := r.db.WithContext(ctx).
		Where("slug = ? AND is_active = 1", slug).
		First(&link).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// GetLinkAnyStatus retrieves a link by slug regardless of the active flag,
// used by analytics reporting where inactive links remain visible
func (r *MySQLRepository) GetLinkAnyStatus(ctx context.Context, slug string) (*model.Link, error) {
	var link model.Link
	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&link).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// SlugExists checks whether a slug is already reserved, active or not.
// Slugs are never reassigned once used.
func (r *MySQLRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("slug = ?", slug).
		Count(&count).Error
	return count > 0, err
}

// RedeemView grants one view via a conditional increment. The WHERE clause
// rechecks the active flag and the cap inside the same statement, so two
// racing redemptions can never both take the last view. Returns false when
// no view was granted.
func (r *MySQLRepository) RedeemView(ctx context.Context, slug string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("slug = ? AND is_active = 1 AND (max_views IS NULL OR current_views < max_views)", slug).
		UpdateColumn("current_views", gorm.Expr("current_views + 1"))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeactivateLink soft-deletes a link. Idempotent; no-op for unknown slugs.
func (r *MySQLRepository) DeactivateLink(ctx context.Context, slug string) error {
	return r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("slug = ?", slug).
		Update("is_active", false).Error
}

// DeactivateIfExhausted deactivates a link whose view cap has been reached.
// Returns whether the link was deactivated by this call.
func (r *MySQLRepository) DeactivateIfExhausted(ctx context.Context, slug string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("slug = ? AND is_active = 1 AND max_views IS NOT NULL AND current_views >= max_views", slug).
		Update("is_active", false)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeactivateExpiredLinks soft-deletes every active link past its expiration.
// Redemption re-validates expiry itself; this only keeps the table tidy.
func (r *MySQLRepository) DeactivateExpiredLinks(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("is_active = 1 AND expires_at IS NOT NULL AND expires_at < ?", time.Now()).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}

// RecentLinks returns the most recently created links, newest first
func (r *MySQLRepository) RecentLinks(ctx context.Context, limit int) ([]model.Link, error) {
	var links []model.Link
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&links).Error
	return links, err
}

// SaveAnalyticsEvent appends one redemption event
func (r *MySQLRepository) SaveAnalyticsEvent(ctx context.Context, event *model.AnalyticsEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// GetRecentEvents retrieves the most recent redemption events for a slug,
// newest first
func (r *MySQLRepository) GetRecentEvents(ctx context.Context, slug string, limit int) ([]model.AnalyticsEvent, error) {
	var events []model.AnalyticsEvent
	query := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		Order("accessed_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&events).Error
	return events, err
}

// SaveUser persists a new user
func (r *MySQLRepository) SaveUser(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetUserByID retrieves an active user by id
func (r *MySQLRepository) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = 1", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetActiveUserByEmail retrieves an active user by email, for login
func (r *MySQLRepository) GetActiveUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("email = ? AND is_active = 1", email).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// EmailExists checks email uniqueness across active and inactive users.
// excludeUserID, when non-empty, ignores that user's own row.
func (r *MySQLRepository) EmailExists(ctx context.Context, email, excludeUserID string) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("email = ?", email)
	if excludeUserID != "" {
		query = query.Where("id <> ?", excludeUserID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// UpdateUserLastLogin stamps a successful login
func (r *MySQLRepository) UpdateUserLastLogin(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("last_login", at).Error
}

// UpdateUserPassword replaces a user's password digest
func (r *MySQLRepository) UpdateUserPassword(ctx context.Context, id, digest string) error {
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("password_digest", digest).Error
}

// UpdateUserEmail changes the address on file and clears the verified flag,
// since verification always refers to the current email
func (r *MySQLRepository) UpdateUserEmail(ctx context.Context, id, email string) error {
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"email":          email,
			"email_verified": false,
		}).Error
}

// UpdateUserName changes the display name
func (r *MySQLRepository) UpdateUserName(ctx context.Context, id, name string) error {
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("name", name).Error
}

// UpdateUserPlan changes the plan tier
func (r *MySQLRepository) UpdateUserPlan(ctx context.Context, id string, plan model.Plan) error {
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("plan", plan).Error
}

// MarkUserVerified sets the email-verified flag
func (r *MySQLRepository) MarkUserVerified(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("email_verified", true).Error
}

// DeactivateUser soft-deletes a user row; the email stays reserved
func (r *MySQLRepository) DeactivateUser(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

// GetUserStats aggregates link count and total views for a creator
func (r *MySQLRepository) GetUserStats(ctx context.Context, userID string) (*model.UserStats, error) {
	stats := &model.UserStats{}

	err := r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("creator_id = ?", userID).
		Count(&stats.TotalLinks).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Model(&model.Link{}).
		Where("creator_id = ?", userID).
		Select("COALESCE(SUM(current_views), 0)").
		Scan(&stats.TotalViews).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// SaveToken persists a new single-use token
func (r *MySQLRepository) SaveToken(ctx context.Context, token *model.Token) error {
	return r.db.WithContext(ctx).Create(token).Error
}

// ConsumeToken atomically marks a matching token used and returns it. The
// used flag flips inside the UPDATE's WHERE clause, so concurrent submissions
// of the same secret succeed at most once. gorm.ErrRecordNotFound is returned
// when no redeemable token matches.
func (r *MySQLRepository) ConsumeToken(ctx context.Context, secret string, kind model.TokenKind, now time.Time) (*model.Token, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Token{}).
		Where("secret = ? AND kind = ? AND used = 0 AND expires_at > ?", secret, kind, now).
		Update("used", true)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var token model.Token
	if err := r.db.WithContext(ctx).
		Where("secret = ?", secret).
		First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

// Close closes the database connection
func (r *MySQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
