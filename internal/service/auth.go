package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/Teknetic/templink/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthConfig carries the account policy knobs the service needs.
type AuthConfig struct {
	MinPasswordLength int
	VerificationTTL   time.Duration
	ResetTTL          time.Duration
}

// AuthService implements account lifecycle: registration, login, email
// verification, password reset and profile management.
type AuthService struct {
	users    UserStoreInterface
	tokens   TokenServiceInterface
	hasher   PasswordHasher
	signer   SessionSigner
	notifier Notifier
	cfg      AuthConfig
	now      func() time.Time
}

// NewAuthService creates a new AuthService
func NewAuthService(users UserStoreInterface, tokens TokenServiceInterface, hasher PasswordHasher, signer SessionSigner, notifier Notifier, cfg AuthConfig) *AuthService {
	return &AuthService{
		users:    users,
		tokens:   tokens,
		hasher:   hasher,
		signer:   signer,
		notifier: notifier,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Register creates an account and returns a signed session for it
func (s *AuthService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	if !emailPattern.MatchString(req.Email) {
		return nil, ErrInvalidEmail
	}
	if len(req.Password) < s.cfg.MinPasswordLength {
		return nil, ErrPasswordTooWeak
	}

	taken, err := s.users.EmailExists(ctx, req.Email, "")
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Email:          req.Email,
		PasswordDigest: digest,
		Name:           req.Name,
		Plan:           model.PlanFree,
		EmailVerified:  false,
		CreatedAt:      s.now(),
		IsActive:       true,
	}

	if err := s.users.SaveUser(ctx, user); err != nil {
		// A concurrent registration can win the email between the check and
		// the insert
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	// Delivery failures must not fail registration; the user can re-request
	// verification later.
	if secret, err := s.tokens.Issue(ctx, user.ID, model.TokenKindEmailVerification, s.cfg.VerificationTTL); err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to issue verification token")
	} else if err := s.notifier.SendVerification(ctx, user.Email, user.Name, secret); err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to send verification email")
	}

	session, err := s.signer.Sign(user)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session: %w", err)
	}

	return &model.AuthResponse{User: user, Token: session}, nil
}

// Login verifies credentials and returns a signed session. Unknown email and
// wrong password produce the same error so accounts can't be enumerated.
func (s *AuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	user, err := s.users.GetActiveUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !s.hasher.Verify(req.Password, user.PasswordDigest) {
		return nil, ErrInvalidCredentials
	}

	now := s.now()
	if err := s.users.UpdateUserLastLogin(ctx, user.ID, now); err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to update last login")
	}
	user.LastLogin = &now

	session, err := s.signer.Sign(user)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session: %w", err)
	}

	return &model.AuthResponse{User: user, Token: session}, nil
}

// RequestEmailVerification issues a fresh verification token and mails it
func (s *AuthService) RequestEmailVerification(ctx context.Context, userID string) error {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return ErrUserNotFound
	}
	if user.EmailVerified {
		return ErrAlreadyVerified
	}

	secret, err := s.tokens.Issue(ctx, user.ID, model.TokenKindEmailVerification, s.cfg.VerificationTTL)
	if err != nil {
		return fmt.Errorf("failed to issue verification token: %w", err)
	}
	if err := s.notifier.SendVerification(ctx, user.Email, user.Name, secret); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}
	return nil
}

// VerifyEmail consumes a verification token and marks its owner verified
func (s *AuthService) VerifyEmail(ctx context.Context, secret string) error {
	token, err := s.tokens.Redeem(ctx, secret, model.TokenKindEmailVerification)
	if err != nil {
		return err
	}
	if err := s.users.MarkUserVerified(ctx, token.UserID); err != nil {
		return fmt.Errorf("failed to mark user verified: %w", err)
	}

	if user, err := s.users.GetUserByID(ctx, token.UserID); err == nil {
		if err := s.notifier.SendWelcome(ctx, user.Email, user.Name); err != nil {
			log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to send welcome email")
		}
	}
	return nil
}

// RequestPasswordReset issues a reset token for the account if it exists.
// It reports success either way so the endpoint doesn't leak which emails
// have accounts.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.GetActiveUserByEmail(ctx, email)
	if err != nil {
		log.Debug().Str("email", email).Msg("Password reset requested for unknown email")
		return nil
	}

	secret, err := s.tokens.Issue(ctx, user.ID, model.TokenKindPasswordReset, s.cfg.ResetTTL)
	if err != nil {
		return fmt.Errorf("failed to issue reset token: %w", err)
	}
	if err := s.notifier.SendPasswordReset(ctx, user.Email, user.Name, secret); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}
	return nil
}

// ResetPassword consumes a reset token and replaces the owner's password
func (s *AuthService) ResetPassword(ctx context.Context, secret, newPassword string) error {
	if len(newPassword) < s.cfg.MinPasswordLength {
		return ErrPasswordTooWeak
	}

	digest, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	token, err := s.tokens.Redeem(ctx, secret, model.TokenKindPasswordReset)
	if err != nil {
		return err
	}

	if err := s.users.UpdateUserPassword(ctx, token.UserID, digest); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// ChangePassword replaces the password after re-checking the current one
func (s *AuthService) ChangePassword(ctx context.Context, userID string, req *model.ChangePasswordRequest) error {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return ErrUserNotFound
	}
	if !s.hasher.Verify(req.CurrentPassword, user.PasswordDigest) {
		return ErrPasswordIncorrect
	}
	if len(req.NewPassword) < s.cfg.MinPasswordLength {
		return ErrPasswordTooWeak
	}

	digest, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.users.UpdateUserPassword(ctx, userID, digest); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// UpdateProfile changes name and/or email. Changing email clears the
// verified flag until the new address is confirmed.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, req *model.UpdateProfileRequest) (*model.User, error) {
	if req.Email != nil {
		if !emailPattern.MatchString(*req.Email) {
			return nil, ErrInvalidEmail
		}
		taken, err := s.users.EmailExists(ctx, *req.Email, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if taken {
			return nil, ErrEmailTaken
		}
		if err := s.users.UpdateUserEmail(ctx, userID, *req.Email); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, ErrEmailTaken
			}
			return nil, fmt.Errorf("failed to update email: %w", err)
		}
	}
	if req.Name != nil {
		if err := s.users.UpdateUserName(ctx, userID, *req.Name); err != nil {
			return nil, fmt.Errorf("failed to update name: %w", err)
		}
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdatePlan moves the account to a different plan tier
func (s *AuthService) UpdatePlan(ctx context.Context, userID string, plan model.Plan) (*model.User, error) {
	if !plan.Valid() {
		return nil, fmt.Errorf("unknown plan %q", plan)
	}
	if err := s.users.UpdateUserPlan(ctx, userID, plan); err != nil {
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// DeactivateAccount soft-deletes the account after re-checking the password
func (s *AuthService) DeactivateAccount(ctx context.Context, userID, password string) error {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return ErrUserNotFound
	}
	if !s.hasher.Verify(password, user.PasswordDigest) {
		return ErrPasswordIncorrect
	}
	if err := s.users.DeactivateUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	return nil
}

// GetUser returns the active account by ID
func (s *AuthService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UserStats returns link counts and view totals for the account's dashboard
func (s *AuthService) UserStats(ctx context.Context, userID string) (*model.UserStats, error) {
	stats, err := s.users.GetUserStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}
	return stats, nil
}
