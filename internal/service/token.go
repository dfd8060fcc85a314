package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Teknetic/templink/internal/idgen"
	"github.com/Teknetic/templink/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenService issues and redeems single-use, expiring secrets. Both token
// kinds share the same state machine.
type TokenService struct {
	gen   *idgen.Generator
	store TokenStoreInterface
	now   func() time.Time
}

// NewTokenService creates a new TokenService
func NewTokenService(store TokenStoreInterface) *TokenService {
	return &TokenService{
		gen:   idgen.NewGenerator(),
		store: store,
		now:   time.Now,
	}
}

// Issue creates a token row and returns the opaque secret for out-of-band
// delivery
func (s *TokenService) Issue(ctx context.Context, userID string, kind model.TokenKind, ttl time.Duration) (string, error) {
	secret, err := s.gen.NewSecret()
	if err != nil {
		return "", fmt.Errorf("failed to generate token secret: %w", err)
	}

	token := &model.Token{
		ID:        uuid.NewString(),
		UserID:    userID,
		Secret:    secret,
		Kind:      kind,
		ExpiresAt: s.now().Add(ttl),
		Used:      false,
	}

	if err := s.store.SaveToken(ctx, token); err != nil {
		return "", fmt.Errorf("failed to save token: %w", err)
	}

	return secret, nil
}

// Redeem consumes a token. The store marks it used atomically, so the same
// secret is never redeemed twice; the caller performs its side effect after
// this returns.
func (s *TokenService) Redeem(ctx context.Context, secret string, kind model.TokenKind) (*model.Token, error) {
	token, err := s.store.ConsumeToken(ctx, secret, kind, s.now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenInvalid
		}
		return nil, fmt.Errorf("failed to consume token: %w", err)
	}
	return token, nil
}
