package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/Teknetic/templink/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// ErrSessionInvalid covers every verification failure: bad signature,
// expired credential, malformed claims
var ErrSessionInvalid = errors.New("session credential is invalid")

// Claims are embedded in the signed session credential. Plan is carried so
// plan gates don't need a store round trip.
type Claims struct {
	UserID string     `json:"user_id"`
	Email  string     `json:"email"`
	Plan   model.Plan `json:"plan"`
	jwt.RegisteredClaims
}

// JWTSigner signs and verifies HS256 session credentials
type JWTSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTSigner creates a new JWTSigner
func NewJWTSigner(secret string, ttl time.Duration) *JWTSigner {
	return &JWTSigner{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Sign issues a session credential for the user
func (s *JWTSigner) Sign(user *model.User) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Plan:   user.Plan,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	return signed, nil
}

// Verify parses a session credential and returns its claims
func (s *JWTSigner) Verify(credential string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(credential, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !token.Valid {
		return nil, ErrSessionInvalid
	}
	if claims.UserID == "" {
		return nil, ErrSessionInvalid
	}
	return claims, nil
}
