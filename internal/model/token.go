package model

import (
	"time"
)

// TokenKind distinguishes the two single-use token flows
type TokenKind string

const (
	TokenKindEmailVerification TokenKind = "email_verification"
	TokenKindPasswordReset     TokenKind = "password_reset"
)

// Token represents a single-use, time-limited secret delivered out of band.
// Once redeemed, Used stays true regardless of the outer action's outcome.
type Token struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"type:varchar(36);index;not null"`
	Secret    string    `json:"-" gorm:"type:varchar(64);uniqueIndex;not null"`
	Kind      TokenKind `json:"kind" gorm:"type:varchar(32);not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	Used      bool      `json:"used" gorm:"default:false"`
}

// TableName returns the table name for Token
func (Token) TableName() string {
	return "tokens"
}

// IsRedeemable checks if the token can be redeemed for the expected kind
// at the given instant
func (t *Token) IsRedeemable(kind TokenKind, now time.Time) bool {
	if t.Used {
		return false
	}
	if t.Kind != kind {
		return false
	}
	return now.Before(t.ExpiresAt)
}
