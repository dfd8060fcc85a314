package model

import (
	"time"
)

// Link represents a short link entity
type Link struct {
	Slug           string     `json:"slug" gorm:"primaryKey;type:varchar(64)"`
	OriginalURL    string     `json:"original_url" gorm:"type:varchar(2048);not null"`
	CustomSlug     bool       `json:"custom_slug" gorm:"default:false"`
	PasswordDigest string     `json:"-" gorm:"type:varchar(128)"`
	CreatorIP      string     `json:"-" gorm:"type:varchar(64)"`
	CreatorID      string     `json:"-" gorm:"type:varchar(36);index"`
	MaxViews       *int64     `json:"max_views"`
	CurrentViews   int64      `json:"current_views" gorm:"not null;default:0"`
	CreatedAt      time.Time  `json:"created_at" gorm:"autoCreateTime"`
	ExpiresAt      *time.Time `json:"expires_at" gorm:"index"`
	IsActive       bool       `json:"is_active" gorm:"default:true;index"`
}

// TableName returns the table name for Link
func (Link) TableName() string {
	return "links"
}

// HasPassword reports whether the link is password protected
func (l *Link) HasPassword() bool {
	return l.PasswordDigest != ""
}

// IsRedeemable checks if the link can still be redeemed at the given instant.
// A link is redeemable while it is active, not past its expiration and not
// at its view cap.
func (l *Link) IsRedeemable(now time.Time) bool {
	if !l.IsActive {
		return false
	}
	if l.ExpiresAt != nil && now.After(*l.ExpiresAt) {
		return false
	}
	if l.MaxViews != nil && l.CurrentViews >= *l.MaxViews {
		return false
	}
	return true
}

// Visitor carries the request attributes recorded on redemption
type Visitor struct {
	IP        string
	UserAgent string
	Referer   string
}

// CreateLinkRequest represents the request to create a short link
type CreateLinkRequest struct {
	URL        string `json:"url" binding:"required"`
	ExpiresIn  *int64 `json:"expires_in"`
	MaxViews   *int64 `json:"max_views"`
	Password   string `json:"password"`
	CustomSlug string `json:"custom_slug"`
}

// CreateLinkResponse represents the response of short link creation
type CreateLinkResponse struct {
	Slug        string     `json:"slug"`
	ShortURL    string     `json:"short_url"`
	OriginalURL string     `json:"original_url"`
	CreatedAt   time.Time  `json:"created_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	MaxViews    *int64     `json:"max_views,omitempty"`
	HasPassword bool       `json:"has_password"`
}

// RedeemStatus classifies the outcome of a redemption attempt
type RedeemStatus int

const (
	RedeemNotFound RedeemStatus = iota
	RedeemExpired
	RedeemPasswordRequired
	RedeemPasswordIncorrect
	RedeemSuccess
)

// RedeemResult is the structured outcome of a redemption. OriginalURL is
// set only on RedeemSuccess.
type RedeemResult struct {
	Status      RedeemStatus
	OriginalURL string
}
