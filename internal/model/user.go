package model

import (
	"time"
)

// Plan is the account capability tier
type Plan string

const (
	PlanFree     Plan = "free"
	PlanPro      Plan = "pro"
	PlanBusiness Plan = "business"
)

// planLevels maps each tier to its ordinal. Unknown plans rank lowest.
var planLevels = map[Plan]int{
	PlanFree:     0,
	PlanPro:      1,
	PlanBusiness: 2,
}

// Level returns the ordinal of the plan tier
func (p Plan) Level() int {
	return planLevels[p]
}

// AtLeast reports whether the plan meets the required tier
func (p Plan) AtLeast(required Plan) bool {
	return p.Level() >= required.Level()
}

// Valid reports whether the plan names a known tier
func (p Plan) Valid() bool {
	_, ok := planLevels[p]
	return ok
}

// User represents a registered account. Accounts are soft-deleted only;
// email uniqueness holds across active and inactive rows.
type User struct {
	ID             string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Email          string     `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordDigest string     `json:"-" gorm:"type:varchar(128);not null"`
	Name           string     `json:"name,omitempty" gorm:"type:varchar(255)"`
	Plan           Plan       `json:"plan" gorm:"type:varchar(16);default:'free'"`
	EmailVerified  bool       `json:"email_verified" gorm:"default:false"`
	CreatedAt      time.Time  `json:"created_at" gorm:"autoCreateTime"`
	LastLogin      *time.Time `json:"last_login,omitempty"`
	IsActive       bool       `json:"-" gorm:"default:true"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// UserStats summarizes a user's link activity
type UserStats struct {
	TotalLinks int64 `json:"total_links"`
	TotalViews int64 `json:"total_views"`
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the user and a signed session credential
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// ForgotPasswordRequest represents a password reset request
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// ResetPasswordRequest redeems a reset token for a new password
type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest represents a profile update; nil fields are untouched
type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// DeleteAccountRequest represents an account deactivation request
type DeleteAccountRequest struct {
	Password string `json:"password" binding:"required"`
}
