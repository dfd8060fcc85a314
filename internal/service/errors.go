package service

import "errors"

var (
	// ErrInvalidURL is returned when the destination URL is not an absolute URL
	ErrInvalidURL = errors.New("invalid URL")
	// ErrInvalidSlug is returned when a custom slug contains unusable characters
	ErrInvalidSlug = errors.New("invalid custom slug")
	// ErrSlugTaken is returned when a custom slug is already reserved
	ErrSlugTaken = errors.New("custom slug already taken")
	// ErrSlugGeneration is returned when no free slug could be generated
	ErrSlugGeneration = errors.New("could not generate a unique slug")
	// ErrLinkNotFound is returned when no active link matches a slug
	ErrLinkNotFound = errors.New("link not found")
	// ErrNotLinkOwner is returned when a caller tries to manage a link
	// created by someone else
	ErrNotLinkOwner = errors.New("not the link owner")

	// ErrInvalidEmail is returned when an email fails the syntactic check
	ErrInvalidEmail = errors.New("invalid email format")
	// ErrPasswordTooWeak is returned when a password is below the minimum length
	ErrPasswordTooWeak = errors.New("password too weak")
	// ErrEmailTaken is returned when an email belongs to any user row, active or not
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned for unknown email and wrong password alike
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserNotFound is returned when no active user matches an id
	ErrUserNotFound = errors.New("user not found")
	// ErrPasswordIncorrect is returned when the current password fails verification
	ErrPasswordIncorrect = errors.New("current password is incorrect")
	// ErrAlreadyVerified is returned when requesting verification for a verified email
	ErrAlreadyVerified = errors.New("email already verified")
	// ErrTokenInvalid is returned for unknown, expired, mismatched and spent tokens alike
	ErrTokenInvalid = errors.New("invalid or expired token")
)
