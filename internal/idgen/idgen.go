package idgen

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
)

const (
	// Alphabet is the URL-safe character set for generated identifiers
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"
	// SlugLength is the length of generated link slugs
	SlugLength = 8
	// SecretLength is the length of generated token secrets
	SecretLength = 32
	// MaxSlugLength bounds caller-chosen custom slugs
	MaxSlugLength = 64
)

// Generator produces cryptographically random, URL-safe identifiers.
// The generator alone does not guarantee uniqueness; callers verify
// against the store before committing.
type Generator struct {
	entropy io.Reader
}

// NewGenerator creates a new Generator backed by crypto/rand
func NewGenerator() *Generator {
	return &Generator{entropy: rand.Reader}
}

// NewGeneratorWithEntropy creates a Generator with a custom entropy source,
// useful for deterministic tests
func NewGeneratorWithEntropy(entropy io.Reader) *Generator {
	return &Generator{entropy: entropy}
}

// Generate produces a random string of the requested length drawn from
// Alphabet. The alphabet holds 64 characters, so each random byte maps to
// one character without bias.
func (g *Generator) Generate(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("invalid identifier length: %d", length)
	}

	buf := make([]byte, length)
	if _, err := io.ReadFull(g.entropy, buf); err != nil {
		return "", fmt.Errorf("failed to read entropy: %w", err)
	}

	for i, b := range buf {
		buf[i] = Alphabet[b&63]
	}
	return string(buf), nil
}

// NewSlug generates a random link slug
func (g *Generator) NewSlug() (string, error) {
	return g.Generate(SlugLength)
}

// NewSecret generates a random token secret
func (g *Generator) NewSecret() (string, error) {
	return g.Generate(SecretLength)
}

// IsValidSlug checks whether a string is usable as a link slug
func IsValidSlug(s string) bool {
	if len(s) == 0 || len(s) > MaxSlugLength {
		return false
	}
	for _, c := range s {
		if !strings.ContainsRune(Alphabet, c) {
			return false
		}
	}
	return true
}
