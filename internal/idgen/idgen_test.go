package idgen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	g := NewGenerator()

	t.Run("requested length", func(t *testing.T) {
		for _, length := range []int{1, 8, 32, 64} {
			s, err := g.Generate(length)
			require.NoError(t, err)
			assert.Len(t, s, length)
		}
	})

	t.Run("alphabet only", func(t *testing.T) {
		s, err := g.Generate(256)
		require.NoError(t, err)
		for _, c := range s {
			assert.True(t, strings.ContainsRune(Alphabet, c), "unexpected character %q", c)
		}
	})

	t.Run("invalid length", func(t *testing.T) {
		_, err := g.Generate(0)
		assert.Error(t, err)

		_, err = g.Generate(-1)
		assert.Error(t, err)
	})

	t.Run("no trivial repeats", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 1000; i++ {
			s, err := g.Generate(SlugLength)
			require.NoError(t, err)
			assert.False(t, seen[s], "duplicate identifier %q", s)
			seen[s] = true
		}
	})
}

func TestGenerator_Deterministic(t *testing.T) {
	// Byte values map through the lower 6 bits
	g := NewGeneratorWithEntropy(bytes.NewReader([]byte{0, 1, 63, 64, 255}))

	s, err := g.Generate(5)
	require.NoError(t, err)
	assert.Equal(t, "AB-A-", s)
}

func TestGenerator_EntropyExhausted(t *testing.T) {
	g := NewGeneratorWithEntropy(bytes.NewReader([]byte{1, 2}))

	_, err := g.Generate(8)
	assert.Error(t, err)
}

func TestGenerator_NewSlugAndSecret(t *testing.T) {
	g := NewGenerator()

	slug, err := g.NewSlug()
	require.NoError(t, err)
	assert.Len(t, slug, SlugLength)

	secret, err := g.NewSecret()
	require.NoError(t, err)
	assert.Len(t, secret, SecretLength)
}

func TestIsValidSlug(t *testing.T) {
	tests := []struct {
		name string
		slug string
		want bool
	}{
		{"generated shape", "aB3_-xYz", true},
		{"single character", "a", true},
		{"empty", "", false},
		{"too long", strings.Repeat("a", MaxSlugLength+1), false},
		{"max length", strings.Repeat("a", MaxSlugLength), true},
		{"slash", "a/b", false},
		{"space", "a b", false},
		{"unicode", "café", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidSlug(tt.slug))
		})
	}
}
