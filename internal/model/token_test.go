package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToken_TableName(t *testing.T) {
	tok := Token{}
	assert.Equal(t, "tokens", tok.TableName())
}

func TestToken_IsRedeemable(t *testing.T) {
	now := time.Now()
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	tests := []struct {
		name      string
		kind      TokenKind
		expected  TokenKind
		used      bool
		expiresAt time.Time
		want      bool
	}{
		{
			name:      "fresh verification token",
			kind:      TokenKindEmailVerification,
			expected:  TokenKindEmailVerification,
			expiresAt: future,
			want:      true,
		},
		{
			name:      "fresh reset token",
			kind:      TokenKindPasswordReset,
			expected:  TokenKindPasswordReset,
			expiresAt: future,
			want:      true,
		},
		{
			name:      "already used",
			kind:      TokenKindPasswordReset,
			expected:  TokenKindPasswordReset,
			used:      true,
			expiresAt: future,
			want:      false,
		},
		{
			name:      "expired",
			kind:      TokenKindEmailVerification,
			expected:  TokenKindEmailVerification,
			expiresAt: past,
			want:      false,
		},
		{
			name:      "kind mismatch",
			kind:      TokenKindEmailVerification,
			expected:  TokenKindPasswordReset,
			expiresAt: future,
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := &Token{
				Kind:      tt.kind,
				Used:      tt.used,
				ExpiresAt: tt.expiresAt,
			}
			assert.Equal(t, tt.want, tok.IsRedeemable(tt.expected, now))
		})
	}
}

func TestPlan_AtLeast(t *testing.T) {
	tests := []struct {
		name     string
		plan     Plan
		required Plan
		want     bool
	}{
		{"free meets free", PlanFree, PlanFree, true},
		{"free below pro", PlanFree, PlanPro, false},
		{"free below business", PlanFree, PlanBusiness, false},
		{"pro meets free", PlanPro, PlanFree, true},
		{"pro meets pro", PlanPro, PlanPro, true},
		{"pro below business", PlanPro, PlanBusiness, false},
		{"business meets everything", PlanBusiness, PlanBusiness, true},
		{"unknown plan ranks lowest", Plan("enterprise"), PlanPro, false},
		{"unknown plan still meets free", Plan("enterprise"), PlanFree, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.plan.AtLeast(tt.required))
		})
	}
}

func TestPlan_Valid(t *testing.T) {
	assert.True(t, PlanFree.Valid())
	assert.True(t, PlanPro.Valid())
	assert.True(t, PlanBusiness.Valid())
	assert.False(t, Plan("enterprise").Valid())
	assert.False(t, Plan("").Valid())
}
