package session

import (
	"testing"
	"time"

	"github.com/Teknetic/templink/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *model.User {
	return &model.User{
		ID:    "user-1",
		Email: "a@b.com",
		Plan:  model.PlanPro,
	}
}

func TestJWTSigner_SignAndVerify(t *testing.T) {
	signer := NewJWTSigner("test-secret", 168*time.Hour)

	credential, err := signer.Sign(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, credential)

	claims, err := signer.Verify(credential)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, model.PlanPro, claims.Plan)
}

func TestJWTSigner_Verify_WrongSecret(t *testing.T) {
	signer := NewJWTSigner("test-secret", time.Hour)
	other := NewJWTSigner("different-secret", time.Hour)

	credential, err := signer.Sign(testUser())
	require.NoError(t, err)

	_, err = other.Verify(credential)
	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestJWTSigner_Verify_Expired(t *testing.T) {
	signer := NewJWTSigner("test-secret", time.Hour)
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	signer.now = func() time.Time { return issuedAt }
	credential, err := signer.Sign(testUser())
	require.NoError(t, err)

	// Still valid just before expiry
	signer.now = func() time.Time { return issuedAt.Add(59 * time.Minute) }
	_, err = signer.Verify(credential)
	assert.NoError(t, err)

	// Invalid after expiry
	signer.now = func() time.Time { return issuedAt.Add(61 * time.Minute) }
	_, err = signer.Verify(credential)
	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestJWTSigner_Verify_Garbage(t *testing.T) {
	signer := NewJWTSigner("test-secret", time.Hour)

	for _, credential := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := signer.Verify(credential)
		assert.ErrorIs(t, err, ErrSessionInvalid, "credential %q", credential)
	}
}
