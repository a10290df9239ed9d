package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("not-the-server-key"))
	require.NoError(t, err)
	return raw
}

func TestInspectReadsClaims(t *testing.T) {
	t.Parallel()

	expiresAt := time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)
	raw := signed(t, jwt.MapClaims{
		"sub":   "42",
		"email": "rina@example.com",
		"exp":   expiresAt.Unix(),
	})

	claims, err := Inspector{}.Inspect(raw)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "rina@example.com", claims.Email)
	assert.True(t, expiresAt.Equal(claims.ExpiresAt))
	assert.True(t, claims.Expired(expiresAt))
	assert.False(t, claims.Expired(expiresAt.Add(-time.Second)))
}

func TestInspectUsesEmailSubject(t *testing.T) {
	t.Parallel()

	claims, err := Inspector{}.Inspect(signed(t, jwt.MapClaims{"sub": "andi@example.com"}))
	require.NoError(t, err)
	assert.Equal(t, "andi@example.com", claims.Email)
	assert.True(t, claims.ExpiresAt.IsZero())
	assert.False(t, claims.Expired(time.Now()))
}

func TestInspectRejectsMalformedTokens(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "   ", "opaque-token", "a.b.c"} {
		_, err := Inspector{}.Inspect(raw)
		assert.Error(t, err, raw)
	}
}
