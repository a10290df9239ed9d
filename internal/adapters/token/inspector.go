package token

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/doctorai-cli/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// Inspector reads claims from the bearer token without verifying its
// signature. The backend stays the authority on validity; the claims only
// drive local display and the expiry hint.
type Inspector struct{}

func (Inspector) Inspect(raw string) (domain.TokenClaims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.TokenClaims{}, errors.New("token is empty")
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return domain.TokenClaims{}, fmt.Errorf("parse token: %w", err)
	}

	var result domain.TokenClaims
	if subject, err := claims.GetSubject(); err == nil {
		result.Subject = subject
	}
	if email, ok := claims["email"].(string); ok {
		result.Email = email
	}
	if result.Email == "" && strings.Contains(result.Subject, "@") {
		result.Email = result.Subject
	}

	expiresAt, err := claims.GetExpirationTime()
	if err != nil {
		return domain.TokenClaims{}, fmt.Errorf("read token expiry: %w", err)
	}
	if expiresAt != nil {
		result.ExpiresAt = expiresAt.Time
	}

	return result, nil
}
