package ports

import (
	"context"

	"github.com/bnema/doctorai-cli/internal/domain"
)

type AuthAPI interface {
	Login(ctx context.Context, credentials domain.Credentials) (domain.LoginResult, error)
	Register(ctx context.Context, registration domain.Registration) error
}

type TokenInspector interface {
	Inspect(token string) (domain.TokenClaims, error)
}
