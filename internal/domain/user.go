package domain

import "time"

type Credentials struct {
	Email    string
	Password string
}

type Registration struct {
	Name     string
	Email    string
	Password string
}

type LoginResult struct {
	AccessToken string
	User        string
}

// TokenClaims holds what can be read from the bearer token without verifying it.
type TokenClaims struct {
	Subject   string
	Email     string
	ExpiresAt time.Time
}

func (c TokenClaims) Expired(now time.Time) bool {
	if c.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(c.ExpiresAt)
}

type Profile struct {
	Username  string
	LoggedIn  bool
	Claims    TokenClaims
	Expired   bool
	SessionID string
}
