package ports

import "context"

// SessionStore holds durable string slots such as the bearer token and the
// chat session id. Get returns domain.ErrSlotEmpty when a slot was never set
// or has been cleared. Clear is idempotent.
type SessionStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Clear(ctx context.Context, key string) error
}
