package ports

import "context"

type ChatAPI interface {
	StartSession(ctx context.Context, token string) (string, error)
	// SendMessage returns the reply text and whether the response carried one.
	SendMessage(ctx context.Context, token string, sessionID string, message string) (string, bool, error)
	Summary(ctx context.Context, token string, sessionID string) (string, error)
}
