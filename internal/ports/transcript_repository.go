package ports

import (
	"context"

	"github.com/bnema/doctorai-cli/internal/domain"
)

type TranscriptRepository interface {
	Append(ctx context.Context, entry domain.TranscriptEntry) error
	Entries(ctx context.Context, sessionID string) ([]domain.TranscriptEntry, error)
	ListSessions(ctx context.Context) ([]domain.SessionRecord, error)
	CountMessages(ctx context.Context, sessionID string) (int, error)
}
