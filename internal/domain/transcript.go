package domain

import "time"

// TranscriptEntry is one successful exchange within a session.
type TranscriptEntry struct {
	SessionID string
	Message   string
	Reply     string
	SentAt    time.Time
}

type SessionRecord struct {
	ID           string
	StartedAt    time.Time
	LastActivity time.Time
	MessageCount int
}
