package sqlite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/doctorai-cli/internal/domain"
	"github.com/bnema/doctorai-cli/internal/ports"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // sqlite driver
)

const (
	historyDirMode = 0o700
	// fixed width so stored timestamps sort lexically
	timeLayout = "2006-01-02T15:04:05.000000000Z"
)

// Repository keeps the local chat transcript in a sqlite database.
type Repository struct {
	db     *sqlx.DB
	logger *slog.Logger
}

type Option func(*Repository)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Repository) {
		if logger != nil {
			r.logger = logger
		}
	}
}

var _ ports.TranscriptRepository = (*Repository)(nil)

type entryRow struct {
	SessionID string `db:"session_id"`
	Message   string `db:"message"`
	Reply     string `db:"reply"`
	SentAt    string `db:"sent_at"`
}

type sessionRow struct {
	SessionID    string `db:"session_id"`
	StartedAt    string `db:"started_at"`
	LastActivity string `db:"last_activity"`
	MessageCount int    `db:"message_count"`
}

// Open creates the database file if needed and prepares the schema.
func Open(path string, opts ...Option) (*Repository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("history path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), historyDirMode); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	repo, err := NewRepository(db, opts...)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func NewRepository(db *sqlx.DB, opts ...Option) (*Repository, error) {
	createTranscriptTable := `
	CREATE TABLE IF NOT EXISTS transcript (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		message TEXT NOT NULL,
		reply TEXT NOT NULL,
		sent_at TEXT NOT NULL
	)
	`
	if _, err := db.Exec(createTranscriptTable); err != nil {
		return nil, fmt.Errorf("create transcript table: %w", err)
	}
	if _, err := db.Exec("CREATE INDEX IF NOT EXISTS transcript_session_id ON transcript (session_id)"); err != nil {
		return nil, fmt.Errorf("create transcript index: %w", err)
	}

	repo := &Repository{db: db, logger: slog.Default()}
	for _, opt := range opts {
		opt(repo)
	}
	return repo, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) Append(ctx context.Context, entry domain.TranscriptEntry) error {
	if strings.TrimSpace(entry.SessionID) == "" {
		return errors.New("transcript entry session id is empty")
	}
	if entry.SentAt.IsZero() {
		entry.SentAt = time.Now()
	}

	insertQuery := "INSERT INTO transcript (session_id, message, reply, sent_at) VALUES (?, ?, ?, ?)"
	if _, err := r.db.ExecContext(ctx, insertQuery, entry.SessionID, entry.Message, entry.Reply, formatTime(entry.SentAt)); err != nil {
		return fmt.Errorf("insert transcript entry for session %s: %w", entry.SessionID, err)
	}

	r.logger.Debug("transcript entry added",
		slog.String("session_id", entry.SessionID),
		slog.Time("sent_at", entry.SentAt),
	)
	return nil
}

func (r *Repository) Entries(ctx context.Context, sessionID string) ([]domain.TranscriptEntry, error) {
	var rows []entryRow
	err := r.db.SelectContext(ctx, &rows,
		"SELECT session_id, message, reply, sent_at FROM transcript WHERE session_id = ? ORDER BY id ASC", sessionID)
	if err != nil {
		return nil, fmt.Errorf("read transcript for session %s: %w", sessionID, err)
	}

	entries := make([]domain.TranscriptEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.TranscriptEntry{
			SessionID: row.SessionID,
			Message:   row.Message,
			Reply:     row.Reply,
			SentAt:    parseTime(row.SentAt),
		})
	}
	return entries, nil
}

// ListSessions returns every recorded session, most recently active first.
func (r *Repository) ListSessions(ctx context.Context) ([]domain.SessionRecord, error) {
	var rows []sessionRow
	err := r.db.SelectContext(ctx, &rows, `
	SELECT session_id,
		MIN(sent_at) AS started_at,
		MAX(sent_at) AS last_activity,
		COUNT(*) AS message_count
	FROM transcript
	GROUP BY session_id
	ORDER BY last_activity DESC`)
	if err != nil {
		return nil, fmt.Errorf("list transcript sessions: %w", err)
	}

	records := make([]domain.SessionRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, domain.SessionRecord{
			ID:           row.SessionID,
			StartedAt:    parseTime(row.StartedAt),
			LastActivity: parseTime(row.LastActivity),
			MessageCount: row.MessageCount,
		})
	}

	r.logger.Debug("read transcript sessions", slog.Int("count", len(records)))
	return records, nil
}

func (r *Repository) CountMessages(ctx context.Context, sessionID string) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM transcript WHERE session_id = ?", sessionID); err != nil {
		return 0, fmt.Errorf("count transcript entries for session %s: %w", sessionID, err)
	}
	return count, nil
}

func parseTime(raw string) time.Time {
	parsed, err := time.Parse(timeLayout, raw)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

func formatTime(value time.Time) string {
	return value.UTC().Format(timeLayout)
}
