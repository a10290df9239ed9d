package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/bnema/doctorai-cli/internal/domain"
	"github.com/bnema/doctorai-cli/internal/ports"
)

const (
	msgSessionStartFailed = "Failed to start session"
	msgMessageSendFailed  = "Failed to send messages"
	msgSummaryFailed      = "Failed to fetch summary"
	msgEmptyMessage       = "Please describe your symptom."
	msgNotLoggedIn        = "Token not loaded. Please login again."
	msgBusy               = "Please wait for the current request to finish."
)

// SessionManager owns the chat session id. It decides when a new server side
// session is started, persists the id and tags every outgoing message with it.
//
// Network bound operations are mutually exclusive: while one is outstanding,
// any other returns domain.ErrOperationInProgress instead of queueing.
type SessionManager struct {
	chat        ports.ChatAPI
	store       ports.SessionStore
	transcripts ports.TranscriptRepository
	clock       ports.Clock
	logger      *slog.Logger

	// busy guards network bound operations, mu guards the fields below.
	busy       sync.Mutex
	mu         sync.Mutex
	token      string
	session    domain.Session
	generation uint64
}

type SessionManagerOption func(*SessionManager)

func WithTranscripts(repo ports.TranscriptRepository) SessionManagerOption {
	return func(m *SessionManager) {
		m.transcripts = repo
	}
}

func WithLogger(logger *slog.Logger) SessionManagerOption {
	return func(m *SessionManager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func WithClock(clock ports.Clock) SessionManagerOption {
	return func(m *SessionManager) {
		if clock != nil {
			m.clock = clock
		}
	}
}

func NewSessionManager(chat ports.ChatAPI, store ports.SessionStore, opts ...SessionManagerOption) *SessionManager {
	m := &SessionManager{
		chat:   chat,
		store:  store,
		clock:  ports.SystemClock{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Restore reads the bearer token and any previously persisted session id from
// the durable store. Read failures other than an empty slot are returned as
// domain.ErrStorage; the manager stays usable in memory either way.
func (m *SessionManager) Restore(ctx context.Context) error {
	var errs []error

	token, err := m.store.Get(ctx, domain.SlotToken)
	if err != nil && !errors.Is(err, domain.ErrSlotEmpty) {
		errs = append(errs, fmt.Errorf("load token: %w", err))
	}

	sessionID, err := m.store.Get(ctx, domain.SlotSessionID)
	if err != nil && !errors.Is(err, domain.ErrSlotEmpty) {
		errs = append(errs, fmt.Errorf("load session id: %w", err))
	}
	sessionID = strings.TrimSpace(sessionID)

	count := 0
	if sessionID != "" && m.transcripts != nil {
		count, err = m.transcripts.CountMessages(ctx, sessionID)
		if err != nil {
			errs = append(errs, fmt.Errorf("count session messages: %w", err))
			count = 0
		}
	}

	m.mu.Lock()
	m.token = strings.TrimSpace(token)
	m.session = domain.Session{ID: sessionID, MessageCount: count}
	m.mu.Unlock()

	if len(errs) > 0 {
		err := errors.Join(errs...)
		m.logger.Warn("restore session state", slog.Any("error", err))
		return domain.NewFailure(domain.ErrStorage, "Failed to load saved session", err)
	}

	m.logger.Debug("session state restored",
		slog.Bool("has_token", token != ""),
		slog.String("session_id", sessionID),
		slog.Int("message_count", count),
	)
	return nil
}

// SetToken replaces the bearer credential used for outgoing requests.
func (m *SessionManager) SetToken(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = strings.TrimSpace(token)
}

func (m *SessionManager) Session() domain.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

func (m *SessionManager) State() domain.SessionState {
	return m.Session().State()
}

func (m *SessionManager) SummaryEligible() bool {
	return m.Session().SummaryEligible()
}

// EnsureSession returns the current session id, starting a remote session
// first when none is held.
func (m *SessionManager) EnsureSession(ctx context.Context) (string, error) {
	if !m.busy.TryLock() {
		return "", domain.NewFailure(domain.ErrOperationInProgress, msgBusy, nil)
	}
	defer m.busy.Unlock()

	return m.ensureSession(ctx)
}

func (m *SessionManager) ensureSession(ctx context.Context) (string, error) {
	m.mu.Lock()
	current := m.session.ID
	token := m.token
	generation := m.generation
	m.mu.Unlock()

	if current != "" {
		return current, nil
	}
	if token == "" {
		return "", domain.NewFailure(domain.ErrSessionStart, msgNotLoggedIn, domain.ErrNotLoggedIn)
	}

	sessionID, err := m.chat.StartSession(ctx, token)
	if err != nil {
		m.logger.Debug("start session failed", slog.Any("error", err))
		return "", domain.NewFailure(domain.ErrSessionStart, domain.RemoteMessage(err, msgSessionStartFailed), err)
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return "", domain.NewFailure(domain.ErrSessionStart, msgSessionStartFailed, errors.New("start session response missing session_id"))
	}

	m.mu.Lock()
	if m.generation != generation {
		// reset while the start call was outstanding
		m.mu.Unlock()
		return "", domain.NewFailure(domain.ErrSessionStart, msgSessionStartFailed, errors.New("session was reset while starting"))
	}
	m.session = domain.Session{ID: sessionID}
	m.mu.Unlock()

	if err := m.store.Set(ctx, domain.SlotSessionID, sessionID); err != nil {
		m.logger.Warn("persist session id",
			slog.String("session_id", sessionID),
			slog.Any("error", fmt.Errorf("%w: %w", domain.ErrStorage, err)),
		)
	}

	m.mu.Lock()
	resetWhilePersisting := m.generation != generation
	m.mu.Unlock()
	if resetWhilePersisting {
		// the reset cleared the slot before the id above was written
		if err := m.store.Clear(ctx, domain.SlotSessionID); err != nil {
			m.logger.Warn("clear session id written after reset",
				slog.String("session_id", sessionID),
				slog.Any("error", fmt.Errorf("%w: %w", domain.ErrStorage, err)),
			)
		}
		return "", domain.NewFailure(domain.ErrSessionStart, msgSessionStartFailed, errors.New("session was reset while starting"))
	}

	m.logger.Debug("session started", slog.String("session_id", sessionID))
	return sessionID, nil
}

// SendMessage sends text tagged with the current session id, starting a
// session first when needed, and returns the assistant reply.
func (m *SessionManager) SendMessage(ctx context.Context, text string) (string, error) {
	message := strings.TrimSpace(text)
	if message == "" {
		return "", domain.NewFailure(domain.ErrValidation, msgEmptyMessage, nil)
	}

	if !m.busy.TryLock() {
		return "", domain.NewFailure(domain.ErrOperationInProgress, msgBusy, nil)
	}
	defer m.busy.Unlock()

	sessionID, err := m.ensureSession(ctx)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	token := m.token
	generation := m.generation
	current := m.session.ID
	m.mu.Unlock()

	if current != sessionID {
		return "", domain.NewFailure(domain.ErrMessageSend, msgMessageSendFailed, errors.New("session was reset before sending"))
	}
	if token == "" {
		return "", domain.NewFailure(domain.ErrMessageSend, msgNotLoggedIn, domain.ErrNotLoggedIn)
	}

	reply, ok, err := m.chat.SendMessage(ctx, token, sessionID, message)
	if err != nil {
		m.logger.Debug("send message failed", slog.String("session_id", sessionID), slog.Any("error", err))
		return "", domain.NewFailure(domain.ErrMessageSend, domain.RemoteMessage(err, msgMessageSendFailed), err)
	}
	if !ok || strings.TrimSpace(reply) == "" {
		reply = domain.NoResponsePlaceholder
	}

	m.mu.Lock()
	if m.generation == generation && m.session.ID == sessionID {
		m.session.MessageCount++
	}
	count := m.session.MessageCount
	m.mu.Unlock()

	m.recordExchange(ctx, sessionID, message, reply)

	m.logger.Debug("message sent",
		slog.String("session_id", sessionID),
		slog.Int("message_count", count),
	)
	return reply, nil
}

func (m *SessionManager) recordExchange(ctx context.Context, sessionID, message, reply string) {
	if m.transcripts == nil {
		return
	}

	err := m.transcripts.Append(ctx, domain.TranscriptEntry{
		SessionID: sessionID,
		Message:   message,
		Reply:     reply,
		SentAt:    m.clock.Now().UTC(),
	})
	if err != nil {
		m.logger.Warn("append transcript",
			slog.String("session_id", sessionID),
			slog.Any("error", fmt.Errorf("%w: %w", domain.ErrStorage, err)),
		)
	}
}

// ResetSession forgets the current session. The in-memory state is always
// cleared; a failure to clear the durable copy is returned as
// domain.ErrStorage.
func (m *SessionManager) ResetSession(ctx context.Context) error {
	m.mu.Lock()
	previous := m.session.ID
	m.session = domain.Session{}
	m.generation++
	m.mu.Unlock()

	if err := m.store.Clear(ctx, domain.SlotSessionID); err != nil {
		m.logger.Warn("clear persisted session id", slog.Any("error", err))
		return domain.NewFailure(domain.ErrStorage, "Failed to clear session ID", err)
	}

	m.logger.Debug("session reset", slog.String("previous_session_id", previous))
	return nil
}

// Summary asks the remote for a summary of the current session. It is only
// available once SummaryEligible reports true.
func (m *SessionManager) Summary(ctx context.Context) (string, error) {
	if !m.busy.TryLock() {
		return "", domain.NewFailure(domain.ErrOperationInProgress, msgBusy, nil)
	}
	defer m.busy.Unlock()

	m.mu.Lock()
	session := m.session
	token := m.token
	m.mu.Unlock()

	if !session.SummaryEligible() {
		return "", domain.NewFailure(domain.ErrSummaryNotReady,
			fmt.Sprintf("A summary is available after %d messages (sent %d).", domain.SummaryThreshold, session.MessageCount), nil)
	}
	if token == "" {
		return "", domain.NewFailure(domain.ErrSummary, msgNotLoggedIn, domain.ErrNotLoggedIn)
	}

	summary, err := m.chat.Summary(ctx, token, session.ID)
	if err != nil {
		return "", domain.NewFailure(domain.ErrSummary, domain.RemoteMessage(err, msgSummaryFailed), err)
	}

	return summary, nil
}
