package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bnema/doctorai-cli/internal/domain"
	"github.com/bnema/doctorai-cli/internal/ports"
)

const (
	msgLoginFieldsRequired    = "Email and password are required."
	msgRegisterFieldsRequired = "All fields are required."
	msgUserNotFound           = "Email or username not found."
	msgIncorrectPassword      = "Incorrect password."
	msgLoginFailed            = "An error occurred."
	msgEmailTaken             = "Email is already registered."
	msgRegisterFailed         = "An error occurred while registering."
	msgServerUnreachable      = "Cannot connect to server."
	msgSessionExpired         = "Session expired. Please login again."
)

type AuthService struct {
	api       ports.AuthAPI
	store     ports.SessionStore
	inspector ports.TokenInspector
	sessions  *SessionManager
	clock     ports.Clock
	logger    *slog.Logger
}

type AuthServiceOption func(*AuthService)

func WithAuthLogger(logger *slog.Logger) AuthServiceOption {
	return func(s *AuthService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewAuthService(api ports.AuthAPI, store ports.SessionStore, inspector ports.TokenInspector, sessions *SessionManager, clock ports.Clock, opts ...AuthServiceOption) *AuthService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	s := &AuthService{
		api:       api,
		store:     store,
		inspector: inspector,
		sessions:  sessions,
		clock:     clock,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Login authenticates and stores the bearer token and username. It returns the
// name to greet the user with.
func (s *AuthService) Login(ctx context.Context, credentials domain.Credentials) (string, error) {
	credentials.Email = strings.TrimSpace(credentials.Email)
	if credentials.Email == "" || credentials.Password == "" {
		return "", domain.NewFailure(domain.ErrValidation, msgLoginFieldsRequired, nil)
	}

	result, err := s.api.Login(ctx, credentials)
	if err != nil {
		return "", domain.NewFailure(domain.ErrAuthentication, loginFailureMessage(err), err)
	}
	token := strings.TrimSpace(result.AccessToken)
	if token == "" {
		return "", domain.NewFailure(domain.ErrAuthentication, msgLoginFailed, errors.New("login response missing access_token"))
	}

	username := strings.TrimSpace(result.User)
	if username == "" {
		username = credentials.Email
	}

	if err := s.store.Set(ctx, domain.SlotToken, token); err != nil {
		return "", domain.NewFailure(domain.ErrStorage, "Failed to save token", err)
	}
	if err := s.store.Set(ctx, domain.SlotUsername, username); err != nil {
		s.logger.Warn("persist username", slog.Any("error", err))
	}
	if s.sessions != nil {
		s.sessions.SetToken(token)
	}

	return username, nil
}

func loginFailureMessage(err error) string {
	var remoteErr *domain.RemoteError
	if !errors.As(err, &remoteErr) {
		return msgServerUnreachable
	}

	message := strings.ToLower(remoteErr.Message)
	switch {
	case strings.Contains(message, "email"), strings.Contains(message, "user"):
		return msgUserNotFound
	case strings.Contains(message, "password"):
		return msgIncorrectPassword
	case remoteErr.Message != "":
		return remoteErr.Message
	default:
		return msgLoginFailed
	}
}

func (s *AuthService) Register(ctx context.Context, registration domain.Registration) error {
	registration.Name = strings.TrimSpace(registration.Name)
	registration.Email = strings.TrimSpace(registration.Email)
	if registration.Name == "" || registration.Email == "" || registration.Password == "" {
		return domain.NewFailure(domain.ErrValidation, msgRegisterFieldsRequired, nil)
	}

	if err := s.api.Register(ctx, registration); err != nil {
		return domain.NewFailure(domain.ErrRegistration, registerFailureMessage(err), err)
	}

	return nil
}

func registerFailureMessage(err error) string {
	var remoteErr *domain.RemoteError
	if !errors.As(err, &remoteErr) {
		return msgServerUnreachable
	}

	switch {
	case strings.Contains(strings.ToLower(remoteErr.Message), "email"):
		return msgEmailTaken
	case remoteErr.Message != "":
		return remoteErr.Message
	default:
		return msgRegisterFailed
	}
}

// Logout forgets the credential, the username and the chat session.
func (s *AuthService) Logout(ctx context.Context) error {
	var errs []error
	for _, slot := range []string{domain.SlotToken, domain.SlotUsername} {
		if err := s.store.Clear(ctx, slot); err != nil {
			errs = append(errs, fmt.Errorf("clear %s: %w", slot, err))
		}
	}
	if s.sessions != nil {
		s.sessions.SetToken("")
		if err := s.sessions.ResetSession(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return domain.NewFailure(domain.ErrStorage, "Failed to clear saved credentials", errors.Join(errs...))
	}
	return nil
}

// CurrentUser describes the stored credential without contacting the remote.
func (s *AuthService) CurrentUser(ctx context.Context) (domain.Profile, error) {
	var profile domain.Profile

	token, err := s.store.Get(ctx, domain.SlotToken)
	if err != nil {
		if errors.Is(err, domain.ErrSlotEmpty) {
			return profile, nil
		}
		return profile, domain.NewFailure(domain.ErrStorage, "Failed to read token.", err)
	}
	profile.LoggedIn = strings.TrimSpace(token) != ""

	username, err := s.store.Get(ctx, domain.SlotUsername)
	if err != nil && !errors.Is(err, domain.ErrSlotEmpty) {
		s.logger.Warn("read username", slog.Any("error", err))
	}
	profile.Username = username

	if s.inspector != nil && profile.LoggedIn {
		claims, err := s.inspector.Inspect(token)
		if err != nil {
			s.logger.Debug("token is not an inspectable jwt", slog.Any("error", err))
		} else {
			profile.Claims = claims
			profile.Expired = claims.Expired(s.clock.Now())
			if profile.Username == "" {
				profile.Username = claims.Email
			}
		}
	}

	if s.sessions != nil {
		profile.SessionID = s.sessions.Session().ID
	}

	return profile, nil
}

// RequireLogin fails with domain.ErrNotLoggedIn when there is no usable token.
func (s *AuthService) RequireLogin(ctx context.Context) error {
	profile, err := s.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if !profile.LoggedIn || profile.Expired {
		return domain.NewFailure(domain.ErrNotLoggedIn, msgSessionExpired, nil)
	}
	return nil
}
