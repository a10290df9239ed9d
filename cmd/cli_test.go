package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/bnema/doctorai-cli/internal/domain"
	"github.com/bnema/doctorai-cli/internal/version"
	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "token-abc"

// fakeBackend serves the chat and auth endpoints with an opaque token.
type fakeBackend struct {
	mu       sync.Mutex
	sessions int
	messages map[string][]string
}

func newFakeBackend(t *testing.T) (*fakeBackend, string) {
	t.Helper()

	backend := &fakeBackend{messages: map[string][]string{}}

	r := chi.NewRouter()
	r.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Password != "secret" {
			respond(w, http.StatusBadRequest, map[string]any{"message": "Wrong password"})
			return
		}
		respond(w, http.StatusOK, map[string]any{"access_token": testToken, "user": "rina"})
	})
	r.Post("/auth/register", func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusCreated, map[string]any{"message": "User registered"})
	})
	r.Group(func(r chi.Router) {
		r.Use(requireBearer)
		r.Post("/chat/start-session", func(w http.ResponseWriter, r *http.Request) {
			backend.mu.Lock()
			backend.sessions++
			id := fmt.Sprintf("S%d", backend.sessions)
			backend.mu.Unlock()
			respond(w, http.StatusOK, map[string]any{"session_id": id})
		})
		r.Post("/chat/send", func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				SessionID string `json:"session_id"`
				Message   string `json:"message"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			backend.mu.Lock()
			backend.messages[body.SessionID] = append(backend.messages[body.SessionID], body.Message)
			backend.mu.Unlock()
			respond(w, http.StatusOK, map[string]any{"response": "Noted: " + body.Message})
		})
		r.Post("/chat/summary", func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				SessionID string `json:"session_id"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			backend.mu.Lock()
			sent := strings.Join(backend.messages[body.SessionID], ", ")
			backend.mu.Unlock()
			respond(w, http.StatusOK, map[string]any{"summary": "Reported: " + sent})
		})
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return backend, server.URL
}

func (b *fakeBackend) sent(sessionID string) []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.messages[sessionID]...)
}

func requireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+testToken {
			respond(w, http.StatusUnauthorized, map[string]any{"detail": "Invalid token"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "", "version")
	require.NoError(t, err)
	assert.Equal(t, version.Version+"\n", stdout)
}

func TestDoctorSearch(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "", "doctor", "--search", "ANAK")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Dr. Andi Teguh")
	assert.NotContains(t, stdout, "Dr. Rina Kusuma")
	assert.Contains(t, stdout, "[jantung]")
}

func TestDoctorJSONListsDirectory(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "", "doctor", "--json")
	require.NoError(t, err)

	var doctors []doctorJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &doctors))
	assert.Len(t, doctors, 4)
	assert.Equal(t, "Dr. Sinta Jaya", doctors[0].Name)
}

func TestRegisterRequiresAllFields(t *testing.T) {
	_, url := newFakeBackend(t)

	_, _, err := executeCLI(t, t.TempDir(), url, "register", "--email", "rina@example.com", "--password", "secret")
	require.Error(t, err)
	assert.Equal(t, "All fields are required.", domain.UserMessage(err))
}

func TestRegisterSucceeds(t *testing.T) {
	_, url := newFakeBackend(t)

	stdout, _, err := executeCLI(t, t.TempDir(), url, "register", "--name", "Rina", "--email", "rina@example.com", "--password", "secret")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Registration successful")
}

func TestLoginStoresToken(t *testing.T) {
	home := t.TempDir()
	_, url := newFakeBackend(t)

	stdout, _, err := executeCLI(t, home, url, "login", "--email", "rina@example.com", "--password", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Welcome, rina!\n", stdout)

	token, err := os.ReadFile(filepath.Join(home, ".doctorai", "store", domain.SlotToken))
	require.NoError(t, err)
	assert.Equal(t, testToken, strings.TrimSpace(string(token)))
}

func TestLoginWrongPassword(t *testing.T) {
	_, url := newFakeBackend(t)

	_, _, err := executeCLI(t, t.TempDir(), url, "login", "--email", "rina@example.com", "--password", "nope")
	require.Error(t, err)
	assert.Equal(t, "Incorrect password.", domain.UserMessage(err))
}

func TestChatSendRequiresLogin(t *testing.T) {
	backend, url := newFakeBackend(t)

	_, _, err := executeCLI(t, t.TempDir(), url, "chat", "send", "headache")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotLoggedIn)
	assert.Empty(t, backend.sent("S1"))
}

func TestChatSendStartsSessionAndCounts(t *testing.T) {
	home := t.TempDir()
	backend, url := newFakeBackend(t)
	login(t, home, url)

	stdout, _, err := executeCLI(t, home, url, "chat", "send", "I", "have", "a", "headache")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Doctor AI:")
	assert.Contains(t, stdout, "Noted: I have a headache")

	_, _, err = executeCLI(t, home, url, "chat", "send", "since yesterday")
	require.NoError(t, err)

	assert.Equal(t, []string{"I have a headache", "since yesterday"}, backend.sent("S1"))

	status := chatStatus(t, home, url)
	assert.Equal(t, domain.SessionStateActive, status.State)
	assert.Equal(t, "S1", status.SessionID)
	assert.Equal(t, 2, status.MessageCount)
	assert.False(t, status.SummaryEligible)
}

func TestChatSummaryGatedUntilThreshold(t *testing.T) {
	home := t.TempDir()
	_, url := newFakeBackend(t)
	login(t, home, url)

	for _, message := range []string{"fever", "cough"} {
		_, _, err := executeCLI(t, home, url, "chat", "send", message)
		require.NoError(t, err)
	}

	_, _, err := executeCLI(t, home, url, "chat", "summary")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSummaryNotReady)
	assert.Equal(t, "A summary is available after 3 messages (sent 2).", domain.UserMessage(err))

	stdout, _, err := executeCLI(t, home, url, "chat", "send", "sore throat")
	require.NoError(t, err)
	assert.Contains(t, stdout, "A summary is ready")

	stdout, _, err = executeCLI(t, home, url, "chat", "summary")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Consultation summary")
	assert.Contains(t, stdout, "Reported: fever, cough, sore throat")
	assert.True(t, chatStatus(t, home, url).SummaryEligible)
}

func TestChatResetStartsNewSession(t *testing.T) {
	home := t.TempDir()
	backend, url := newFakeBackend(t)
	login(t, home, url)

	_, _, err := executeCLI(t, home, url, "chat", "send", "fever")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, url, "chat", "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Session closed")

	status := chatStatus(t, home, url)
	assert.Equal(t, domain.SessionStateNone, status.State)
	assert.Zero(t, status.MessageCount)

	_, _, err = executeCLI(t, home, url, "chat", "send", "rash")
	require.NoError(t, err)
	assert.Equal(t, []string{"rash"}, backend.sent("S2"))
	assert.Equal(t, "S2", chatStatus(t, home, url).SessionID)
}

func TestChatResetDeclined(t *testing.T) {
	home := t.TempDir()
	_, url := newFakeBackend(t)
	login(t, home, url)

	_, _, err := executeCLI(t, home, url, "chat", "send", "fever")
	require.NoError(t, err)

	stdout, stderr, err := executeCLIWithInput(t, home, url, strings.NewReader("n\n"), "chat", "reset")
	require.NoError(t, err)
	assert.Contains(t, stderr, "[y/N]")
	assert.Contains(t, stdout, "Reset cancelled.")
	assert.Equal(t, "S1", chatStatus(t, home, url).SessionID)
}

func TestChatHistory(t *testing.T) {
	home := t.TempDir()
	_, url := newFakeBackend(t)
	login(t, home, url)

	for _, message := range []string{"fever", "cough"} {
		_, _, err := executeCLI(t, home, url, "chat", "send", message)
		require.NoError(t, err)
	}

	stdout, _, err := executeCLI(t, home, url, "chat", "history", "--json")
	require.NoError(t, err)
	var sessions []historySessionJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &sessions))
	require.Len(t, sessions, 1)
	assert.Equal(t, "S1", sessions[0].ID)
	assert.Equal(t, 2, sessions[0].MessageCount)
	assert.True(t, sessions[0].Current)

	stdout, _, err = executeCLI(t, home, url, "chat", "history", "--session", "S1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "You: fever")
	assert.Contains(t, stdout, "Doctor AI: Noted: cough")
}

func TestInteractiveChat(t *testing.T) {
	home := t.TempDir()
	backend, url := newFakeBackend(t)
	login(t, home, url)

	input := strings.Join([]string{
		"headache",
		"/summary",
		"",
		"/status",
		"/new",
		"y",
		"dizzy",
		"/quit",
		"never sent",
	}, "\n") + "\n"

	stdout, stderr, err := executeCLIWithInput(t, home, url, strings.NewReader(input), "chat")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Noted: headache")
	assert.Contains(t, stderr, "A summary is available after 3 messages (sent 1).")
	assert.Contains(t, stdout, "state: Active")
	assert.Contains(t, stdout, "user: rina")
	assert.Contains(t, stdout, "Session closed")
	assert.Contains(t, stdout, "Noted: dizzy")

	assert.Equal(t, []string{"headache"}, backend.sent("S1"))
	assert.Equal(t, []string{"dizzy"}, backend.sent("S2"))
}

func TestInteractiveChatStopsAtEOF(t *testing.T) {
	home := t.TempDir()
	backend, url := newFakeBackend(t)
	login(t, home, url)

	stdout, _, err := executeCLIWithInput(t, home, url, strings.NewReader("last words"), "chat")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Noted: last words")
	assert.Equal(t, []string{"last words"}, backend.sent("S1"))
}

func TestLogoutClearsCredentialsAndSession(t *testing.T) {
	home := t.TempDir()
	_, url := newFakeBackend(t)
	login(t, home, url)

	_, _, err := executeCLI(t, home, url, "chat", "send", "fever")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, url, "logout")
	require.NoError(t, err)
	assert.Equal(t, "Logged out.\n", stdout)

	stdout, _, err = executeCLI(t, home, url, "profile", "--json")
	require.NoError(t, err)
	var profile profileJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &profile))
	assert.False(t, profile.LoggedIn)
	assert.Empty(t, profile.SessionID)

	assert.Equal(t, domain.SessionStateNone, chatStatus(t, home, url).State)
}

func TestProfileShowsUserAndTips(t *testing.T) {
	home := t.TempDir()
	_, url := newFakeBackend(t)
	login(t, home, url)

	stdout, _, err := executeCLI(t, home, url, "profile")
	require.NoError(t, err)
	assert.Contains(t, stdout, "user: rina")
	assert.Contains(t, stdout, "Health tips")
	assert.Contains(t, stdout, "Stay hydrated")
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestRunRootClosesResourcesWhenCommandFails(t *testing.T) {
	closed := 0
	a := &app{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		closers: []io.Closer{closerFunc(func() error { closed++; return nil })},
	}
	failing := &cobra.Command{
		Use:           "dai",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(*cobra.Command, []string) error {
			return errors.New("summary not ready")
		},
	}
	failing.SetArgs([]string{})

	err := runRoot(failing, a)
	require.Error(t, err)
	assert.Equal(t, 1, closed)
}

func TestFailingCommandReleasesSQLiteHistory(t *testing.T) {
	home := t.TempDir()
	_, url := newFakeBackend(t)
	t.Setenv("DAI_HISTORY_BACKEND", "sqlite")
	t.Setenv("HOME", home)
	t.Setenv("DAI_STORE_BACKEND", "file")
	t.Setenv("DAI_API_BASE_URL", url)

	root, a := newRootCmd()
	require.NotNil(t, a)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"chat", "summary"})

	err := runRoot(root, a)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSummaryNotReady)

	_, err = a.transcripts.ListSessions(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "database is closed")
}

func login(t *testing.T, home string, url string) {
	t.Helper()

	_, stderr, err := executeCLI(t, home, url, "login", "--email", "rina@example.com", "--password", "secret")
	require.NoError(t, err, "stderr: %s", stderr)
}

func chatStatus(t *testing.T, home string, url string) chatStatusJSON {
	t.Helper()

	stdout, stderr, err := executeCLI(t, home, url, "chat", "status", "--json")
	require.NoError(t, err, "stderr: %s", stderr)

	var status chatStatusJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &status))
	return status
}

func executeCLI(t *testing.T, home string, apiURL string, args ...string) (string, string, error) {
	t.Helper()
	return executeCLIWithInput(t, home, apiURL, strings.NewReader(""), args...)
}

func executeCLIWithInput(t *testing.T, home string, apiURL string, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("DAI_STORE_BACKEND", "file")
	t.Setenv("DAI_HISTORY_BACKEND", "toml")
	if apiURL != "" {
		t.Setenv("DAI_API_BASE_URL", apiURL)
	}

	root, app := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := runRoot(root, app)
	return stdout.String(), stderr.String(), err
}
