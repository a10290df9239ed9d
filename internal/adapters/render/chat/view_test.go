package chat

import (
	"testing"
	"time"

	"github.com/bnema/doctorai-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReply(t *testing.T) {
	output, err := Render(ReplyScreen{Reply: "Drink water and rest.", Session: domain.Session{ID: "S1", MessageCount: 1}})

	require.NoError(t, err)
	assert.Contains(t, output, "Doctor AI:")
	assert.Contains(t, output, "Drink water and rest.")
	assert.NotContains(t, output, "summary is ready")
}

func TestRenderReplyAnnouncesSummary(t *testing.T) {
	output, err := Render(ReplyScreen{Reply: "Noted.", Session: domain.Session{ID: "S1", MessageCount: 3}})

	require.NoError(t, err)
	assert.Contains(t, output, "A summary is ready")
}

func TestRenderStatus(t *testing.T) {
	tests := []struct {
		name     string
		session  domain.Session
		contains []string
		excludes []string
	}{
		{
			name:     "no session",
			session:  domain.Session{},
			contains: []string{"state: No session", "first message"},
			excludes: []string{"session: "},
		},
		{
			name:     "active",
			session:  domain.Session{ID: "S1", MessageCount: 2},
			contains: []string{"state: Active", "session: S1", "messages: 2", "after 1 more message"},
		},
		{
			name:     "summarizable",
			session:  domain.Session{ID: "S1", MessageCount: 4},
			contains: []string{"state: Summarizable", "messages: 4", "summary: available"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := Render(StatusScreen{Session: tt.session, Username: "rina"})
			require.NoError(t, err)
			assert.Contains(t, output, "user: rina")
			for _, want := range tt.contains {
				assert.Contains(t, output, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, output, unwanted)
			}
		})
	}
}

func TestRenderDoctors(t *testing.T) {
	output, err := Render(DoctorScreen{
		Term:        "anak",
		Doctors:     domain.SearchDoctors("anak"),
		Suggestions: domain.SearchSuggestions(),
	})

	require.NoError(t, err)
	assert.Contains(t, output, "[medic]")
	assert.Contains(t, output, `results for "anak": 1`)
	assert.Contains(t, output, "Dr. Andi Teguh")
	assert.NotContains(t, output, "Dr. Rina Kusuma")
}

func TestRenderDoctorsEmpty(t *testing.T) {
	output, err := Render(DoctorScreen{Term: "dentist"})

	require.NoError(t, err)
	assert.Contains(t, output, "No doctors match your search.")
}

func TestRenderProfile(t *testing.T) {
	output, err := Render(ProfileScreen{
		Profile: domain.Profile{
			Username:  "rina",
			LoggedIn:  true,
			Claims:    domain.TokenClaims{Email: "rina@example.com", ExpiresAt: time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)},
			SessionID: "S1",
		},
		Flashcards: domain.Flashcards(),
	})

	require.NoError(t, err)
	assert.Contains(t, output, "user: rina")
	assert.Contains(t, output, "email: rina@example.com")
	assert.Contains(t, output, "token expires:")
	assert.Contains(t, output, "chat session: S1")
	assert.Contains(t, output, "Health tips")
	assert.Contains(t, output, "Stay hydrated")
}

func TestRenderProfileStates(t *testing.T) {
	output, err := Render(ProfileScreen{})
	require.NoError(t, err)
	assert.Contains(t, output, "Not logged in")

	output, err = Render(ProfileScreen{Profile: domain.Profile{Username: "rina", LoggedIn: true, Expired: true}})
	require.NoError(t, err)
	assert.Contains(t, output, "Session expired. Please login again.")
}

func TestRenderHistoryList(t *testing.T) {
	output, err := Render(HistoryScreen{
		CurrentID: "S2",
		Sessions: []domain.SessionRecord{
			{ID: "S2", MessageCount: 1, LastActivity: time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)},
			{ID: "S1", MessageCount: 3},
		},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "sessions: 2")
	assert.Contains(t, output, "* S2 1 message")
	assert.Contains(t, output, "S1 3 messages")
}

func TestRenderHistoryTranscript(t *testing.T) {
	output, err := Render(HistoryScreen{
		SessionID: "S1",
		Entries: []domain.TranscriptEntry{
			{SessionID: "S1", Message: "I have a headache", Reply: "How long has it lasted?"},
		},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "session: S1")
	assert.Contains(t, output, "You: I have a headache")
	assert.Contains(t, output, "Doctor AI: How long has it lasted?")
}

func TestRenderHistoryEmpty(t *testing.T) {
	output, err := Render(HistoryScreen{})
	require.NoError(t, err)
	assert.Contains(t, output, "No conversations recorded yet.")

	output, err = Render(HistoryScreen{SessionID: "S9"})
	require.NoError(t, err)
	assert.Contains(t, output, "No messages recorded for this session.")
}

func TestRenderSummary(t *testing.T) {
	output, err := Render(SummaryScreen{SessionID: "S1", Summary: "Likely tension headache."})

	require.NoError(t, err)
	assert.Contains(t, output, "Consultation summary")
	assert.Contains(t, output, "Likely tension headache.")
}
