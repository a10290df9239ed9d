package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStateTransitions(t *testing.T) {
	tests := []struct {
		name    string
		session Session
		want    SessionState
	}{
		{name: "no id", session: Session{}, want: SessionStateNone},
		{name: "no id ignores stale count", session: Session{MessageCount: 5}, want: SessionStateNone},
		{name: "fresh session", session: Session{ID: "s-1"}, want: SessionStateActive},
		{name: "below threshold", session: Session{ID: "s-1", MessageCount: 2}, want: SessionStateActive},
		{name: "at threshold", session: Session{ID: "s-1", MessageCount: 3}, want: SessionStateSummarizable},
		{name: "above threshold", session: Session{ID: "s-1", MessageCount: 7}, want: SessionStateSummarizable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.session.State())
		})
	}
}

func TestSessionSummaryEligibleIffCountAtLeastThreshold(t *testing.T) {
	for count := 0; count <= 10; count++ {
		session := Session{ID: "s-1", MessageCount: count}
		assert.Equal(t, count >= 3, session.SummaryEligible(), "count %d", count)
	}
}

func TestSessionStateLabel(t *testing.T) {
	assert.Equal(t, "No session", SessionStateNone.Label())
	assert.Equal(t, "Active", SessionStateActive.Label())
	assert.Equal(t, "Summarizable", SessionStateSummarizable.Label())
	assert.Equal(t, "custom", SessionState("custom").Label())
}

func TestFailureUnwrapsKindAndCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewFailure(ErrSessionStart, "Failed to start session", cause)

	assert.ErrorIs(t, err, ErrSessionStart)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrMessageSend)
	assert.Equal(t, "Failed to start session", UserMessage(err))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestRemoteMessagePrefersServerMessage(t *testing.T) {
	remote := &RemoteError{StatusCode: 400, Message: "Invalid token"}

	assert.Equal(t, "Invalid token", RemoteMessage(remote, "generic"))
	assert.Equal(t, "generic", RemoteMessage(&RemoteError{StatusCode: 500}, "generic"))
	assert.Equal(t, "generic", RemoteMessage(errors.New("network down"), "generic"))
}

func TestSearchDoctors(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "empty returns all", term: "", want: []string{"1", "2", "3", "4"}},
		{name: "specialty case insensitive", term: "JANTUNG", want: []string{"3"}},
		{name: "name fragment", term: "budi", want: []string{"4"}},
		{name: "spans name and specialty", term: "jayapenyakit", want: []string{"1"}},
		{name: "no match", term: "gigi", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := []string{}
			for _, doctor := range SearchDoctors(tt.term) {
				ids = append(ids, doctor.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestDoctorsReturnsCopy(t *testing.T) {
	doctors := Doctors()
	require.Len(t, doctors, 4)
	doctors[0].Name = "changed"

	assert.Equal(t, "Dr. Sinta Jaya", Doctors()[0].Name)
}

func TestTokenClaimsExpired(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	assert.False(t, TokenClaims{}.Expired(now))
	assert.False(t, TokenClaims{ExpiresAt: now.Add(time.Minute)}.Expired(now))
	assert.True(t, TokenClaims{ExpiresAt: now}.Expired(now))
	assert.True(t, TokenClaims{ExpiresAt: now.Add(-time.Hour)}.Expired(now))
}
