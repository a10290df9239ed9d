package domain

// SummaryThreshold is the number of sent messages after which a summary
// can be requested.
const SummaryThreshold = 3

// Durable slot keys.
const (
	SlotToken     = "token"
	SlotSessionID = "session_id"
	SlotUsername  = "username"
)

// NoResponsePlaceholder is shown when the assistant reply carries no text.
const NoResponsePlaceholder = "No response from doctor."

type SessionState string

const (
	SessionStateNone         SessionState = "no_session"
	SessionStateActive       SessionState = "active"
	SessionStateSummarizable SessionState = "summarizable"
)

func (s SessionState) Label() string {
	switch s {
	case SessionStateNone:
		return "No session"
	case SessionStateActive:
		return "Active"
	case SessionStateSummarizable:
		return "Summarizable"
	default:
		return string(s)
	}
}

// Session is one continuous conversation with the remote assistant. An empty
// ID means no session has been started yet.
type Session struct {
	ID           string
	MessageCount int
}

func (s Session) HasID() bool {
	return s.ID != ""
}

func (s Session) SummaryEligible() bool {
	return s.MessageCount >= SummaryThreshold
}

func (s Session) State() SessionState {
	switch {
	case !s.HasID():
		return SessionStateNone
	case s.SummaryEligible():
		return SessionStateSummarizable
	default:
		return SessionStateActive
	}
}
