package chat

import (
	"fmt"
	"strings"

	"github.com/bnema/doctorai-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const timeLayout = "02 Jan 15:04"

type ReplyScreen struct {
	Reply   string
	Session domain.Session
}

func (r ReplyScreen) render(s styles) string {
	lines := []string{
		s.assistant.Render("Doctor AI:") + " " + s.detail.Render(r.Reply),
	}
	if r.Session.SummaryEligible() {
		lines = append(lines, s.ready.Render("A summary is ready: run `dai chat summary` or type /summary."))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

type SummaryScreen struct {
	SessionID string
	Summary   string
}

func (r SummaryScreen) render(s styles) string {
	summary := strings.TrimSpace(r.Summary)
	if summary == "" {
		summary = s.empty.Render("The doctor returned an empty summary.")
	} else {
		summary = s.detail.Render(summary)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.title.Render("Consultation summary"),
		s.header.Render("session: "+r.SessionID),
		s.section.Render(summary),
	)
}

type StatusScreen struct {
	Session  domain.Session
	Username string
}

func (r StatusScreen) render(s styles) string {
	state := r.Session.State()
	lines := []string{
		s.title.Render("Chat session"),
		keyValue(s, "state", state.Label()),
	}
	if r.Username != "" {
		lines = append(lines, keyValue(s, "user", r.Username))
	}

	if !r.Session.HasID() {
		lines = append(lines, s.empty.Render("A session starts with your first message."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines,
		keyValue(s, "session", r.Session.ID),
		keyValue(s, "messages", fmt.Sprintf("%d", r.Session.MessageCount)),
	)
	if r.Session.SummaryEligible() {
		lines = append(lines, keyValue(s, "summary", s.ready.Render("available")))
	} else {
		remaining := domain.SummaryThreshold - r.Session.MessageCount
		lines = append(lines, keyValue(s, "summary", fmt.Sprintf("after %d more %s", remaining, plural(remaining, "message", "messages"))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

type DoctorScreen struct {
	Term        string
	Doctors     []domain.Doctor
	Suggestions []string
}

func (r DoctorScreen) render(s styles) string {
	lines := []string{s.title.Render("Find a doctor")}
	if len(r.Suggestions) > 0 {
		chips := make([]string, 0, len(r.Suggestions))
		for _, suggestion := range r.Suggestions {
			chips = append(chips, s.chip.Render("["+suggestion+"]"))
		}
		lines = append(lines, s.header.Render("try:")+" "+strings.Join(chips, " "))
	}
	if term := strings.TrimSpace(r.Term); term != "" {
		lines = append(lines, s.header.Render(fmt.Sprintf("results for %q: %d", term, len(r.Doctors))))
	}

	if len(r.Doctors) == 0 {
		lines = append(lines, s.empty.Render("No doctors match your search."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	rows := make([]string, 0, len(r.Doctors))
	for _, doctor := range r.Doctors {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			s.user.Render(doctor.Name),
			"  ",
			s.detail.Render(doctor.Specialty),
		))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

type ProfileScreen struct {
	Profile    domain.Profile
	Flashcards []domain.Flashcard
}

func (r ProfileScreen) render(s styles) string {
	lines := []string{s.title.Render("Profile")}

	if !r.Profile.LoggedIn {
		lines = append(lines, s.warning.Render("Not logged in. Run `dai login`."))
	} else {
		username := r.Profile.Username
		if username == "" {
			username = "unknown"
		}
		lines = append(lines, keyValue(s, "user", username))
		if r.Profile.Claims.Email != "" && r.Profile.Claims.Email != username {
			lines = append(lines, keyValue(s, "email", r.Profile.Claims.Email))
		}
		switch {
		case r.Profile.Expired:
			lines = append(lines, s.warning.Render("Session expired. Please login again."))
		case !r.Profile.Claims.ExpiresAt.IsZero():
			lines = append(lines, keyValue(s, "token expires", r.Profile.Claims.ExpiresAt.Local().Format(timeLayout)))
		}
		if r.Profile.SessionID != "" {
			lines = append(lines, keyValue(s, "chat session", r.Profile.SessionID))
		}
	}

	if len(r.Flashcards) > 0 {
		cards := make([]string, 0, len(r.Flashcards))
		for _, card := range r.Flashcards {
			cards = append(cards, s.card.Render(lipgloss.JoinVertical(lipgloss.Left,
				s.title.Render(card.Title),
				s.detail.Render(card.Body),
			)))
		}
		lines = append(lines, s.section.Render(s.header.Render("Health tips")), lipgloss.JoinVertical(lipgloss.Left, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// HistoryScreen lists recorded sessions, or the exchanges of one session when
// Entries is set.
type HistoryScreen struct {
	CurrentID string
	SessionID string
	Sessions  []domain.SessionRecord
	Entries   []domain.TranscriptEntry
}

func (r HistoryScreen) render(s styles) string {
	if r.SessionID != "" {
		return r.renderTranscript(s)
	}

	lines := []string{
		s.title.Render("Chat history"),
		s.header.Render(fmt.Sprintf("sessions: %d", len(r.Sessions))),
	}
	if len(r.Sessions) == 0 {
		lines = append(lines, s.empty.Render("No conversations recorded yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, session := range r.Sessions {
		marker := "  "
		if session.ID == r.CurrentID {
			marker = s.ready.Render("* ")
		}
		line := marker + s.user.Render(session.ID) + " " + s.detail.Render(fmt.Sprintf("%d %s", session.MessageCount, plural(session.MessageCount, "message", "messages")))
		if !session.LastActivity.IsZero() {
			line += " " + s.header.Render("last "+session.LastActivity.Local().Format(timeLayout))
		}
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (r HistoryScreen) renderTranscript(s styles) string {
	lines := []string{
		s.title.Render("Conversation"),
		s.header.Render("session: " + r.SessionID),
	}
	if len(r.Entries) == 0 {
		lines = append(lines, s.empty.Render("No messages recorded for this session."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, entry := range r.Entries {
		exchange := []string{
			s.user.Render("You:") + " " + s.detail.Render(entry.Message),
			s.assistant.Render("Doctor AI:") + " " + s.detail.Render(entry.Reply),
		}
		if !entry.SentAt.IsZero() {
			exchange = append([]string{s.header.Render(entry.SentAt.Local().Format(timeLayout))}, exchange...)
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, exchange...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func keyValue(s styles, key string, value string) string {
	return s.key.Render(key+":") + " " + value
}

func plural(n int, one string, many string) string {
	if n == 1 {
		return one
	}
	return many
}
