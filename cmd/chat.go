package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	chatrender "github.com/bnema/doctorai-cli/internal/adapters/render/chat"
	"github.com/bnema/doctorai-cli/internal/domain"
	"github.com/spf13/cobra"
)

const resetPrompt = "Start a new session? The current conversation will be closed. [y/N] "

func newChatCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with the assistant about your symptoms",
		Long:  "Without a subcommand, chat reads messages from stdin line by line. Type /new to start a new session, /summary for a consultation summary, /status for the session state and /quit to leave.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractiveChat(cmd, app)
		},
	}

	cmd.AddCommand(
		newChatSendCmd(app),
		newChatResetCmd(app),
		newChatSummaryCmd(app),
		newChatStatusCmd(app),
		newChatHistoryCmd(app),
	)

	return cmd
}

func newChatSendCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "send <message...>",
		Short: "Send one message in the current session",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.restore(cmd.Context(), cmd.ErrOrStderr())
			return sendAndRender(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), app, strings.Join(args, " "))
		},
	}
}

func newChatResetCmd(app *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Close the current session; the next message starts a new one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.restore(cmd.Context(), cmd.ErrOrStderr())
			if !yes {
				confirmed, err := confirm(bufio.NewReader(cmd.InOrStdin()), cmd.ErrOrStderr(), resetPrompt)
				if err != nil {
					return err
				}
				if !confirmed {
					_, err := fmt.Fprintln(cmd.OutOrStdout(), "Reset cancelled.")
					return err
				}
			}
			return resetAndReport(cmd.Context(), cmd.OutOrStdout(), app)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func newChatSummaryCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show a consultation summary once enough messages were sent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.restore(cmd.Context(), cmd.ErrOrStderr())
			return summarizeAndRender(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), app)
		},
	}
}

type chatStatusJSON struct {
	State           domain.SessionState `json:"state"`
	SessionID       string              `json:"session_id,omitempty"`
	MessageCount    int                 `json:"message_count"`
	SummaryEligible bool                `json:"summary_eligible"`
}

func newChatStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current chat session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.restore(cmd.Context(), cmd.ErrOrStderr())
			session := app.sessions.Session()

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), chatStatusJSON{
					State:           session.State(),
					SessionID:       session.ID,
					MessageCount:    session.MessageCount,
					SummaryEligible: session.SummaryEligible(),
				})
			}

			return writeStatus(cmd.Context(), cmd.OutOrStdout(), app)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

type historyEntryJSON struct {
	Message string `json:"message"`
	Reply   string `json:"reply"`
	SentAt  string `json:"sent_at,omitempty"`
}

type historySessionJSON struct {
	ID           string `json:"id"`
	MessageCount int    `json:"message_count"`
	StartedAt    string `json:"started_at,omitempty"`
	LastActivity string `json:"last_activity,omitempty"`
	Current      bool   `json:"current"`
}

func newChatHistoryCmd(app *app) *cobra.Command {
	var sessionID string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded sessions or show one conversation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.restore(cmd.Context(), cmd.ErrOrStderr())
			current := app.sessions.Session().ID

			if sessionID != "" {
				entries, err := app.transcripts.Entries(cmd.Context(), sessionID)
				if err != nil {
					return fmt.Errorf("load transcript: %w", err)
				}
				if asJSON {
					out := make([]historyEntryJSON, 0, len(entries))
					for _, entry := range entries {
						out = append(out, historyEntryJSON{Message: entry.Message, Reply: entry.Reply, SentAt: formatJSONTime(entry.SentAt)})
					}
					return writeJSON(cmd.OutOrStdout(), out)
				}
				return writeScreen(cmd.OutOrStdout(), app, chatrender.HistoryScreen{CurrentID: current, SessionID: sessionID, Entries: entries})
			}

			sessions, err := app.transcripts.ListSessions(cmd.Context())
			if err != nil {
				return fmt.Errorf("list sessions: %w", err)
			}
			if asJSON {
				out := make([]historySessionJSON, 0, len(sessions))
				for _, session := range sessions {
					out = append(out, historySessionJSON{
						ID:           session.ID,
						MessageCount: session.MessageCount,
						StartedAt:    formatJSONTime(session.StartedAt),
						LastActivity: formatJSONTime(session.LastActivity),
						Current:      session.ID == current,
					})
				}
				return writeJSON(cmd.OutOrStdout(), out)
			}
			return writeScreen(cmd.OutOrStdout(), app, chatrender.HistoryScreen{CurrentID: current, Sessions: sessions})
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "Show the conversation of this session")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func runInteractiveChat(cmd *cobra.Command, app *app) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	in := bufio.NewReader(cmd.InOrStdin())

	app.restore(ctx, errOut)
	_, _ = fmt.Fprintln(out, "Describe your symptoms. Commands: /new, /summary, /status, /quit")

	for {
		_, _ = fmt.Fprint(errOut, "> ")
		line, err := in.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("read input: %w", err)
		}
		eof := err == io.EOF

		input := strings.TrimSpace(line)
		switch {
		case input == "":
		case input == "/quit" || input == "/exit":
			return nil
		case input == "/status":
			if err := writeStatus(ctx, out, app); err != nil {
				return err
			}
		case input == "/summary":
			reportRecoverable(errOut, summarizeAndRender(ctx, out, errOut, app))
		case input == "/new":
			confirmed, err := confirm(in, errOut, resetPrompt)
			if err != nil {
				return err
			}
			if confirmed {
				reportRecoverable(errOut, resetAndReport(ctx, out, app))
			}
		case strings.HasPrefix(input, "/"):
			_, _ = fmt.Fprintf(errOut, "Unknown command %s\n", input)
		default:
			reportRecoverable(errOut, sendAndRender(ctx, out, errOut, app, input))
		}

		if eof {
			return nil
		}
	}
}

func sendAndRender(ctx context.Context, out io.Writer, errOut io.Writer, app *app, text string) error {
	if strings.TrimSpace(text) != "" {
		if err := app.auth.RequireLogin(ctx); err != nil {
			return err
		}
	}

	var reply string
	err := runWithSpinner(ctx, errOut, "Doctor AI is typing...", func(ctx context.Context) error {
		var err error
		reply, err = app.sessions.SendMessage(ctx, text)
		return err
	})
	if err != nil {
		return err
	}

	return writeScreen(out, app, chatrender.ReplyScreen{Reply: reply, Session: app.sessions.Session()})
}

func summarizeAndRender(ctx context.Context, out io.Writer, errOut io.Writer, app *app) error {
	var summary string
	err := runWithSpinner(ctx, errOut, "Preparing summary...", func(ctx context.Context) error {
		var err error
		summary, err = app.sessions.Summary(ctx)
		return err
	})
	if err != nil {
		return err
	}

	return writeScreen(out, app, chatrender.SummaryScreen{SessionID: app.sessions.Session().ID, Summary: summary})
}

func resetAndReport(ctx context.Context, out io.Writer, app *app) error {
	if err := app.sessions.ResetSession(ctx); err != nil {
		return err
	}

	_, err := fmt.Fprintln(out, "Session closed. Your next message starts a new conversation.")
	return err
}

func writeStatus(ctx context.Context, out io.Writer, app *app) error {
	profile, err := app.auth.CurrentUser(ctx)
	if err != nil {
		return err
	}
	return writeScreen(out, app, chatrender.StatusScreen{Session: app.sessions.Session(), Username: profile.Username})
}

// reportRecoverable prints failures the interactive loop can continue from.
func reportRecoverable(w io.Writer, err error) {
	if err == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "Error: %s\n", domain.UserMessage(err))
}

func confirm(in *bufio.Reader, prompt io.Writer, question string) (bool, error) {
	_, _ = fmt.Fprint(prompt, question)

	answer, err := in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("read confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
