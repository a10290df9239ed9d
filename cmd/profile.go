package cmd

import (
	chatrender "github.com/bnema/doctorai-cli/internal/adapters/render/chat"
	"github.com/bnema/doctorai-cli/internal/domain"
	"github.com/spf13/cobra"
)

type profileJSON struct {
	Username  string `json:"username,omitempty"`
	Email     string `json:"email,omitempty"`
	LoggedIn  bool   `json:"logged_in"`
	Expired   bool   `json:"expired"`
	ExpiresAt string `json:"expires_at,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

func newProfileCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the logged-in user and health tips",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.restore(cmd.Context(), cmd.ErrOrStderr())
			profile, err := app.auth.CurrentUser(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), profileJSON{
					Username:  profile.Username,
					Email:     profile.Claims.Email,
					LoggedIn:  profile.LoggedIn,
					Expired:   profile.Expired,
					ExpiresAt: formatJSONTime(profile.Claims.ExpiresAt),
					SessionID: profile.SessionID,
				})
			}

			return writeScreen(cmd.OutOrStdout(), app, chatrender.ProfileScreen{
				Profile:    profile,
				Flashcards: domain.Flashcards(),
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
