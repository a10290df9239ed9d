package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/doctorai-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newRegisterCmd(app *app) *cobra.Command {
	var registration domain.Registration

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a Doctor AI account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Creating account...", func(ctx context.Context) error {
				return app.auth.Register(ctx, registration)
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Registration successful. You can now log in with `dai login`.")
			return err
		},
	}

	cmd.Flags().StringVar(&registration.Name, "name", "", "Full name")
	cmd.Flags().StringVar(&registration.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&registration.Password, "password", "", "Password")

	return cmd
}

func newLoginCmd(app *app) *cobra.Command {
	var credentials domain.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var username string
			err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Logging in...", func(ctx context.Context) error {
				var err error
				username, err = app.auth.Login(ctx, credentials)
				return err
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s!\n", username)
			return err
		},
	}

	cmd.Flags().StringVar(&credentials.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&credentials.Password, "password", "", "Password")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored token and chat session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.restore(cmd.Context(), cmd.ErrOrStderr())
			if err := app.auth.Logout(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return err
		},
	}
}
