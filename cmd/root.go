package cmd

import (
	"fmt"
	"log/slog"

	"github.com/bnema/doctorai-cli/internal/domain"
	"github.com/spf13/cobra"
)

func Execute() error {
	rootCmd, app := newRootCmd()
	err := runRoot(rootCmd, app)
	if err != nil {
		_, _ = fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", domain.UserMessage(err))
	}
	return err
}

// runRoot executes rootCmd and closes app resources whether or not the
// command failed.
func runRoot(rootCmd *cobra.Command, app *app) error {
	if app != nil {
		defer func() {
			if err := app.close(); err != nil {
				app.logger.Warn("close resources", slog.Any("error", err))
			}
		}()
	}
	return rootCmd.Execute()
}

func newRootCmd() (*cobra.Command, *app) {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "dai",
		Short:         "Doctor AI CLI (dai): describe symptoms and get guidance",
		Long:          "dai talks to the Doctor AI symptom-intake assistant. Log in, describe your symptoms in a chat session, request a consultation summary and browse the doctor directory from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd, nil
	}

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if verbose {
			app.logLevel.Set(slog.LevelDebug)
		}
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRegisterCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newChatCmd(app),
		newDoctorCmd(app),
		newProfileCmd(app),
	)

	return rootCmd, app
}
