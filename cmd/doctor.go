package cmd

import (
	chatrender "github.com/bnema/doctorai-cli/internal/adapters/render/chat"
	"github.com/bnema/doctorai-cli/internal/domain"
	"github.com/spf13/cobra"
)

type doctorJSON struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	ImageURL  string `json:"image_url"`
}

func newDoctorCmd(app *app) *cobra.Command {
	var term string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Browse the doctor directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doctors := domain.SearchDoctors(term)

			if asJSON {
				out := make([]doctorJSON, 0, len(doctors))
				for _, doctor := range doctors {
					out = append(out, doctorJSON{ID: doctor.ID, Name: doctor.Name, Specialty: doctor.Specialty, ImageURL: doctor.ImageURL})
				}
				return writeJSON(cmd.OutOrStdout(), out)
			}

			return writeScreen(cmd.OutOrStdout(), app, chatrender.DoctorScreen{
				Term:        term,
				Doctors:     doctors,
				Suggestions: domain.SearchSuggestions(),
			})
		},
	}

	cmd.Flags().StringVarP(&term, "search", "s", "", "Filter by name or specialty")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
