package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	chatrender "github.com/bnema/doctorai-cli/internal/adapters/render/chat"
)

func writeScreen(w io.Writer, app *app, screen chatrender.Screen) error {
	output, err := app.render(screen)
	if err != nil {
		return fmt.Errorf("render output: %w", err)
	}

	_, err = fmt.Fprintln(w, output)
	return err
}

func writeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func formatJSONTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
