package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

type requestDoneMsg struct {
	err error
}

type requestSpinnerModel struct {
	spinner spinner.Model
	label   string
	started time.Time
	wait    tea.Cmd
	err     error
	done    bool
}

func newRequestSpinnerModel(label string, started time.Time, wait tea.Cmd) requestSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("78"))),
	)

	return requestSpinnerModel{
		spinner: s,
		label:   label,
		started: started,
		wait:    wait,
	}
}

func (m requestSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.wait)
}

func (m requestSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case requestDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m requestSpinnerModel) View() string {
	if m.done {
		return ""
	}

	view := fmt.Sprintf("%s %s", m.spinner.View(), m.label)
	if elapsed := time.Since(m.started); elapsed >= time.Second {
		view += fmt.Sprintf(" (%ds)", int(elapsed.Seconds()))
	}
	return view
}

// runWithSpinner shows label with a spinner on output while request runs. The
// spinner is skipped when output is not a terminal. Ctrl+C cancels the request
// and waits for it to return before giving control back.
func runWithSpinner(ctx context.Context, output io.Writer, label string, request func(context.Context) error) error {
	if !isTerminal(output) {
		return request(ctx)
	}

	requestCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	var requestErr error
	go func() {
		defer close(done)
		requestErr = request(requestCtx)
	}()
	wait := func() tea.Msg {
		<-done
		return requestDoneMsg{err: requestErr}
	}

	p := tea.NewProgram(
		newRequestSpinnerModel(label, time.Now(), wait),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		cancel()
		<-done
		if errors.Is(err, tea.ErrInterrupted) {
			return fmt.Errorf("request interrupted: %w", context.Canceled)
		}
		if requestErr != nil {
			return requestErr
		}
		return fmt.Errorf("run spinner: %w", err)
	}

	result, ok := finalModel.(requestSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
