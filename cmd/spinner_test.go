package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestSpinnerViewShowsElapsedSeconds(t *testing.T) {
	m := newRequestSpinnerModel("Doctor AI is typing...", time.Now().Add(-3*time.Second), nil)

	view := m.View()
	assert.Contains(t, view, "Doctor AI is typing...")
	assert.Contains(t, view, "(3s)")

	fresh := newRequestSpinnerModel("Logging in...", time.Now(), nil)
	assert.NotContains(t, fresh.View(), "(")
}

func TestRequestSpinnerQuitsWithRequestError(t *testing.T) {
	m := newRequestSpinnerModel("Logging in...", time.Now(), nil)
	requestErr := errors.New("boom")

	updated, cmd := m.Update(requestDoneMsg{err: requestErr})
	require.NotNil(t, cmd)

	result, ok := updated.(requestSpinnerModel)
	require.True(t, ok)
	assert.True(t, result.done)
	assert.ErrorIs(t, result.err, requestErr)
	assert.Empty(t, result.View())
}

func TestRunWithSpinnerSkipsNonTerminalOutput(t *testing.T) {
	var output bytes.Buffer
	called := false

	err := runWithSpinner(context.Background(), &output, "Preparing summary...", func(context.Context) error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
	assert.Empty(t, output.String())
}
