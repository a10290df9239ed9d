package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation          = errors.New("validation failure")
	ErrSessionStart        = errors.New("session start failure")
	ErrMessageSend         = errors.New("message send failure")
	ErrSummary             = errors.New("summary failure")
	ErrStorage             = errors.New("storage failure")
	ErrAuthentication      = errors.New("authentication failure")
	ErrRegistration        = errors.New("registration failure")
	ErrNotLoggedIn         = errors.New("not logged in")
	ErrSummaryNotReady     = errors.New("summary not available yet")
	ErrOperationInProgress = errors.New("another request is still in progress")
	ErrSlotEmpty           = errors.New("slot is empty")
	ErrStoreUnavailable    = errors.New("store backend unavailable")
)

// Failure is a user-facing error. Message is what gets shown to the user, Kind
// is one of the sentinels above and Err is the underlying cause, if any.
type Failure struct {
	Kind    error
	Message string
	Err     error
}

func NewFailure(kind error, message string, cause error) *Failure {
	return &Failure{Kind: kind, Message: message, Err: cause}
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return fmt.Sprintf("%s: %s", f.Kind, f.Message)
	}
	return fmt.Sprintf("%s: %s: %v", f.Kind, f.Message, f.Err)
}

func (f *Failure) Unwrap() []error {
	if f.Err == nil {
		return []error{f.Kind}
	}
	return []error{f.Kind, f.Err}
}

// RemoteError is returned by the API adapter for non-success responses.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote status %d", e.StatusCode)
	}
	return fmt.Sprintf("remote status %d: %s", e.StatusCode, e.Message)
}

// RemoteMessage extracts the server supplied message from err, falling back to
// generic when the remote did not answer or said nothing useful.
func RemoteMessage(err error, generic string) string {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) && remoteErr.Message != "" {
		return remoteErr.Message
	}
	return generic
}

// UserMessage returns the message to show for err.
func UserMessage(err error) string {
	var failure *Failure
	if errors.As(err, &failure) && failure.Message != "" {
		return failure.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
