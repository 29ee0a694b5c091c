package upload

import (
	"errors"
	"fmt"
)

// Sentinel errors for the recognition endpoint's outcome classes.
var (
	// ErrNotRecognized is returned for HTTP 404: the track was not identified
	ErrNotRecognized = errors.New("track not recognized")

	// ErrServerError is returned for HTTP 500
	ErrServerError = errors.New("server error")

	// ErrEmptyResult is returned when a 2xx response decodes to an empty result
	ErrEmptyResult = errors.New("empty recognition result")
)

// HTTPError is returned for any non-2xx status other than 404 and 500
type HTTPError struct {
	StatusCode int
	Text       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status %d %s", e.StatusCode, e.Text)
}

// User-facing messages for each outcome class. Failures are terminal for
// the attempt; none are retried.
const (
	MsgNotRecognized = "Track not recognized. Try a different audio file."
	MsgServerError   = "An error occurred on the server."
	MsgEmptyResult   = "No results found."
	MsgUploadFailed  = "Upload failed. Check your connection and try again."
)

// UserMessage maps a classification error to the message shown to the
// user. Transport-level causes are deliberately not included; they are
// logged instead.
func UserMessage(err error) string {
	var httpErr *HTTPError

	switch {
	case errors.Is(err, ErrNotRecognized):
		return MsgNotRecognized
	case errors.Is(err, ErrServerError):
		return MsgServerError
	case errors.Is(err, ErrEmptyResult):
		return MsgEmptyResult
	case errors.As(err, &httpErr):
		return fmt.Sprintf("Error: %d - %s", httpErr.StatusCode, httpErr.Text)
	default:
		return MsgUploadFailed
	}
}
