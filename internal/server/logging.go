package server

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger creates a [log.Logger] with timestamps enabled, writing to
// the given writer (os.Stderr when nil), at the named level.
func NewLogger(w io.Writer, level string) *log.Logger {
	if w == nil {
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "trackdropd",
	})

	if ll, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(ll)
	}

	return logger
}
