package model

import (
	"path/filepath"
	"strings"
	"time"
)

// UploadTask represents a single recognition upload
type UploadTask struct {
	ID         string
	Generation uint64 // monotonically increasing; only the newest generation may render
	FileName   string // original filename sent in the multipart part
	FilePath   string // local path of the selected file
	Status     TaskStatus
	Message    string             // user-facing message for non-success outcomes
	LastError  string             // underlying cause, kept for diagnostics only
	Result     *RecognitionResult // set when Status is Completed
	StartedAt  time.Time
	FinishedAt time.Time
}

// GetDisplayName returns a short human-readable name for the task
func (ut *UploadTask) GetDisplayName() string {
	if ut.FileName != "" {
		name := ut.FileName
		if idx := strings.LastIndex(name, "."); idx > 0 {
			name = name[:idx]
		}
		return name
	}

	if ut.FilePath != "" {
		return filepath.Base(ut.FilePath)
	}

	return ut.ID
}
