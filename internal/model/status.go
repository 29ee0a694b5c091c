package model

// TaskStatus represents the status of an upload task
type TaskStatus string

const (
	// TaskStatusPending means the task is created but the request has not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusUploading means the file is being sent to the recognition endpoint
	TaskStatusUploading TaskStatus = "Uploading"

	// TaskStatusCompleted means the server returned a usable recognition result
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusSuperseded means a newer upload replaced this one before it finished
	TaskStatusSuperseded TaskStatus = "Superseded"

	// TaskStatusError means the upload attempt failed
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is in an active state
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusPending || ts == TaskStatusUploading
}

// IsFinished returns true if the task is in a terminal state
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusSuperseded || ts == TaskStatusError
}
