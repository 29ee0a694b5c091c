package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Senko-San-Coder/trackdrop/internal/model"
)

// Upload constants
const (
	RecognizePath = "/recognize"
	FileFieldName = "file"
	TaskIDPrefix  = "upload-"
)

// Service sends audio files to the recognition endpoint and classifies
// the outcome. Exactly one request is made per Submit; submitting while
// a request is in flight cancels it, and responses from stale
// generations never reach the UI.
type Service struct {
	endpoint   string
	httpClient *http.Client

	tasks      map[string]*model.UploadTask
	tasksMutex sync.RWMutex
	onUpdate   func(*model.UploadTask) // callback for UI updates

	generation     uint64
	cancelInFlight context.CancelFunc
}

// NewService creates a new upload service
func NewService(endpoint string, client *http.Client) *Service {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	return &Service{
		endpoint:   endpoint,
		httpClient: client,
		tasks:      make(map[string]*model.UploadTask),
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.UploadTask)) {
	s.onUpdate = callback
}

// SetEndpoint changes the base URL of the recognition server
func (s *Service) SetEndpoint(endpoint string) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.endpoint = endpoint
}

// Submit starts a recognition upload for the given file. The previous
// in-flight request, if any, is cancelled; the new task carries the next
// generation number and becomes the only one allowed to render.
func (s *Service) Submit(path string) (*model.UploadTask, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat input file: %w", err)
	}

	s.tasksMutex.Lock()
	s.generation++

	if s.cancelInFlight != nil {
		s.cancelInFlight()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancelInFlight = cancel

	task := &model.UploadTask{
		ID:         generateTaskID(),
		Generation: s.generation,
		FileName:   filepath.Base(path),
		FilePath:   path,
		Status:     model.TaskStatusPending,
		StartedAt:  time.Now(),
	}
	s.tasks[task.ID] = task
	s.tasksMutex.Unlock()

	go s.run(ctx, task)

	return task, nil
}

// GetTask returns a task by ID
func (s *Service) GetTask(id string) (*model.UploadTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	return task, exists
}

// run performs the upload and applies the classified outcome
func (s *Service) run(ctx context.Context, task *model.UploadTask) {
	s.tasksMutex.Lock()
	task.Status = model.TaskStatusUploading
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	result, err := s.recognize(ctx, task.FilePath, task.FileName)

	s.tasksMutex.Lock()
	stale := task.Generation != s.generation
	if stale || ctx.Err() != nil {
		// A newer upload owns the UI now; this outcome must not win.
		task.Status = model.TaskStatusSuperseded
		task.FinishedAt = time.Now()
		s.tasksMutex.Unlock()

		log.Printf("Discarding stale response for task %s (generation %d)", task.ID, task.Generation)
		s.notifyUpdate(task)
		return
	}

	if err != nil {
		task.Status = model.TaskStatusError
		task.Message = UserMessage(err)
		task.LastError = err.Error()
		log.Printf("Upload %s failed: %v", task.ID, err)
	} else {
		task.Status = model.TaskStatusCompleted
		task.Result = result
	}
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	s.notifyUpdate(task)
}

// recognize sends one multipart POST and classifies the HTTP outcome
func (s *Service) recognize(ctx context.Context, path, fileName string) (*model.RecognitionResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile(FileFieldName, fileName)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalize form: %w", err)
	}

	s.tasksMutex.RLock()
	endpoint := s.endpoint
	s.tasksMutex.RUnlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+RecognizePath, &body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform upload: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotRecognized
	case resp.StatusCode == http.StatusInternalServerError:
		return nil, ErrServerError
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &HTTPError{StatusCode: resp.StatusCode, Text: http.StatusText(resp.StatusCode)}
	}

	var result model.RecognitionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if result.IsEmpty() {
		return nil, ErrEmptyResult
	}

	return &result, nil
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.UploadTask) {
	if s.onUpdate != nil {
		s.onUpdate(task)
	}
}

// generateTaskID generates a unique task ID using UUID v7 for time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
