package upload

import (
	"github.com/Senko-San-Coder/trackdrop/internal/model"
)

// Uploader is the surface the UI consumes: submissions go in, task
// updates come back through the callback.
type Uploader interface {
	SetUpdateCallback(func(*model.UploadTask))
	Submit(path string) (*model.UploadTask, error)

	// SetEndpoint changes the base URL of the recognition server
	SetEndpoint(endpoint string)
}
