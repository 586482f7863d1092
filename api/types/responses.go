package types

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`  // One of the Status constants above
	Message string `json:"message"` // Human-readable message
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code/type
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// MessageResponse confirms an operation that returns no resource
type MessageResponse struct {
	Message string `json:"message" example:"Annotation deleted successfully"`
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	BaseResponse
	Version  string                 `json:"version,omitempty"`
	Services map[string]interface{} `json:"services,omitempty"`
}

// TranscoderStatusResponse reports whether clips can be extracted
type TranscoderStatusResponse struct {
	BaseResponse
	Version string   `json:"version,omitempty" example:"6.1.1"`
	Path    string   `json:"path,omitempty" example:"/usr/bin/ffmpeg"`
	Checked []string `json:"checked_paths,omitempty"`
}

// FileCheckResponse is the result of a file resolution diagnostic
type FileCheckResponse struct {
	BaseResponse
	Path     string   `json:"path,omitempty" example:"/srv/app/public/uploads/squat.mp4"`
	Size     int64    `json:"size,omitempty" example:"1048576"`
	Modified float64  `json:"modified,omitempty" example:"1718000000"` // Unix seconds
	Checked  []string `json:"checked_paths"`
}

// UploadResponse carries the public reference of a stored upload
type UploadResponse struct {
	URL string `json:"url" example:"/uploads/3f2c..._squat.mp4"`
}

// TagRequest creates a tag
type TagRequest struct {
	Name string `json:"name" example:"legs"`
}
