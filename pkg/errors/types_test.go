package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHTTPCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NotFound("annotation", 7), http.StatusNotFound},
		{"invalid input", InvalidInput("bad range"), http.StatusBadRequest},
		{"validation", ValidationError("title", "required"), http.StatusBadRequest},
		{"missing field", MissingFieldError("name"), http.StatusBadRequest},
		{"permission denied", PermissionDenied("/srv/v.mp4", "not readable"), http.StatusForbidden},
		{"external tool", ExternalToolError("ffmpeg", "exit status 1", "boom"), http.StatusInternalServerError},
		{"storage", StorageError("insert", fmt.Errorf("disk full")), http.StatusInternalServerError},
		{"plain error", fmt.Errorf("plain"), http.StatusInternalServerError},
		{"wrapped app error", fmt.Errorf("outer: %w", NotFound("clip", 1)), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPCode(tt.err))
		})
	}
}

func TestFileNotFound_ListsCandidatesInOrder(t *testing.T) {
	candidates := []string{"/a/v.mp4", "/b/v.mp4", "/c/v.mp4"}
	err := FileNotFound("/uploads/v.mp4", candidates)

	require.True(t, Is(err, ErrCodeNotFound))
	assert.Equal(t, candidates, err.Details["checked_paths"])
	assert.Contains(t, err.Error(), "/a/v.mp4, /b/v.mp4, /c/v.mp4")

	// mutating the caller's slice must not change the error
	candidates[0] = "changed"
	assert.Equal(t, "/a/v.mp4", err.Details["checked_paths"].([]string)[0])
}

func TestExternalToolError_Stderr(t *testing.T) {
	withStderr := ExternalToolError("ffmpeg", "failed", "Invalid data found")
	assert.Equal(t, "Invalid data found", withStderr.Details["stderr"])

	without := ExternalToolError("ffmpeg", "not available", "")
	_, ok := without.Details["stderr"]
	assert.False(t, ok)
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, ErrCodeInternal, GetCode(fmt.Errorf("x")))
	assert.Equal(t, ErrCodeStorage, GetCode(fmt.Errorf("ctx: %w", StorageError("update", nil))))
	assert.True(t, Is(Wrap(fmt.Errorf("x"), ErrCodePermissionDenied, "nope"), ErrCodePermissionDenied))
}
