package annotations_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/planner-api/api"
	"github.com/killallgit/planner-api/api/types"
	"github.com/killallgit/planner-api/internal/database"
	"github.com/killallgit/planner-api/internal/models"
	"github.com/killallgit/planner-api/pkg/config"
	"github.com/killallgit/planner-api/pkg/ffmpeg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// copyTranscoder "extracts" by copying the source file
type copyTranscoder struct{}

func (copyTranscoder) CheckAvailable(ctx context.Context) ffmpeg.Availability {
	return ffmpeg.Availability{Available: true, Version: "test", Message: "ffmpeg test is available"}
}

func (copyTranscoder) ExtractClip(ctx context.Context, req ffmpeg.ClipRequest) (*ffmpeg.ClipResult, error) {
	data, err := os.ReadFile(req.InputPath)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(req.OutputPath, data, 0644); err != nil {
		return nil, err
	}
	return &ffmpeg.ClipResult{OutputPath: req.OutputPath, SizeBytes: int64(len(data))}, nil
}

type IntegrationTestSuite struct {
	t       *testing.T
	db      *database.DB
	router  *gin.Engine
	uploads string
}

func setupIntegrationTestSuite(t *testing.T, rateLimited bool) *IntegrationTestSuite {
	// Set Gin to test mode
	gin.SetMode(gin.TestMode)
	base := t.TempDir()

	db, err := database.Initialize(filepath.Join(base, "integration.db"), false)
	require.NoError(t, err, "Failed to open test database")
	require.NoError(t, db.Migrate(), "Failed to migrate test database")
	t.Cleanup(func() { db.Close() })

	uploads := filepath.Join(base, "public", "uploads")
	require.NoError(t, os.MkdirAll(uploads, 0755))

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 0, MaxBodyBytes: 1 << 20},
		Media: config.MediaConfig{
			PublicUploadsDir: uploads,
			UploadPrefix:     "/uploads/",
			TempDir:          filepath.Join(base, "tmp"),
			MaxUploadSize:    1 << 20,
		},
		Clips: config.ClipsConfig{DefaultExerciseID: 1, NameMarker: "_crop_"},
		RateLimiting: config.RateLimitConfig{
			Enabled:   rateLimited,
			Endpoints: map[string]int{"transcode": 1, "default": 100, "upload": 10},
		},
		Security: config.SecurityConfig{
			EnableCORS:  true,
			CORSOrigins: []string{"*"},
			CORSMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			CORSHeaders: []string{"Origin", "Content-Type"},
		},
	}

	server := api.NewServer(cfg)
	server.SetDependencies(api.NewDependencies(cfg, db, copyTranscoder{}))
	require.NoError(t, server.Initialize())
	t.Cleanup(func() { _ = server.Shutdown(context.Background()) })

	return &IntegrationTestSuite{t: t, db: db, router: server.Engine(), uploads: uploads}
}

func (s *IntegrationTestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// createAnnotated sends time_from in the structured form and time_to as a string
func (s *IntegrationTestSuite) createAnnotated(to string) (uint, uint) {
	s.t.Helper()
	require.NoError(s.t, os.WriteFile(filepath.Join(s.uploads, "lunge.mp4"), []byte("lunge footage"), 0644))

	w := s.request(http.MethodPost, "/api/analysers", map[string]string{"name": "Lunge", "video_url": "/uploads/lunge.mp4"})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	var analyser models.Analyser
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &analyser))

	w = s.request(http.MethodPost, fmt.Sprintf("/api/analysers/%d/annotations", analyser.ID), map[string]interface{}{
		"title":     "descent",
		"color":     "#123456",
		"time_from": map[string]int{"hour": 0, "minute": 0, "second": 2},
		"time_to":   to,
	})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	var annotation models.Annotation
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &annotation))
	return analyser.ID, annotation.ID
}

func TestAnnotationLifecycle(t *testing.T) {
	suite := setupIntegrationTestSuite(t, false)
	analyserID, annotationID := suite.createAnnotated("00:00:06")

	w := suite.request(http.MethodGet, fmt.Sprintf("/api/analysers/%d/annotations", analyserID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var list []models.Annotation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "00:00:02", list[0].TimeFrom.String())
	assert.False(t, list[0].Saved)

	// updating the range keeps the annotation unsaved
	w = suite.request(http.MethodPut, fmt.Sprintf("/api/analysers/annotations/%d", annotationID), map[string]string{
		"title": "descent", "color": "#123456", "time_from": "00:00:01", "time_to": "00:00:04",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = suite.request(http.MethodPost, fmt.Sprintf("/api/analysers/%d/annotations/%d/crop-video", analyserID, annotationID), nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var clip models.Clip
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &clip))

	w = suite.request(http.MethodGet, clip.VideoURL, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "lunge footage", w.Body.String())

	w = suite.request(http.MethodDelete, fmt.Sprintf("/api/analysers/%d", analyserID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var clips, annotations int64
	require.NoError(t, suite.db.Model(&models.Clip{}).Count(&clips).Error)
	require.NoError(t, suite.db.Model(&models.Annotation{}).Count(&annotations).Error)
	assert.Zero(t, clips)
	assert.Zero(t, annotations)
	assert.Equal(t, http.StatusNotFound, suite.request(http.MethodGet, clip.VideoURL, nil).Code)
}

func TestAnnotationValidation(t *testing.T) {
	suite := setupIntegrationTestSuite(t, false)
	analyserID, _ := suite.createAnnotated("00:00:06")

	tests := []struct {
		name string
		path string
		body interface{}
		code int
	}{
		{name: "missing title", path: fmt.Sprintf("/api/analysers/%d/annotations", analyserID), body: map[string]string{"color": "#fff", "time_from": "00:00:01"}, code: http.StatusBadRequest},
		{name: "malformed time", path: fmt.Sprintf("/api/analysers/%d/annotations", analyserID), body: map[string]string{"title": "x", "color": "#fff", "time_from": "1 second"}, code: http.StatusBadRequest},
		{name: "unknown analyser", path: "/api/analysers/999/annotations", body: map[string]string{"title": "x", "color": "#fff", "time_from": "00:00:01"}, code: http.StatusNotFound},
		{name: "invalid analyser id", path: "/api/analysers/abc/annotations", body: map[string]string{"title": "x", "color": "#fff", "time_from": "00:00:01"}, code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := suite.request(http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.code, w.Code, w.Body.String())

			var response types.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, types.StatusError, response.Status)
		})
	}
}

func TestCropVideo_RateLimited(t *testing.T) {
	suite := setupIntegrationTestSuite(t, true)
	analyserID, annotationID := suite.createAnnotated("00:00:06")
	path := fmt.Sprintf("/api/analysers/%d/annotations/%d/crop-video", analyserID, annotationID)

	var wg sync.WaitGroup
	codes := make([]int, 5)
	for i := range codes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i] = suite.request(http.MethodPost, path, nil).Code
		}(i)
	}
	wg.Wait()

	limited := 0
	for _, code := range codes {
		if code == http.StatusTooManyRequests {
			limited++
		} else {
			assert.Equal(t, http.StatusCreated, code)
		}
	}
	// burst is twice the per-second rate
	assert.GreaterOrEqual(t, limited, 1)

	// other endpoints keep their own budget
	assert.Equal(t, http.StatusOK, suite.request(http.MethodGet, fmt.Sprintf("/api/analysers/%d", analyserID), nil).Code)
}
