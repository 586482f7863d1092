package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
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

// fakeTranscoder writes a placeholder file instead of running ffmpeg
type fakeTranscoder struct {
	available bool
	requests  []ffmpeg.ClipRequest
}

func (f *fakeTranscoder) CheckAvailable(ctx context.Context) ffmpeg.Availability {
	if !f.available {
		return ffmpeg.Availability{Message: "ffmpeg is not installed or not found in PATH", Checked: []string{"ffmpeg"}}
	}
	return ffmpeg.Availability{Available: true, Version: "6.1.1", Path: "/usr/bin/ffmpeg", Message: "ffmpeg 6.1.1 is available"}
}

func (f *fakeTranscoder) ExtractClip(ctx context.Context, req ffmpeg.ClipRequest) (*ffmpeg.ClipResult, error) {
	f.requests = append(f.requests, req)
	if err := os.WriteFile(req.OutputPath, []byte("clip"), 0644); err != nil {
		return nil, err
	}
	return &ffmpeg.ClipResult{OutputPath: req.OutputPath, SizeBytes: 4}, nil
}

type apiSuite struct {
	t          *testing.T
	router     *gin.Engine
	db         *database.DB
	uploads    string
	transcoder *fakeTranscoder
}

func setupAPISuite(t *testing.T) *apiSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)
	base := t.TempDir()

	db, err := database.Initialize(filepath.Join(base, "api.db"), false)
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { db.Close() })

	uploads := filepath.Join(base, "public", "uploads")
	require.NoError(t, os.MkdirAll(uploads, 0755))

	cfg := &config.Config{
		Server: config.ServerConfig{MaxBodyBytes: 1 << 20},
		Media: config.MediaConfig{
			PublicUploadsDir: uploads,
			UploadPrefix:     "/uploads/",
			TempDir:          filepath.Join(base, "tmp"),
			MaxUploadSize:    1 << 20,
		},
		Clips: config.ClipsConfig{DefaultExerciseID: 1, NameMarker: "_crop_"},
	}

	transcoder := &fakeTranscoder{available: true}
	deps := api.NewDependencies(cfg, db, transcoder)

	router := gin.New()
	stop := make(chan struct{})
	t.Cleanup(func() { close(stop) })
	require.NoError(t, api.RegisterRoutes(router, deps, &sync.Map{}, stop, &sync.Once{}))

	return &apiSuite{t: t, router: router, db: db, uploads: uploads, transcoder: transcoder}
}

func (s *apiSuite) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *apiSuite) decode(w *httptest.ResponseRecorder, target interface{}) {
	s.t.Helper()
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), target), w.Body.String())
}

func (s *apiSuite) upload(name string, content []byte) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", name)
	require.NoError(s.t, err)
	_, err = part.Write(content)
	require.NoError(s.t, err)
	require.NoError(s.t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// analyserWithVideo uploads a video and creates an analyser pointing at it
func (s *apiSuite) analyserWithVideo() models.Analyser {
	s.t.Helper()
	w := s.upload("squat session.mp4", []byte("source video"))
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	var uploaded types.UploadResponse
	s.decode(w, &uploaded)

	w = s.do(http.MethodPost, "/api/analysers", map[string]string{"name": "Squat", "video_url": uploaded.URL})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	var analyser models.Analyser
	s.decode(w, &analyser)
	return analyser
}

func (s *apiSuite) annotation(analyserID uint, from, to string) models.Annotation {
	s.t.Helper()
	w := s.do(http.MethodPost, fmt.Sprintf("/api/analysers/%d/annotations", analyserID), map[string]string{
		"title": "rep 1", "color": "#ff0000", "time_from": from, "time_to": to,
	})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())
	var annotation models.Annotation
	s.decode(w, &annotation)
	return annotation
}

func TestRegisterRoutes_MissingDependencies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := &types.Dependencies{Config: &config.Config{}}

	err := api.RegisterRoutes(gin.New(), deps, &sync.Map{}, make(chan struct{}), &sync.Once{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ClipService")
}

func TestUploadAndServe(t *testing.T) {
	s := setupAPISuite(t)

	w := s.upload("../../etc/My Video.mp4", []byte("data"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var uploaded types.UploadResponse
	s.decode(w, &uploaded)
	assert.True(t, strings.HasPrefix(uploaded.URL, "/uploads/"))
	assert.True(t, strings.HasSuffix(uploaded.URL, "_My_Video.mp4"))

	w = s.do(http.MethodGet, uploaded.URL, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "data", w.Body.String())

	t.Run("unsupported type", func(t *testing.T) {
		w := s.upload("notes.exe", []byte("x"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("too large", func(t *testing.T) {
		w := s.upload("big.mp4", bytes.Repeat([]byte("a"), 2<<20))
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}

func TestCropVideo(t *testing.T) {
	s := setupAPISuite(t)
	analyser := s.analyserWithVideo()
	annotation := s.annotation(analyser.ID, "00:00:05", "00:00:12")

	w := s.do(http.MethodPost, fmt.Sprintf("/api/analysers/%d/annotations/%d/crop-video", analyser.ID, annotation.ID), nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var clip models.Clip
	s.decode(w, &clip)
	assert.Equal(t, annotation.ID, clip.AnnoID)
	assert.Equal(t, uint(1), clip.CropID)
	assert.True(t, strings.HasPrefix(clip.VideoURL, "/uploads/"), clip.VideoURL)
	assert.Contains(t, clip.VideoURL, fmt.Sprintf("_crop_%d_", annotation.ID))

	require.Len(t, s.transcoder.requests, 1)
	assert.Equal(t, 5.0, s.transcoder.requests[0].Start.Seconds())
	assert.Equal(t, 7.0, s.transcoder.requests[0].Duration.Seconds())

	// the clip lands next to its source and is served like any upload
	_, err := os.Stat(filepath.Join(s.uploads, strings.TrimPrefix(clip.VideoURL, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, clip.VideoURL, nil).Code)

	w = s.do(http.MethodGet, fmt.Sprintf("/api/analysers/annotations/%d", annotation.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var reloaded models.Annotation
	s.decode(w, &reloaded)
	assert.True(t, reloaded.Saved)
	assert.Len(t, reloaded.Clips, 1)

	t.Run("annotation alias route with exercise", func(t *testing.T) {
		exercise := models.Exercise{Name: "Back squat"}
		require.NoError(t, s.db.Create(&exercise).Error)

		w := s.do(http.MethodPost, fmt.Sprintf("/api/analysers/annotations/%d/crop-video", annotation.ID),
			map[string]uint{"exercise_id": exercise.ID})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var second models.Clip
		s.decode(w, &second)
		assert.Equal(t, exercise.ID, second.CropID)
		assert.NotEqual(t, clip.VideoURL, second.VideoURL)
	})

	t.Run("empty chunked body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/analysers/annotations/%d/crop-video", annotation.ID), strings.NewReader(""))
		req.ContentLength = -1
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	t.Run("unknown exercise", func(t *testing.T) {
		w := s.do(http.MethodPost, fmt.Sprintf("/api/analysers/annotations/%d/crop-video", annotation.ID),
			map[string]uint{"exercise_id": 999})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("annotation of another analyser", func(t *testing.T) {
		w := s.do(http.MethodPost, fmt.Sprintf("/api/analysers/%d/annotations/%d/crop-video", analyser.ID+100, annotation.ID), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("empty range", func(t *testing.T) {
		bad := s.annotation(analyser.ID, "00:00:10", "00:00:10")
		w := s.do(http.MethodPost, fmt.Sprintf("/api/analysers/annotations/%d/crop-video", bad.ID), nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response types.ErrorResponse
		s.decode(w, &response)
		assert.Equal(t, "INVALID_INPUT", response.Error)
	})

	t.Run("transcoder unavailable", func(t *testing.T) {
		s.transcoder.available = false
		defer func() { s.transcoder.available = true }()

		w := s.do(http.MethodPost, fmt.Sprintf("/api/analysers/annotations/%d/crop-video", annotation.ID), nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var response types.ErrorResponse
		s.decode(w, &response)
		assert.Equal(t, "EXTERNAL_TOOL", response.Error)
	})
}

func TestCropVideo_MissingFile(t *testing.T) {
	s := setupAPISuite(t)

	w := s.do(http.MethodPost, "/api/analysers", map[string]string{"name": "Lost", "video_url": "/uploads/missing.mp4"})
	require.Equal(t, http.StatusCreated, w.Code)
	var analyser models.Analyser
	s.decode(w, &analyser)
	annotation := s.annotation(analyser.ID, "00:00:01", "00:00:03")

	w = s.do(http.MethodPost, fmt.Sprintf("/api/analysers/%d/annotations/%d/crop-video", analyser.ID, annotation.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]interface{}
	s.decode(w, &response)
	details, ok := response["details"].(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, details["checked_paths"])
	assert.Empty(t, s.transcoder.requests)
}

func TestDiagnostics(t *testing.T) {
	s := setupAPISuite(t)
	analyser := s.analyserWithVideo()

	t.Run("check-ffmpeg", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/analysers/check-ffmpeg", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var response types.TranscoderStatusResponse
		s.decode(w, &response)
		assert.Equal(t, "ok", response.Status)
		assert.Equal(t, "6.1.1", response.Version)
	})

	t.Run("check-ffmpeg unavailable", func(t *testing.T) {
		s.transcoder.available = false
		defer func() { s.transcoder.available = true }()

		w := s.do(http.MethodGet, "/api/analysers/check-ffmpeg", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var response types.TranscoderStatusResponse
		s.decode(w, &response)
		assert.Equal(t, "error", response.Status)
		assert.NotEmpty(t, response.Message)
	})

	t.Run("check-file found", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/analysers/check-file?file_path="+analyser.VideoURL, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var response types.FileCheckResponse
		s.decode(w, &response)
		assert.Equal(t, "ok", response.Status)
		assert.Equal(t, int64(len("source video")), response.Size)
		assert.Greater(t, response.Modified, 0.0)
		assert.NotEmpty(t, response.Path)
	})

	t.Run("check-file missing", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/analysers/check-file?file_path=/uploads/nope.mp4", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var response types.FileCheckResponse
		s.decode(w, &response)
		assert.Equal(t, "error", response.Status)
		assert.NotEmpty(t, response.Checked)
	})

	t.Run("check-file without path", func(t *testing.T) {
		w := s.do(http.MethodGet, "/api/analysers/check-file", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteAnnotation_Cascade(t *testing.T) {
	s := setupAPISuite(t)
	analyser := s.analyserWithVideo()
	annotation := s.annotation(analyser.ID, "00:00:00", "00:00:04")

	w := s.do(http.MethodPost, fmt.Sprintf("/api/analysers/annotations/%d/crop-video", annotation.ID), nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var clip models.Clip
	s.decode(w, &clip)
	clipPath := filepath.Join(s.uploads, strings.TrimPrefix(clip.VideoURL, "/uploads/"))

	w = s.do(http.MethodDelete, fmt.Sprintf("/api/analysers/annotations/%d", annotation.ID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var msg types.MessageResponse
	s.decode(w, &msg)
	assert.Equal(t, "Annotation deleted successfully", msg.Message)

	_, err := os.Stat(clipPath)
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, fmt.Sprintf("/api/analysers/cropped-videos/%d", clip.ID), nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodDelete, fmt.Sprintf("/api/analysers/annotations/%d", annotation.ID), nil).Code)
}

func TestAnalysersCRUD(t *testing.T) {
	s := setupAPISuite(t)

	w := s.do(http.MethodPost, "/api/analysers", map[string]string{"name": "", "video_url": "/uploads/a.mp4"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	analyser := s.analyserWithVideo()
	s.annotation(analyser.ID, "00:00:01", "00:00:02")

	w = s.do(http.MethodGet, "/api/analysers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Analyser
	s.decode(w, &list)
	require.Len(t, list, 1)
	assert.Len(t, list[0].Annotations, 1)

	w = s.do(http.MethodPut, fmt.Sprintf("/api/analysers/%d", analyser.ID), map[string]string{"name": "Front squat", "video_url": analyser.VideoURL})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Analyser
	s.decode(w, &updated)
	assert.Equal(t, "Front squat", updated.Name)

	w = s.do(http.MethodDelete, fmt.Sprintf("/api/analysers/%d", analyser.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, fmt.Sprintf("/api/analysers/%d", analyser.ID), nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, fmt.Sprintf("/api/analysers/%d/annotations", analyser.ID), nil).Code)

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/analysers/abc", nil).Code)
}

func TestClipsCRUD(t *testing.T) {
	s := setupAPISuite(t)
	analyser := s.analyserWithVideo()
	annotation := s.annotation(analyser.ID, "00:00:01", "00:00:02")

	w := s.do(http.MethodPost, fmt.Sprintf("/api/analysers/annotations/%d/cropped-videos", annotation.ID), map[string]string{"video_url": "/uploads/manual.mp4"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var clip models.Clip
	s.decode(w, &clip)

	w = s.do(http.MethodGet, fmt.Sprintf("/api/analysers/annotations/%d/cropped-videos", annotation.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Clip
	s.decode(w, &list)
	assert.Len(t, list, 1)

	w = s.do(http.MethodPut, fmt.Sprintf("/api/analysers/cropped-videos/%d", clip.ID), map[string]string{"video_url": "/uploads/renamed.mp4"})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Clip
	s.decode(w, &updated)
	assert.Equal(t, "/uploads/renamed.mp4", updated.VideoURL)

	w = s.do(http.MethodDelete, fmt.Sprintf("/api/analysers/cropped-videos/%d", clip.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, fmt.Sprintf("/api/analysers/annotations/%d", annotation.ID), nil)
	var reloaded models.Annotation
	s.decode(w, &reloaded)
	assert.False(t, reloaded.Saved)

	// a clip registered on the analyser's own video keeps the video on delete
	w = s.do(http.MethodPost, fmt.Sprintf("/api/analysers/annotations/%d/cropped-videos", annotation.ID), map[string]string{"video_url": analyser.VideoURL})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	s.decode(w, &clip)
	w = s.do(http.MethodDelete, fmt.Sprintf("/api/analysers/cropped-videos/%d", clip.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, analyser.VideoURL, nil).Code)
}

func TestExercisesAndTags(t *testing.T) {
	s := setupAPISuite(t)

	w := s.do(http.MethodPost, "/api/tags", types.TagRequest{Name: "legs"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var tag models.Tag
	s.decode(w, &tag)
	assert.Equal(t, http.StatusConflict, s.do(http.MethodPost, "/api/tags", types.TagRequest{Name: "Legs"}).Code)

	w = s.do(http.MethodPost, "/api/exercises", map[string]interface{}{
		"name": "Squat", "instructions": "Sit back", "tag_ids": []uint{tag.ID, 999},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var exercise models.Exercise
	s.decode(w, &exercise)
	require.Len(t, exercise.Tags, 1)

	w = s.do(http.MethodPost, "/api/exercises", map[string]interface{}{"name": "Plank"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = s.do(http.MethodGet, fmt.Sprintf("/api/exercises?tag_id=%d", tag.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var filtered []models.Exercise
	s.decode(w, &filtered)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Squat", filtered[0].Name)

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/exercises?tag_id=x", nil).Code)

	w = s.do(http.MethodDelete, fmt.Sprintf("/api/exercises/%d", exercise.ID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, fmt.Sprintf("/api/exercises/%d", exercise.ID), nil).Code)
}

func TestWorkoutsAndPlans(t *testing.T) {
	s := setupAPISuite(t)

	exercise := models.Exercise{Name: "Burpee"}
	require.NoError(t, s.db.Create(&exercise).Error)

	w := s.do(http.MethodPost, "/api/workouts", map[string]interface{}{"title": "Empty"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/workouts", map[string]interface{}{
		"title": "HIIT",
		"sections": []map[string]interface{}{{
			"name": "Main", "position": 1,
			"exercises": []map[string]interface{}{{
				"ex_id": exercise.ID, "sets": 3, "quantity": 10, "unit": "ILOŚĆ", "rest": 30, "position": 1,
			}},
		}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var workout models.Workout
	s.decode(w, &workout)
	require.Len(t, workout.Sections, 1)

	w = s.do(http.MethodPost, "/api/plans", map[string]string{"name": "Marathon", "event_date": "2025-10-12"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var plan models.Plan
	s.decode(w, &plan)

	w = s.do(http.MethodPost, "/api/plans/weeks", map[string]interface{}{"plan_id": plan.ID, "position": 1})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var week models.WeekPlan
	s.decode(w, &week)

	w = s.do(http.MethodPost, "/api/plans/workouts", map[string]interface{}{
		"plan_id": plan.ID, "week_id": week.ID, "day_of_week": "Funday", "work_id": workout.ID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/plans/workouts", map[string]interface{}{
		"plan_id": plan.ID, "week_id": week.ID, "day_of_week": "Monday", "work_id": workout.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var entry models.WorkoutPlan
	s.decode(w, &entry)

	w = s.do(http.MethodGet, fmt.Sprintf("/api/plans/%d/weeks", plan.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var weeks []models.WeekPlan
	s.decode(w, &weeks)
	assert.Len(t, weeks, 1)

	w = s.do(http.MethodGet, fmt.Sprintf("/api/plans/weeks/%d/workouts", week.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var entries []models.WorkoutPlan
	s.decode(w, &entries)
	assert.Len(t, entries, 1)

	// deleting the workout keeps the scheduled day but unlinks it
	require.Equal(t, http.StatusOK, s.do(http.MethodDelete, fmt.Sprintf("/api/workouts/%d", workout.ID), nil).Code)
	w = s.do(http.MethodGet, fmt.Sprintf("/api/plans/workouts/%d", entry.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var unlinked models.WorkoutPlan
	s.decode(w, &unlinked)
	assert.Nil(t, unlinked.WorkID)

	require.Equal(t, http.StatusOK, s.do(http.MethodDelete, fmt.Sprintf("/api/plans/%d", plan.ID), nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, fmt.Sprintf("/api/plans/weeks/%d", week.ID), nil).Code)
}

func TestNotFoundRoute(t *testing.T) {
	s := setupAPISuite(t)

	w := s.do(http.MethodGet, "/api/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	var response map[string]interface{}
	s.decode(w, &response)
	assert.Equal(t, "/api/does-not-exist", response["path"])
}
