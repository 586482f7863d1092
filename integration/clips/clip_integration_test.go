package clips_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/killallgit/planner-api/internal/database"
	"github.com/killallgit/planner-api/internal/models"
	"github.com/killallgit/planner-api/internal/services/clips"
	"github.com/killallgit/planner-api/internal/services/mediapath"
	apperrors "github.com/killallgit/planner-api/pkg/errors"
	"github.com/killallgit/planner-api/pkg/ffmpeg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const probeJSON = `{
  "streams": [
    {"codec_type": "video", "codec_name": "h264", "width": 160, "height": 120},
    {"codec_type": "audio", "codec_name": "aac"}
  ],
  "format": {"format_name": "mov,mp4,m4a,3gp,3g2,mj2", "duration": "7.000000", "size": "4096"}
}`

// fakeBinaries plays ffmpeg and ffprobe without touching the host
type fakeBinaries struct {
	failExtract bool
	delay       time.Duration

	mu      sync.Mutex
	calls   [][]string
	running int32
	maxSeen int32
}

func (f *fakeBinaries) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.mu.Lock()
	f.calls = append(f.calls, append([]string{name}, args...))
	f.mu.Unlock()

	switch {
	case len(args) == 1 && args[0] == "-version":
		return []byte("ffmpeg version 6.1.1 Copyright (c) 2000-2023 the FFmpeg developers\n"), nil, nil
	case strings.HasSuffix(name, "ffprobe"):
		return []byte(probeJSON), nil, nil
	}

	n := atomic.AddInt32(&f.running, 1)
	defer atomic.AddInt32(&f.running, -1)
	for {
		seen := atomic.LoadInt32(&f.maxSeen)
		if n <= seen || atomic.CompareAndSwapInt32(&f.maxSeen, seen, n) {
			break
		}
	}

	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, []byte("killed"), ctx.Err()
		}
	}
	if f.failExtract {
		return nil, []byte("Invalid data found when processing input"), fmt.Errorf("exit status 1")
	}
	output := args[len(args)-1]
	return nil, nil, os.WriteFile(output, []byte("clip bytes"), 0644)
}

func (f *fakeBinaries) extractCalls() [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out [][]string
	for _, c := range f.calls {
		if len(c) > 2 && c[1] == "-ss" {
			out = append(out, c)
		}
	}
	return out
}

// ClipTestSuite holds all dependencies for clip integration tests
type ClipTestSuite struct {
	t           *testing.T
	db          *database.DB
	clipService clips.Service
	resolver    *mediapath.Resolver
	binaries    *fakeBinaries
	uploadsDir  string
	tempDir     string
}

// setupClipTestSuite initializes an isolated test environment
func setupClipTestSuite(t *testing.T, opts ffmpeg.Options, binaries *fakeBinaries) *ClipTestSuite {
	t.Helper()
	base := t.TempDir()

	uploadsDir := filepath.Join(base, "public", "uploads")
	tempDir := filepath.Join(base, "tmp")
	require.NoError(t, os.MkdirAll(uploadsDir, 0755))
	require.NoError(t, os.MkdirAll(tempDir, 0755))

	db, err := database.Initialize(filepath.Join(base, "clips.db"), false)
	require.NoError(t, err, "Failed to open test database")
	require.NoError(t, db.Migrate(), "Failed to migrate test database")
	t.Cleanup(func() { db.Close() })

	resolver := mediapath.New(mediapath.Config{
		PublicUploadsDir: uploadsDir,
		UploadPrefix:     "/uploads/",
		TempDir:          tempDir,
		NameMarker:       "_crop_",
	})

	var gateway *ffmpeg.FFmpeg
	if binaries != nil {
		gateway = ffmpeg.New(opts,
			ffmpeg.WithRunner(binaries),
			ffmpeg.WithLookPath(func(name string) (string, error) { return "/opt/fake/bin/" + filepath.Base(name), nil }),
		)
	} else {
		gateway = ffmpeg.New(opts)
	}

	return &ClipTestSuite{
		t:           t,
		db:          db,
		clipService: clips.NewService(clips.NewRepository(db.DB), gateway, resolver, 1),
		resolver:    resolver,
		binaries:    binaries,
		uploadsDir:  uploadsDir,
		tempDir:     tempDir,
	}
}

// seedAnnotation stores a source video reference and one annotation over it
func (suite *ClipTestSuite) seedAnnotation(videoURL string, from, to models.ClockTime) (models.Analyser, models.Annotation) {
	suite.t.Helper()
	analyser := models.Analyser{Name: "Deadlift", VideoURL: videoURL}
	require.NoError(suite.t, suite.db.Create(&analyser).Error)

	annotation := models.Annotation{AnalyserID: analyser.ID, TimeFrom: &from, TimeTo: &to, Title: "rep", Color: "#00ff00"}
	require.NoError(suite.t, suite.db.Create(&annotation).Error)
	return analyser, annotation
}

func (suite *ClipTestSuite) writeUpload(name string) string {
	suite.t.Helper()
	require.NoError(suite.t, os.WriteFile(filepath.Join(suite.uploadsDir, name), []byte("source"), 0644))
	return "/uploads/" + name
}

func (suite *ClipTestSuite) reloadAnnotation(id uint) models.Annotation {
	suite.t.Helper()
	var annotation models.Annotation
	require.NoError(suite.t, suite.db.Preload("Clips").First(&annotation, id).Error)
	return annotation
}

// TestClipExtraction_Pipeline runs the whole crop path through the real gateway
func TestClipExtraction_Pipeline(t *testing.T) {
	binaries := &fakeBinaries{}
	suite := setupClipTestSuite(t, ffmpeg.Options{}, binaries)

	ref := suite.writeUpload("deadlift.mp4")
	analyser, annotation := suite.seedAnnotation(ref, models.NewClockTime(0, 0, 3), models.NewClockTime(0, 0, 10))

	clip, err := suite.clipService.ExtractClip(context.Background(), analyser.ID, annotation.ID, clips.ExtractRequest{})
	require.NoError(t, err)

	assert.Equal(t, uint(1), clip.CropID)
	assert.True(t, strings.HasPrefix(clip.VideoURL, fmt.Sprintf("/uploads/deadlift_crop_%d_", annotation.ID)), clip.VideoURL)
	assert.JSONEq(t, `{"duration":7,"format_name":"mov,mp4,m4a,3gp,3g2,mj2","video_codec":"h264","audio_codec":"aac","width":160,"height":120,"size":4096}`, string(clip.Metadata))

	calls := binaries.extractCalls()
	require.Len(t, calls, 1)
	args := strings.Join(calls[0], " ")
	assert.Contains(t, args, "-ss 3.000 -i "+filepath.Join(suite.uploadsDir, "deadlift.mp4")+" -t 7.000")
	assert.Contains(t, args, "-c:v libx264 -c:a aac")

	saved := suite.reloadAnnotation(annotation.ID)
	assert.True(t, saved.Saved)
	require.Len(t, saved.Clips, 1)

	// deleting the annotation removes the clip file with the rows
	outputPath, err := suite.resolver.Resolve(clip.VideoURL)
	require.NoError(t, err)
	require.NoError(t, suite.clipService.DeleteAnnotation(context.Background(), annotation.ID))
	_, err = os.Stat(outputPath)
	assert.True(t, os.IsNotExist(err))

	var remaining int64
	require.NoError(t, suite.db.Model(&models.Clip{}).Count(&remaining).Error)
	assert.Zero(t, remaining)
}

// TestClipExtraction_FFmpegFailure leaves no rows and no files behind
func TestClipExtraction_FFmpegFailure(t *testing.T) {
	suite := setupClipTestSuite(t, ffmpeg.Options{}, &fakeBinaries{failExtract: true})

	ref := suite.writeUpload("broken.mp4")
	analyser, annotation := suite.seedAnnotation(ref, models.NewClockTime(0, 0, 0), models.NewClockTime(0, 0, 2))

	_, err := suite.clipService.ExtractClip(context.Background(), analyser.ID, annotation.ID, clips.ExtractRequest{})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeExternalTool, apperrors.GetCode(err))
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Contains(t, fmt.Sprint(appErr.Details["stderr"]), "Invalid data")

	assert.False(t, suite.reloadAnnotation(annotation.ID).Saved)
	entries, err := os.ReadDir(suite.uploadsDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "only the source video should remain")
}

// TestClipExtraction_Timeout maps a deadline into an external tool error
func TestClipExtraction_Timeout(t *testing.T) {
	suite := setupClipTestSuite(t, ffmpeg.Options{Timeout: 50 * time.Millisecond}, &fakeBinaries{delay: 5 * time.Second})

	ref := suite.writeUpload("slow.mp4")
	analyser, annotation := suite.seedAnnotation(ref, models.NewClockTime(0, 0, 0), models.NewClockTime(0, 0, 2))

	started := time.Now()
	_, err := suite.clipService.ExtractClip(context.Background(), analyser.ID, annotation.ID, clips.ExtractRequest{})
	require.Error(t, err)
	assert.Less(t, time.Since(started), 2*time.Second)
	assert.Contains(t, err.Error(), "timed out")
	assert.False(t, suite.reloadAnnotation(annotation.ID).Saved)
}

// TestConcurrentClipExtraction respects the transcoder concurrency limit
func TestConcurrentClipExtraction(t *testing.T) {
	binaries := &fakeBinaries{delay: 50 * time.Millisecond}
	suite := setupClipTestSuite(t, ffmpeg.Options{MaxConcurrent: 1}, binaries)

	ref := suite.writeUpload("concurrent.mp4")
	analyser, annotation := suite.seedAnnotation(ref, models.NewClockTime(0, 0, 1), models.NewClockTime(0, 0, 4))

	const workers = 4
	var wg sync.WaitGroup
	urls := make([]string, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			clip, err := suite.clipService.ExtractClip(context.Background(), analyser.ID, annotation.ID, clips.ExtractRequest{})
			errs[i] = err
			if err == nil {
				urls[i] = clip.VideoURL
			}
		}(i)
	}
	wg.Wait()

	seen := map[string]bool{}
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.False(t, seen[urls[i]], "clip names must be unique")
		seen[urls[i]] = true
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&binaries.maxSeen))
	assert.Len(t, suite.reloadAnnotation(annotation.ID).Clips, workers)
}

// TestClipExtraction_RealFFmpeg cuts a generated test pattern with the host's ffmpeg
func TestClipExtraction_RealFFmpeg(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping slow clip extraction integration test in short mode")
	}
	ffmpegPath, err := exec.LookPath("ffmpeg")
	if err != nil {
		t.Skip("ffmpeg not installed")
	}

	suite := setupClipTestSuite(t, ffmpeg.Options{Encoding: ffmpeg.EncodingOptions{
		VideoCodec: "libx264", AudioCodec: "aac", Preset: "ultrafast", CRF: 30, PixelFormat: "yuv420p",
	}}, nil)

	source := filepath.Join(suite.uploadsDir, "pattern.mp4")
	gen := exec.Command(ffmpegPath, "-y",
		"-f", "lavfi", "-i", "testsrc=duration=4:size=160x120:rate=10",
		"-f", "lavfi", "-i", "sine=frequency=440:duration=4",
		"-shortest", "-c:v", "libx264", "-c:a", "aac", "-pix_fmt", "yuv420p", source)
	if out, err := gen.CombinedOutput(); err != nil {
		t.Skipf("could not generate test video: %v\n%s", err, out)
	}

	analyser, annotation := suite.seedAnnotation("/uploads/pattern.mp4", models.NewClockTime(0, 0, 1), models.NewClockTime(0, 0, 3))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	clip, err := suite.clipService.ExtractClip(ctx, analyser.ID, annotation.ID, clips.ExtractRequest{})
	require.NoError(t, err)

	outputPath, err := suite.resolver.Resolve(clip.VideoURL)
	require.NoError(t, err)
	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	if _, err := exec.LookPath("ffprobe"); err == nil {
		require.NotEmpty(t, clip.Metadata)
		assert.Contains(t, string(clip.Metadata), `"video_codec":"h264"`)
	}
}
