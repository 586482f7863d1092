package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/killallgit/planner-api/internal/logging"
	apperrors "github.com/killallgit/planner-api/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"
)

// Runner executes an external command and captures its output
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// Option customises an FFmpeg gateway
type Option func(*FFmpeg)

// WithRunner replaces the command runner
func WithRunner(r Runner) Option {
	return func(f *FFmpeg) {
		f.runner = r
	}
}

// WithLookPath replaces the PATH search function
func WithLookPath(fn func(string) (string, error)) Option {
	return func(f *FFmpeg) {
		f.lookPath = fn
	}
}

// FFmpeg locates and invokes ffmpeg and ffprobe
type FFmpeg struct {
	opts     Options
	runner   Runner
	lookPath func(string) (string, error)
	sem      *semaphore.Weighted
	logger   *logrus.Entry

	mu     sync.RWMutex
	cached *Availability
}

// New creates a new FFmpeg gateway
func New(opts Options, options ...Option) *FFmpeg {
	if opts.FFmpegPath == "" {
		opts.FFmpegPath = "ffmpeg"
	}
	if opts.FFprobePath == "" {
		opts.FFprobePath = "ffprobe"
	}
	if opts.Encoding == (EncodingOptions{}) {
		opts.Encoding = DefaultEncoding()
	}

	f := &FFmpeg{
		opts:     opts,
		runner:   execRunner{},
		lookPath: exec.LookPath,
		logger:   logging.WithComponent("ffmpeg"),
	}
	if opts.MaxConcurrent > 0 {
		f.sem = semaphore.NewWeighted(opts.MaxConcurrent)
	}
	for _, o := range options {
		o(f)
	}
	return f
}

// CheckAvailable reports whether ffmpeg can be run, reusing a recent result
func (f *FFmpeg) CheckAvailable(ctx context.Context) Availability {
	if f.opts.AvailabilityTTL > 0 {
		f.mu.RLock()
		if f.cached != nil && time.Since(f.cached.CheckedAt) < f.opts.AvailabilityTTL {
			result := *f.cached
			f.mu.RUnlock()
			return result
		}
		f.mu.RUnlock()
	}
	return f.Refresh(ctx)
}

// Refresh probes for ffmpeg regardless of the cached result
func (f *FFmpeg) Refresh(ctx context.Context) Availability {
	result := f.probeAvailability(ctx)

	f.mu.Lock()
	f.cached = &result
	f.mu.Unlock()

	return result
}

func (f *FFmpeg) probeAvailability(ctx context.Context) Availability {
	now := time.Now()
	path, checked := f.locate(f.opts.FFmpegPath, f.opts.FallbackPaths)
	if path == "" {
		return Availability{
			Available: false,
			Message:   "ffmpeg is not installed or not found in PATH",
			Checked:   checked,
			CheckedAt: now,
		}
	}

	stdout, stderr, err := f.runner.Run(ctx, path, "-version")
	if err != nil {
		f.logger.WithError(err).WithField("path", path).Warn("ffmpeg version query failed")
		msg := strings.TrimSpace(string(stderr))
		if msg == "" {
			msg = err.Error()
		}
		return Availability{
			Available: false,
			Path:      path,
			Message:   "ffmpeg is installed but failed to run: " + msg,
			Checked:   checked,
			CheckedAt: now,
		}
	}

	version := parseVersion(string(stdout))
	return Availability{
		Available: true,
		Version:   version,
		Path:      path,
		Message:   fmt.Sprintf("ffmpeg %s is available", version),
		Checked:   checked,
		CheckedAt: now,
	}
}

// locate resolves name through PATH, then through the fallback locations in order
func (f *FFmpeg) locate(name string, fallbacks []string) (string, []string) {
	checked := []string{name}
	if p, err := f.lookPath(name); err == nil {
		return p, checked
	}

	for _, candidate := range fallbacks {
		if candidate == "" {
			continue
		}
		checked = append(checked, candidate)
		if isExecutable(candidate) {
			return candidate, checked
		}
	}
	return "", checked
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return info.Mode().Perm()&0111 != 0
}

// parseVersion pulls "6.1.1" out of "ffmpeg version 6.1.1 Copyright ..."
func parseVersion(output string) string {
	firstLine := strings.SplitN(strings.TrimSpace(output), "\n", 2)[0]
	fields := strings.Fields(firstLine)
	if len(fields) >= 3 && fields[1] == "version" {
		return fields[2]
	}
	return strings.TrimSpace(firstLine)
}

// BuildExtractArgs returns the ffmpeg arguments for one clip.
// Seeking before -i gives fast keyframe seeking followed by exact decoding.
func BuildExtractArgs(req ClipRequest, enc EncodingOptions) []string {
	return []string{
		"-ss", formatSeconds(req.Start),
		"-i", req.InputPath,
		"-t", formatSeconds(req.Duration),
		"-c:v", enc.VideoCodec,
		"-c:a", enc.AudioCodec,
		"-preset", enc.Preset,
		"-crf", strconv.Itoa(enc.CRF),
		"-pix_fmt", enc.PixelFormat,
		"-movflags", "+faststart",
		"-y",
		req.OutputPath,
	}
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
}

// ExtractClip cuts req.Duration of video starting at req.Start into req.OutputPath.
// The call honours ctx cancellation, the configured timeout and the concurrency limit.
func (f *FFmpeg) ExtractClip(ctx context.Context, req ClipRequest) (*ClipResult, error) {
	if req.InputPath == "" || req.OutputPath == "" {
		return nil, apperrors.InvalidInput("input and output paths are required")
	}
	if req.Duration <= 0 {
		return nil, apperrors.InvalidInput("clip duration must be positive")
	}
	if req.Start < 0 {
		return nil, apperrors.InvalidInput("clip start must not be negative")
	}

	if f.sem != nil {
		if err := f.sem.Acquire(ctx, 1); err != nil {
			return nil, apperrors.ExternalToolError("ffmpeg", "request cancelled while waiting for a transcoder slot", "").WithCause(err)
		}
		defer f.sem.Release(1)
	}

	avail := f.CheckAvailable(ctx)
	if !avail.Available {
		return nil, apperrors.ExternalToolError("ffmpeg", avail.Message, "").
			WithDetail("checked_paths", avail.Checked).
			WithCause(ErrFFmpegNotFound)
	}

	runCtx := ctx
	if f.opts.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, f.opts.Timeout)
		defer cancel()
	}

	log := f.logger.WithFields(logrus.Fields{
		"input":    req.InputPath,
		"output":   req.OutputPath,
		"start":    req.Start.Seconds(),
		"duration": req.Duration.Seconds(),
	})
	log.Info("extracting clip")

	started := time.Now()
	_, stderr, err := f.runner.Run(runCtx, avail.Path, BuildExtractArgs(req, f.opts.Encoding)...)
	if err != nil {
		_ = os.Remove(req.OutputPath)
		diag := strings.TrimSpace(string(stderr))
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			procErr := NewProcessingError("extract_clip", req.InputPath, ErrTimeout, diag)
			return nil, apperrors.ExternalToolError("ffmpeg", fmt.Sprintf("timed out after %s", f.opts.Timeout), diag).WithCause(procErr)
		}
		if ctx.Err() != nil {
			return nil, apperrors.ExternalToolError("ffmpeg", "extraction cancelled", diag).WithCause(ctx.Err())
		}
		procErr := NewProcessingError("extract_clip", req.InputPath, err, diag)
		log.WithError(err).Error("ffmpeg exited with an error")
		return nil, apperrors.ExternalToolError("ffmpeg", "extraction failed: "+err.Error(), diag).WithCause(procErr)
	}

	info, statErr := os.Stat(req.OutputPath)
	if statErr != nil || info.IsDir() {
		procErr := NewProcessingError("extract_clip", req.InputPath, ErrOutputMissing, string(stderr))
		return nil, apperrors.ExternalToolError("ffmpeg", "ffmpeg reported success but the output file is missing", "").
			WithDetail("output", req.OutputPath).
			WithCause(procErr)
	}

	result := &ClipResult{OutputPath: req.OutputPath, SizeBytes: info.Size()}
	if probe, err := f.Probe(ctx, req.OutputPath); err == nil {
		result.Probe = probe
	} else {
		log.WithError(err).Debug("skipping clip probe")
	}

	log.WithFields(logrus.Fields{
		"elapsed_ms": time.Since(started).Milliseconds(),
		"size":       info.Size(),
	}).Info("clip extracted")
	return result, nil
}

// ffprobePath finds ffprobe on PATH or next to the resolved ffmpeg binary
func (f *FFmpeg) ffprobePath(ctx context.Context) (string, error) {
	if p, err := f.lookPath(f.opts.FFprobePath); err == nil {
		return p, nil
	}

	avail := f.CheckAvailable(ctx)
	if avail.Path != "" {
		sibling := filepath.Join(filepath.Dir(avail.Path), "ffprobe")
		if isExecutable(sibling) {
			return sibling, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrFFprobeNotFound, f.opts.FFprobePath)
}
