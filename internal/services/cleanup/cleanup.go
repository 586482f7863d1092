package cleanup

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/killallgit/planner-api/internal/logging"
	"github.com/killallgit/planner-api/internal/services/mediapath"
	"github.com/sirupsen/logrus"
)

// ReferenceChecker reports whether a clip row still points at a stored reference
type ReferenceChecker interface {
	ClipURLExists(ctx context.Context, videoURL string) (bool, error)
}

// Config controls what the sweeper removes and how often it runs
type Config struct {
	TempDir    string   // clip outputs that landed here are swept when unreferenced
	ProbeDirs  []string // directories checked for leftover write probes
	MaxAge     time.Duration
	Interval   time.Duration
	IsClipName func(name string) bool
}

// Service sweeps stale write probes and orphaned clip outputs
type Service struct {
	cfg    Config
	refs   ReferenceChecker
	logger *logrus.Entry

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service
func NewService(cfg Config, refs ReferenceChecker) *Service {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = 24 * time.Hour
	}
	if cfg.IsClipName == nil {
		cfg.IsClipName = func(name string) bool { return strings.Contains(name, "_crop_") }
	}
	return &Service{
		cfg:    cfg,
		refs:   refs,
		logger: logging.WithComponent("cleanup"),
	}
}

// Start runs a sweep immediately and then on every interval until Stop or ctx ends
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done

	s.Sweep(ctx)

	go func() {
		defer close(done)
		ticker := time.NewTicker(s.cfg.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Sweep(ctx)
			case <-ctx.Done():
				s.logger.Info("cleanup service stopped")
				return
			}
		}
	}()

	s.logger.WithFields(logrus.Fields{
		"interval": s.cfg.Interval.String(),
		"max_age":  s.cfg.MaxAge.String(),
	}).Info("cleanup service started")
}

// Stop stops the cleanup service and waits for the running sweep to finish
func (s *Service) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

// Sweep removes stale files once and returns how many were deleted
func (s *Service) Sweep(ctx context.Context) int {
	removed := 0
	cutoff := time.Now().Add(-s.cfg.MaxAge)

	seen := map[string]bool{}
	for _, dir := range append(append([]string{}, s.cfg.ProbeDirs...), s.cfg.TempDir) {
		if dir == "" || seen[dir] {
			continue
		}
		seen[dir] = true
		removed += s.sweepDir(ctx, dir, cutoff, dir == s.cfg.TempDir)
	}

	if removed > 0 {
		s.logger.WithField("removed", removed).Info("stale files removed")
	}
	return removed
}

func (s *Service) sweepDir(ctx context.Context, dir string, cutoff time.Time, sweepClips bool) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.WithError(err).WithField("dir", dir).Warn("cannot read directory")
		}
		return 0
	}

	removed := 0
	for _, entry := range entries {
		if ctx.Err() != nil {
			return removed
		}
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}

		name := entry.Name()
		path := filepath.Join(dir, name)
		switch {
		case strings.HasPrefix(name, mediapath.ProbePrefix):
		case sweepClips && s.cfg.IsClipName(name):
			if s.referenced(ctx, path) {
				continue
			}
		default:
			continue
		}

		if err := os.Remove(path); err != nil {
			s.logger.WithError(err).WithField("path", path).Warn("failed to remove stale file")
			continue
		}
		s.logger.WithField("path", path).Debug("removed stale file")
		removed++
	}
	return removed
}

// referenced treats lookup failures as referenced so nothing is deleted by mistake
func (s *Service) referenced(ctx context.Context, path string) bool {
	if s.refs == nil {
		return true
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	ok, err := s.refs.ClipURLExists(ctx, abs)
	if err != nil {
		s.logger.WithError(err).WithField("path", abs).Warn("clip reference lookup failed")
		return true
	}
	return ok
}
