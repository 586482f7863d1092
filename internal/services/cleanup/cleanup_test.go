package cleanup

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRefs struct {
	referenced map[string]bool
	err        error
}

func (f fakeRefs) ClipURLExists(ctx context.Context, videoURL string) (bool, error) {
	return f.referenced[videoURL], f.err
}

func touch(t *testing.T, path string, age time.Duration) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, nil, 0644))
	stamp := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, stamp, stamp))
}

func TestService_Sweep(t *testing.T) {
	tempDir := t.TempDir()
	uploads := t.TempDir()

	oldProbe := filepath.Join(uploads, ".write_probe_old")
	newProbe := filepath.Join(uploads, ".write_probe_new")
	uploadClip := filepath.Join(uploads, "squat_crop_1_aaaa.mp4")
	orphan := filepath.Join(tempDir, "squat_crop_2_bbbb.mp4")
	kept := filepath.Join(tempDir, "squat_crop_3_cccc.mp4")
	unrelated := filepath.Join(tempDir, "notes.txt")

	touch(t, oldProbe, 2*time.Hour)
	touch(t, newProbe, time.Minute)
	touch(t, uploadClip, 2*time.Hour)
	touch(t, orphan, 2*time.Hour)
	touch(t, kept, 2*time.Hour)
	touch(t, unrelated, 2*time.Hour)

	service := NewService(Config{
		TempDir:   tempDir,
		ProbeDirs: []string{uploads, tempDir},
		MaxAge:    time.Hour,
	}, fakeRefs{referenced: map[string]bool{kept: true}})

	removed := service.Sweep(context.Background())
	assert.Equal(t, 2, removed)

	assert.NoFileExists(t, oldProbe)
	assert.NoFileExists(t, orphan)
	assert.FileExists(t, newProbe)
	assert.FileExists(t, uploadClip, "clips outside the temp dir are never swept")
	assert.FileExists(t, kept)
	assert.FileExists(t, unrelated)
}

func TestService_Sweep_LookupFailureKeepsFiles(t *testing.T) {
	tempDir := t.TempDir()
	clip := filepath.Join(tempDir, "x_crop_1_dddd.mp4")
	touch(t, clip, 48*time.Hour)

	service := NewService(Config{TempDir: tempDir, MaxAge: time.Hour}, fakeRefs{err: errors.New("db down")})
	assert.Zero(t, service.Sweep(context.Background()))
	assert.FileExists(t, clip)
}

func TestService_StartStop(t *testing.T) {
	tempDir := t.TempDir()
	probe := filepath.Join(tempDir, ".write_probe_x")
	touch(t, probe, 2*time.Hour)

	service := NewService(Config{TempDir: tempDir, MaxAge: time.Hour, Interval: time.Hour}, nil)
	service.Start(context.Background())
	service.Start(context.Background()) // second start is a no-op
	assert.NoFileExists(t, probe, "initial sweep runs synchronously")

	service.Stop()
	service.Stop()
}

func TestService_StartStop_Repeated(t *testing.T) {
	tempDir := t.TempDir()
	for i := 0; i < 200; i++ {
		service := NewService(Config{TempDir: tempDir, Interval: time.Millisecond}, nil)
		service.Start(context.Background())
		service.Stop()
	}

	service := NewService(Config{TempDir: tempDir, Interval: time.Hour}, nil)
	for i := 0; i < 50; i++ {
		service.Start(context.Background())
		service.Stop()
	}
}
