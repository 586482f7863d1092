package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetForTest clears package and viper state and moves into a scratch directory
func resetForTest(t *testing.T) string {
	t.Helper()

	viper.Reset()
	once = sync.Once{}
	initErr = nil

	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))

	t.Cleanup(func() {
		_ = os.Chdir(wd)
		viper.Reset()
		once = sync.Once{}
		initErr = nil
	})
	return dir
}

func writeSettings(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "settings.yaml"), []byte(content), 0644))
}

func TestInit(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, dir string)
		wantErr bool
		check   func(t *testing.T)
	}{
		{
			name:  "missing config file uses defaults",
			setup: func(t *testing.T, dir string) {},
			check: func(t *testing.T) {
				assert.Equal(t, 8000, GetInt("server.port"))
				assert.Equal(t, "sqlite", GetString("database.driver"))
				assert.Equal(t, "/uploads/", GetString("media.upload_prefix"))
				assert.Equal(t, 1, GetInt("clips.default_exercise_id"))
				assert.Equal(t, 10*time.Minute, GetDuration("transcoder.timeout"))
			},
		},
		{
			name: "settings file overrides defaults",
			setup: func(t *testing.T, dir string) {
				writeSettings(t, dir, `
server:
  port: 9001
media:
  public_uploads_dir: "/srv/public/uploads"
  mount_roots:
    - "/mnt/a"
    - "/mnt/b"
`)
			},
			check: func(t *testing.T) {
				assert.Equal(t, 9001, GetInt("server.port"))
				assert.Equal(t, "/srv/public/uploads", GetString("media.public_uploads_dir"))
				assert.Equal(t, []string{"/mnt/a", "/mnt/b"}, GetStringSlice("media.mount_roots"))
			},
		},
		{
			name: "environment variable override",
			setup: func(t *testing.T, dir string) {
				writeSettings(t, dir, "server:\n  port: 9001\n")
				t.Setenv("PLANNER_SERVER_PORT", "9090")
			},
			check: func(t *testing.T) {
				assert.Equal(t, 9090, GetInt("server.port"))
			},
		},
		{
			name: "dotenv file is loaded",
			setup: func(t *testing.T, dir string) {
				require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PLANNER_CLIPS_NAME_MARKER=_cut_\n"), 0644))
				t.Cleanup(func() { _ = os.Unsetenv("PLANNER_CLIPS_NAME_MARKER") })
			},
			check: func(t *testing.T) {
				assert.Equal(t, "_cut_", GetString("clips.name_marker"))
			},
		},
		{
			name: "postgres without dsn is rejected",
			setup: func(t *testing.T, dir string) {
				writeSettings(t, dir, "database:\n  driver: postgres\n")
			},
			wantErr: true,
		},
		{
			name: "negative concurrency is corrected",
			setup: func(t *testing.T, dir string) {
				writeSettings(t, dir, "transcoder:\n  max_concurrent: -4\n")
			},
			check: func(t *testing.T) {
				assert.Equal(t, 0, GetInt("transcoder.max_concurrent"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := resetForTest(t)
			tt.setup(t, dir)

			err := Init()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t)
			}
		})
	}
}

func TestGetConfig(t *testing.T) {
	dir := resetForTest(t)
	writeSettings(t, dir, `
transcoder:
  fallback_paths: ["/opt/ffmpeg/bin/ffmpeg"]
  max_concurrent: 2
`)
	require.NoError(t, Init())

	cfg, err := GetConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"/opt/ffmpeg/bin/ffmpeg"}, cfg.Transcoder.FallbackPaths)
	assert.Equal(t, int64(2), cfg.Transcoder.MaxConcurrent)
	assert.Equal(t, "libx264", cfg.Transcoder.VideoCodec)
	assert.Equal(t, 23, cfg.Transcoder.CRF)
	assert.Equal(t, uint(1), cfg.Clips.DefaultExerciseID)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		check   func(t *testing.T, c *Config)
	}{
		{
			name: "valid config",
			config: &Config{
				Server:   ServerConfig{Host: "localhost", Port: 8000},
				Database: DatabaseConfig{Driver: "sqlite", Path: "./data/planner.db"},
			},
		},
		{
			name:    "invalid port",
			config:  &Config{Server: ServerConfig{Port: 0}},
			wantErr: true,
		},
		{
			name: "unknown driver",
			config: &Config{
				Server:   ServerConfig{Port: 8000},
				Database: DatabaseConfig{Driver: "oracle"},
			},
			wantErr: true,
		},
		{
			name: "defaults are filled in",
			config: &Config{
				Server:     ServerConfig{Port: 8000},
				Transcoder: TranscoderConfig{MaxConcurrent: -1, Timeout: -time.Second},
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "sqlite", c.Database.Driver)
				assert.Equal(t, "/uploads/", c.Media.UploadPrefix)
				assert.Zero(t, c.Transcoder.MaxConcurrent)
				assert.Zero(t, c.Transcoder.Timeout)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, tt.config)
			}
		})
	}
}
