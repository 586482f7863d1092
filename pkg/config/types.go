package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string           `mapstructure:"environment"`
	Server       ServerConfig     `mapstructure:"server"`
	Database     DatabaseConfig   `mapstructure:"database"`
	Media        MediaConfig      `mapstructure:"media"`
	Transcoder   TranscoderConfig `mapstructure:"transcoder"`
	Clips        ClipsConfig      `mapstructure:"clips"`
	Cleanup      CleanupConfig    `mapstructure:"cleanup"`
	RateLimiting RateLimitConfig  `mapstructure:"rate_limiting"`
	Security     SecurityConfig   `mapstructure:"security"`
	Logging      LoggingConfig    `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
}

// DatabaseConfig contains database settings.
// Driver is "sqlite" (Path is used) or "postgres" (DSN is used).
type DatabaseConfig struct {
	Driver                string        `mapstructure:"driver"`
	Path                  string        `mapstructure:"path"`
	DSN                   string        `mapstructure:"dsn"`
	MaxConnections        int           `mapstructure:"max_connections"`
	MaxIdleConnections    int           `mapstructure:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `mapstructure:"connection_max_lifetime"`
	EnableWAL             bool          `mapstructure:"enable_wal"`
	EnableForeignKeys     bool          `mapstructure:"enable_foreign_keys"`
	LogQueries            bool          `mapstructure:"log_queries"`
}

// MediaConfig controls where videos are looked up and written
type MediaConfig struct {
	PublicUploadsDir string   `mapstructure:"public_uploads_dir"`
	UploadPrefix     string   `mapstructure:"upload_prefix"`
	MountRoots       []string `mapstructure:"mount_roots"`
	TempDir          string   `mapstructure:"temp_dir"`
	MaxUploadSize    int64    `mapstructure:"max_upload_size"`
}

// TranscoderConfig contains ffmpeg invocation settings
type TranscoderConfig struct {
	FFmpegPath      string        `mapstructure:"ffmpeg_path"`
	FFprobePath     string        `mapstructure:"ffprobe_path"`
	FallbackPaths   []string      `mapstructure:"fallback_paths"`
	Timeout         time.Duration `mapstructure:"timeout"`
	AvailabilityTTL time.Duration `mapstructure:"availability_ttl"`
	MaxConcurrent   int64         `mapstructure:"max_concurrent"`
	VideoCodec      string        `mapstructure:"video_codec"`
	AudioCodec      string        `mapstructure:"audio_codec"`
	Preset          string        `mapstructure:"preset"`
	CRF             int           `mapstructure:"crf"`
	PixelFormat     string        `mapstructure:"pixel_format"`
}

// ClipsConfig contains clip extraction settings
type ClipsConfig struct {
	DefaultExerciseID uint   `mapstructure:"default_exercise_id"`
	NameMarker        string `mapstructure:"name_marker"`
}

// CleanupConfig controls the stale artifact sweeper
type CleanupConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"`
	MaxAge   time.Duration `mapstructure:"max_age"`
}

// RateLimitConfig contains rate limiting settings
type RateLimitConfig struct {
	Enabled   bool           `mapstructure:"enabled"`
	Endpoints map[string]int `mapstructure:"endpoints"`
}

// SecurityConfig contains CORS settings
type SecurityConfig struct {
	EnableCORS  bool     `mapstructure:"enable_cors"`
	CORSOrigins []string `mapstructure:"cors_origins"`
	CORSMethods []string `mapstructure:"cors_methods"`
	CORSHeaders []string `mapstructure:"cors_headers"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
