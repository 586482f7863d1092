package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// .env is optional; real environment variables win over it
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			initErr = fmt.Errorf("error loading .env: %w", err)
			return
		}

		setDefaults()

		viper.SetEnvPrefix("PLANNER")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		if err := viper.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// Get returns a config value by key using Viper directly
func Get(key string) any {
	return viper.Get(key)
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// GetStringSlice returns a string slice config value
func GetStringSlice(key string) []string {
	return viper.GetStringSlice(key)
}

func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	switch driver := viper.GetString("database.driver"); driver {
	case "sqlite":
	case "postgres":
		if viper.GetString("database.dsn") == "" {
			return fmt.Errorf("database.dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported database driver: %q", driver)
	}

	if viper.GetString("media.upload_prefix") == "" {
		viper.Set("media.upload_prefix", "/uploads/")
	}

	if viper.GetInt64("transcoder.max_concurrent") < 0 {
		viper.Set("transcoder.max_concurrent", 0)
	}

	if viper.GetDuration("transcoder.timeout") < 0 {
		viper.Set("transcoder.timeout", 0)
	}

	return nil
}

// Validate validates a Config struct, correcting values that have a safe fallback
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.Driver != "sqlite" && c.Database.Driver != "postgres" {
		return fmt.Errorf("unsupported database driver: %q", c.Database.Driver)
	}
	if c.Database.Driver == "postgres" && c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required for the postgres driver")
	}

	if c.Media.UploadPrefix == "" {
		c.Media.UploadPrefix = "/uploads/"
	}

	if c.Transcoder.MaxConcurrent < 0 {
		c.Transcoder.MaxConcurrent = 0
	}

	if c.Transcoder.Timeout < 0 {
		c.Transcoder.Timeout = 0
	}

	return nil
}

func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8000)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	// clip extraction holds the request open for the whole ffmpeg run
	viper.SetDefault("server.write_timeout", 10*time.Minute)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)
	viper.SetDefault("server.max_body_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.path", "./data/planner.db")
	viper.SetDefault("database.dsn", "")
	viper.SetDefault("database.max_connections", 10)
	viper.SetDefault("database.max_idle_connections", 5)
	viper.SetDefault("database.connection_max_lifetime", 30*time.Minute)
	viper.SetDefault("database.enable_wal", true)
	viper.SetDefault("database.enable_foreign_keys", true)
	viper.SetDefault("database.log_queries", false)

	// Media defaults
	viper.SetDefault("media.public_uploads_dir", "./public/uploads")
	viper.SetDefault("media.upload_prefix", "/uploads/")
	viper.SetDefault("media.mount_roots", []string{})
	viper.SetDefault("media.temp_dir", os.TempDir())
	viper.SetDefault("media.max_upload_size", 1<<30)

	// Transcoder defaults
	viper.SetDefault("transcoder.ffmpeg_path", "ffmpeg")
	viper.SetDefault("transcoder.ffprobe_path", "ffprobe")
	viper.SetDefault("transcoder.fallback_paths", []string{
		"/usr/bin/ffmpeg",
		"/usr/local/bin/ffmpeg",
		"/opt/homebrew/bin/ffmpeg",
		"/opt/local/bin/ffmpeg",
		"/snap/bin/ffmpeg",
	})
	viper.SetDefault("transcoder.timeout", 10*time.Minute)
	viper.SetDefault("transcoder.availability_ttl", 1*time.Minute)
	viper.SetDefault("transcoder.max_concurrent", 0)
	viper.SetDefault("transcoder.video_codec", "libx264")
	viper.SetDefault("transcoder.audio_codec", "aac")
	viper.SetDefault("transcoder.preset", "fast")
	viper.SetDefault("transcoder.crf", 23)
	viper.SetDefault("transcoder.pixel_format", "yuv420p")

	// Clip defaults
	viper.SetDefault("clips.default_exercise_id", 1)
	viper.SetDefault("clips.name_marker", "_crop_")

	// Cleanup defaults
	viper.SetDefault("cleanup.enabled", true)
	viper.SetDefault("cleanup.interval", 1*time.Hour)
	viper.SetDefault("cleanup.max_age", 24*time.Hour)

	// Rate limiting defaults (requests per second)
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.endpoints", map[string]int{
		"transcode": 1,
		"upload":    2,
		"default":   20,
	})

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.cors_origins", []string{"*"})
	viper.SetDefault("security.cors_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	viper.SetDefault("security.cors_headers", []string{"Origin", "Content-Type", "Accept", "Authorization"})

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
}
