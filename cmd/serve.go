package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/killallgit/planner-api/api"
	"github.com/killallgit/planner-api/internal/database"
	"github.com/killallgit/planner-api/internal/logging"
	"github.com/killallgit/planner-api/internal/services/cleanup"
	"github.com/killallgit/planner-api/internal/services/clips"
	"github.com/killallgit/planner-api/pkg/config"
	"github.com/killallgit/planner-api/pkg/ffmpeg"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	serverHost  string
	serverPort  int
	skipMigrate bool
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Workout Planner API server with the configured settings.

The server migrates the database, checks for ffmpeg, starts the stale file
sweeper and serves the REST API together with the uploaded media.

Example:
  planner-api serve
  planner-api serve --port 9090
  planner-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
	serveCmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not migrate the database on startup")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Flags override config values
	if serverHost != "" {
		cfg.Server.Host = serverHost
	}
	if serverPort != 0 {
		cfg.Server.Port = serverPort
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := logging.WithComponent("server")

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if !skipMigrate {
		if err := db.Migrate(); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		created, err := db.SeedDefaultExercise(cfg.Clips.DefaultExerciseID)
		if err != nil {
			return err
		}
		if created {
			log.WithField("exercise_id", cfg.Clips.DefaultExerciseID).Info("default exercise created")
		}
	}

	transcoder := ffmpeg.New(ffmpeg.OptionsFromConfig(cfg.Transcoder))
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if avail := transcoder.CheckAvailable(ctx); avail.Available {
		log.WithFields(logrus.Fields{"version": avail.Version, "path": avail.Path}).Info("ffmpeg found")
	} else {
		// the API still serves everything except clip extraction
		log.WithField("checked_paths", avail.Checked).Warn(avail.Message)
	}

	deps := api.NewDependencies(cfg, db, transcoder)
	deps.Version = Version

	sweeper := newSweeper(cfg, deps.Resolver.TempDir(), deps.Resolver.UploadsDir(), deps.Resolver.IsClipName, clips.NewRepository(db.DB))
	if sweeper != nil {
		sweeper.Start(ctx)
		defer sweeper.Stop()
	}

	server := api.NewServer(cfg)
	server.SetDependencies(deps)
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	log.WithField("addr", server.Addr()).Info("server is ready to handle requests")

	var runErr error
	select {
	case <-stop:
		log.Info("shutting down server")
	case <-ctx.Done():
		log.Info("context cancelled, shutting down server")
	case runErr = <-serverErr:
		log.WithError(runErr).Error("server stopped unexpectedly")
	}

	timeout := cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
		return err
	}

	log.Info("server gracefully stopped")
	return runErr
}

// newSweeper returns nil when the cleanup service is disabled
func newSweeper(cfg *config.Config, tempDir, uploadsDir string, isClip func(string) bool, refs cleanup.ReferenceChecker) *cleanup.Service {
	if !cfg.Cleanup.Enabled {
		return nil
	}
	return cleanup.NewService(cleanup.Config{
		TempDir:    tempDir,
		ProbeDirs:  []string{uploadsDir, tempDir},
		MaxAge:     cfg.Cleanup.MaxAge,
		Interval:   cfg.Cleanup.Interval,
		IsClipName: isClip,
	}, refs)
}
