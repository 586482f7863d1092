package cmd

import (
	"fmt"
	"os"

	"github.com/killallgit/planner-api/internal/logging"
	"github.com/killallgit/planner-api/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "planner-api",
	Short: "Workout Planner API server",
	Long: `Workout Planner API - backend for building training plans

This API manages an exercise library, workouts and multi-week training
plans, and turns annotated ranges of uploaded videos into exercise clips.

Features:
  • Exercise library with tags
  • Workouts made of ordered sections
  • Training plans with weeks and scheduled workouts
  • Video annotation with ffmpeg clip extraction
  • Media uploads served from a public directory`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the root command with every flag back at its default
// (exported for testing)
func NewRootCmd() *cobra.Command {
	resetFlags(rootCmd)
	return rootCmd
}

// resetFlags clears flags left set by an earlier Execute on the shared command tree
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

func init() {
	cobra.OnInitialize(initLogging)

	// Add persistent flags for logging configuration
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error); overrides config when set")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")
}

// initLogging configures logrus from flags before any command runs
func initLogging() {
	level, _ := rootCmd.PersistentFlags().GetString("log-level")
	jsonLogs, _ := rootCmd.PersistentFlags().GetBool("json-logs")

	format := "text"
	if jsonLogs {
		format = "json"
	}
	logging.Setup(level, format, os.Stderr)
}

// loadConfig loads the configuration for commands that need it.
// Explicit flags win over the configured logging settings.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := config.Init(); err != nil {
		return nil, fmt.Errorf("error initializing config: %w", err)
	}
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level
	if cmd.Flags().Changed("log-level") {
		level, _ = cmd.Flags().GetString("log-level")
	}
	format := cfg.Logging.Format
	if jsonLogs, _ := cmd.Flags().GetBool("json-logs"); jsonLogs {
		format = "json"
	}
	logging.Setup(level, format, os.Stderr)

	return cfg, nil
}
