package cmd

import (
	"fmt"
	"strings"

	"github.com/killallgit/planner-api/internal/services/mediapath"
	apperrors "github.com/killallgit/planner-api/pkg/errors"
	"github.com/killallgit/planner-api/pkg/ffmpeg"
	"github.com/spf13/cobra"
)

// checkCmd groups the host diagnostics
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run host diagnostics",
	Long: `Check that this host can extract clips.

Available subcommands:
  ffmpeg  - Locate ffmpeg and print its version
  file    - Resolve a stored video reference the way clip extraction does`,
}

var checkFFmpegCmd = &cobra.Command{
	Use:   "ffmpeg",
	Short: "Locate ffmpeg and print its version",
	RunE:  runCheckFFmpeg,
}

var checkFileCmd = &cobra.Command{
	Use:   "file <reference>",
	Short: "Resolve a stored video reference",
	Long: `Resolve a stored video reference such as /uploads/squat.mp4 against the
uploads directory and the configured mount roots, and print every path tried.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheckFile,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.AddCommand(checkFFmpegCmd)
	checkCmd.AddCommand(checkFileCmd)
}

func runCheckFFmpeg(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	avail := ffmpeg.New(ffmpeg.OptionsFromConfig(cfg.Transcoder)).CheckAvailable(cmd.Context())
	out := cmd.OutOrStdout()
	if !avail.Available {
		fmt.Fprintf(out, "ffmpeg: not available\nChecked: %s\n", strings.Join(avail.Checked, ", "))
		return fmt.Errorf("%s", avail.Message)
	}
	fmt.Fprintf(out, "ffmpeg: %s\nPath:   %s\n", avail.Version, avail.Path)
	return nil
}

func runCheckFile(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	resolver := mediapath.New(mediapath.ConfigFromSettings(cfg.Media, cfg.Clips))
	out := cmd.OutOrStdout()

	report, err := resolver.Inspect(args[0])
	if err != nil {
		fmt.Fprintln(out, "Not found. Checked:")
		for _, candidate := range resolver.Candidates(args[0]) {
			fmt.Fprintf(out, "  %s\n", candidate)
		}
		if apperrors.GetCode(err) == apperrors.ErrCodeNotFound {
			return fmt.Errorf("video file not found: %s", args[0])
		}
		return err
	}

	fmt.Fprintf(out, "Path:     %s\nSize:     %d bytes\nModified: %s\n", report.Path, report.Size, report.Modified.Format("2006-01-02 15:04:05"))
	return nil
}
