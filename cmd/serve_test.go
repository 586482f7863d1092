package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/killallgit/planner-api/pkg/config"
)

func TestServeCommand(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		wantErr        bool
		expectedOutput string
	}{
		{
			name:           "serve command with help",
			args:           []string{"serve", "--help"},
			wantErr:        false,
			expectedOutput: "Start the Workout Planner API server",
		},
		{
			name:           "serve command with invalid port",
			args:           []string{"serve", "--port", "invalid"},
			wantErr:        true,
			expectedOutput: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewRootCmd()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Errorf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.expectedOutput != "" && !strings.Contains(buf.String(), tt.expectedOutput) {
				t.Errorf("Expected output to contain %q, got %q", tt.expectedOutput, buf.String())
			}
		})
	}
}

func TestServeCommandFlags(t *testing.T) {
	cmd := NewRootCmd()
	serveCmd, _, err := cmd.Find([]string{"serve"})
	if err != nil {
		t.Fatalf("Failed to find serve command: %v", err)
	}

	for _, name := range []string{"port", "host", "skip-migrate"} {
		if serveCmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected %s flag to be registered", name)
		}
	}
}

func TestNewSweeper(t *testing.T) {
	cfg := &config.Config{}
	if sweeper := newSweeper(cfg, t.TempDir(), t.TempDir(), nil, nil); sweeper != nil {
		t.Error("Expected no sweeper when cleanup is disabled")
	}

	cfg.Cleanup.Enabled = true
	sweeper := newSweeper(cfg, t.TempDir(), t.TempDir(), nil, nil)
	if sweeper == nil {
		t.Fatal("Expected a sweeper when cleanup is enabled")
	}
	if removed := sweeper.Sweep(context.Background()); removed != 0 {
		t.Errorf("Expected empty directories to sweep nothing, removed %d", removed)
	}
}
