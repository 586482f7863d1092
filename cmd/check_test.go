package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestCheckCommand(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		wantErr        bool
		expectedOutput string
	}{
		{
			name:           "check command with help",
			args:           []string{"check", "--help"},
			expectedOutput: "Check that this host can extract clips",
		},
		{
			name:           "check file help",
			args:           []string{"check", "file", "--help"},
			expectedOutput: "mount roots",
		},
		{
			name:           "check file without reference",
			args:           []string{"check", "file"},
			wantErr:        true,
			expectedOutput: "accepts 1 arg(s), received 0",
		},
		{
			name:           "check file with two references",
			args:           []string{"check", "file", "a.mp4", "b.mp4"},
			wantErr:        true,
			expectedOutput: "accepts 1 arg(s), received 2",
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
