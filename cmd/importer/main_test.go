package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSnapshot(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestMain_Run(t *testing.T) {
	valid := writeSnapshot(t, `{"meta":{"asOf":"2026-01-27","sourcePage":"x"},"data":[
		{"id":1,"pref":"東京都","name":"新宿薬局"},
		{"id":2,"pref":"東京","name":"渋谷薬局"}
	]}`)
	broken := writeSnapshot(t, `{"meta":`)

	tests := []struct {
		name           string
		args           []string
		expectError    bool
		expectedStdout string
		expectedStderr string
	}{
		{
			name:           "dry run reports records and issues",
			args:           []string{"--file", valid, "--dry-run"},
			expectedStdout: "Parsed 2 records (as of 2026-01-27)",
			expectedStderr: "unknown_prefecture",
		},
		{
			name:        "malformed snapshot",
			args:        []string{"--file", broken, "--dry-run"},
			expectError: true,
		},
		{
			name:        "missing file flag",
			args:        []string{},
			expectError: true,
		},
		{
			name:        "file does not exist",
			args:        []string{"--file", filepath.Join(t.TempDir(), "nope.json")},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			err := NewMain().Run(context.Background(), tt.args, &stdout, &stderr)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, stdout.String(), tt.expectedStdout)
			assert.Contains(t, stderr.String(), tt.expectedStderr)
		})
	}
}
