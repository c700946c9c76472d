package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		setupConfig  func(t *testing.T, tmpDir string)
		args         []string
		expectedExit int
	}{
		{
			name: "Error with missing config",
			setupConfig: func(_ *testing.T, _ string) {
			},
			args:         []string{"mason", "-c", "nonexistent.yaml", "run", "test"},
			expectedExit: 1,
		},
		{
			name: "Success with valid config",
			setupConfig: func(t *testing.T, tmpDir string) {
				t.Helper()
				configContent := `version: "1"
tasks:
  test:
    cmd: ["echo", "hello"]
`
				err := os.WriteFile(tmpDir+"/mason.yaml", []byte(configContent), 0o600)
				require.NoError(t, err)
			},
			args:         []string{"mason", "run", "test"},
			expectedExit: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			tt.setupConfig(t, tmpDir)

			originalWd, _ := os.Getwd()
			require.NoError(t, os.Chdir(tmpDir))
			defer func() {
				_ = os.Chdir(originalWd)
			}()

			os.Args = tt.args

			assert.Equal(t, tt.expectedExit, run())
		})
	}
}
