package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/collatz/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "collatz version "))
}

func TestEvalCommand(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none.yaml")
	out, err := execute(t, "eval", "--config", missing, "6")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "       6 led to final number: 1", lines[0])
	assert.Equal(t, "terminal: 1", lines[9])
}

func TestEvalCommand_InvalidInput(t *testing.T) {
	_, err := execute(t, "eval", "--config", filepath.Join(t.TempDir(), "none.yaml"), "abc")
	assert.Error(t, err)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collatz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_steps: 10\nlog_level: info\n"), 0644))

	cmd := evalCmd
	require.NoError(t, cmd.ParseFlags([]string{"--config", path, "--max-steps", "500", "--json"}))

	cfg, err := loadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.MaxSteps)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, config.FormatJSON, cfg.Format)
}

func TestLoadConfig_JSONFlagSwitchesBackToText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collatz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: json\nshow_result: false\n"), 0644))

	cmd := evalCmd
	require.NoError(t, cmd.ParseFlags([]string{"--config", path, "--json=false", "--show-result"}))

	cfg, err := loadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.True(t, cfg.ShowResult)
}
