package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { rootCmd.SetOut(nil); rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "apiregistry dev")
}

func TestConfigCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9090\n  base_path: /api\ndatabase:\n  driver: sqlite\n  dsn: file::memory:\n"), 0o600))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "--config", path})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		configPath = ""
	})

	require.NoError(t, rootCmd.Execute())

	var printed map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &printed))
	srv := printed["server"].(map[string]any)
	assert.Equal(t, 9090, srv["port"])
	assert.Equal(t, "/api", srv["base_path"])
	db := printed["database"].(map[string]any)
	assert.Equal(t, "sqlite", db["driver"])
}

func TestConfigCommand_MissingFile(t *testing.T) {
	rootCmd.SetArgs([]string{"config", "--config", filepath.Join(t.TempDir(), "missing.yaml")})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		configPath = ""
	})

	assert.Error(t, rootCmd.Execute())
}
