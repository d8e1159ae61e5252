package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yndnr/tapkey-go/internal/core/domain"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "xhisper", cfg.Profile)
	assert.Equal(t, "table", cfg.Output)
	assert.Empty(t, cfg.Socket)
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/home/u/.cfg")
	assert.Equal(t, "/home/u/.cfg/tapkey/cli.yaml", DefaultConfigPath())
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Partial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile: paste\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "paste", cfg.Profile)
	assert.Equal(t, "table", cfg.Output, "unset keys keep defaults")
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile: [unterminated\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "cli.yaml")
	cfg := &CLIConfig{Profile: "type", Socket: "/run/x.sock", Output: "json"}

	require.NoError(t, Save(cfg, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestSet(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Set("profile", "type"))
	assert.Equal(t, "type", cfg.Profile)

	require.NoError(t, cfg.Set("output", "yaml"))
	require.NoError(t, cfg.Set("socket", "/tmp/s"))
	require.NoError(t, cfg.Set("runtime_dir", "/run/user/7"))
	assert.Equal(t, &CLIConfig{Profile: "type", Output: "yaml", Socket: "/tmp/s", RuntimeDir: "/run/user/7"}, cfg)

	assert.ErrorIs(t, cfg.Set("profile", "nope"), domain.ErrUnknownProfile)
	assert.ErrorIs(t, cfg.Set("output", "xml"), domain.ErrInvalidArgument)
	assert.ErrorIs(t, cfg.Set("color", "on"), domain.ErrInvalidArgument)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, []string{"output", "profile", "runtime_dir", "socket"}, Keys())
}
