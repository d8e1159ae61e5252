package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/yndnr/tapkey-go/internal/core/domain"
	"github.com/yndnr/tapkey-go/internal/infra/confloader"
	"github.com/yndnr/tapkey-go/internal/server/config"
	"github.com/yndnr/tapkey-go/internal/server/daemon"
	"github.com/yndnr/tapkey-go/internal/telemetry/logger"
)

func TestLoadConfig_Defaults(t *testing.T) {
	loader := confloader.NewLoader(confloader.WithOptionalConfigFile(filepath.Join(t.TempDir(), "none.yaml")))

	cfg, err := loadConfig(loader)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Empty(t, loader.FilePath())
}

func TestLoadConfig_Layers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tapkeyd.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
profile: type
timing:
  hold: 20ms
log:
  level: warn
`), 0o600))
	t.Setenv("TAPKEY_LOG_LEVEL", "debug")

	loader := confloader.NewLoader(
		confloader.WithConfigFile(path),
		confloader.WithOverrides(map[string]any{"socket.path": "/run/tk.sock"}),
	)
	cfg, err := loadConfig(loader)
	require.NoError(t, err)

	assert.Equal(t, "type", cfg.Profile)
	assert.Equal(t, 20*time.Millisecond, cfg.Timing.Hold)
	assert.Equal(t, config.DefaultModifierGap, cfg.Timing.ModifierGap)
	assert.Equal(t, "debug", cfg.Log.Level, "env wins over file")
	assert.Equal(t, "/run/tk.sock", cfg.SocketPath(domain.ProfileType))
	assert.Equal(t, path, loader.FilePath())

	timing := timingOf(cfg)
	assert.Equal(t, 20*time.Millisecond, timing.Hold)
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tapkeyd.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timing:\n  hold: 0s\n"), 0o600))

	_, err := loadConfig(confloader.NewLoader(confloader.WithConfigFile(path)))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = loadConfig(confloader.NewLoader(confloader.WithConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestOverrides(t *testing.T) {
	capture := func(args ...string) map[string]any {
		var got map[string]any
		app := newApp()
		app.Action = func(c *cli.Context) error {
			got = overrides(c)
			return nil
		}
		require.NoError(t, app.Run(append([]string{"tapkeyd"}, args...)))
		return got
	}

	assert.Equal(t, map[string]any{"profile": "paste", "log.level": "debug"},
		capture("--profile", "paste", "--log-level", "debug"))
	assert.Equal(t, map[string]any{"socket.path": "/x", "metrics.addr": ":9464"},
		capture("--socket", "/x", "--metrics-addr", ":9464"))
	assert.Empty(t, capture())
}

func TestNewApp(t *testing.T) {
	app := newApp()
	assert.Equal(t, "tapkeyd", app.Name)

	var flags []string
	for _, f := range app.Flags {
		flags = append(flags, f.Names()[0])
	}
	assert.Equal(t, []string{"config", "profile", "socket", "log-level", "metrics-addr"}, flags)
}

func TestWatchConfig_ReloadsLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tapkeyd.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: info\n"), 0o600))
	logger.SetLevel("info")
	t.Cleanup(func() { logger.SetLevel("info") })

	d, err := daemon.New(daemon.Options{Profile: domain.ProfileXhisper, SocketPath: filepath.Join(dir, "s")})
	require.NoError(t, err)

	app := newApp()
	app.Action = func(c *cli.Context) error {
		w, err := watchConfig(path, c, d, logger.Nop())
		if err != nil {
			return err
		}
		defer w.Stop()

		if err := os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o600); err != nil {
			return err
		}
		assert.Eventually(t, func() bool { return logger.GetLevel() == "debug" },
			2*time.Second, 10*time.Millisecond)

		// An invalid file is rejected and leaves the level alone.
		if err := os.WriteFile(path, []byte("log:\n  level: trace\n"), 0o600); err != nil {
			return err
		}
		time.Sleep(100 * time.Millisecond)
		assert.Equal(t, "debug", logger.GetLevel())
		return nil
	}
	require.NoError(t, app.Run([]string{"tapkeyd"}))
}
