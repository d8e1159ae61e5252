package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/tapkey-go/internal/cli/exitcode"
	"github.com/yndnr/tapkey-go/internal/core/domain"
	"github.com/yndnr/tapkey-go/internal/core/service"
	"github.com/yndnr/tapkey-go/internal/device/uinput"
	"github.com/yndnr/tapkey-go/internal/infra/buildinfo"
	"github.com/yndnr/tapkey-go/internal/infra/confloader"
	"github.com/yndnr/tapkey-go/internal/infra/shutdown"
	"github.com/yndnr/tapkey-go/internal/server/config"
	"github.com/yndnr/tapkey-go/internal/server/daemon"
	"github.com/yndnr/tapkey-go/internal/server/httpserver"
	"github.com/yndnr/tapkey-go/internal/telemetry/logger"
	"github.com/yndnr/tapkey-go/internal/telemetry/metric"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "tapkeyd: %v\n", err)
		os.Exit(exitcode.For(err))
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "tapkeyd",
		Usage:   "virtual keyboard daemon for tapkey",
		Version: buildinfo.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "configuration file (default " + config.DefaultConfigFile + " if present)",
				EnvVars: []string{"TAPKEY_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "profile",
				Aliases: []string{"p"},
				Usage:   "profile: paste, type, xhisper",
			},
			&cli.StringFlag{
				Name:    "socket",
				Aliases: []string{"s"},
				Usage:   "command socket path (default: derived from the profile)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn, error",
			},
			&cli.StringFlag{
				Name:  "metrics-addr",
				Usage: "serve /metrics on this address, e.g. 127.0.0.1:9464",
			},
		},
		Action:         run,
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func run(c *cli.Context) error {
	loader := newLoader(c)
	cfg, err := loadConfig(loader)
	if err != nil {
		return err
	}

	log, err := initLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	profile, _ := domain.ParseProfile(cfg.Profile)
	identity := cfg.Identity(profile)
	info := buildinfo.Get()

	log.Info("starting tapkeyd",
		"version", info.Version,
		"commit", info.Commit,
		"profile", profile.String(),
		"config", loader.FilePath())

	ctx, stop := shutdown.WithSignals(c.Context)
	defer stop()

	reg := metric.NewRegistry(metric.NewCollector(info.Version, profile.String(), identity.Name))

	dev := uinput.ConfigFor(identity)
	dev.Path = cfg.Device.Path
	dev.Settle = cfg.Device.Settle

	d, err := daemon.New(daemon.Options{
		Profile:    profile,
		SocketPath: cfg.SocketPath(profile),
		Device:     dev,
		Timing:     timingOf(cfg),
		Logger:     log,
		Metrics:    reg,
	})
	if err != nil {
		return err
	}
	defer d.Close()

	if err := d.Start(ctx); err != nil {
		return err
	}

	// Hooks run newest first: watcher, metrics listener, then the daemon.
	hooks := shutdown.NewHandler(shutdownTimeout)
	hooks.OnShutdown(func(context.Context) error { return d.Close() })

	if cfg.Metrics.Addr != "" {
		srv, err := startMetrics(cfg.Metrics.Addr, reg, d, log)
		if err != nil {
			hooks.Shutdown()
			return err
		}
		hooks.OnShutdown(srv.Shutdown)
	}

	if path := loader.FilePath(); path != "" {
		w, err := watchConfig(path, c, d, log)
		if err != nil {
			log.Warn("config hot reload disabled", "error", err)
		} else {
			hooks.OnShutdown(func(context.Context) error { return w.Stop() })
		}
	}

	log.Info("tapkeyd ready", "socket", d.SocketPath(), "instance", d.ID())
	runErr := d.Run(ctx)
	shutdownErr := hooks.Shutdown()
	if runErr == nil && shutdownErr == nil {
		log.Info("tapkeyd stopped")
	}
	return errors.Join(runErr, shutdownErr)
}

// overrides maps the flags that were given onto config keys.
func overrides(c *cli.Context) map[string]any {
	out := map[string]any{}
	for flag, key := range map[string]string{
		"profile":      "profile",
		"socket":       "socket.path",
		"log-level":    "log.level",
		"metrics-addr": "metrics.addr",
	} {
		if c.IsSet(flag) {
			out[key] = c.String(flag)
		}
	}
	return out
}

func newLoader(c *cli.Context) *confloader.Loader {
	opts := []confloader.Option{confloader.WithOverrides(overrides(c))}
	if path := c.String("config"); path != "" {
		opts = append(opts, confloader.WithConfigFile(path))
	} else {
		opts = append(opts, confloader.WithOptionalConfigFile(config.DefaultConfigFile))
	}
	return confloader.NewLoader(opts...)
}

// loadConfig loads and validates the configuration on top of the defaults.
func loadConfig(loader *confloader.Loader) (*config.DaemonConfig, error) {
	cfg := config.Default()
	if err := loader.Load(cfg); err != nil {
		return nil, domain.ErrInvalidArgument.WithDetails("load config").WithCause(err)
	}
	if err := config.Verify(cfg); err != nil {
		return nil, domain.ErrInvalidArgument.WithDetails("invalid configuration").WithCause(err)
	}
	return cfg, nil
}

// initLogger initializes the structured logger and makes it the default.
func initLogger(cfg *config.DaemonConfig) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stderr,
	})
	if err != nil {
		return nil, err
	}
	logger.SetDefault(log)
	return log, nil
}

func timingOf(cfg *config.DaemonConfig) service.Timing {
	return service.Timing{
		Hold:        cfg.Timing.Hold,
		ModifierGap: cfg.Timing.ModifierGap,
		ReleaseGap:  cfg.Timing.ReleaseGap,
	}
}

// startMetrics binds addr synchronously so a taken port fails startup.
func startMetrics(addr string, reg *metric.Registry, d *daemon.Daemon, log logger.Logger) (*httpserver.Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, domain.ErrBind.WithDetails("metrics " + addr).WithCause(err)
	}

	srv := httpserver.New(addr, httpserver.NewRouter(httpserver.RouterConfig{
		Metrics: reg.Handler(),
		Ready:   d.Ready,
		Logger:  log,
	}))
	go func() {
		if err := srv.Serve(ln); err != nil {
			log.Error("metrics listener stopped", "error", err)
		}
	}()
	log.Info("metrics listening", "addr", ln.Addr().String())
	return srv, nil
}

// watchConfig re-reads the file on change and applies the settings that
// can change at runtime. Everything else needs a restart.
func watchConfig(path string, c *cli.Context, d *daemon.Daemon, log logger.Logger) (*confloader.Watcher, error) {
	w, err := confloader.NewWatcher(confloader.WithWatcherLogger(log))
	if err != nil {
		return nil, err
	}
	if err := w.Watch(path); err != nil {
		w.Stop()
		return nil, err
	}

	w.OnChange(func(string) {
		cfg, err := loadConfig(confloader.NewLoader(
			confloader.WithConfigFile(path),
			confloader.WithOverrides(overrides(c)),
		))
		if err != nil {
			log.Warn("config reload rejected", "error", err)
			return
		}
		previous := logger.GetLevel()
		logger.SetLevel(cfg.Log.Level)
		d.SetTiming(timingOf(cfg))
		log.Info("config reloaded",
			"log_level", logger.GetLevel(),
			"previous_log_level", previous,
			"hold", cfg.Timing.Hold,
			"modifier_gap", cfg.Timing.ModifierGap,
			"release_gap", cfg.Timing.ReleaseGap)
	})
	w.StartAsync()
	return w, nil
}
