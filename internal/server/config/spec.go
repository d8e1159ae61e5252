package config

import "time"

// DaemonConfig is the root configuration for tapkeyd.
type DaemonConfig struct {
	Profile string         `koanf:"profile"`
	Socket  SocketSection  `koanf:"socket"`
	Device  DeviceSection  `koanf:"device"`
	Timing  TimingSection  `koanf:"timing"`
	Log     LogSection     `koanf:"log"`
	Metrics MetricsSection `koanf:"metrics"`
}

// SocketSection configures the command socket.
type SocketSection struct {
	// Path overrides the derived socket path entirely.
	Path string `koanf:"path"`
	// RuntimeDir replaces $XDG_RUNTIME_DIR when deriving the path.
	RuntimeDir string `koanf:"runtime_dir"`
}

// DeviceSection configures the virtual keyboard. Zero identity fields fall
// back to the profile's identity.
type DeviceSection struct {
	Path    string        `koanf:"path"`
	Name    string        `koanf:"name"`
	Vendor  uint16        `koanf:"vendor"`
	Product uint16        `koanf:"product"`
	Settle  time.Duration `koanf:"settle"`
}

// TimingSection configures the gaps between key events.
type TimingSection struct {
	Hold        time.Duration `koanf:"hold"`
	ModifierGap time.Duration `koanf:"modifier_gap"`
	ReleaseGap  time.Duration `koanf:"release_gap"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// MetricsSection configures the optional Prometheus listener.
type MetricsSection struct {
	// Addr is the listen address, e.g. "127.0.0.1:9464". Empty disables it.
	Addr string `koanf:"addr"`
}
