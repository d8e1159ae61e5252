package config

import (
	"time"

	"github.com/yndnr/tapkey-go/internal/core/domain"
)

// Default configuration values.
const (
	DefaultDevicePath = "/dev/uinput"
	DefaultSettle     = 100 * time.Millisecond

	DefaultHold        = 8 * time.Millisecond
	DefaultModifierGap = 2 * time.Millisecond
	DefaultReleaseGap  = 2 * time.Millisecond

	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	// DefaultConfigFile is read when it exists and no --config is given.
	DefaultConfigFile = "/etc/tapkey/tapkeyd.yaml"
)

// Default returns the default daemon configuration.
func Default() *DaemonConfig {
	return &DaemonConfig{
		Profile: string(domain.DefaultProfile),
		Device: DeviceSection{
			Path:   DefaultDevicePath,
			Settle: DefaultSettle,
		},
		Timing: TimingSection{
			Hold:        DefaultHold,
			ModifierGap: DefaultModifierGap,
			ReleaseGap:  DefaultReleaseGap,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Identity returns the device identity: the profile's, with any non-zero
// DeviceSection fields applied on top.
func (c *DaemonConfig) Identity(p domain.Profile) domain.DeviceIdentity {
	id := p.Device()
	if c.Device.Name != "" {
		id.Name = c.Device.Name
	}
	if c.Device.Vendor != 0 {
		id.Vendor = c.Device.Vendor
	}
	if c.Device.Product != 0 {
		id.Product = c.Device.Product
	}
	return id
}
