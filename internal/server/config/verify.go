package config

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/yndnr/tapkey-go/internal/core/domain"
	"github.com/yndnr/tapkey-go/internal/telemetry/logger"
)

// maxDeviceName leaves room for the NUL in the kernel's 80-byte name field.
const maxDeviceName = 79

// Verify validates the configuration.
func Verify(cfg *DaemonConfig) error {
	if _, err := domain.ParseProfile(cfg.Profile); err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	if err := verifyDevice(&cfg.Device); err != nil {
		return err
	}
	if err := verifyTiming(&cfg.Timing); err != nil {
		return err
	}
	if err := verifyLog(&cfg.Log); err != nil {
		return err
	}
	return verifyMetrics(&cfg.Metrics)
}

func verifyDevice(cfg *DeviceSection) error {
	if cfg.Path == "" {
		return errors.New("device.path is required")
	}
	if len(cfg.Name) > maxDeviceName {
		return fmt.Errorf("device.name must be at most %d bytes", maxDeviceName)
	}
	if cfg.Settle < 0 {
		return errors.New("device.settle must not be negative")
	}
	return nil
}

// verifyTiming validates the timing section.
func verifyTiming(cfg *TimingSection) error {
	if cfg.Hold <= 0 {
		return errors.New("timing.hold must be positive")
	}
	if cfg.ModifierGap <= 0 {
		return errors.New("timing.modifier_gap must be positive")
	}
	if cfg.ReleaseGap <= 0 {
		return errors.New("timing.release_gap must be positive")
	}
	return nil
}

func verifyLog(cfg *LogSection) error {
	if !logger.ValidLevel(cfg.Level) {
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", cfg.Level)
	}
	switch strings.ToLower(cfg.Format) {
	case "json", "text", "console":
		return nil
	}
	return fmt.Errorf("log.format %q is not one of json, text", cfg.Format)
}

func verifyMetrics(cfg *MetricsSection) error {
	if cfg.Addr == "" {
		return nil
	}
	if _, _, err := net.SplitHostPort(cfg.Addr); err != nil {
		return fmt.Errorf("metrics.addr: %w", err)
	}
	return nil
}
