package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/yndnr/tapkey-go/internal/core/domain"
)

// DefaultConfigPath returns the default CLI config file path.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "tapkey", "cli.yaml")
}

// Load reads the config at path (DefaultConfigPath when empty). A missing
// file yields the defaults. Keys absent from the file keep their defaults.
func Load(path string) (*CLIConfig, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path (DefaultConfigPath when empty) with mode 0600,
// creating the directory if needed.
func Save(cfg *CLIConfig, path string) error {
	if path == "" {
		path = DefaultConfigPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

var setters = map[string]func(*CLIConfig, string) error{
	"profile": func(c *CLIConfig, v string) error {
		p, err := domain.ParseProfile(v)
		if err != nil {
			return err
		}
		c.Profile = string(p)
		return nil
	},
	"socket":      func(c *CLIConfig, v string) error { c.Socket = v; return nil },
	"runtime_dir": func(c *CLIConfig, v string) error { c.RuntimeDir = v; return nil },
	"output": func(c *CLIConfig, v string) error {
		switch v {
		case "table", "json", "yaml":
			c.Output = v
			return nil
		}
		return domain.ErrInvalidArgument.WithDetails("output must be table, json or yaml")
	},
}

// Keys lists the settable keys.
func Keys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set assigns value to key after validating it.
func (c *CLIConfig) Set(key, value string) error {
	set, ok := setters[key]
	if !ok {
		return domain.ErrInvalidArgument.WithDetails(fmt.Sprintf("unknown key %q", key))
	}
	return set(c, value)
}
