package config

import "github.com/yndnr/tapkey-go/internal/core/domain"

// CLIConfig is the configuration for the tapkey client.
type CLIConfig struct {
	// Profile selects the daemon to talk to.
	Profile string `json:"profile,omitempty" yaml:"profile,omitempty"`
	// Socket overrides the derived socket path.
	Socket string `json:"socket,omitempty" yaml:"socket,omitempty"`
	// RuntimeDir replaces $XDG_RUNTIME_DIR when deriving the socket path.
	RuntimeDir string `json:"runtime_dir,omitempty" yaml:"runtime_dir,omitempty"`
	// Output is the default output format: table, json, yaml.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
}

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		Profile: string(domain.DefaultProfile),
		Output:  "table",
	}
}
