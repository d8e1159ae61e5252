// Package config provides the tapkeyd configuration.
//
//   - spec.go: DaemonConfig struct definition
//   - default.go: default values
//   - verify.go: validation
//   - socket.go: socket path resolution shared with the client
//
// Configuration is loaded via internal/infra/confloader from a YAML file
// and TAPKEY_* environment variables; command-line flags override both.
package config
