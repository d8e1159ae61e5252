// Package config holds the optional per-user defaults of the tapkey client,
// stored as YAML in $XDG_CONFIG_HOME/tapkey/cli.yaml.
//
// Command-line flags and TAPKEY_* environment variables always win over
// the file.
package config
