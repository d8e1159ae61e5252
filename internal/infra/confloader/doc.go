// Package confloader loads configuration with koanf.
//
// Priority (highest to lowest):
//
//  1. Command-line flags (LoadMap)
//  2. Environment variables (TAPKEY_SECTION_KEY)
//  3. Configuration file (YAML)
//  4. Values already present in the target struct
//
// Watcher notifies when the configuration file changes on disk so a
// running daemon can re-read the settings it is able to apply live.
package confloader
