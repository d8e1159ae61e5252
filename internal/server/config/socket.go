package config

import (
	"os"
	"path/filepath"

	"github.com/yndnr/tapkey-go/internal/core/domain"
)

// FallbackRuntimeDir is used when neither an explicit runtime directory
// nor $XDG_RUNTIME_DIR is set.
const FallbackRuntimeDir = "/tmp"

// ResolveSocketPath returns the socket path for p inside runtimeDir, or
// inside $XDG_RUNTIME_DIR when runtimeDir is empty, or inside /tmp.
func ResolveSocketPath(p domain.Profile, runtimeDir string) string {
	dir := runtimeDir
	if dir == "" {
		dir = os.Getenv("XDG_RUNTIME_DIR")
	}
	if dir == "" {
		dir = FallbackRuntimeDir
	}
	return filepath.Join(dir, p.SocketName())
}

// SocketPath returns the configured socket path, deriving it from the
// profile when socket.path is empty.
func (c *DaemonConfig) SocketPath(p domain.Profile) string {
	if c.Socket.Path != "" {
		return c.Socket.Path
	}
	return ResolveSocketPath(p, c.Socket.RuntimeDir)
}
