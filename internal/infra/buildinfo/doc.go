// Package buildinfo exposes version information injected via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/tapkey-go/internal/infra/buildinfo.Version=v0.3.0"
//
// When ldflags are not set, the commit and Go version fall back to what
// the toolchain embedded in the binary.
package buildinfo
