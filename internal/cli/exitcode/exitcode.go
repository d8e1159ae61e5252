// Package exitcode maps errors onto the process exit status shared by
// tapkey and tapkeyd.
package exitcode

import (
	"errors"

	"github.com/yndnr/tapkey-go/internal/core/domain"
)

// Exit codes.
const (
	OK             = 0
	Usage          = 1
	Unreachable    = 2
	Permission     = 3
	SetupFailed    = 4
	AlreadyRunning = 5
	SendFailed     = 6
)

// mapping is checked in order; the first match wins.
var mapping = []struct {
	err  error
	code int
}{
	{domain.ErrAlreadyRunning, AlreadyRunning},
	{domain.ErrDevice, SetupFailed},
	{domain.ErrBind, SetupFailed},
	{domain.ErrDaemonUnreachable, Unreachable},
	{domain.ErrConnect, Unreachable},
	{domain.ErrPermissionDenied, Permission},
	{domain.ErrSend, SendFailed},
}

// For returns the exit code for err. Unclassified errors, including usage
// and argument errors, map to Usage.
func For(err error) int {
	if err == nil {
		return OK
	}
	for _, m := range mapping {
		if errors.Is(err, m.err) {
			return m.code
		}
	}
	return Usage
}

// Describe is a one-word label for code, used in logs.
func Describe(code int) string {
	switch code {
	case OK:
		return "ok"
	case Usage:
		return "usage"
	case Unreachable:
		return "unreachable"
	case Permission:
		return "permission"
	case SetupFailed:
		return "setup_failed"
	case AlreadyRunning:
		return "already_running"
	case SendFailed:
		return "send_failed"
	default:
		return "unknown"
	}
}
