package connection

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/yndnr/tapkey-go/internal/core/domain"
)

// Kind classifies a connect failure.
type Kind int

const (
	// KindOther is any failure not covered below.
	KindOther Kind = iota
	// KindNoDaemon means nothing is bound at the path (ENOENT, ECONNREFUSED).
	KindNoDaemon
	// KindPermission means the socket exists but may not be used (EACCES, EPERM).
	KindPermission
)

func (k Kind) String() string {
	switch k {
	case KindNoDaemon:
		return "no daemon"
	case KindPermission:
		return "permission denied"
	default:
		return "connect failed"
	}
}

// ConnectError is returned when the daemon socket cannot be reached.
type ConnectError struct {
	Kind Kind
	Path string
	Err  error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("connect %s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// Is matches the domain sentinel for the error's kind.
func (e *ConnectError) Is(target error) bool {
	switch e.Kind {
	case KindNoDaemon:
		return errors.Is(domain.ErrDaemonUnreachable, target)
	case KindPermission:
		return errors.Is(domain.ErrPermissionDenied, target)
	default:
		return errors.Is(domain.ErrConnect, target)
	}
}

func classify(err error) Kind {
	switch {
	case errors.Is(err, unix.ENOENT), errors.Is(err, unix.ECONNREFUSED):
		return KindNoDaemon
	case errors.Is(err, unix.EACCES), errors.Is(err, unix.EPERM):
		return KindPermission
	default:
		return KindOther
	}
}
