package domain

import "fmt"

// DomainError represents a business domain error with a structured error code.
// Codes have the form TK-<AREA>-<NNNN>; the last four digits loosely follow
// HTTP status semantics (4xxx caller problem, 5xxx local failure).
type DomainError struct {
	Code    string // Error code (e.g., "TK-CHAN-4090")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// ============================================================================
// Device Errors (DEV)
// ============================================================================

var (
	// ErrDevice indicates the virtual keyboard could not be opened,
	// configured or created. Fatal at startup.
	ErrDevice = NewDomainError("TK-DEV-5000", "virtual keyboard setup failed")

	// ErrEmit indicates a single key event could not be written.
	ErrEmit = NewDomainError("TK-EMIT-5000", "key event write failed")
)

// ============================================================================
// Command Channel Errors (CHAN)
// ============================================================================

var (
	// ErrAlreadyRunning indicates a live daemon already owns the socket path.
	ErrAlreadyRunning = NewDomainError("TK-CHAN-4090", "daemon already running")

	// ErrBind indicates the command socket could not be created or bound.
	ErrBind = NewDomainError("TK-CHAN-5000", "command socket bind failed")
)

// ============================================================================
// Client Connection Errors (CONN)
// ============================================================================

var (
	// ErrDaemonUnreachable indicates nothing is listening on the socket path.
	ErrDaemonUnreachable = NewDomainError("TK-CONN-5030", "daemon not running")

	// ErrPermissionDenied indicates the socket exists but the caller may not use it.
	ErrPermissionDenied = NewDomainError("TK-CONN-4030", "permission denied")

	// ErrConnect covers every other connect failure.
	ErrConnect = NewDomainError("TK-CONN-5000", "connect failed")

	// ErrSend indicates the command could not be written after connecting.
	ErrSend = NewDomainError("TK-CONN-5001", "send failed")
)

// ============================================================================
// Argument Errors (ARG)
// ============================================================================

var (
	// ErrInvalidArgument indicates an invalid argument.
	ErrInvalidArgument = NewDomainError("TK-ARG-4000", "invalid argument")

	// ErrUnknownCommand indicates the command is not offered by the profile.
	ErrUnknownCommand = NewDomainError("TK-ARG-4001", "unknown command")

	// ErrUnknownProfile indicates an unrecognized profile name.
	ErrUnknownProfile = NewDomainError("TK-ARG-4002", "unknown profile")
)
