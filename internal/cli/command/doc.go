// Package command defines the tapkey client commands.
//
// Every key command resolves a profile and a socket path, encodes one or
// more frames for that profile and sends them without waiting for a reply:
//
//	tapkey paste
//	tapkey type c
//	tapkey text "hello"
//	tapkey backspace
//	tapkey key super
//	tapkey shell --enter
//	tapkey status
//
// Errors are returned to main, which maps them to exit codes via
// internal/cli/exitcode.
package command
