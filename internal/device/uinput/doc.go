// Package uinput creates a virtual keyboard through /dev/uinput and writes
// key events to it.
//
// A Device is created once per daemon with every key it may ever emit
// registered up front; the kernel rejects events for unregistered keys.
// Emit writes a key event followed by a SYN_REPORT in a single write.
package uinput
