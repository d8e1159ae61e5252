// Package main provides the entry point for tapkeyd.
//
// tapkeyd owns a uinput virtual keyboard and presses keys on behalf of
// tapkey clients. It needs write access to /dev/uinput, usually through
// the input group or a udev rule.
//
// Configuration is read from /etc/tapkey/tapkeyd.yaml (or --config), then
// TAPKEY_* environment variables, then flags. Changes to log.level and
// timing.* in the file apply without a restart.
//
// Exit status: 0 ok, 1 usage or bad config, 4 device or socket setup
// failed, 5 another daemon already owns the socket.
package main
