// Package daemon ties the virtual keyboard, the command socket and the key
// sequencer together into the tapkeyd main loop.
//
// Lifecycle:
//
//	d, _ := daemon.New(opts)
//	defer d.Close()
//	if err := d.Start(ctx); err != nil { ... }
//	err := d.Run(ctx) // returns nil once ctx is cancelled
//
// Datagrams are handled strictly one after another on the Run goroutine.
package daemon
