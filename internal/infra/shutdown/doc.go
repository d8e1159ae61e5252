// Package shutdown coordinates process termination.
//
//   - WithSignals: a context cancelled on SIGINT or SIGTERM
//   - Handler: cleanup hooks run in reverse registration order under a
//     shared timeout
//
// Usage:
//
//	ctx, stop := shutdown.WithSignals(context.Background())
//	defer stop()
//	h := shutdown.NewHandler(5 * time.Second)
//	h.OnShutdown(closeDevice)
//	runUntil(ctx)
//	err := h.Shutdown()
package shutdown
