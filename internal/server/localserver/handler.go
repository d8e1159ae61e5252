package localserver

import (
	"context"
	"errors"
	"net"
	"time"

	"golang.org/x/time/rate"

	"github.com/yndnr/tapkey-go/internal/telemetry/logger"
)

// receiveBackoff spaces out retries after a failed Receive.
const receiveBackoff = 10 * time.Millisecond

// Handler processes one received frame.
type Handler func(ctx context.Context, frame []byte)

// Serve receives frames and passes each to h, one at a time, until ctx is
// done or the channel is closed. Cancelling ctx closes the channel, which
// unblocks the pending Receive; a frame already being handled completes
// first. Other receive errors are logged and the loop continues.
//
// Serve returns nil on shutdown, and only after Close has finished, so the
// socket path is gone (or handed to a successor) when it returns.
func (c *Channel) Serve(ctx context.Context, h Handler) error {
	stop := context.AfterFunc(ctx, func() { c.Close() })
	defer stop()

	warn := rate.Sometimes{First: 3, Interval: 10 * time.Second}
	for {
		frame, err := c.Receive()
		if err != nil {
			if errors.Is(err, net.ErrClosed) || ctx.Err() != nil {
				// Wait for the closing goroutine to finish unlinking.
				c.Close()
				return nil
			}
			warn.Do(func() {
				logger.L(ctx).Warn("receive failed", "socket", c.path, "error", err)
			})
			time.Sleep(receiveBackoff)
			continue
		}
		h(ctx, frame)
	}
}
