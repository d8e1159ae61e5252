package connection

import (
	"context"
	"net"
	"time"

	"github.com/yndnr/tapkey-go/internal/core/domain"
)

// DefaultTimeout bounds dialing and each datagram write when the context has
// no deadline.
const DefaultTimeout = 2 * time.Second

// Sender delivers frames to the daemon listening on Path.
type Sender struct {
	Path string
}

// NewSender creates a Sender for the socket at path.
func NewSender(path string) *Sender {
	return &Sender{Path: path}
}

func (s *Sender) dial(ctx context.Context) (net.Conn, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultTimeout)
		defer cancel()
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "unixgram", s.Path)
	if err != nil {
		return nil, &ConnectError{Kind: classify(err), Path: s.Path, Err: err}
	}
	return conn, nil
}

// Send writes frame as one datagram. It does not retry.
func (s *Sender) Send(ctx context.Context, frame []byte) error {
	conn, err := s.dial(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()
	defer guard(ctx, conn)()

	return s.write(ctx, conn, frame)
}

// SendAll sends frames in order on one connection and stops at the first
// failure. It returns how many frames were sent.
func (s *Sender) SendAll(ctx context.Context, frames [][]byte) (int, error) {
	conn, err := s.dial(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Close()
	defer guard(ctx, conn)()

	for i, frame := range frames {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if err := s.write(ctx, conn, frame); err != nil {
			return i, err
		}
	}
	return len(frames), nil
}

// write sends one datagram. A daemon that stops draining its queue makes
// the write block, so it is bounded by the ctx deadline or DefaultTimeout.
func (s *Sender) write(ctx context.Context, conn net.Conn, frame []byte) error {
	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(DefaultTimeout)
	}
	_ = conn.SetWriteDeadline(deadline)
	if _, err := conn.Write(frame); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return domain.ErrSend.WithDetails(s.Path).WithCause(err)
	}
	return nil
}

// guard unblocks a pending write when ctx is cancelled.
func guard(ctx context.Context, conn net.Conn) (stop func() bool) {
	return context.AfterFunc(ctx, func() {
		_ = conn.SetWriteDeadline(time.Unix(1, 0))
	})
}

// Probe reports whether a daemon accepts connections on Path, without
// sending anything.
func (s *Sender) Probe(ctx context.Context) error {
	conn, err := s.dial(ctx)
	if err != nil {
		return err
	}
	return conn.Close()
}
