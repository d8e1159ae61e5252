package localserver

import (
	"errors"
	"io/fs"
	"net"
	"os"
	"sync"
	"time"

	"golang.org/x/sys/unix"

	"github.com/yndnr/tapkey-go/internal/core/domain"
)

const (
	// DefaultMode is the permission of the socket file.
	DefaultMode fs.FileMode = 0o600

	// DefaultBufferSize exceeds every legal frame, so an oversized datagram
	// arrives as a wrong-length frame rather than a truncated legal one.
	DefaultBufferSize = 16

	probeTimeout = 250 * time.Millisecond
)

// Channel is a bound command socket.
type Channel struct {
	conn    net.PacketConn
	path    string
	inode   os.FileInfo
	bufSize int

	closeOnce sync.Once
	closeErr  error
}

// Bind claims path for a new command socket. It fails with
// domain.ErrAlreadyRunning if a live daemon answers on path and with
// domain.ErrBind for everything else.
func Bind(path string) (*Channel, error) {
	if err := reclaim(path); err != nil {
		return nil, err
	}

	conn, err := net.ListenUnixgram("unixgram", &net.UnixAddr{Name: path, Net: "unixgram"})
	if err != nil {
		return nil, domain.ErrBind.WithDetails(path).WithCause(err)
	}
	if err := os.Chmod(path, DefaultMode); err != nil {
		conn.Close()
		os.Remove(path)
		return nil, domain.ErrBind.WithDetails("chmod " + path).WithCause(err)
	}
	inode, err := os.Lstat(path)
	if err != nil {
		conn.Close()
		return nil, domain.ErrBind.WithDetails(path).WithCause(err)
	}

	return &Channel{conn: conn, path: path, inode: inode, bufSize: DefaultBufferSize}, nil
}

// reclaim clears path for binding: nothing there is fine, a dead socket is
// removed, a live socket or a non-socket file is an error.
func reclaim(path string) error {
	info, err := os.Lstat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return domain.ErrBind.WithDetails(path).WithCause(err)
	}

	if info.Mode()&fs.ModeSocket == 0 {
		return domain.ErrBind.WithDetails("path exists but is not a socket: " + path)
	}
	live, err := alive(path)
	if err != nil {
		return domain.ErrBind.WithDetails("probe " + path).WithCause(err)
	}
	if live {
		return domain.ErrAlreadyRunning.WithDetails(path)
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return domain.ErrBind.WithDetails("remove stale socket " + path).WithCause(err)
	}
	return nil
}

// alive reports whether something accepts datagrams on path. Only
// ECONNREFUSED (or the file vanishing) means nobody is listening; any other
// dial failure, such as EACCES on another user's socket, is returned.
func alive(path string) (bool, error) {
	conn, err := net.DialTimeout("unixgram", path, probeTimeout)
	switch {
	case err == nil:
		conn.Close()
		return true, nil
	case errors.Is(err, unix.ECONNREFUSED), errors.Is(err, unix.ENOENT):
		return false, nil
	default:
		return false, err
	}
}

// Path returns the filesystem path of the socket.
func (c *Channel) Path() string { return c.path }

// Receive blocks until one datagram arrives and returns it unchanged.
// After Close it returns net.ErrClosed.
func (c *Channel) Receive() ([]byte, error) {
	buf := make([]byte, c.bufSize)
	n, _, err := c.conn.ReadFrom(buf)
	if err != nil {
		if errors.Is(err, net.ErrClosed) {
			return nil, net.ErrClosed
		}
		return nil, err
	}
	return buf[:n], nil
}

// Close closes the socket and removes its path if the path still names the
// socket this channel bound. Only the first call does anything; concurrent
// and later calls wait for it and return its result.
func (c *Channel) Close() error {
	c.closeOnce.Do(func() {
		err := c.conn.Close()
		if rmErr := c.unlink(); rmErr != nil {
			err = errors.Join(err, rmErr)
		}
		c.closeErr = err
	})
	return c.closeErr
}

// unlink removes the socket file unless another daemon has since replaced it.
func (c *Channel) unlink() error {
	info, err := os.Lstat(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if !os.SameFile(info, c.inode) {
		return nil
	}
	if err := os.Remove(c.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
