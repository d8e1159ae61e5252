package command

import (
	"bytes"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeDaemon is a bare unixgram socket that records received frames.
type fakeDaemon struct {
	conn *net.UnixConn
	path string
	dir  string
}

func newFakeDaemon(t *testing.T) *fakeDaemon {
	t.Helper()
	dir, err := os.MkdirTemp("", "tk")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	path := filepath.Join(dir, "s")
	conn, err := net.ListenUnixgram("unixgram", &net.UnixAddr{Name: path, Net: "unixgram"})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return &fakeDaemon{conn: conn, path: path, dir: dir}
}

// frames reads n frames, failing the test if they do not arrive.
func (d *fakeDaemon) frames(t *testing.T, n int) [][]byte {
	t.Helper()
	var out [][]byte
	buf := make([]byte, 16)
	for len(out) < n {
		require.NoError(t, d.conn.SetReadDeadline(time.Now().Add(5*time.Second)))
		m, _, err := d.conn.ReadFromUnix(buf)
		require.NoError(t, err)
		out = append(out, append([]byte(nil), buf[:m]...))
	}
	return out
}

// quiet asserts nothing else is queued on the socket.
func (d *fakeDaemon) quiet(t *testing.T) {
	t.Helper()
	require.NoError(t, d.conn.SetReadDeadline(time.Now().Add(50*time.Millisecond)))
	_, _, err := d.conn.ReadFromUnix(make([]byte, 16))
	require.Error(t, err, "unexpected extra frame")
}

type result struct {
	stdout string
	stderr string
	err    error
}

// run executes the CLI with an isolated client config file.
func run(t *testing.T, args ...string) result {
	t.Helper()
	return runInput(t, "", args...)
}

// runInput is run with stdin fed from input.
func runInput(t *testing.T, input string, args ...string) result {
	t.Helper()
	t.Setenv("TAPKEY_PROFILE", "")
	t.Setenv("TAPKEY_SOCKET_PATH", "")
	t.Setenv("TAPKEY_OUTPUT", "")

	var stdout, stderr bytes.Buffer
	app := App()
	app.Writer = &stdout
	app.ErrWriter = &stderr
	app.Reader = strings.NewReader(input)

	cfg := filepath.Join(t.TempDir(), "cli.yaml")
	full := append([]string{"tapkey", "--config", cfg}, args...)
	err := app.Run(full)
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}
