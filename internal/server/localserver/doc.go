// Package localserver owns the daemon's command socket.
//
// The socket is a unixgram endpoint at a well-known path. Each datagram
// is one command frame; there are no replies. Bind enforces a single live
// daemon per path:
//
//   - a live socket at the path means another daemon is running
//   - a dead socket at the path is stale and is replaced
//   - any other file at the path is left alone and binding fails
//
// Security:
//
//   - the socket file is restricted to the owning user (mode 0600)
//   - filesystem permissions are the only access control
package localserver
