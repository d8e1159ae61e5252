// Package connection sends command datagrams to a running tapkeyd.
//
// There is no reply: a successful Send means the kernel queued the
// datagram on the daemon's socket, not that any key was pressed. Dial
// failures are classified into *ConnectError so the CLI can tell "no
// daemon" apart from "not allowed".
package connection
