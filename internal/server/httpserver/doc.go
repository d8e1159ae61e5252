// Package httpserver provides the optional HTTP listener of tapkeyd.
//
// It is off unless metrics.addr is set and serves:
//
//   - GET /metrics: Prometheus exposition of the daemon registry
//   - GET /health: liveness, always 200 while the process runs
//   - GET /ready: 200 once the keyboard and command socket are up, 503 otherwise
//
// Every route runs behind RequestID and Recover.
package httpserver
