// Package metric provides Prometheus metrics for tapkeyd.
//
// Metrics live on a private registry rather than the global default one so
// tests can build as many daemons as they like:
//
//   - prometheus.go: Registry with datagram, action and emit counters
//   - collector.go: build/profile info and uptime, collected on scrape
//
// The registry is exposed at /metrics by the optional HTTP listener in
// internal/server/httpserver.
package metric
