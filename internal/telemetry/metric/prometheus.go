package metric

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tapkey"

// Datagram results.
const (
	ResultAccepted = "accepted"
	ResultDropped  = "dropped"
)

// Registry holds all daemon metrics.
type Registry struct {
	reg *prometheus.Registry

	DatagramsTotal *prometheus.CounterVec
	ActionsTotal   *prometheus.CounterVec
	EmitFailures   prometheus.Counter
	ActionDuration *prometheus.HistogramVec
}

// NewRegistry creates a registry with the daemon metrics and the Go runtime
// and process collectors registered. Extra collectors (such as Collector)
// are registered as well.
func NewRegistry(extra ...prometheus.Collector) *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		DatagramsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "datagrams_total",
			Help:      "Command datagrams received, by result.",
		}, []string{"result"}),
		ActionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_total",
			Help:      "Key actions performed, by kind.",
		}, []string{"kind"}),
		EmitFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emit_failures_total",
			Help:      "Key events the virtual keyboard failed to accept.",
		}),
		ActionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "action_duration_seconds",
			Help:      "Time spent sequencing one action, including hold and gap delays.",
			Buckets:   []float64{.002, .005, .01, .015, .02, .03, .05, .1, .25},
		}, []string{"kind"}),
	}

	r.reg.MustRegister(
		r.DatagramsTotal,
		r.ActionsTotal,
		r.EmitFailures,
		r.ActionDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	for _, c := range extra {
		r.reg.MustRegister(c)
	}
	return r
}

// ObserveDatagram counts one received datagram.
func (r *Registry) ObserveDatagram(result string) {
	if r == nil {
		return
	}
	r.DatagramsTotal.WithLabelValues(result).Inc()
}

// ObserveAction records one sequenced action and its emit failures.
func (r *Registry) ObserveAction(kind string, d time.Duration, failures int) {
	if r == nil {
		return
	}
	r.ActionsTotal.WithLabelValues(kind).Inc()
	r.ActionDuration.WithLabelValues(kind).Observe(d.Seconds())
	if failures > 0 {
		r.EmitFailures.Add(float64(failures))
	}
}

// Gatherer exposes the underlying registry for tests and custom exporters.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// Handler returns an HTTP handler for the /metrics endpoint.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}
