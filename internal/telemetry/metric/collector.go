package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector reports static daemon information and uptime at scrape time.
type Collector struct {
	start  time.Time
	now    func() time.Time
	info   *prometheus.Desc
	uptime *prometheus.Desc
	labels []string
}

// NewCollector creates a collector for a daemon started now.
func NewCollector(version, profile, device string) *Collector {
	return &Collector{
		start: time.Now(),
		now:   time.Now,
		info: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "info"),
			"Daemon build and profile information.",
			[]string{"version", "profile", "device"}, nil,
		),
		uptime: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "uptime_seconds"),
			"Seconds since the daemon started.",
			nil, nil,
		),
		labels: []string{version, profile, device},
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.info
	ch <- c.uptime
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.info, prometheus.GaugeValue, 1, c.labels...)
	ch <- prometheus.MustNewConstMetric(c.uptime, prometheus.GaugeValue, c.now().Sub(c.start).Seconds())
}
