// Package metrics counts keystore operations and times key derivation.
//
// Counters live in a private Prometheus registry rather than the global one;
// a short-lived CLI process has no scrape endpoint, so the registry is dumped
// in text exposition format for the node_exporter textfile collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "keyseal"

// Recorder receives operation outcomes from the keystore codec.
type Recorder interface {
	ObserveDump(result string)
	ObserveRecover(result string)
	ObserveKDF(d time.Duration)
}

// Nop discards everything.
type Nop struct{}

func (Nop) ObserveDump(string)       {}
func (Nop) ObserveRecover(string)    {}
func (Nop) ObserveKDF(time.Duration) {}

// Prometheus is a Recorder backed by its own registry.
type Prometheus struct {
	registry *prometheus.Registry
	dumps    *prometheus.CounterVec
	recovers *prometheus.CounterVec
	kdf      prometheus.Histogram
}

// NewPrometheus registers the keystore collectors in a fresh registry.
func NewPrometheus() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		dumps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dump_total",
			Help:      "Keystore records created, by result.",
		}, []string{"result"}),
		recovers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recover_total",
			Help:      "Keystore unlock attempts, by result.",
		}, []string{"result"}),
		kdf: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "kdf_duration_seconds",
			Help:      "Wall time spent in Argon2id key derivation.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10),
		}),
	}
	p.registry.MustRegister(p.dumps, p.recovers, p.kdf)
	return p
}

func (p *Prometheus) ObserveDump(result string)    { p.dumps.WithLabelValues(result).Inc() }
func (p *Prometheus) ObserveRecover(result string) { p.recovers.WithLabelValues(result).Inc() }
func (p *Prometheus) ObserveKDF(d time.Duration)    { p.kdf.Observe(d.Seconds()) }

// Registry exposes the underlying registry, e.g. for tests or an HTTP handler.
func (p *Prometheus) Registry() *prometheus.Registry { return p.registry }

// WriteTextfile writes all collected metrics to path atomically.
func (p *Prometheus) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, p.registry)
}

var (
	_ Recorder = Nop{}
	_ Recorder = (*Prometheus)(nil)
)
