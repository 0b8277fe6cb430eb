// Package promobserver exports interner pool events as Prometheus metrics.
package promobserver

import (
	"github.com/prometheus/client_golang/prometheus"

	interner "github.com/probablyarth/interner-go"
)

// Observer implements interner.Observer by updating Prometheus collectors.
// One Observer may be shared by several pools; use a const label on the
// registerer to tell them apart.
type Observer struct {
	lookups  *prometheus.CounterVec
	releases *prometheus.CounterVec
	resident prometheus.Gauge
}

var _ interner.Observer = (*Observer)(nil)

// New creates an Observer and registers its collectors with reg. If reg is
// nil, prometheus.DefaultRegisterer is used. Registration errors panic, as
// with prometheus.MustRegister.
func New(namespace string, reg prometheus.Registerer) *Observer {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	o := &Observer{
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "interner_lookups_total",
			Help:      "Pool lookups by result (hit or miss).",
		}, []string{"result"}),
		releases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "interner_releases_total",
			Help:      "Last-reference releases by outcome (release or reacquire).",
		}, []string{"outcome"}),
		resident: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "interner_resident_values",
			Help:      "Values currently resident in the pool.",
		}),
	}

	reg.MustRegister(o.lookups, o.releases, o.resident)
	return o
}

// On implements interner.Observer.
func (o *Observer) On(e interner.EventData) {
	switch e.Event {
	case interner.EventHit:
		o.lookups.WithLabelValues("hit").Inc()
	case interner.EventMiss:
		o.lookups.WithLabelValues("miss").Inc()
		o.resident.Inc()
	case interner.EventRelease:
		o.releases.WithLabelValues("release").Inc()
		o.resident.Dec()
	case interner.EventReacquire:
		o.releases.WithLabelValues("reacquire").Inc()
	}
}
