package transport

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	refreshSuccess = "success"
	refreshEmpty   = "empty"
	refreshError   = "error"
	refreshPanic   = "panic"
)

// Metrics holds the dispatcher collectors. A nil *Metrics records nothing.
type Metrics struct {
	requests        *prometheus.CounterVec
	refreshes       *prometheus.CounterVec
	authExpired     prometheus.Counter
	refreshInFlight prometheus.Gauge
}

// NewMetrics creates dispatcher collectors and registers them with registerer when not nil.
func NewMetrics(registerer prometheus.Registerer) (*Metrics, error) {
	ret := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "finsync",
				Subsystem: "client",
				Name:      "requests_total",
				Help:      "Total number of HTTP attempts by response status, replays included.",
			},
			[]string{"status"},
		),
		refreshes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "finsync",
				Subsystem: "client",
				Name:      "refresh_total",
				Help:      "Total number of refresh handler invocations by outcome.",
			},
			[]string{"outcome"},
		),
		authExpired: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "finsync",
				Subsystem: "client",
				Name:      "auth_expired_total",
				Help:      "Total number of request cycles that ended with an expired session.",
			},
		),
		refreshInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "finsync",
				Subsystem: "client",
				Name:      "refresh_inflight",
				Help:      "Whether a token refresh is currently outstanding.",
			},
		),
	}
	if registerer == nil {
		return ret, nil
	}
	for _, collector := range []prometheus.Collector{ret.requests, ret.refreshes, ret.authExpired, ret.refreshInFlight} {
		if err := registerer.Register(collector); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

func (m *Metrics) observeStatus(status int) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(strconv.Itoa(status)).Inc()
}

func (m *Metrics) refreshStarted() {
	if m == nil {
		return
	}
	m.refreshInFlight.Set(1)
}

func (m *Metrics) refreshSettled(outcome string) {
	if m == nil {
		return
	}
	m.refreshInFlight.Set(0)
	m.refreshes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) expired() {
	if m == nil {
		return
	}
	m.authExpired.Inc()
}
