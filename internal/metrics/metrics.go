// Package metrics holds the prometheus instrumentation for the trip planner.
// Collectors are created per Metrics value (not package-level MustRegister)
// so tests can build isolated registries.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the collectors wired into the stores and the machine.
type Metrics struct {
	registry *prometheus.Registry

	actions        *prometheus.CounterVec
	searchDuration *prometheus.HistogramVec
}

// New builds the collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		actions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tripplanner_actions_total",
				Help: "Total number of dispatched state actions",
			},
			[]string{"store", "action"},
		),
		searchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "tripplanner_search_duration_seconds",
				Help: "Duration of flight and hotel search tasks",
			},
			[]string{"kind"},
		),
	}
	m.registry.MustRegister(m.actions, m.searchDuration)
	return m
}

// ItineraryHook returns a store hook that counts itinerary actions.
func (m *Metrics) ItineraryHook() func(action string) {
	return func(action string) {
		m.actions.WithLabelValues("itinerary", action).Inc()
	}
}

// BookingHook returns a machine hook that counts booking actions.
func (m *Metrics) BookingHook() func(action string) {
	return func(action string) {
		m.actions.WithLabelValues("booking", action).Inc()
	}
}

// SearchObserver returns an observer recording search task durations.
func (m *Metrics) SearchObserver() func(kind string, seconds float64) {
	return func(kind string, seconds float64) {
		m.searchDuration.WithLabelValues(kind).Observe(seconds)
	}
}

// Handler returns the /metrics HTTP handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
