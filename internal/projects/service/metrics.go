package service

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/birqadam/volunteer-backend/internal/projects/domain"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics tracks project creation outcomes.
type Metrics struct {
	CreatedTotal  *prometheus.CounterVec
	FailuresTotal *prometheus.CounterVec
}

// NewMetrics registers the collectors on the default registry once.
//
// Metrics:
//   - projects_created_total{volunteer_type}
//   - project_create_failures_total{kind}
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = newMetrics(promauto.With(prometheus.DefaultRegisterer))
	})
	return globalMetrics
}

// NewMetricsWithRegistry registers on reg; tests use a fresh registry each.
func NewMetricsWithRegistry(reg prometheus.Registerer) *Metrics {
	return newMetrics(promauto.With(reg))
}

func newMetrics(f promauto.Factory) *Metrics {
	return &Metrics{
		CreatedTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "projects_created_total",
				Help: "Total number of projects created",
			},
			[]string{"volunteer_type"},
		),
		FailuresTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "project_create_failures_total",
				Help: "Total number of rejected or failed project creations",
			},
			[]string{"kind"},
		),
	}
}

func (m *Metrics) recordCreated(vt domain.VolunteerType) {
	if m == nil {
		return
	}
	m.CreatedTotal.WithLabelValues(string(vt)).Inc()
}

func (m *Metrics) recordFailure(err error) {
	if m == nil {
		return
	}
	m.FailuresTotal.WithLabelValues(string(domain.KindOf(err))).Inc()
}
