package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Intake cuenta los envíos del formulario por resultado (accepted, rejected, failed).
type Intake struct {
	registry    *prometheus.Registry
	submissions *prometheus.CounterVec
}

func NewIntake() *Intake {
	reg := prometheus.NewRegistry()
	submissions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "customerdesk_submissions_total",
			Help: "Customer submissions by outcome",
		},
		[]string{"outcome"},
	)
	reg.MustRegister(submissions)
	return &Intake{registry: reg, submissions: submissions}
}

func (m *Intake) Record(outcome string) {
	m.submissions.WithLabelValues(outcome).Inc()
}

func (m *Intake) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
