package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"gitlab.com/golf-2025.net/internal/core/ports/secondary"
	"gitlab.com/golf-2025.net/internal/domain"
)

var _ secondary.Metrics = (*Prometheus)(nil)

// Prometheus implements the Metrics interface with prometheus collectors
type Prometheus struct {
	outcomes      *prometheus.CounterVec
	judgeDuration *prometheus.SummaryVec
	judgeErrors   *prometheus.CounterVec
	revalidations *prometheus.CounterVec
}

// NewPrometheus registers the submission collectors on reg
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	factory := promauto.With(reg)
	return &Prometheus{
		outcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "golf_submissions_total",
				Help: "Submissions by language and outcome",
			},
			[]string{"language", "outcome"},
		),
		judgeDuration: factory.NewSummaryVec(
			prometheus.SummaryOpts{
				Name: "golf_judge_duration_seconds",
				Help: "Time spent waiting for the judge",
				Objectives: map[float64]float64{
					0.5:  0.05,
					0.9:  0.01,
					0.99: 0.001,
				},
			},
			[]string{"language"},
		),
		judgeErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "golf_judge_errors_total",
				Help: "Evaluations that ended without a verdict",
			},
			[]string{"language"},
		),
		revalidations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "golf_revalidations_total",
				Help: "Background revalidations by result",
			},
			[]string{"result"},
		),
	}
}

func (p *Prometheus) ObserveOutcome(language string, outcome domain.Outcome) {
	p.outcomes.WithLabelValues(language, string(outcome)).Inc()
}

func (p *Prometheus) ObserveJudge(language string, elapsed time.Duration, err error) {
	p.judgeDuration.WithLabelValues(language).Observe(elapsed.Seconds())
	if err != nil {
		p.judgeErrors.WithLabelValues(language).Inc()
	}
}

func (p *Prometheus) ObserveRevalidation(result string) {
	p.revalidations.WithLabelValues(result).Inc()
}
