// Package stats counts registration outcomes. Recorders are fed by callers
// that already hold a Result; they never influence it.
package stats

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/zoobzio/metricz"

	"github.com/ib-77/ropsignup/pkg/regerrors"
	"github.com/ib-77/ropsignup/pkg/rop"
)

const OutcomeSuccess = "success"

type Recorder interface {
	Record(outcome string)
}

// Outcome labels a result with "success" or the kind of its failure.
func Outcome[T any](r rop.Result[T, regerrors.Error]) string {
	if r.IsSuccess() {
		return OutcomeSuccess
	}
	return string(r.Err().Kind())
}

// Metricz keeps in-process counters, one per outcome label.
type Metricz struct {
	registry *metricz.Registry
}

func NewMetricz() *Metricz {
	return &Metricz{registry: metricz.New()}
}

func (m *Metricz) Record(outcome string) {
	m.registry.Counter(metricz.Key("registration." + outcome + ".total")).Inc()
}

// Count returns how many times outcome was recorded.
func (m *Metricz) Count(outcome string) float64 {
	return m.registry.Counter(metricz.Key("registration." + outcome + ".total")).Value()
}

func (m *Metricz) Registry() *metricz.Registry {
	return m.registry
}

// Prometheus exposes outcomes as ropsignup_registration_outcomes_total{outcome}.
type Prometheus struct {
	Outcomes *prometheus.CounterVec
}

func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	return &Prometheus{
		Outcomes: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "ropsignup_registration_outcomes_total",
			Help: "Total registration attempts by outcome",
		}, []string{"outcome"}), // outcome: "success" or a failure kind
	}
}

func (p *Prometheus) Record(outcome string) {
	p.Outcomes.WithLabelValues(outcome).Inc()
}

// Multi fans a record out to every recorder.
type Multi []Recorder

func (m Multi) Record(outcome string) {
	for _, r := range m {
		r.Record(outcome)
	}
}
