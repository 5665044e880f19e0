package stats

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/ib-77/ropsignup/pkg/regerrors"
	"github.com/ib-77/ropsignup/pkg/rop"
)

func TestOutcome(t *testing.T) {
	t.Parallel()
	assert.Equal(t, OutcomeSuccess, Outcome(rop.Success[int, regerrors.Error](1)))
	assert.Equal(t, "age", Outcome(rop.Fail[int, regerrors.Error](regerrors.AgeError{Message: "Invalid age"})))
	assert.Equal(t, "duplicate_email", Outcome(rop.Fail[string, regerrors.Error](regerrors.DuplicateEmailError{Email: "a@b.com"})))
}

func TestMetricz(t *testing.T) {
	t.Parallel()
	m := NewMetricz()

	m.Record(OutcomeSuccess)
	m.Record(OutcomeSuccess)
	m.Record(string(regerrors.KindEmail))

	assert.Equal(t, float64(2), m.Count(OutcomeSuccess))
	assert.Equal(t, float64(1), m.Count(string(regerrors.KindEmail)))
	assert.Equal(t, float64(0), m.Count(string(regerrors.KindDatabase)))
}

func TestPrometheus(t *testing.T) {
	t.Parallel()
	p := NewPrometheus(prometheus.NewRegistry())

	p.Record(OutcomeSuccess)
	p.Record(string(regerrors.KindPassword))
	p.Record(string(regerrors.KindPassword))

	assert.Equal(t, float64(1), testutil.ToFloat64(p.Outcomes.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, float64(2), testutil.ToFloat64(p.Outcomes.WithLabelValues(string(regerrors.KindPassword))))
}

func TestMulti(t *testing.T) {
	t.Parallel()
	a, b := NewMetricz(), NewMetricz()

	Multi{a, b}.Record(OutcomeSuccess)

	assert.Equal(t, float64(1), a.Count(OutcomeSuccess))
	assert.Equal(t, float64(1), b.Count(OutcomeSuccess))
}
