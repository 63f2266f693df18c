package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicegst/internal/domain"
)

func (m *Metrics) calculationCounter(operation, outcome string) prometheus.Counter {
	return m.calculations.WithLabelValues(operation, outcome)
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, OutcomeOK},
		{"invalid", fmt.Errorf("amount: %w", domain.ErrInvalidArgument), OutcomeInvalid},
		{"unsupported", domain.ErrUnsupportedType, OutcomeInvalid},
		{"other", errors.New("boom"), OutcomeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Outcome(tt.err))
		})
	}
}

func TestRecordCalculation(t *testing.T) {
	m := New()

	m.RecordCalculation("calculate", nil)
	m.RecordCalculation("calculate", nil)
	m.RecordCalculation("calculate", domain.ErrInvalidArgument)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.calculationCounter("calculate", OutcomeOK)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.calculationCounter("calculate", OutcomeInvalid)))
}

func TestObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest(http.MethodPost, "/api/v1/gst/calculate", http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.httpRequests.WithLabelValues("POST", "/api/v1/gst/calculate", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "unknown", "404")))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := New()
	m.RecordCalculation("gstr1", nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `gst_calculations_total{operation="gstr1",outcome="ok"} 1`)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordCalculation("calculate", nil)
		m.ObserveRequest("GET", "/", 200, time.Second)
	})
	assert.Nil(t, m.Registry())
}
