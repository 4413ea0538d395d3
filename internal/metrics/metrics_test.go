package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsInitialization(t *testing.T) {
	m := New(prometheus.NewRegistry())

	require.NotNil(t, m)
	assert.NotNil(t, m.HTTPRequestsTotal)
	assert.NotNil(t, m.HTTPRequestDuration)
	assert.NotNil(t, m.ErrorResponsesTotal)
	assert.NotNil(t, m.RateLimitHitsTotal)
	assert.NotNil(t, m.DBSessionDuration)
}

func TestNew_DoubleRegistrationPanics(t *testing.T) {
	registry := prometheus.NewRegistry()
	New(registry)

	assert.Panics(t, func() { New(registry) })
}

func TestObserveHTTPRequest(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveHTTPRequest("GET", "/api/items/{id}", 404, 10*time.Millisecond)
	m.ObserveHTTPRequest("GET", "/api/items/{id}", 404, 20*time.Millisecond)
	m.ObserveHTTPRequest("GET", "/api/items/{id}", 200, 5*time.Millisecond)

	assert.Equal(t, 2.0, promtest.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/items/{id}", "404")))
	assert.Equal(t, 1.0, promtest.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/items/{id}", "200")))
	assert.Equal(t, 1, promtest.CollectAndCount(m.HTTPRequestDuration))
}

func TestObserveErrorResponse(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveErrorResponse("not_found")
	m.ObserveErrorResponse("not_found")
	m.ObserveErrorResponse("internal")

	assert.Equal(t, 2.0, promtest.ToFloat64(m.ErrorResponsesTotal.WithLabelValues("not_found")))
	assert.Equal(t, 1.0, promtest.ToFloat64(m.ErrorResponsesTotal.WithLabelValues("internal")))
}

func TestObserveRateLimitHit(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveRateLimitHit()

	assert.Equal(t, 1.0, promtest.ToFloat64(m.RateLimitHitsTotal))
}

func TestObserveDBSession(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveDBSession("commit", time.Millisecond)
	m.ObserveDBSession("rollback", time.Millisecond)

	assert.Equal(t, 2, promtest.CollectAndCount(m.DBSessionDuration))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/", 200, time.Second)
		m.ObserveErrorResponse("internal")
		m.ObserveRateLimitHit()
		m.ObserveDBSession("commit", time.Second)
	})
}
