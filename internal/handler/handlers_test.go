package handler

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/idea-backlog/internal/config"
	"github.com/MKhiriev/idea-backlog/internal/logger"
	"github.com/MKhiriev/idea-backlog/internal/metrics"
	"github.com/MKhiriev/idea-backlog/internal/service"
)

// newTestServices returns an empty *service.Services. http.NewHandler only
// stores the pointer, so nothing is called at construction time.
func newTestServices() *service.Services {
	return &service.Services{}
}

// TestNewHandlers_HTTPAddress verifies that an HTTP address yields an
// initialised HTTP handler and no error.
func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := config.StructuredConfig{
		Server: config.Server{HTTPAddress: ":8000"},
	}

	h, err := NewHandlers(newTestServices(), cfg, nil, nil, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

// TestNewHandlers_WithMetrics verifies that the router builds with a real
// registry wired in.
func TestNewHandlers_WithMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	cfg := config.StructuredConfig{
		Server: config.Server{HTTPAddress: ":8000", RateLimit: 10},
	}

	h, err := NewHandlers(newTestServices(), cfg, metrics.New(registry), registry, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h.HTTP)
	assert.NotNil(t, h.HTTP.Init())
}

// TestNewHandlers_NoAddress verifies that without an HTTP address
// NewHandlers returns errNoHandlersAreCreated and a nil *Handlers.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), config.StructuredConfig{}, nil, nil, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}
