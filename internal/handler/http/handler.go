package http

import (
	"github.com/MKhiriev/idea-backlog/internal/config"
	"github.com/MKhiriev/idea-backlog/internal/logger"
	"github.com/MKhiriev/idea-backlog/internal/metrics"
	"github.com/MKhiriev/idea-backlog/internal/service"
	"github.com/MKhiriev/idea-backlog/internal/utils"
	"github.com/MKhiriev/idea-backlog/internal/validators"
	"github.com/prometheus/client_golang/prometheus"
)

// traceIDGenerator produces ids for requests that arrive without X-Trace-ID.
type traceIDGenerator interface {
	Generate() string
}

type Handler struct {
	services *service.Services

	// legacyValidator checks the query of the legacy POST /items.
	legacyValidator validators.Validator

	serverCfg       config.Server
	securityHeaders securityHeaders

	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer

	traceIDs traceIDGenerator

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. metrics may be nil; gatherer may be nil
// too, in which case GET /metrics is not registered.
func NewHandler(services *service.Services, cfg config.StructuredConfig, m *metrics.Metrics, gatherer prometheus.Gatherer, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:        services,
		legacyValidator: validators.NewItemValidator(),
		serverCfg:       cfg.Server,
		securityHeaders: newSecurityHeaders(cfg.Security),
		metrics:         m,
		gatherer:        gatherer,
		traceIDs:        utils.NewUUIDGenerator(),
		logger:          logger,
	}
}
