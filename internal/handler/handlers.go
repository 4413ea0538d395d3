package handler

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/idea-backlog/internal/config"
	"github.com/MKhiriev/idea-backlog/internal/handler/http"
	"github.com/MKhiriev/idea-backlog/internal/logger"
	"github.com/MKhiriev/idea-backlog/internal/metrics"
	"github.com/MKhiriev/idea-backlog/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, m *metrics.Metrics, gatherer prometheus.Gatherer, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, m, gatherer, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
