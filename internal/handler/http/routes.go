package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MKhiriev/idea-backlog/internal/utils"
)

// compressionLevel is the gzip level used for JSON responses.
const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	// security headers must wrap everything, including error envelopes
	router.Use(h.withSecurityHeaders)
	if h.serverCfg.TrustProxyHeaders {
		router.Use(middleware.RealIP)
	}
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(h.withRecovery)
	router.Use(middleware.Compress(compressionLevel, utils.ContentTypeJSON, utils.ContentTypeProblemJSON))

	if h.serverCfg.RateLimit > 0 {
		router.Use(httprate.Limit(
			h.serverCfg.RateLimit,
			time.Minute,
			httprate.WithKeyByIP(),
			httprate.WithLimitHandler(h.rateLimited),
		))
	}
	if len(h.serverCfg.CORSAllowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.serverCfg.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", traceIDHeader},
			ExposedHeaders: []string{traceIDHeader},
			MaxAge:         300,
		}))
	}
	if h.serverCfg.RequestTimeout > 0 {
		router.Use(h.withRequestTimeout(h.serverCfg.RequestTimeout))
	}

	router.NotFound(h.handle(func(w http.ResponseWriter, r *http.Request) error {
		return NewHTTPError(http.StatusNotFound, nil)
	}))
	router.MethodNotAllowed(h.checkHTTPMethod(router))

	// service routes
	router.Get("/health", h.handle(h.health))
	router.Get("/version", h.handle(h.getServerVersion))
	if h.gatherer != nil {
		router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	}

	// item routes stay on the root mux: a mounted subrouter registers a
	// catch-all for every method, which breaks the 405 Allow header
	router.Get("/api/items", h.handle(h.listItems))
	router.Post("/api/items", h.handle(h.createItem))
	router.Get("/api/items/{id}", h.handle(h.getItem))
	router.Put("/api/items/{id}", h.handle(h.updateItem))
	router.Delete("/api/items/{id}", h.handle(h.deleteItem))

	// legacy routes
	router.Get("/items/{id}", h.handle(h.legacyGetItem))
	router.Post("/items", h.handle(h.legacyCreateItem))

	return router
}

func (h *Handler) rateLimited(w http.ResponseWriter, r *http.Request) {
	h.metrics.ObserveRateLimitHit()
	h.renderError(w, r, NewHTTPError(http.StatusTooManyRequests, nil))
}
