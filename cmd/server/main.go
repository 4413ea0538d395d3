package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MKhiriev/idea-backlog/internal/config"
	"github.com/MKhiriev/idea-backlog/internal/handler"
	"github.com/MKhiriev/idea-backlog/internal/logger"
	"github.com/MKhiriev/idea-backlog/internal/metrics"
	"github.com/MKhiriev/idea-backlog/internal/server"
	"github.com/MKhiriev/idea-backlog/internal/service"
	"github.com/MKhiriev/idea-backlog/internal/store"
	"github.com/MKhiriev/idea-backlog/internal/utils"
	"github.com/MKhiriev/idea-backlog/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const (
	healthcheckFlag    = "-healthcheck"
	healthcheckTimeout = 3 * time.Second
)

func main() {
	args := os.Args[1:]
	if len(args) > 0 && (args[0] == healthcheckFlag || args[0] == "-"+healthcheckFlag) {
		os.Exit(runHealthcheck(args[1:]))
	}

	printBuildInfo()

	log := logger.NewLogger("idea-backlog-server")
	cfg, err := config.GetStructuredConfig(args)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error migrating database")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics := metrics.New(registry)

	storages := store.NewStorages(db, appMetrics, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, appMetrics, registry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// runHealthcheck probes GET /health of a running instance. It is meant for
// container health checks, so it reports through the exit code only.
func runHealthcheck(args []string) int {
	cfg, err := config.GetStructuredConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "healthcheck: %v\n", err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), healthcheckTimeout)
	defer cancel()

	if err = utils.NewHTTPClient(probeBaseURL(cfg.Server.HTTPAddress)).CheckHealth(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "healthcheck: %v\n", err)
		return 1
	}

	return 0
}

// probeBaseURL turns a listen address into a URL reachable from the same
// host. An empty host means all interfaces, so loopback is used.
func probeBaseURL(address string) string {
	host, port, err := net.SplitHostPort(address)
	if err != nil {
		return "http://" + address
	}
	if host == "" {
		host = "127.0.0.1"
	}

	return "http://" + net.JoinHostPort(host, port)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
