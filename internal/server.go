package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"

	"github.com/2beens/fittrack/internal/app"
	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/fitness"
	fitnessmcp "github.com/2beens/fittrack/internal/fitness/mcp"
	"github.com/2beens/fittrack/internal/middleware"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config      *config.Config
	backend     *app.Backend
	state       *app.State
	backuper    *app.Backuper
	stopBackups func()

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	RedisPassword           string
	PostgresUser            string
	PostgresPassword        string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	backend, err := app.OpenBackend(ctx, params.Config, app.BackendParams{
		RedisPassword:    params.RedisPassword,
		PostgresUser:     params.PostgresUser,
		PostgresPassword: params.PostgresPassword,
		TracingEnabled:   params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("open storage backend: %w", err)
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fittrack-backend", backend.Redis)
	if err != nil {
		return nil, multierr.Append(err, backend.Close())
	}

	var pgxpoolCollector prometheus.Collector
	if backend.DBPool != nil {
		pgxpoolCollector = pgxpoolprometheus.NewCollector(
			backend.DBPool,
			map[string]string{"db_name": params.Config.PostgresDBName},
		)
	}
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fittrack", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	state := app.NewState(backend.Provider)
	if err := state.Load(ctx); err != nil {
		otelShutdown()
		return nil, multierr.Append(fmt.Errorf("load state: %w", err), backend.Close())
	}

	s := &Server{
		config:  params.Config,
		backend: backend,
		state:   state,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	if params.Config.BackupDir != "" {
		s.backuper = app.NewBackuper(backend.Provider, params.Config.BackupDir, metricsManager)
	}

	return s, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("fittrack-router"))

	fitnessHandler := fitness.NewHandler(fitness.HandlerParams{
		Workouts:       s.state.Workouts,
		Catalog:        s.state.Catalog,
		BodyWeight:     s.state.BodyWeight,
		Goals:          s.state.Goals,
		MetricsManager: s.metricsManager,
	})
	fitnessHandler.SetupRoutes(r)

	if s.config.MCPEnabled {
		mcpServer := fitnessmcp.NewServer(s.state)
		mcpHandler := mcpsdk.NewStreamableHTTPHandler(func(*http.Request) *mcpsdk.Server {
			return mcpServer
		}, nil)
		r.PathPrefix("/mcp").Handler(mcpHandler).Name("mcp")
	}

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.CorsAllowedOrigins...))
	if s.backend.Redis != nil && s.config.RateLimitAllowedPerMin > 0 {
		r.Use(middleware.RateLimit(
			redis_rate.NewLimiter(s.backend.Redis),
			s.metricsManager,
			"fittrack",
			s.config.RateLimitAllowedPerMin,
		))
	}
	r.Use(middleware.DrainAndCloseRequest(middleware.DefaultMaxBodyBytes))

	return r, nil
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
		"metrics",
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	if s.backuper != nil && s.config.BackupCronSpec != "" {
		stop, err := s.backuper.Schedule(ctx, s.config.BackupCronSpec)
		if err != nil {
			log.Errorf("failed to schedule backups: %s", err)
		} else {
			s.stopBackups = stop
		}
	}

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	if s.stopBackups != nil {
		s.stopBackups()
		log.Trace("backups schedule stopped ...")
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	var err error
	if s.httpServer != nil {
		if shutdownErr := s.httpServer.Shutdown(ctx); shutdownErr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown http server: %w", shutdownErr))
		}
		log.Warnln("server shut down")
	}
	if s.metricsHttpServer != nil {
		if shutdownErr := s.metricsHttpServer.Shutdown(ctx); shutdownErr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown metrics http server: %w", shutdownErr))
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	// the pool close is blocking, it waits for the in-flight queries
	if closeErr := s.backend.Close(); closeErr != nil {
		err = multierr.Append(err, fmt.Errorf("close storage backend: %w", closeErr))
	}

	for _, e := range multierr.Errors(err) {
		log.Errorf(" >>> shutdown: %s", e)
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
