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
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"

	"github.com/2beens/gymroutines/internal/config"
	"github.com/2beens/gymroutines/internal/gymstats/dashboard"
	gymmcp "github.com/2beens/gymroutines/internal/gymstats/mcp"
	"github.com/2beens/gymroutines/internal/gymstats/routines"
	"github.com/2beens/gymroutines/internal/gymstats/session"
	"github.com/2beens/gymroutines/internal/gymstats/stats"
	"github.com/2beens/gymroutines/internal/gymstats/workoutlogs"
	"github.com/2beens/gymroutines/internal/logging"
	"github.com/2beens/gymroutines/internal/middleware"
	"github.com/2beens/gymroutines/internal/storage"
	"github.com/2beens/gymroutines/internal/telemetry/metrics"
	"github.com/2beens/gymroutines/internal/telemetry/tracing"
)

const (
	sessionJanitorInterval = time.Minute
	shutdownMaxWait        = 15 * time.Second
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config         *config.Config
	kv             storage.KV
	routinesStore  *routines.Store
	logsStore      *workoutlogs.Store
	sessionManager *session.Manager
	statsLocation  *time.Location

	// rate limiting of mutating routes, nil when redis is not configured
	rateLimitRedis *redis.Client

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()

	stopJanitor context.CancelFunc
	janitorDone chan struct{}
}

type NewServerParams struct {
	Config      *config.Config
	Secrets     config.Secrets
	VersionInfo string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	statsLocation, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.Secrets.HoneycombEnabled, "gymroutines-backend")
	if err != nil {
		return nil, err
	}

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("gymroutines", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	redisParams := cfg.RedisParams(params.Secrets)
	kv, err := storage.Open(ctx, cfg.StorageParams(params.Secrets, metricsManager))
	if err != nil {
		otelShutdown()
		return nil, fmt.Errorf("open storage: %w", err)
	}

	if pgKV, ok := unwrapKV(kv).(*storage.PostgresKV); ok {
		promRegistry.MustRegister(pgxpoolprometheus.NewCollector(
			pgKV.Pool(),
			map[string]string{"db_name": cfg.PostgresDBName},
		))
	}

	var rateLimitRedis *redis.Client
	if cfg.RedisHost != "" {
		if redisKV, ok := unwrapKV(kv).(*storage.RedisKV); ok {
			rateLimitRedis = redisKV.Client()
		} else {
			rateLimitRedis = storage.NewRedisClient(redisParams)
			if err := rateLimitRedis.Ping(ctx).Err(); err != nil {
				log.Errorf("--> failed to ping redis, rate limiting disabled: %s", err)
				_ = rateLimitRedis.Close()
				rateLimitRedis = nil
			}
		}
	}

	routinesStore := routines.NewStore(ctx, kv)
	logsStore := workoutlogs.NewStore(ctx, kv)
	routinesStore.Subscribe(func(list []routines.Routine) {
		log.Tracef("routines changed, %d routines", len(list))
	})
	logsStore.Subscribe(func(logs []workoutlogs.WorkoutLog) {
		log.Tracef("workout logs changed, %d logs", len(logs))
	})

	sessionManager := session.NewManager(routinesStore, logsStore, session.ManagerParams{
		IdleTimeout:    cfg.SessionIdleTimeout.Duration,
		MetricsManager: metricsManager,
	})

	return &Server{
		versionInfo:    params.VersionInfo,
		config:         cfg,
		kv:             kv,
		routinesStore:  routinesStore,
		logsStore:      logsStore,
		sessionManager: sessionManager,
		statsLocation:  statsLocation,
		rateLimitRedis: rateLimitRedis,
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func unwrapKV(kv storage.KV) storage.KV {
	if instrumented, ok := kv.(*storage.InstrumentedKV); ok {
		return instrumented.Unwrap()
	}
	return kv
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	r.HandleFunc("/", s.handleRoot).Methods("GET", "OPTIONS").Name("root")

	var mutating func(http.Handler) http.Handler
	if s.rateLimitRedis != nil {
		mutating = middleware.RateLimit(
			redis_rate.NewLimiter(s.rateLimitRedis),
			"routines-mutations",
			s.config.RateLimitPerMin,
			s.metricsManager,
		)
	}

	routinesHandler := routines.NewHandler(s.routinesStore, s.metricsManager)
	routinesHandler.SetupRoutes(r, mutating)

	logsHandler := workoutlogs.NewHandler(s.logsStore)
	logsHandler.SetupRoutes(r)

	sessionHandler := session.NewHandler(s.sessionManager)
	sessionHandler.SetupRoutes(r)

	statsHandler := stats.NewHandler(s.routinesStore, s.logsStore, s.statsLocation)
	statsHandler.SetupRoutes(r)

	dashboardHandler := dashboard.NewHandler(s.routinesStore, s.logsStore)
	dashboardHandler.SetupRoutes(r)

	mcpServer := gymmcp.NewServer(gymmcp.NewContextService(s.routinesStore, s.logsStore, s.statsLocation))
	r.PathPrefix("/mcp").Handler(gymmcp.NewHTTPHandler(mcpServer)).Name("mcp")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(middleware.DrainAndCloseRequest(middleware.DefaultMaxBodyBytes))

	return r, nil
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	msg := "gymroutines"
	if s.versionInfo != "" {
		msg += " " + s.versionInfo
	}
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(msg))
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

	s.startSessionJanitor(ctx)
	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) startSessionJanitor(ctx context.Context) {
	janitorCtx, cancel := context.WithCancel(ctx)
	s.stopJanitor = cancel
	s.janitorDone = make(chan struct{})
	go func() {
		defer close(s.janitorDone)
		s.sessionManager.RunJanitor(janitorCtx, sessionJanitorInterval)
	}()
}

func (s *Server) GracefulShutdown() error {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	ctx, timeoutCancel := context.WithTimeout(context.Background(), shutdownMaxWait)
	defer timeoutCancel()

	var err error
	if s.httpServer != nil {
		if shutdownErr := s.httpServer.Shutdown(ctx); shutdownErr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown http server: %w", shutdownErr))
		}
		log.Warnln("server shut down")
	}

	if s.stopJanitor != nil {
		s.stopJanitor()
		<-s.janitorDone
	}
	// live sessions are not persisted
	s.sessionManager.CancelAll()

	if s.metricsHttpServer != nil {
		if shutdownErr := s.metricsHttpServer.Shutdown(ctx); shutdownErr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown metrics http server: %w", shutdownErr))
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	// the redis KV owns the client when both share it
	if s.rateLimitRedis != nil {
		if _, shared := unwrapKV(s.kv).(*storage.RedisKV); !shared {
			if closeErr := s.rateLimitRedis.Close(); closeErr != nil {
				err = multierr.Append(err, fmt.Errorf("close redis client: %w", closeErr))
			}
		}
	}

	if closeErr := s.kv.Close(); closeErr != nil {
		err = multierr.Append(err, fmt.Errorf("close storage: %w", closeErr))
	}

	if flushErr := logging.Flush(); flushErr != nil {
		log.Debugf("sentry flush: %s", flushErr)
	}

	return err
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
