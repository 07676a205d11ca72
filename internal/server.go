package internal

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/vfit-app/vfit/internal/config"
	"github.com/vfit-app/vfit/internal/gymstats"
	"github.com/vfit-app/vfit/internal/gymstats/calendar"
	"github.com/vfit-app/vfit/internal/gymstats/feed"
	"github.com/vfit-app/vfit/internal/gymstats/tracker"
	"github.com/vfit-app/vfit/internal/middleware"
	"github.com/vfit-app/vfit/internal/misc"
	"github.com/vfit-app/vfit/internal/telemetry/metrics"
	"github.com/vfit-app/vfit/internal/telemetry/tracing"
	"github.com/vfit-app/vfit/internal/welcome"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config          *config.Config
	tracker         *tracker.State
	welcomeFetcher  *welcome.Fetcher
	feedPublisher   feed.Publisher
	redisClient     *redis.Client
	rateLimiter     middleware.RequestRateLimiter
	welcomeFetchCtx context.CancelFunc

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	HoneycombTracingEnabled bool

	// optional overrides, mostly for tests
	RateLimiter       middleware.RequestRateLimiter
	FeedPublisher     feed.Publisher
	WelcomeHTTPClient *http.Client
	Now               func() time.Time
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	promRegistry := metrics.SetupPrometheus(params.VersionInfo)
	metricsManager := metrics.NewManager("backend", "vfit", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	otelShutdown := func() {}
	if params.HoneycombTracingEnabled {
		shutdown, err := tracing.HoneycombSetup()
		if err != nil {
			return nil, fmt.Errorf("honeycomb setup: %w", err)
		}
		otelShutdown = shutdown
	}

	schedule, err := loadSchedule(cfg.ScheduleCSVPath)
	if err != nil {
		return nil, fmt.Errorf("load schedule: %w", err)
	}
	log.Debugf("loaded %d scheduled events", len(schedule))

	s := &Server{
		config:         cfg,
		versionInfo:    params.VersionInfo,
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
		rateLimiter:    params.RateLimiter,
		feedPublisher:  params.FeedPublisher,
	}

	if s.rateLimiter == nil && cfg.RateLimitEnabled {
		s.redisClient = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: params.RedisPassword,
			DB:       0, // use default DB
		})

		rdbStatus := s.redisClient.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		} else {
			log.Debugf("redis ping: %s", rdbStatus.Val())
		}
		s.rateLimiter = redis_rate.NewLimiter(s.redisClient)
	}

	if s.feedPublisher == nil {
		if cfg.FeedEnabled() {
			log.Infof("publishing workouts to kafka topic [%s] on %v", cfg.KafkaTopic, cfg.KafkaBrokers)
			s.feedPublisher = feed.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		} else {
			log.Debugln("workout feed disabled")
			s.feedPublisher = feed.NoopPublisher{}
		}
	}

	trackerOpts := []tracker.Option{tracker.WithPublisher(s.feedPublisher)}
	if params.Now != nil {
		trackerOpts = append(trackerOpts, tracker.WithClock(params.Now))
	}
	s.tracker = tracker.NewState(schedule, trackerOpts...)

	welcomeClient := params.WelcomeHTTPClient
	if welcomeClient == nil {
		welcomeClient = welcome.NewHTTPClient(cfg.WelcomeTimeout.Duration)
	}
	s.welcomeFetcher = welcome.NewFetcher(cfg.WelcomeURL, welcomeClient, metricsManager)

	return s, nil
}

func loadSchedule(path string) (calendar.Schedule, error) {
	if path == "" {
		log.Warnln("schedule csv path not set, calendar will have no events")
		return calendar.Schedule{}, nil
	}

	scheduleCsvFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open schedule file: %w", err)
	}
	defer func() {
		if err := scheduleCsvFile.Close(); err != nil {
			log.Warnf("close schedule csv file: %s", err)
		}
	}()

	return calendar.LoadSchedule(csv.NewReader(scheduleCsvFile))
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("vfit-router"))

	miscHandler := misc.NewHandler(s.welcomeFetcher, s.versionInfo)
	miscHandler.SetupRoutes(r)

	gymstatsHandler := gymstats.NewHandler(s.tracker, s.metricsManager)
	gymstatsHandler.SetupRoutes(r, s.rateLimiter, s.config.RateLimitPerMin)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.CorsAllowedOrigins))
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:              metricsAddr,
		Handler:           metricsRouter,
		ReadHeaderTimeout: 10 * time.Second,
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

	// single attempt; the default greeting is served until it succeeds
	fetchCtx, cancel := context.WithCancel(ctx)
	s.welcomeFetchCtx = cancel
	s.welcomeFetcher.FetchAsync(fetchCtx)

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	if s.welcomeFetchCtx != nil {
		s.welcomeFetchCtx()
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	if err := s.feedPublisher.Close(); err != nil {
		log.Errorf("failed to close workout feed publisher: %s", err)
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed, http.StateHijacked:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
