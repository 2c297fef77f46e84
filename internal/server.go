package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/posturelab/posturecheck/internal/assessment"
	"github.com/posturelab/posturecheck/internal/auth"
	"github.com/posturelab/posturecheck/internal/clinical"
	"github.com/posturelab/posturecheck/internal/config"
	"github.com/posturelab/posturecheck/internal/hands"
	"github.com/posturelab/posturecheck/internal/middleware"
	"github.com/posturelab/posturecheck/internal/misc"
	"github.com/posturelab/posturecheck/internal/telemetry/metrics"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/multierr"
)

const (
	// sessions older than this get removed by the cleanup loop
	sessionMaxAge = 30 * 24 * time.Hour

	sessionsCleanupInterval = time.Hour
)

type NewServerParams struct {
	Config            *config.Config
	AdminUsername     string
	AdminPasswordHash string
	RedisPassword     string
	VersionInfo       string
}

// Server wires together the posture assessment service: the HTTP
// API, the redis backed sessions and the metrics endpoint.
type Server struct {
	config         *config.Config
	httpServer     *http.Server
	metricsServer  *http.Server
	metricsManager *metrics.Manager
	rdb            *redis.Client
	rateLimiter    *redis_rate.Limiter

	authService *auth.Service

	assessmentHandler *assessment.Handler
	clinicalHandler   *clinical.Handler
	handsHandler      *hands.Handler
	miscHandler       *misc.Handler
}

func NewServer(ctx context.Context, params NewServerParams) (*Server, error) {
	cfg := params.Config

	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	tipsManager, err := misc.NewTipsManager(cfg.PostureTipsCSVPath)
	if err != nil {
		return nil, fmt.Errorf("load posture tips: %w", err)
	}
	log.Debugf("loaded %d posture tips", tipsManager.Count())

	metricsManager, metricsServer := metrics.SetupPrometheus(
		ctx, cfg.PrometheusMetricsHost, cfg.PrometheusMetricsPort,
	)

	authService := auth.NewService(rdb, auth.Admin{
		Username:     params.AdminUsername,
		PasswordHash: params.AdminPasswordHash,
	})

	catalog := clinical.NewCatalog()

	return &Server{
		config:         cfg,
		metricsServer:  metricsServer,
		metricsManager: metricsManager,
		rdb:            rdb,
		rateLimiter:    redis_rate.NewLimiter(rdb),
		authService:    authService,
		assessmentHandler: assessment.NewHandler(
			assessment.NewAnalyzer(), metricsManager,
		),
		clinicalHandler: clinical.NewHandler(
			clinical.NewPlanner(catalog),
			catalog,
			cfg.TreatmentPlanCacheExpireSeconds,
			metricsManager,
		),
		handsHandler: hands.NewHandler(metricsManager),
		miscHandler:  misc.NewHandler(tipsManager, authService, params.VersionInfo),
	}, nil
}

// paths reachable only with a valid session token
var protectedPaths = map[string]bool{
	"/treatment/plan": true,
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("posturecheck"))

	r.HandleFunc("/", s.miscHandler.HandleRoot).Methods("GET")
	r.HandleFunc("/version", s.miscHandler.HandleVersion).Methods("GET")
	r.HandleFunc("/tip/random", s.miscHandler.HandleRandomTip).Methods("GET")

	r.HandleFunc("/assess", s.assessmentHandler.HandleAssess).Methods("POST", "OPTIONS")
	r.HandleFunc("/assess/quick", s.assessmentHandler.HandleQuickCheck).Methods("POST", "OPTIONS")

	r.HandleFunc("/treatment/plan", s.clinicalHandler.HandleGeneratePlan).Methods("POST", "OPTIONS")
	r.HandleFunc("/exercises/regions", s.clinicalHandler.HandleRegions).Methods("GET")
	r.HandleFunc("/exercises/region/{region}", s.clinicalHandler.HandleRegionExercises).Methods("GET")

	r.HandleFunc("/hands/analyze", s.handsHandler.HandleAnalyze).Methods("POST", "OPTIONS")

	r.Handle("/a/login",
		middleware.LoginRateLimit(s.rateLimiter, s.config.LoginRateLimitAllowedPerMin)(
			http.HandlerFunc(s.miscHandler.HandleLogin),
		),
	).Methods("POST", "OPTIONS")
	r.HandleFunc("/a/logout", s.miscHandler.HandleLogout).Methods("GET")

	r.Use(
		middleware.PanicRecovery(),
		middleware.LogRequest(),
		middleware.RequestMetrics(s.metricsManager),
		middleware.Cors(),
		middleware.AuthCheck(auth.NewLoginChecker(s.rdb), protectedPaths),
		middleware.DrainAndCloseRequest(),
	)

	return r
}

func (s *Server) Serve(ctx context.Context) {
	router := s.routerSetup()

	go s.sessionsCleanupLoop(ctx)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         addr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	log.Infof("posturecheck server listening on %s", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("http server: %s", err)
	}
}

func (s *Server) sessionsCleanupLoop(ctx context.Context) {
	ticker := time.NewTicker(sessionsCleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.authService.ScanAndClean(ctx, time.Now().Add(-sessionMaxAge))
		}
	}
}

func (s *Server) GracefulShutdown(ctx context.Context) error {
	var err error

	if s.httpServer != nil {
		err = multierr.Append(err, s.httpServer.Shutdown(ctx))
	}
	if s.metricsServer != nil {
		err = multierr.Append(err, s.metricsServer.Shutdown(ctx))
	}
	err = multierr.Append(err, s.rdb.Close())

	return err
}
