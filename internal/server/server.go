package server

import (
	"context"
	"log/slog"
	"net/http"

	appformations "github.com/preston-bernstein/lineup-service/internal/app/formations"
	appplayers "github.com/preston-bernstein/lineup-service/internal/app/players"
	"github.com/preston-bernstein/lineup-service/internal/config"
	httpserver "github.com/preston-bernstein/lineup-service/internal/http"
	"github.com/preston-bernstein/lineup-service/internal/http/handlers"
	"github.com/preston-bernstein/lineup-service/internal/http/middleware"
	"github.com/preston-bernstein/lineup-service/internal/ingest"
	"github.com/preston-bernstein/lineup-service/internal/keepalive"
	"github.com/preston-bernstein/lineup-service/internal/logging"
	"github.com/preston-bernstein/lineup-service/internal/metrics"
	"github.com/preston-bernstein/lineup-service/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	corpus        *store.CorpusStore
	players       *appplayers.Service
	httpServer    httpServer
	metricsServer httpServer
	keepAlive     BackgroundTask
	metricsStop   func(context.Context) error
}

// New constructs a server reading players from cfg.DataDir.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	corpus, playerSvc := buildServices(cfg, logger, recorder)
	httpSrv := buildHTTPServer(cfg, playerSvc, logger, recorder)
	ka := keepalive.New(keepalive.Options{
		URL:          cfg.KeepAlive.URL,
		Interval:     cfg.KeepAlive.Interval,
		InitialDelay: cfg.KeepAlive.InitialDelay,
		Logger:       logger,
		Metrics:      recorder,
	})

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		corpus:        corpus,
		players:       playerSvc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		keepAlive:     ka,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, playerSvc *appplayers.Service, httpSrv httpServer, ka BackgroundTask) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		players:    playerSvc,
		httpServer: httpSrv,
		keepAlive:  ka,
	}
}

func buildServices(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*store.CorpusStore, *appplayers.Service) {
	corpus := store.NewCorpusStore()
	loader := ingest.NewLoader(cfg.DataDir, logger)
	svc := appplayers.NewService(corpus, loader, appplayers.Options{
		CacheSize: cfg.CacheSize,
		Logger:    logger,
		Metrics:   recorder,
	})
	return corpus, svc
}

func buildHTTPServer(cfg config.Config, playerSvc *appplayers.Service, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(playerSvc, appformations.NewService(), logger)
	admin := handlers.NewAdminHandler(playerSvc, cfg.AdminToken, logger)
	router := httpserver.NewRouter(handler, admin, logger)
	wrapped := middleware.LoggingMiddleware(logger, recorder, middleware.CORS(cfg.CORSOrigins, router))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run loads the corpus, starts the HTTP and keepalive loops, then waits for
// context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.loadCorpus(ctx)
	s.startMetrics()
	s.startServer(stop)
	if s.keepAlive != nil {
		s.keepAlive.Start(ctx)
	}

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

// loadCorpus performs the startup load. A failure leaves the empty corpus in
// place; /ready reports it until an admin reload succeeds.
func (s *Server) loadCorpus(ctx context.Context) {
	if s.players == nil {
		return
	}
	if _, err := s.players.Reload(ctx); err != nil {
		logging.Warn(s.logger, "starting with an empty player corpus",
			slog.String(logging.FieldFile, s.cfg.DataDir),
			"error", err,
		)
	}
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if s.keepAlive != nil {
		if err := s.keepAlive.Stop(shutdownCtx); err != nil {
			logging.Error(s.logger, "failed to stop keepalive", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

// Players exposes the player service (useful for tests).
func (s *Server) Players() *appplayers.Service {
	return s.players
}
