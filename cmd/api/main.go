package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/sync/errgroup"

	"newsroom-cms/internal/common/pagination"
	appcfg "newsroom-cms/internal/config"
	"newsroom-cms/internal/infra/adapter/persistence/postgres"
	"newsroom-cms/internal/infra/blobstore"
	"newsroom-cms/internal/infra/db"
	"newsroom-cms/internal/infra/worker"
	"newsroom-cms/internal/observability/logging"
	"newsroom-cms/internal/observability/metrics"
	"newsroom-cms/internal/observability/slo"
	"newsroom-cms/internal/observability/tracing"
	"newsroom-cms/internal/repository"
	"newsroom-cms/internal/resilience/circuitbreaker"
	"newsroom-cms/internal/resilience/retry"

	artUC "newsroom-cms/internal/usecase/article"
	mediaUC "newsroom-cms/internal/usecase/media"
	secUC "newsroom-cms/internal/usecase/section"

	hhttp "newsroom-cms/internal/handler/http"
	harticle "newsroom-cms/internal/handler/http/article"
	hauth "newsroom-cms/internal/handler/http/auth"
	"newsroom-cms/internal/handler/http/middleware"
	"newsroom-cms/internal/handler/http/requestid"
	hsection "newsroom-cms/internal/handler/http/section"
	authservice "newsroom-cms/internal/service/auth"
)

// @title           Newsroom CMS API
// @version         1.0
// @description     Editorial content management: article lifecycle, section
// @description     registry and media attachments behind role-based access.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := appcfg.FromEnv()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	validateJWTSecret(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer := tracing.InitTracer("newsroom-cms")
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			logger.Error("tracer shutdown failed", slog.Any("error", err))
		}
	}()

	database := initDatabase(ctx, logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	blobs, blobConfigured := initBlobStore(cfg, logger)
	tracker := slo.NewTracker()
	collectorCfg := worker.LoadCollectorConfigFromEnv(logger)
	handler, collector := buildServices(cfg, collectorCfg, database, blobs, tracker, logger)

	runServer(ctx, logger, cfg, runComponents{
		Handler:             handler,
		DB:                  database,
		Tracker:             tracker,
		Collector:           collector,
		ProbeAddr:           collectorCfg.HealthAddr,
		BlobStoreConfigured: blobConfigured,
	})
}

// validateJWTSecret refuses to start without a usable signing key. A missing
// key would make every protected route fail at request time; a short one
// would make the tokens forgeable.
func validateJWTSecret(logger *slog.Logger) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Error("JWT_SECRET must be set")
		os.Exit(1)
	}
	if len(secret) < 32 {
		logger.Error("JWT_SECRET must be at least 32 characters (256 bits)")
		os.Exit(1)
	}
}

// initDatabase opens the pool, waits for the store to answer and applies
// migrations. The ping is retried with backoff so a normal orchestrated
// startup race with the database container resolves itself.
func initDatabase(ctx context.Context, logger *slog.Logger) *sql.DB {
	database, err := db.Open()
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}

	err = retry.WithBackoff(ctx, retry.DBConfig(), func() error {
		return db.Ping(ctx, database)
	})
	if err != nil {
		logger.Error("document store unreachable", slog.Any("error", err))
		os.Exit(1)
	}

	if err := db.Migrate(ctx, database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// initBlobStore picks the media backend. With Cloudinary credentials present
// it wraps the real store in a circuit breaker; without them uploads degrade
// to the no-op store so article CRUD keeps working in environments that have
// no media account, like CI.
func initBlobStore(cfg *appcfg.AppConfig, logger *slog.Logger) (repository.BlobStore, bool) {
	cloudName := cfg.BlobStore.CloudName
	if cloudName == "" {
		cloudName = os.Getenv("CLOUDINARY_CLOUD_NAME")
	}
	if cloudName == "" {
		logger.Warn("blob store not configured, image uploads disabled")
		return blobstore.NewNoOpStore(), false
	}

	store := blobstore.NewCloudinaryStore(blobstore.CloudinaryConfig{
		CloudName:    cloudName,
		UploadPreset: cfg.BlobStore.UploadPreset,
		Folder:       cfg.BlobStore.Folder,
		APIKey:       os.Getenv("CLOUDINARY_API_KEY"),
		APISecret:    os.Getenv("CLOUDINARY_API_SECRET"),
		Timeout:      cfg.BlobStore.Timeout.Std(),
	})
	logger.Info("blob store configured", slog.String("cloud_name", cloudName))
	return circuitbreaker.NewBlobStoreCircuitBreaker(store), true
}

// buildServices wires repositories, use cases, routes and the middleware
// chain, and returns the root handler plus the background stats collector.
func buildServices(
	cfg *appcfg.AppConfig,
	collectorCfg worker.CollectorConfig,
	database *sql.DB,
	blobs repository.BlobStore,
	tracker *slo.Tracker,
	logger *slog.Logger,
) (http.Handler, *worker.StatsCollector) {
	// Every repository query goes through the document store breaker, so a
	// dying store fails fast instead of tying up the handler pool.
	dbBreaker := circuitbreaker.NewDBCircuitBreaker(database)

	articleRepo := postgres.NewArticleRepo(dbBreaker)
	sectionRepo := postgres.NewSectionRepo(dbBreaker)
	principalRepo := postgres.NewPrincipalRepo(dbBreaker)

	authSvc := authservice.NewAuthService(principalRepo)
	authSvc.Subscribe(func(ev authservice.SessionEvent) {
		metrics.RecordSession(ev.Role)
	})

	mediaSvc := &mediaUC.Service{Blobs: blobs, Logger: logger}
	artSvc := &artUC.Service{Repo: articleRepo, Media: mediaSvc}
	secSvc := &secUC.Service{Repo: sectionRepo}

	paginationCfg := pagination.Config{
		DefaultPage:  1,
		DefaultLimit: cfg.Pagination.DefaultLimit,
		MaxLimit:     cfg.Pagination.MaxLimit,
	}

	mux := http.NewServeMux()
	harticle.Register(mux, artSvc, paginationCfg, logger)
	hsection.Register(mux, secSvc)
	mux.Handle("POST /auth/token", hauth.TokenHandler(authSvc, logger))

	collector := worker.NewStatsCollector(articleRepo, sectionRepo, collectorCfg, logger)

	return applyMiddleware(cfg, mux, tracker, logger), collector
}

// applyMiddleware wraps the routes in the standard chain, innermost first:
// handler timeout, tracing, metrics, input validation, logging, panic
// recovery, rate limiting, request ID, CORS.
func applyMiddleware(cfg *appcfg.AppConfig, handler http.Handler, tracker *slo.Tracker, logger *slog.Logger) http.Handler {
	corsCfg := middleware.LoadCORSConfig()
	limiter := hhttp.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	chain := handler
	chain = hhttp.Timeout(cfg.Server.HandlerTimeout.Std())(chain)
	chain = tracing.Middleware(chain)
	chain = hhttp.MetricsMiddleware(tracker)(chain)
	chain = hhttp.InputValidation()(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = limiter.Limit(chain)
	chain = requestid.Middleware(chain)
	chain = middleware.CORS(corsCfg)(chain)
	return chain
}

// runComponents bundles what runServer supervises.
type runComponents struct {
	Handler             http.Handler
	DB                  *sql.DB
	Tracker             *slo.Tracker
	Collector           *worker.StatsCollector
	ProbeAddr           string
	BlobStoreConfigured bool
}

// runServer supervises the API server, the metrics server, the health probe
// server and the background loops; it blocks until a termination signal and
// then drains everything within the shutdown timeout.
func runServer(ctx context.Context, logger *slog.Logger, cfg *appcfg.AppConfig, c runComponents) {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}

	apiServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      c.Handler,
		ReadTimeout:  cfg.Server.ReadTimeout.Std(),
		WriteTimeout: cfg.Server.WriteTimeout.Std(),
		IdleTimeout:  cfg.Server.IdleTimeout.Std(),
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("GET /metrics", hhttp.MetricsHandler())
	metricsMux.Handle("GET /health", &hhttp.HealthHandler{
		DB:                  c.DB,
		Version:             version,
		BlobStoreConfigured: c.BlobStoreConfigured,
	})
	metricsServer := &http.Server{
		Addr:        cfg.Server.MetricsAddr,
		Handler:     metricsMux,
		ReadTimeout: 5 * time.Second,
	}

	probes := worker.NewHealthServer(c.ProbeAddr, logger)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.Server.Addr),
			slog.String("version", version))
		if err := apiServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("metrics server starting", slog.String("addr", cfg.Server.MetricsAddr))
		if err := metricsServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		if err := probes.Start(ctx); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		c.Collector.Run(ctx)
		return nil
	})

	g.Go(func() error {
		c.Tracker.Run(ctx, 15*time.Second)
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down server...")
		probes.SetReady(false)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Std())
		defer cancel()

		var errs []error
		if err := apiServer.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, err)
		}
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, err)
		}
		return errors.Join(errs...)
	})

	probes.SetReady(true)

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
