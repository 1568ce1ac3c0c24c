package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/analytics"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/booking"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/cache"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/config"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/content"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/firestore"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/handler"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/logging"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/notify"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/scheduler"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/service"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/session"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/store"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/visibility"
)

// Version information injected at build time via ldflags.
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Matha Connect - temple community service\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  MATHA_SESSION_SECRET      Session encryption key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  MATHA_DB_PATH             SQLite database path (default: ./data/matha.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  MATHA_SERVER_PORT         Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  MATHA_ENV                 Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  MATHA_CONTENT_API_URL     Remote content backend URL (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  MATHA_CONTENT_API_KEY     Remote content backend key (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  MATHA_FIREBASE_API_KEY    Admin backend API key (optional, demo mode without it)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  MATHA_FIREBASE_PROJECT_ID Admin backend project id (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  MATHA_REDIS_URL           Redis URL for caching and pub/sub (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  MATHA_AMQP_URL            Broker URL for bulk notifications (optional)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}
	if *showVersion {
		_, _ = fmt.Printf("mathaconnect %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	// Ensure the data directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// Upgrade the logger so WARN and ERROR records land in the event log
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger = slog.New(logging.NewEventLogHandler(textHandler, db))
	slog.SetDefault(logger)
	slog.Info("event log integration enabled", "min_level", "warn")

	ctx := context.Background()
	if err := store.Seed(ctx, db, cfg.DoSeed); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}

	queries := store.New(db)
	sessionManager := session.New(db, cfg.IsDevelopment())
	slog.Info("session manager initialized")

	// Cache backend: Redis when configured, in-memory otherwise
	cacher, fellBack, err := cache.New(cache.Options{
		RedisURL:        cfg.RedisURL,
		Prefix:          cfg.CachePrefix,
		DefaultTTL:      time.Duration(cfg.CacheTTL) * time.Second,
		MaxSize:         cfg.CacheMaxSize,
		CleanupInterval: time.Minute,
	})
	if err != nil {
		return fmt.Errorf("initializing cache: %w", err)
	}
	defer func() { _ = cacher.Close() }()
	switch {
	case fellBack:
		slog.Warn("cache initialized", "backend", "memory", "note", "Redis unavailable, using fallback")
	case cfg.UseRedisCache():
		slog.Info("cache initialized", "backend", "redis")
	default:
		slog.Info("cache initialized", "backend", "memory")
	}

	// Content loaders with fetch-or-fallback semantics
	contentClient := content.NewClient(cfg.ContentAPIURL, cfg.ContentAPIKey)
	catalog := content.NewCatalog(contentClient, cacher, time.Duration(cfg.CacheTTL)*time.Second)
	slog.Info("content catalog initialized", "remote", contentClient.Configured())

	// Visibility store, with cross-process pub/sub when Redis is up
	var vis *visibility.Store
	if rc, ok := cacher.(*cache.RedisCache); ok {
		vis = visibility.New(queries, rc.Client())
	} else {
		vis = visibility.New(queries, nil)
	}
	listenCtx, stopListen := context.WithCancel(ctx)
	defer stopListen()
	go vis.Listen(listenCtx)

	// Admin backend; unconfigured means demo mode
	fb := firestore.NewClient(cfg.FirebaseAPIKey, cfg.FirebaseProjectID)
	if fb.Configured() {
		slog.Info("admin backend configured", "project", cfg.FirebaseProjectID)
	} else {
		slog.Info("admin backend not configured, running in demo mode")
	}

	// Bulk notification publisher: AMQP broker or local no-op
	var publisher notify.Publisher
	if cfg.AMQPConfigured() {
		pub, err := notify.NewAMQPPublisher(cfg.AMQPURL)
		if err != nil {
			slog.Warn("broker unavailable, notifications stay local", "error", err)
			publisher = notify.NoopPublisher{}
		} else {
			publisher = pub
			slog.Info("notification broker connected")
		}
	} else {
		publisher = notify.NoopPublisher{}
	}
	defer func() { _ = publisher.Close() }()
	dispatcher := notify.NewDispatcher(queries, publisher)

	events := service.NewEventService(db)
	bookings := booking.NewService(queries)
	stats := analytics.NewService(queries)
	admin := service.NewAdminService(fb, events, dispatcher)

	// Prime the daily analytics tier from stored bookings
	if err := stats.RefreshDaily(ctx); err != nil {
		slog.Warn("initial analytics refresh failed", "error", err)
	}

	h := handler.New(sessionManager, db, queries, catalog, vis, bookings, stats, admin, events)

	// Background jobs
	if cfg.CronEnabled {
		sched := scheduler.New(stats, dispatcher, events, logger)
		if err := sched.Start(); err != nil {
			return fmt.Errorf("starting scheduler: %w", err)
		}
		defer sched.Stop()
	}

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           h.Routes(cfg.IsDevelopment()),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
