package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite"

	v1 "github.com/vmunix/portarr/internal/api/v1"
	"github.com/vmunix/portarr/internal/config"
	"github.com/vmunix/portarr/internal/events"
	"github.com/vmunix/portarr/internal/feed"
	"github.com/vmunix/portarr/internal/migrations"
	"github.com/vmunix/portarr/internal/portal"
	"github.com/vmunix/portarr/pkg/arr"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 200 { // Only capture first WriteHeader call
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler, log *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, status: 200}
		next.ServeHTTP(wrapped, r)
		log.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// initConfig writes the default config to the given path, or the discovered
// default location when the path is empty.
func initConfig(path string) error {
	if path == "" {
		path = config.DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists: %s", path)
	}
	if err := config.WriteDefault(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func runServer(configPath string) error {
	// Locate and load config
	if configPath == "" {
		var err error
		configPath, err = config.Discover()
		if err != nil {
			return err
		}
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// Create logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))

	// Ensure database directory exists
	dbDir := filepath.Dir(cfg.Database.Path)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}

	// Open database
	db, err := sql.Open("sqlite", cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer func() { _ = db.Close() }()

	// Run migrations
	if _, err := db.Exec(migrations.InitialSQL); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	requestStore := portal.NewStore(db)
	bus := events.NewBus(logger)
	defer bus.Close()

	// Queue sources, in merge order
	var sources []feed.Source
	if cfg.Services.Radarr != nil {
		client := arr.NewClient("radarr", cfg.Services.Radarr.URL, cfg.Services.Radarr.APIKey, logger)
		sources = append(sources, feed.NewArrSource(client))
	}
	if cfg.Services.Sonarr != nil {
		client := arr.NewClient("sonarr", cfg.Services.Sonarr.URL, cfg.Services.Sonarr.APIKey, logger)
		sources = append(sources, feed.NewArrSource(client))
	}

	poller := feed.NewPoller(sources, bus, cfg.Feed.PollInterval, logger)

	// === HTTP Setup ===
	mux := http.NewServeMux()

	apiV1 := v1.New(requestStore, poller, bus, logger)
	defer apiV1.Close()
	apiV1.RegisterRoutes(mux)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting",
		"addr", addr,
		"database", cfg.Database.Path,
		"sources", len(sources),
		"poll_interval", cfg.Feed.PollInterval,
		"log_level", cfg.Server.LogLevel,
	)

	srv := &http.Server{Addr: addr, Handler: logRequests(mux, logger)}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return poller.Run(gctx)
	})

	g.Go(func() error {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		return err
	}

	logger.Info("server stopped")
	return nil
}
