package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/devdash-backend/internal/adapter/postgres"
	clientrepo "github.com/heartmarshall/devdash-backend/internal/adapter/postgres/client"
	projectrepo "github.com/heartmarshall/devdash-backend/internal/adapter/postgres/project"
	"github.com/heartmarshall/devdash-backend/internal/adapter/postgres/projectclient"
	statsrepo "github.com/heartmarshall/devdash-backend/internal/adapter/postgres/stats"
	taskrepo "github.com/heartmarshall/devdash-backend/internal/adapter/postgres/task"
	timelinerepo "github.com/heartmarshall/devdash-backend/internal/adapter/postgres/timeline"
	userrepo "github.com/heartmarshall/devdash-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/devdash-backend/internal/auth"
	"github.com/heartmarshall/devdash-backend/internal/config"
	"github.com/heartmarshall/devdash-backend/internal/service/client"
	"github.com/heartmarshall/devdash-backend/internal/service/project"
	"github.com/heartmarshall/devdash-backend/internal/service/stats"
	"github.com/heartmarshall/devdash-backend/internal/service/task"
	"github.com/heartmarshall/devdash-backend/internal/service/timeline"
	"github.com/heartmarshall/devdash-backend/internal/service/user"
	"github.com/heartmarshall/devdash-backend/internal/transport/middleware"
	"github.com/heartmarshall/devdash-backend/internal/transport/rest"
)

// Database is the storage handle the application runs on. *pgxpool.Pool
// satisfies it.
type Database interface {
	postgres.Querier
	postgres.Beginner
	Ping(ctx context.Context) error
}

// Run connects to the database and serves HTTP until ctx is cancelled, then
// shuts the server down gracefully.
func Run(ctx context.Context, cfg *config.Config) error {
	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	handler, stop, err := NewHandler(cfg, pool, logger)
	if err != nil {
		return err
	}
	defer stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// NewHandler wires repositories, services and handlers on top of db and
// returns the full middleware-wrapped HTTP handler. stop releases background
// resources and must be called on shutdown.
func NewHandler(cfg *config.Config, db Database, logger *slog.Logger) (http.Handler, func(), error) {
	tx := postgres.NewTxManager(db)

	users := userrepo.New(db)
	clients := clientrepo.New(db)
	projects := projectrepo.New(db)
	links := projectclient.New(db)
	tasks := taskrepo.New(db)
	entries := timelinerepo.New(db)

	userSvc, err := user.NewService(logger, users, tx, cfg.Auth.ProvisionCacheSize)
	if err != nil {
		return nil, nil, err
	}
	clientSvc := client.NewService(logger, clients, projects, tx)
	projectSvc := project.NewService(logger, projects, tasks, entries, links, clients, tx)
	taskSvc := task.NewService(logger, tasks, projects, tx)
	timelineSvc := timeline.NewService(logger, entries, projects, tx)
	statsSvc := stats.NewService(logger, statsrepo.New(db))

	mux := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(db, Version, logger),
		Me:       rest.NewMeHandler(userSvc, logger),
		Stats:    rest.NewStatsHandler(statsSvc, logger),
		Clients:  rest.NewClientHandler(clientSvc, cfg.API, logger),
		Projects: rest.NewProjectHandler(projectSvc, cfg.API, logger),
		Tasks:    rest.NewTaskHandler(taskSvc, logger),
		Timeline: rest.NewTimelineHandler(timelineSvc, logger),
	})

	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	limiter := middleware.NewRateLimiter(cfg.RateLimit)

	// No configured origins leaves CORS headers off entirely.
	var cors middleware.Middleware
	if cfg.CORS.AllowedOrigins != "" {
		cors = middleware.CORS(cfg.CORS)
	}

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		cors,
		limiter.Limit(),
		middleware.Auth(tokens, userSvc, logger),
	)(mux)

	return handler, limiter.Stop, nil
}

func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", shutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
