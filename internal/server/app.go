// Package server initializes and runs the demo backend. It wires the seeded
// user directory, the generated calendar dataset, token management and the
// HTTP router, and handles graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/crewhive/crewhive/internal/demo"
	"github.com/crewhive/crewhive/internal/server/auth"
	"github.com/crewhive/crewhive/internal/server/config"
	"github.com/crewhive/crewhive/internal/server/httpapi"
	"github.com/crewhive/crewhive/internal/server/store"
)

type App struct {
	config *config.Config
	logger *zap.Logger
	server *http.Server
}

func NewApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	users, err := store.NewUserStore(store.DefaultSeed())
	if err != nil {
		return nil, fmt.Errorf("seed users: %w", err)
	}

	tokens := auth.NewManager([]byte(cfg.JWTSecret), cfg.AccessTTL, cfg.RefreshTTL)
	data := demo.NewClient(cfg.Location())

	router := httpapi.NewRouter(
		logger,
		tokens,
		httpapi.NewAuthHandler(users, tokens, logger),
		httpapi.NewUsersHandler(users, logger),
		httpapi.NewCalendarHandler(data, logger),
		cfg.RateLimit,
	)

	return &App{
		config: cfg,
		logger: logger,
		server: &http.Server{
			Addr:         cfg.Addr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run starts the HTTP server and blocks until the context is cancelled or a
// termination signal arrives, then shuts down gracefully.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info("starting server", zap.String("addr", app.config.Addr))
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	app.logger.Info("shutting down")
	return app.server.Shutdown(shutdownCtx)
}
