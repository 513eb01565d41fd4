// Package server assembles and runs the inventory gateway: database,
// services, HTTP router and graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/akarpovs/stockkeeper/internal/logging"
	"github.com/akarpovs/stockkeeper/internal/server/api"
	"github.com/akarpovs/stockkeeper/internal/server/config"
	"github.com/akarpovs/stockkeeper/internal/server/repositories"
	"github.com/akarpovs/stockkeeper/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  *repositories.Manager
	server *http.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout)

	repos, err := repositories.NewManager(ctx, &cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	itemService := services.NewItemService(repos.Items(), logger)
	userService := services.NewUserService(repos.Conn(), repos.Users(), &cfg.Auth, logger)

	router := api.NewRouter(api.RouterConfig{
		Auth:   &cfg.Auth,
		Items:  itemService,
		Users:  userService,
		Logger: logger,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return &App{config: cfg, logger: logger, repos: repos, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run starts the HTTP server and blocks until the context is canceled or
// an interrupt arrives, then shuts down gracefully.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "starting server", "addr", app.server.Addr, "db", app.config.DB.Type)
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.Server.ShutdownTimeout)
	defer cancel()

	if err := app.server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(ctx, "shutdown error", "error", err)
	}

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}

	return nil
}
