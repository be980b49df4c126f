// Package server wires configuration, storage, services and the HTTP API
// into a runnable backend with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/tamakara/booth/internal/logging"
	"github.com/tamakara/booth/internal/server/config"
	"github.com/tamakara/booth/internal/server/httpapi"
	"github.com/tamakara/booth/internal/server/repositories/repomanager"
	"github.com/tamakara/booth/internal/server/services"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *http.Server
}

// NewApp opens the database named by c.DatabaseDSN, migrates it and builds
// the HTTP server. Call Close when Run is not reached.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, m, err := repomanager.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := services.NewUserService(db, m, c)
	ms := services.NewMarketService(db, m)
	router := httpapi.NewRouter(httpapi.NewHandlers(us, ms, logger), us, c.AllowedOrigins, logger)

	srv := &http.Server{
		Addr:              c.EndpointAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info(ctx, "database ready", "dialect", m.Dialect())
	return &App{config: c, logger: logger, db: db, server: srv}, nil
}

func (app *App) Close() error {
	return app.db.Close()
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// serve runs the HTTP server on l until ctx is cancelled, then drains
// in-flight requests.
func (app *App) serve(ctx context.Context, l net.Listener) error {
	errCh := make(chan error, 1)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		app.logger.Info(ctx, "listening", "addr", l.Addr().String())
		if err := app.server.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var err error
	select {
	case <-ctx.Done():
	case err = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if serr := app.server.Shutdown(shutdownCtx); serr != nil {
		app.logger.Warn(ctx, "shutdown", "error", serr)
	}
	wg.Wait()
	return err
}

// Run serves until SIGINT/SIGTERM/SIGQUIT or a listener failure, then
// shuts down and closes the database.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	defer app.Close()

	l, err := net.Listen("tcp", app.config.EndpointAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", app.config.EndpointAddr, err)
	}
	if err := app.serve(ctx, l); err != nil {
		return err
	}
	app.logger.Info(ctx, "stopped")
	return nil
}
