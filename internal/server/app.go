// Package server wires the KOACH server together: configuration, logging,
// the user store, the account and profile services and the HTTP transport.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/koach/internal/logging"
	"github.com/dmitrijs2005/koach/internal/server/auth"
	"github.com/dmitrijs2005/koach/internal/server/config"
	"github.com/dmitrijs2005/koach/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/koach/internal/server/rest"
	"github.com/dmitrijs2005/koach/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager
	rest   *rest.Server
}

// logOutput is where the JSON logs go; a seam for tests.
var logOutput io.Writer = os.Stdout

// NewApp connects the store, applies migrations and builds the HTTP server.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.NewJSONLogger(logOutput, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	tokens, err := auth.NewTokenService([]byte(c.SecretKey))
	if err != nil {
		return nil, fmt.Errorf("token service init error: %w", err)
	}

	repos, err := repomanager.New(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := repos.RunMigrations(ctx); err != nil {
		_ = repos.Close()
		return nil, err
	}

	store := "memory"
	if c.DatabaseDSN != "" {
		store = "postgres"
	}
	logger.Info(ctx, "user store ready", "store", store)

	accounts := services.NewAccountService(repos.Users(), auth.NewBcryptHasher(), tokens)
	profiles := services.NewProfileService(repos.Users())

	srv := rest.NewServer(rest.Options{
		Address:         c.Address,
		AllowedOrigins:  c.Origins(),
		ShutdownTimeout: c.ShutdownTimeout,
	}, logger, accounts, profiles, tokens)

	return &App{config: c, logger: logger, repos: repos, rest: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves HTTP until ctx is cancelled or a termination signal arrives,
// then closes the store.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	app.initSignalHandler(cancelFunc)

	err := app.rest.Run(ctx)
	if err != nil {
		app.logger.Error(ctx, "http server failed", "error", err)
	}

	if cerr := app.repos.Close(); cerr != nil {
		app.logger.Error(context.Background(), "closing store", "error", cerr)
	}
	app.logger.Info(context.Background(), "App stopped")
	return err
}
