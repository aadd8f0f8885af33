// Package server initializes and runs the userbook application server: it
// opens the database, wires the service layers, handles graceful shutdown,
// and starts the GraphQL HTTP endpoint.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/userbook/internal/logging"
	"github.com/dmitrijs2005/userbook/internal/server/auth"
	"github.com/dmitrijs2005/userbook/internal/server/config"
	"github.com/dmitrijs2005/userbook/internal/server/graphql"
	"github.com/dmitrijs2005/userbook/internal/server/passwords"
	usersrepo "github.com/dmitrijs2005/userbook/internal/server/repositories/users"
	"github.com/dmitrijs2005/userbook/internal/server/services"
	"github.com/dmitrijs2005/userbook/internal/server/shared/db"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *services.UserService
}

func NewApp(cfg *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	gormDB, err := db.Open(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	repo := usersrepo.NewGormRepository(gormDB)
	policy := passwords.NewPolicy(cfg.BcryptCost)
	tokens := auth.NewTokenService([]byte(cfg.SecretKey), cfg.SessionTokenValidity, cfg.RememberMeTokenValidity)
	gate := auth.NewGate(tokens)
	svc := services.NewUserService(repo, policy, tokens, gate, logger)

	return &App{config: cfg, logger: logger, userService: svc}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGraphQLServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := graphql.NewServer(app.config.EndpointAddr, app.logger, app.userService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGraphQLServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
