// Package server initializes and runs the application server: it opens the
// database, runs migrations, wires the services and starts the HTTP
// transport, shutting everything down on SIGINT/SIGTERM.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/memorizer/internal/logging"
	"github.com/dmitrijs2005/memorizer/internal/server/config"
	"github.com/dmitrijs2005/memorizer/internal/server/db"
	"github.com/dmitrijs2005/memorizer/internal/server/httpapi"
	"github.com/dmitrijs2005/memorizer/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/memorizer/internal/server/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *services.UserService
	textService *services.TextService
	avatars     *services.AvatarService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	conn, dialect, err := db.Open(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewSQLRepositoryManager(dialect)
	if err := rm.RunMigrations(ctx, conn); err != nil {
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	us := services.NewUserService(conn, rm, c)
	ts := services.NewTextService(conn, rm)
	as := services.NewAvatarService(c)

	return &App{config: c, logger: logger, userService: us, textService: ts, avatars: as}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.EndpointAddr, app.logger,
		app.userService, app.textService, app.avatars, app.config.SecretKey)

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
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
