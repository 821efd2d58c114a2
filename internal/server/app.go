// Package server wires the authentication server together: logger, stores,
// protocol service and gRPC transport, plus the expired-challenge sweeper.
package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/zkpauth/internal/logging"
	"github.com/dmitrijs2005/zkpauth/internal/server/config"
	"github.com/dmitrijs2005/zkpauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/zkpauth/internal/server/services"
	"github.com/dmitrijs2005/zkpauth/internal/zkp"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/zkpauth/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repomanager repomanager.RepositoryManager
	authService *services.AuthService
}

func NewApp(c *config.Config) (*App, error) {
	logger, err := logging.NewJSONLogger(os.Stdout, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	params := zkp.RFC5114()
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("group parameters: %w", err)
	}

	rm := repomanager.NewMemoryRepositoryManager(c.ChallengeTTL)
	as := services.NewAuthService(params, rm, c)

	return &App{config: c, logger: logger, repomanager: rm, authService: as}, nil
}

// initSignalHandler cancels on SIGINT, SIGTERM or SIGQUIT. The handler is
// released once ctx is done; the returned channel closes at that point.
func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) <-chan struct{} {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer signal.Stop(sigs)

		select {
		case <-sigs:
			app.logger.Info(ctx, "Shutdown signal received")
			cancelFunc()
		case <-ctx.Done():
		}
	}()

	return done
}

// runSweeper purges expired challenges every interval until ctx is done.
func (app *App) runSweeper(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case t := <-ticker.C:
			n, err := app.repomanager.Sessions().Sweep(ctx, t)
			if err != nil {
				app.logger.Error(ctx, "Sweep failed", "error", err.Error())
				continue
			}
			if n > 0 {
				app.logger.Debug(ctx, "Expired challenges removed", "count", n)
			}
		}
	}
}

// Run starts the gRPC server and the sweeper and blocks until a signal
// arrives, ctx is cancelled, or either of them fails.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	sigDone := app.initSignalHandler(ctx, cancelFunc)
	defer func() {
		cancelFunc()
		<-sigDone
	}()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.authService)
		return s.Run(ctx)
	})

	g.Go(func() error {
		return app.runSweeper(ctx, app.config.SweepInterval)
	})

	err := g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		app.logger.Error(ctx, err.Error())
		return err
	}

	app.logger.Info(context.Background(), "App stopped")
	return nil
}
