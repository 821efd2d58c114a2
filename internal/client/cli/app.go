package cli

import (
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/zkpauth/internal/client/client"
	"github.com/dmitrijs2005/zkpauth/internal/client/config"
	"github.com/dmitrijs2005/zkpauth/internal/client/services"
	"github.com/dmitrijs2005/zkpauth/internal/filex"
	"github.com/dmitrijs2005/zkpauth/internal/logging"
	"github.com/dmitrijs2005/zkpauth/internal/zkp"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	authService services.AuthService
	out         io.Writer
}

// ServiceFactory builds the AuthService for a loaded config. Tests replace
// it to avoid a network and a vault on disk.
type ServiceFactory func(ctx context.Context, c *config.Config) (services.AuthService, error)

// DefaultServiceFactory opens the vault and dials the server.
func DefaultServiceFactory(ctx context.Context, c *config.Config) (services.AuthService, error) {
	path, err := filex.EnsureParentDir(c.VaultPath)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, path)
	if err != nil {
		return nil, err
	}

	apiClient, err := client.NewAuthClientService(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return services.NewAuthService(apiClient, db, zkp.RFC5114()), nil
}

func NewApp(ctx context.Context, c *config.Config, factory ServiceFactory, out io.Writer) (*App, error) {
	logger, err := logging.NewJSONLogger(os.Stderr, c.LogLevel)
	if err != nil {
		return nil, err
	}

	as, err := factory(ctx, c)
	if err != nil {
		return nil, err
	}

	return &App{config: c, logger: logger, authService: as, out: out}, nil
}

func (a *App) Close(ctx context.Context) error {
	return a.authService.Close(ctx)
}
