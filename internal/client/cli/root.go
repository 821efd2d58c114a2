package cli

import (
	"context"
	"io"

	"github.com/dmitrijs2005/zkpauth/internal/buildinfo"
	"github.com/dmitrijs2005/zkpauth/internal/client/config"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the zkpauth command tree. Each command loads the
// config from the persistent flags and builds an App with factory.
func NewRootCommand(factory ServiceFactory, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "zkpauth",
		Short:         "Password-less login with a Chaum-Pedersen proof",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	config.RegisterFlags(root.PersistentFlags())

	withApp := func(fn func(ctx context.Context, app *App, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			app, err := NewApp(ctx, cfg, factory, out)
			if err != nil {
				return err
			}
			defer app.Close(ctx)

			return fn(ctx, app, args)
		}
	}

	register := &cobra.Command{
		Use:   "register <user>",
		Short: "Create a secret, register it with the server and log in",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, app *App, args []string) error {
			return app.Register(ctx, args[0])
		}),
	}

	var secretHex string
	login := &cobra.Command{
		Use:   "login <user>",
		Short: "Prove knowledge of the secret and print a session token",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, app *App, args []string) error {
			return app.Login(ctx, args[0], secretHex)
		}),
	}
	login.Flags().StringVar(&secretHex, "secret", "", "secret as hex instead of the vault")

	forget := &cobra.Command{
		Use:   "forget <user>",
		Short: "Remove the sealed secret for user from the vault",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(ctx context.Context, app *App, args []string) error {
			return app.Forget(ctx, args[0])
		}),
	}

	users := &cobra.Command{
		Use:   "users",
		Short: "List users with a secret in the vault",
		Args:  cobra.NoArgs,
		RunE: withApp(func(ctx context.Context, app *App, _ []string) error {
			return app.Users(ctx)
		}),
	}

	version := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			buildinfo.PrintBuildData(cmd.OutOrStdout())
		},
	}

	root.AddCommand(register, login, forget, users, version)
	return root
}
