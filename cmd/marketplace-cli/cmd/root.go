package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/nfrund/marketplace/internal/api"
	"github.com/nfrund/marketplace/internal/app"
	"github.com/nfrund/marketplace/internal/config"
	"github.com/nfrund/marketplace/internal/logging"
	"github.com/nfrund/marketplace/internal/session"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// environment holds the services the commands use.
type environment struct {
	client *api.Client
	tokens *session.File
}

// newEnvironment resolves the services from the application container.
func newEnvironment() (*environment, error) {
	cfg := config.NewForCLI()
	logger := logging.NewWithWriter(os.Stderr, cfg.GetLogFormat(), "warn")
	injector := app.New(cfg, logger, afero.NewOsFs())

	client, err := do.Invoke[*api.Client](injector)
	if err != nil {
		return nil, err
	}
	tokens, err := do.Invoke[*session.File](injector)
	if err != nil {
		return nil, err
	}
	return &environment{client: client, tokens: tokens}, nil
}

// newRootCmd builds the command tree. load is called once, before the first
// command that talks to the marketplace.
func newRootCmd(load func() (*environment, error)) *cobra.Command {
	var env *environment
	resolve := func() (*environment, error) {
		if env != nil {
			return env, nil
		}
		e, err := load()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize: %w", err)
		}
		env = e
		return env, nil
	}

	rootCmd := &cobra.Command{
		Use:   "marketplace-cli",
		Short: "Marketplace command-line client",
		Long: `marketplace-cli talks to the marketplace API from the terminal.

It shares configuration with the web storefront: API_URL selects the API,
API_TIMEOUT bounds each call and TOKEN_FILE is where "login" keeps the token.

Use "marketplace-cli [command] --help" for more information about a command.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(resolve),
		newSignupCmd(resolve),
		newProductsCmd(resolve),
	)
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd(newEnvironment).Execute(); err != nil {
		os.Exit(1)
	}
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
