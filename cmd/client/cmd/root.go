package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	artcmd "artregistry/cmd/client/cmd/art"
	authcmd "artregistry/cmd/client/cmd/auth"
	"artregistry/internal/app/client"
	"artregistry/internal/app/client/config"
	"artregistry/internal/utils/logger"
)

var (
	cfg       *config.Config
	log       *slog.Logger
	app       *client.App
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "artreg",
	Short: "artreg - client for the art registry",
	Long: `artreg is the command-line client for the art registry service.

Register an identity, log in, then create, inspect, update, transfer and
delete art pieces you own. Fetched pieces are cached locally.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(c *cobra.Command, _ []string) error {
	cfg = config.MustLoad()

	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}

	log = logger.New(cfg.Env)

	var err error
	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}

	c.SetContext(client.IntoContext(c.Context(), app))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "art registry server address")

	rootCmd.AddCommand(authcmd.RegisterCmd)
	rootCmd.AddCommand(authcmd.LoginCmd)
	rootCmd.AddCommand(artcmd.Cmd)
}
