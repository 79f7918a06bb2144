package cmd

import (
	"fmt"
	"os"

	"github.com/Portalfi/Portalfi-Backend/services/monitoring/logging"
	"github.com/Portalfi/Portalfi-Backend/utils"
	"github.com/spf13/cobra"
)

var envPath string

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "portalfi",
		Short:         "Portalfi backend for the GnosisPay card platform",
		Version:       utils.REVISION,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&envPath, "env", utils.EnvPath, "directory holding the .env file")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(siweLoginCmd())
	return rootCmd
}

// Execute runs the CLI. Without a subcommand it serves the API.
func Execute() {
	rootCmd := newRootCmd()
	if len(os.Args) == 1 {
		rootCmd.SetArgs([]string{"serve"})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*utils.Config, *logging.Logger, error) {
	config, err := utils.LoadConfig(envPath)
	if err != nil {
		return nil, nil, fmt.Errorf("could not load config: %w", err)
	}

	logger := logging.NewLogger(logging.Options{
		Level:             config.LogLevel,
		Papertrail:        config.Papertrail,
		PapertrailAppName: config.PapertrailAppName,
		Pretty:            config.Env != "production",
	})
	return config, logger, nil
}
