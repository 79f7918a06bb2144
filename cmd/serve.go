package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/Portalfi/Portalfi-Backend/api"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, logger, err := loadConfig()
			if err != nil {
				return err
			}
			logger.WithFields(logrus.Fields{"config": config.Redact()}).Debug("Configuration loaded")

			deps, closeDeps, err := api.Connect(config, logger)
			if err != nil {
				return err
			}
			defer closeDeps()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return api.NewServer(config, logger, deps).Start(ctx)
		},
	}
}
