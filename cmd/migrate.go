package cmd

import (
	"errors"

	"github.com/Portalfi/Portalfi-Backend/api"
	"github.com/spf13/cobra"
)

var errNoDatabase = errors.New("database is not configured")

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, logger, err := loadConfig()
			if err != nil {
				return err
			}
			if !config.DatabaseConfigured() {
				return errNoDatabase
			}
			if err := api.RunMigrations(config); err != nil {
				return err
			}
			logger.Info("Database schema is up to date")
			return nil
		},
	})

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back applied migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, logger, err := loadConfig()
			if err != nil {
				return err
			}
			if !config.DatabaseConfigured() {
				return errNoDatabase
			}
			if err := api.RollbackMigrations(config, steps); err != nil {
				return err
			}
			logger.WithField("steps", steps).Info("Rolled back migrations")
			return nil
		},
	}
	down.Flags().IntVarP(&steps, "steps", "n", 1, "number of migrations to roll back")
	cmd.AddCommand(down)

	return cmd
}
