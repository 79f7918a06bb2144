package api

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	db "github.com/Portalfi/Portalfi-Backend/db/sqlc"
	"github.com/Portalfi/Portalfi-Backend/services"
	"github.com/Portalfi/Portalfi-Backend/services/monitoring/logging"
	"github.com/Portalfi/Portalfi-Backend/services/notification"
	"github.com/Portalfi/Portalfi-Backend/utils"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

// Connect opens every configured backing service. The server still starts
// when the database or Redis is missing; only the features that need them
// are disabled. The returned func releases whatever was opened.
func Connect(config *utils.Config, logger *logging.Logger) (Dependencies, func(), error) {
	var deps Dependencies
	var closers []func() error

	if config.DatabaseConfigured() {
		conn, err := openDatabase(config)
		if err != nil {
			logger.WithError(err).Warn("Database unavailable, local accounts and DB logging are disabled")
		} else {
			if err := RunMigrations(config); err != nil {
				conn.Close()
				return deps, nil, err
			}
			deps.Store = db.NewStore(conn)
			closers = append(closers, conn.Close)
		}
	} else {
		logger.Info("No database configured, local accounts and DB logging are disabled")
	}

	if config.RedisConfigured() {
		redisService, err := services.NewRedisService(&services.RedisConfig{
			Host:     config.RedisHost,
			Port:     config.RedisPort,
			Password: config.RedisPassword,
		})
		if err != nil {
			logger.WithError(err).Warn("Redis unavailable, sessions are not tracked")
		} else {
			deps.Sessions = redisService
			closers = append(closers, redisService.Close)
		}
	}

	mailer, err := notification.NewMailer(config)
	if err != nil {
		logger.WithError(err).Warn("Email transport not configured")
		mailer = notification.DisabledMailer{Reason: err}
	}
	deps.Mailer = mailer

	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				logger.WithError(err).Warn("Error while closing dependency")
			}
		}
	}
	return deps, closeAll, nil
}

func openDatabase(config *utils.Config) (*sql.DB, error) {
	conn, err := sql.Open(config.DBDriver, utils.GetDBSource(config, config.DBName))
	if err != nil {
		return nil, fmt.Errorf("could not load DB: %w", err)
	}

	conn.SetMaxOpenConns(20)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("could not reach DB: %w", err)
	}
	return conn, nil
}

// RunMigrations brings the schema up to the latest version.
func RunMigrations(config *utils.Config) error {
	m, err := migrate.New(config.MigrationsPath, utils.GetDBSource(config, config.DBName))
	if err != nil {
		return fmt.Errorf("unable to instantiate the database schema migrator - %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("unable to migrate up to the latest database schema - %w", err)
	}
	return nil
}

// RollbackMigrations reverts the given number of migration steps.
func RollbackMigrations(config *utils.Config, steps int) error {
	m, err := migrate.New(config.MigrationsPath, utils.GetDBSource(config, config.DBName))
	if err != nil {
		return fmt.Errorf("unable to instantiate the database schema migrator - %w", err)
	}
	defer m.Close()

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("unable to roll back the database schema - %w", err)
	}
	return nil
}
