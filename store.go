package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/blogem/customer-logs/config"
	"github.com/blogem/customer-logs/database"
	"github.com/blogem/customer-logs/repositories"
)

const storeConnectTimeout = 15 * time.Second

// store bundles the repositories of the configured backend with its lifecycle hooks
type store struct {
	repos *repositories.Repositories
	ready func(context.Context) error
	close func(context.Context) error
}

// openStore connects to the backend selected by DATA_STORE
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*store, error) {
	switch cfg.DataStore {
	case config.StoreMongo:
		return openMongoStore(ctx, cfg, logger)
	case config.StoreSQLite:
		return openSQLiteStore(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unsupported data store %q", cfg.DataStore)
	}
}

func openMongoStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, storeConnectTimeout)
	defer cancel()

	mongoStore, err := database.OpenMongo(connectCtx, cfg.MongoURI, cfg.DatabaseName, database.MongoOptions{
		MaxPoolSize: cfg.MongoMaxPoolSize,
		MinPoolSize: cfg.MongoMinPoolSize,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("connected to mongo",
		"database", cfg.DatabaseName,
		"max_pool_size", cfg.MongoMaxPoolSize,
	)

	return &store{
		repos: repositories.NewMongoRepositories(mongoStore, cfg.QueryTimeout),
		ready: mongoStore.Ping,
		close: mongoStore.Close,
	}, nil
}

func openSQLiteStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*store, error) {
	if err := database.InitializeDatabase(cfg.SQLitePath); err != nil {
		return nil, err
	}
	db := database.GetDB()

	if cfg.SQLiteSeedFile != "" {
		fixture, err := database.LoadFixture(cfg.SQLiteSeedFile)
		if err != nil {
			database.CloseDB()
			return nil, err
		}
		if err := database.Seed(ctx, db, fixture); err != nil {
			database.CloseDB()
			return nil, err
		}
		logger.Info("seeded sqlite store",
			"file", cfg.SQLiteSeedFile,
			"customers", len(fixture.Customers),
			"customer_logs", len(fixture.CustomerLogs),
		)
	}

	logger.Info("opened sqlite store", "path", cfg.SQLitePath)

	return &store{
		repos: repositories.NewSQLiteRepositories(db, cfg.QueryTimeout),
		ready: database.SQLiteReadyCheck(db),
		close: func(context.Context) error { return database.CloseDB() },
	}, nil
}
