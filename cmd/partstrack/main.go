package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"github.com/jmoiron/sqlx"
	"github.com/knagata/partstrack/internal/config"
	"github.com/knagata/partstrack/internal/entities"
	"github.com/knagata/partstrack/internal/server"
	"github.com/knagata/partstrack/internal/services/sessiontoken"
	"github.com/knagata/partstrack/internal/storage"
	"github.com/knagata/partstrack/internal/userstore"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	os.Exit(start())
}

func start() int {
	logger, err := zap.NewProduction()
	if err != nil {
		return 1
	}

	zap.ReplaceGlobals(logger)
	defer zap.L().Sync()

	config, err := config.NewConfig()
	if err != nil {
		zap.L().Info("error create config", zap.Error(err))
		return 1
	}

	db, err := sqlx.Connect("postgres", config.DatabaseURI)
	if err != nil {
		zap.L().Info("error failed to connect to db", zap.Error(err))
		return 1
	}

	defer db.Close()

	postgresStorage, err := storage.NewPostgresStorage(db)
	if err != nil {
		zap.L().Info("error failed to create postgres storage", zap.Error(err))
		return 1
	}

	users, err := seedUsers(config)
	if err != nil {
		zap.L().Info("error failed to seed users", zap.Error(err))
		return 1
	}

	tokens := sessiontoken.NewManager(config.SessionSecret)

	server := server.NewServer(config, postgresStorage, users, tokens)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		if err := server.Start(); err != nil {
			zap.L().Info("error starting server", zap.Error(err))
			return err
		}

		return nil
	})

	<-ctx.Done()

	eg.Go(func() error {
		if err := server.Stop(); err != nil {
			zap.L().Info("error stopping server", zap.Error(err))
			return err
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return 1
	}

	return 0
}

func seedUsers(config config.Config) (*userstore.InMemory, error) {
	users := userstore.NewInMemory()

	if err := users.Add(config.OrderUser, config.OrderPassword, entities.RoleOrder); err != nil {
		return nil, err
	}

	if err := users.Add(config.InspectUser, config.InspectPassword, entities.RoleInspect); err != nil {
		return nil, err
	}

	return users, nil
}
