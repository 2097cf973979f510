package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"couponhub/internal/pkg/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	CouponsCollection  = "coupons"
	AdminsCollection   = "admins"
	CountersCollection = "counters"
)

const mongoMigrateTimeout = time.Minute

func ConnectMongo(cfg config.MongoConfig) (*mongo.Database, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	database := client.Database(cfg.Database)

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), mongoMigrateTimeout)
	defer cancelMigrate()
	if err := MigrateMongo(migrateCtx, database); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			slog.Error("failed to disconnect mongo client", "error", err)
			return
		}
		slog.Info("mongo client disconnected")
	}

	return database, cleanup, nil
}
