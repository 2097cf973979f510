package db

import (
	"context"
	"fmt"

	"couponhub/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
)

// Handles holds the open connection for the configured store driver.
// Only the field matching Driver is set; the memory driver sets neither.
type Handles struct {
	Driver string
	Pool   *pgxpool.Pool
	Mongo  *mongo.Database
}

// Open connects to the configured backend. Postgres schemas are migrated on open.
func Open(ctx context.Context, cfg config.Config) (*Handles, func(), error) {
	h := &Handles{Driver: cfg.Store.Driver}

	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		pool, cleanup, err := Connect(cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		if err := Migrate(ctx, pool); err != nil {
			cleanup()
			return nil, nil, err
		}
		h.Pool = pool
		return h, cleanup, nil
	case config.StoreDriverMongo:
		database, cleanup, err := ConnectMongo(cfg.Mongo)
		if err != nil {
			return nil, nil, err
		}
		h.Mongo = database
		return h, cleanup, nil
	case config.StoreDriverMemory:
		return h, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}
