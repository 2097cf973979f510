package bootstrap

import (
	"context"

	"couponhub/internal/infra/db"
	"couponhub/internal/pkg/config"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewStorage,
	),
)

func NewStorage(lc fx.Lifecycle, cfg config.Config) (*db.Handles, error) {
	handles, cleanup, err := db.Open(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return handles, nil
}
