package components

import (
	"context"
	"fmt"
	"log/slog"

	"couponhub/internal/pkg/config"
	"couponhub/internal/usecase"

	"go.uber.org/fx"
)

var AdminSeedModule = fx.Module("admin/seed",
	fx.Provide(usecase.NewAdminUseCase),
	fx.Invoke(SeedAdmin),
)

// SeedAdmin provisions ADMIN_USERNAME on start when ADMIN_PASSWORD is set.
// The memory store has no other way to get an admin.
func SeedAdmin(lc fx.Lifecycle, cfg config.Config, uc usecase.AdminUseCase, logger *slog.Logger) {
	if cfg.Auth.AdminPassword == "" {
		if cfg.Store.Driver == config.StoreDriverMemory {
			logger.Warn("ADMIN_PASSWORD not set; admin login is unavailable on the memory store")
		}
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			saved, err := uc.Provision(ctx, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword)
			if err != nil {
				return fmt.Errorf("failed to seed admin %q: %w", cfg.Auth.AdminUsername, err)
			}
			logger.Info("admin account ready", "username", saved.Username, "driver", cfg.Store.Driver)
			return nil
		},
	})
}
