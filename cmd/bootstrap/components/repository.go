package components

import (
	"fmt"

	"couponhub/internal/infra/db"
	"couponhub/internal/infra/memstore"
	"couponhub/internal/infra/mongostore"
	"couponhub/internal/infra/repository"
	"couponhub/internal/pkg/config"
	"couponhub/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewCouponRepository,
		NewAdminRepository,
	),
)

func NewCouponRepository(h *db.Handles) (usecase.CouponRepository, error) {
	switch h.Driver {
	case config.StoreDriverPostgres:
		return repository.NewCouponRepository(h.Pool), nil
	case config.StoreDriverMongo:
		return mongostore.NewCouponRepository(h.Mongo), nil
	case config.StoreDriverMemory:
		return memstore.NewCouponRepository(), nil
	default:
		return nil, fmt.Errorf("no coupon repository for driver %q", h.Driver)
	}
}

func NewAdminRepository(h *db.Handles) (usecase.AdminRepository, error) {
	switch h.Driver {
	case config.StoreDriverPostgres:
		return repository.NewAdminRepository(h.Pool), nil
	case config.StoreDriverMongo:
		return mongostore.NewAdminRepository(h.Mongo), nil
	case config.StoreDriverMemory:
		return memstore.NewAdminRepository(), nil
	default:
		return nil, fmt.Errorf("no admin repository for driver %q", h.Driver)
	}
}
