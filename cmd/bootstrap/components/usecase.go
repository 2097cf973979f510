package components

import (
	"couponhub/internal/pkg/clock"
	"couponhub/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseServicesModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseServicesModule = fx.Module("usecase/services",
	fx.Provide(
		usecase.NewCouponUseCase,
		usecase.NewAuthUseCase,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
