package components

import (
	"couponhub/internal/handler"
	"couponhub/internal/handler/api"
	"couponhub/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCouponHandler,
		api.NewAuthHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
