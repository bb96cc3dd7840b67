package components

import (
	"cinema-pos/internal/handler"
	"cinema-pos/internal/handler/api"
	"cinema-pos/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewOrderHandler,
		api.NewCancellationHandler,
		api.NewPricingHandler,
		api.NewScheduleHandler,
		api.NewUserHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
