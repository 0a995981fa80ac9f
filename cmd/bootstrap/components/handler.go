package components

import (
	"pantryshare/internal/handler"
	"pantryshare/internal/handler/api"
	"pantryshare/internal/handler/middleware"
	"pantryshare/internal/pkg/identity"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewInventoryHandler,
		api.NewOfferHandler,
		api.NewNotificationHandler,
		api.NewHouseholdHandler,
		api.NewProductHandler,
		func(s *identity.Service) *middleware.AuthMiddleware {
			return middleware.NewAuthMiddleware(s)
		},
	),
	fx.Invoke(handler.NewRouter),
)
