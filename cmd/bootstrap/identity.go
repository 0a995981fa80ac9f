package bootstrap

import (
	"pantryshare/internal/pkg/config"
	"pantryshare/internal/pkg/identity"

	"go.uber.org/fx"
)

var IdentityModule = fx.Module("identity",
	fx.Provide(
		NewIdentityService,
	),
)

func NewIdentityService(cfg config.Config) *identity.Service {
	return identity.NewService(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
}
