package bootstrap

import (
	"pantryshare/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	IdentityModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
