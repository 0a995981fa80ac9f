package components

import (
	"pantryshare/internal/pkg/clock"
	"pantryshare/internal/usecase/commands"
	"pantryshare/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewInventoryCommands,
		commands.NewOfferCommands,
		commands.NewNotificationCommands,
		commands.NewHouseholdCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewInventoryQueries,
		queries.NewBoardQueries,
		queries.NewNotificationQueries,
		queries.NewProductQueries,
		queries.NewHouseholdQueries,
	),
)
