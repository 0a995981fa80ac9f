package components

import (
	"pantryshare/internal/infra/db"
	"pantryshare/internal/infra/readstore"
	repo_impl "pantryshare/internal/infra/repository"
	"pantryshare/internal/usecase/commands"
	"pantryshare/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo_impl.NewReceiptRepository,
			fx.As(new(commands.ReceiptRepository)),
		),
		fx.Annotate(
			repo_impl.NewItemRepository,
			fx.As(new(commands.ItemRepository)),
		),
		fx.Annotate(
			repo_impl.NewOfferRepository,
			fx.As(new(commands.OfferRepository)),
		),
		fx.Annotate(
			repo_impl.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
		),
		fx.Annotate(
			repo_impl.NewHouseholdRepository,
			fx.As(new(commands.HouseholdRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewItemReadStore,
			fx.As(new(queries.ItemReadStore)),
		),
		fx.Annotate(
			readstore.NewOfferReadStore,
			fx.As(new(queries.OfferReadStore)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
		fx.Annotate(
			readstore.NewHouseholdReadStore,
			fx.As(new(queries.HouseholdReadStore)),
		),
		// The product store serves both the ingest-time catalog lookup and the
		// search query.
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(commands.ProductLookup)),
			fx.As(new(queries.ProductReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
