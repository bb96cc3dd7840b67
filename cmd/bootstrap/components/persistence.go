package components

import (
	"cinema-pos/internal/infra/db"
	"cinema-pos/internal/infra/readstore"
	"cinema-pos/internal/infra/repository"
	"cinema-pos/internal/infra/uow"
	"cinema-pos/internal/usecase/commands"
	"cinema-pos/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork
		uow.NewPostgresUoW,
		// Read stores serve the query side; the write side reaches them
		// through the UnitOfWork's transaction-bound views.
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderViewRepo)),
		),
		fx.Annotate(
			readstore.NewScheduleReadStore,
			fx.As(new(queries.ScheduleViewRepo)),
		),
		fx.Annotate(
			readstore.NewPricingReadStore,
			fx.As(new(queries.PricingViewRepo)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(commands.UserViewRepo)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserWriteRepo)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
