package components

import (
	"servicedesk/internal/infra/db"
	"servicedesk/internal/infra/readstore"
	"servicedesk/internal/infra/session"
	"servicedesk/internal/infra/uow"
	"servicedesk/internal/pkg/clock"
	"servicedesk/internal/pkg/config"
	"servicedesk/internal/usecase/commands"
	"servicedesk/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserViewRepo)),
		),
		fx.Annotate(
			readstore.NewOfferingReadStore,
			fx.As(new(queries.OfferingViewRepo)),
		),
		fx.Annotate(
			readstore.NewRequestReadStore,
			fx.As(new(queries.RequestViewRepo)),
		),
		fx.Annotate(
			readstore.NewIncidentReadStore,
			fx.As(new(queries.IncidentViewRepo)),
		),
		fx.Annotate(
			readstore.NewMessageReadStore,
			fx.As(new(queries.MessageViewRepo)),
		),
		fx.Annotate(
			NewCartStore,
			fx.As(new(commands.CartStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewCartStore(cfg config.Config, clk clock.Clock) *session.CartStore {
	return session.NewCartStore(cfg.Session.CartTTL, clk)
}
