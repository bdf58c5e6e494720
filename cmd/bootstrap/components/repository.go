package components

import (
	"workshop-enroll/internal/infra/db"
	"workshop-enroll/internal/infra/readstore"
	repo_impl "workshop-enroll/internal/infra/repository"
	"workshop-enroll/internal/infra/uow"
	"workshop-enroll/internal/usecase/commands"
	"workshop-enroll/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			repo_impl.NewWorkshopRepository,
			fx.As(new(commands.WorkshopRepository)),
		),
		fx.Annotate(
			repo_impl.NewEnrollmentRepository,
			fx.As(new(commands.EnrollmentRepository)),
		),
		fx.Annotate(
			repo_impl.NewWaitlistRepository,
			fx.As(new(commands.WaitlistRepository)),
		),
		fx.Annotate(
			repo_impl.NewCartRepository,
			fx.As(new(commands.CartRepository)),
		),
		fx.Annotate(
			repo_impl.NewProcessedEventRepository,
			fx.As(new(commands.ProcessedEventRepository)),
		),
		fx.Annotate(
			repo_impl.NewAccountRepository,
			fx.As(new(commands.AccountRepository)),
		),
		fx.Annotate(
			repo_impl.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewWorkshopReadStore,
			fx.As(new(queries.WorkshopViewRepo)),
		),
		fx.Annotate(
			readstore.NewCartReadStore,
			fx.As(new(queries.CartViewRepo)),
		),
		fx.Annotate(
			readstore.NewEnrollmentReadStore,
			fx.As(new(queries.EnrollmentViewRepo)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
