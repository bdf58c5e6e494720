package components

import (
	"workshop-enroll/internal/pkg/clock"
	"workshop-enroll/internal/pkg/config"
	"workshop-enroll/internal/usecase/commands"
	"workshop-enroll/internal/usecase/queries"
	"workshop-enroll/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewTokenService,
)

func NewTokenService(
	waitlistRepo commands.WaitlistRepository,
	uow shared.UnitOfWork,
	clock clock.Clock,
	cfg config.Config,
) *commands.TokenService {
	return commands.NewTokenService(waitlistRepo, uow, clock, cfg.Waitlist.ClaimTokenTTL)
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCartCommands,
		NewCheckoutCommands,
		NewWaitlistCommands,
		commands.NewWebhookCommands,
		commands.NewAdminCommands,
	),
)

func NewCheckoutCommands(
	cartRepo commands.CartRepository,
	workshopRepo commands.WorkshopRepository,
	enrollmentRepo commands.EnrollmentRepository,
	tokens *commands.TokenService,
	gatewayClient commands.PaymentGateway,
	uow shared.UnitOfWork,
	clock clock.Clock,
	cfg config.Config,
) commands.CheckoutCommands {
	return commands.NewCheckoutCommands(
		cartRepo, workshopRepo, enrollmentRepo, tokens, gatewayClient, uow, clock, cfg.Gateway,
	)
}

func NewWaitlistCommands(
	waitlistRepo commands.WaitlistRepository,
	workshopRepo commands.WorkshopRepository,
	notificationRepo commands.NotificationRepository,
	tokens *commands.TokenService,
	uow shared.UnitOfWork,
	clock clock.Clock,
	cfg config.Config,
) commands.WaitlistCommands {
	return commands.NewWaitlistCommands(
		waitlistRepo, workshopRepo, notificationRepo, tokens, uow, clock, cfg.Waitlist,
	)
}

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewWorkshopQueries,
		queries.NewCartQueries,
		queries.NewEnrollmentQueries,
	),
)
