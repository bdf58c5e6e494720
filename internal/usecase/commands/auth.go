package commands

import (
	"context"
	"log/slog"

	"workshop-enroll/internal/domain/account"
	"workshop-enroll/internal/infra"
	"workshop-enroll/internal/infra/db"
	"workshop-enroll/internal/pkg/errs"
	"workshop-enroll/internal/pkg/jwt"
	"workshop-enroll/internal/pkg/password"
	"workshop-enroll/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrAccountNotFound    = errs.New("account not found")
)

type LoginResult struct {
	Token   string
	Account *account.Account
}

type AuthCommands interface {
	// Login authenticates and, when a guest cart session rides along, merges
	// it into the account cart.
	Login(ctx context.Context, email, rawPassword, cartSessionKey string) (*LoginResult, error)
	Me(ctx context.Context, accountID uuid.UUID) (*account.Account, error)
}

type authCommandsImpl struct {
	accountRepo AccountRepository
	carts       CartCommands
	jwtService  *jwt.Service
	uow         shared.UnitOfWork
	logger      *slog.Logger
}

func NewAuthCommands(
	accountRepo AccountRepository,
	carts CartCommands,
	jwtService *jwt.Service,
	uow shared.UnitOfWork,
	logger *slog.Logger,
) AuthCommands {
	return &authCommandsImpl{
		accountRepo: accountRepo,
		carts:       carts,
		jwtService:  jwtService,
		uow:         uow,
		logger:      logger,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, rawPassword, cartSessionKey string) (*LoginResult, error) {
	var acct *account.Account
	err := a.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		found, err := a.accountRepo.FindByEmail(ctx, dbtx, email)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrInvalidCredentials
			}
			return err
		}
		acct = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Implicit accounts have no password until claimed; they cannot log in.
	if !acct.CanLogin() {
		return nil, ErrInvalidCredentials
	}
	if err := password.ComparePassword(*acct.PasswordHash(), rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(acct.ID(), acct.Role())
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	// A merge failure must not block the login itself; the guest cart stays
	// behind its session cookie and merges on the next authenticated request.
	if cartSessionKey != "" {
		if err := a.carts.Merge(ctx, cartSessionKey, acct.ID()); err != nil {
			a.logger.WarnContext(ctx, "cart merge on login failed",
				slog.String("account_id", acct.ID().String()),
				slog.String("error", err.Error()))
		}
	}

	return &LoginResult{Token: token, Account: acct}, nil
}

func (a *authCommandsImpl) Me(ctx context.Context, accountID uuid.UUID) (*account.Account, error) {
	var acct *account.Account
	err := a.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		found, err := a.accountRepo.FindByID(ctx, dbtx, accountID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrAccountNotFound
			}
			return err
		}
		acct = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return acct, nil
}
