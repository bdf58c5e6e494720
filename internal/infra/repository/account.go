package repository

import (
	"context"

	"workshop-enroll/internal/domain/account"
	"workshop-enroll/internal/infra"
	"workshop-enroll/internal/infra/db"
	"workshop-enroll/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type AccountRepository struct{}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{}
}

const accountColumns = `id, email, name, password_hash, role, created_at`

func (r *AccountRepository) Create(ctx context.Context, dbtx db.DBTX, a *account.Account) error {
	_, err := dbtx.Exec(ctx, `
INSERT INTO accounts (id, email, name, password_hash, role)
VALUES ($1, $2, $3, $4, $5)`,
		a.ID(), a.Email().String(), a.Name(), pgconv.StringPtrToPgtype(a.PasswordHash()), string(a.Role()),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("account email already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create account", err)
	}
	return nil
}

func (r *AccountRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*account.Account, error) {
	row := dbtx.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
	return scanAccount(row)
}

func (r *AccountRepository) FindByEmail(ctx context.Context, dbtx db.DBTX, email string) (*account.Account, error) {
	row := dbtx.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE email = $1`, email)
	return scanAccount(row)
}

func scanAccount(row pgx.Row) (*account.Account, error) {
	var (
		id           uuid.UUID
		email, name  string
		passwordHash pgtype.Text
		role         string
		createdAt    pgtype.Timestamptz
	)
	if err := row.Scan(&id, &email, &name, &passwordHash, &role, &createdAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("account not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan account", err)
	}
	return account.ReconstructAccount(
		id, account.Email(email), name,
		pgconv.StringPtrFromPgtype(passwordHash),
		account.Role(role),
		pgconv.TimeFromPgtype(createdAt),
	), nil
}
