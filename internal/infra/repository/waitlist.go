package repository

import (
	"context"
	"time"

	"workshop-enroll/internal/domain/waitlist"
	"workshop-enroll/internal/infra"
	"workshop-enroll/internal/infra/db"
	"workshop-enroll/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type WaitlistRepository struct{}

func NewWaitlistRepository() *WaitlistRepository {
	return &WaitlistRepository{}
}

const waitlistColumns = `
id, workshop_id, customer_name, customer_email, customer_phone,
status, claim_token_hash, token_expires_at, created_at`

func (r *WaitlistRepository) Create(ctx context.Context, dbtx db.DBTX, e *waitlist.Entry) error {
	_, err := dbtx.Exec(ctx, `
INSERT INTO waitlist_entries (
	id, workshop_id, customer_name, customer_email, customer_phone, status, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID(), e.WorkshopID(), e.CustomerName(), e.CustomerEmail(), e.CustomerPhone(),
		e.Status().String(), e.CreatedAt(),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("customer already on waitlist", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create waitlist entry", err)
	}
	return nil
}

func (r *WaitlistRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*waitlist.Entry, error) {
	row := dbtx.QueryRow(ctx, `SELECT `+waitlistColumns+` FROM waitlist_entries WHERE id = $1`, id)
	return scanWaitlistEntry(row)
}

func (r *WaitlistRepository) FindByTokenHash(ctx context.Context, dbtx db.DBTX, tokenHash string) (*waitlist.Entry, error) {
	row := dbtx.QueryRow(ctx, `SELECT `+waitlistColumns+` FROM waitlist_entries WHERE claim_token_hash = $1`, tokenHash)
	return scanWaitlistEntry(row)
}

// LockOldestWaiting selects the FIFO head for a workshop (ties broken by id
// ascending) and row-locks it. SKIP LOCKED keeps two concurrent promotions
// from fighting over the same entry: each sees a different head or none.
func (r *WaitlistRepository) LockOldestWaiting(ctx context.Context, dbtx db.DBTX, workshopID uuid.UUID) (*waitlist.Entry, error) {
	row := dbtx.QueryRow(ctx, `
SELECT `+waitlistColumns+`
FROM waitlist_entries
WHERE workshop_id = $1 AND status = 'waiting'
ORDER BY created_at, id
LIMIT 1
FOR UPDATE SKIP LOCKED`,
		workshopID,
	)
	return scanWaitlistEntry(row)
}

// MarkNotified is the waiting -> notified CAS, binding the claim token hash
// and its expiry.
func (r *WaitlistRepository) MarkNotified(ctx context.Context, dbtx db.DBTX, id uuid.UUID, tokenHash string, expiresAt time.Time) (bool, error) {
	tag, err := dbtx.Exec(ctx, `
UPDATE waitlist_entries
SET status = 'notified', claim_token_hash = $2, token_expires_at = $3
WHERE id = $1 AND status = 'waiting'`,
		id, tokenHash, expiresAt,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark waitlist entry notified", err)
	}
	return tag.RowsAffected() == 1, nil
}

// MarkConverted is the notified -> converted CAS; it is what makes the claim
// token single-use.
func (r *WaitlistRepository) MarkConverted(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error) {
	tag, err := dbtx.Exec(ctx, `
UPDATE waitlist_entries SET status = 'converted'
WHERE id = $1 AND status = 'notified'`,
		id,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark waitlist entry converted", err)
	}
	return tag.RowsAffected() == 1, nil
}

// MarkExpired is the notified -> expired CAS.
func (r *WaitlistRepository) MarkExpired(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error) {
	tag, err := dbtx.Exec(ctx, `
UPDATE waitlist_entries SET status = 'expired'
WHERE id = $1 AND status = 'notified'`,
		id,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark waitlist entry expired", err)
	}
	return tag.RowsAffected() == 1, nil
}

// HasActiveEntry guards duplicate joins: one live place in line per customer
// per workshop.
func (r *WaitlistRepository) HasActiveEntry(ctx context.Context, dbtx db.DBTX, workshopID uuid.UUID, email string) (bool, error) {
	var exists bool
	err := dbtx.QueryRow(ctx, `
SELECT EXISTS (
	SELECT 1 FROM waitlist_entries
	WHERE workshop_id = $1 AND customer_email = $2 AND status IN ('waiting', 'notified')
)`,
		workshopID, email,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check active waitlist entry", err)
	}
	return exists, nil
}

func scanWaitlistEntry(row pgx.Row) (*waitlist.Entry, error) {
	var (
		id, workshopID      uuid.UUID
		name, email, phone  string
		status              string
		tokenHash           pgtype.Text
		tokenExpiresAt      pgtype.Timestamptz
		createdAt           time.Time
	)
	err := row.Scan(&id, &workshopID, &name, &email, &phone, &status, &tokenHash, &tokenExpiresAt, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("waitlist entry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan waitlist entry", err)
	}

	e, err := waitlist.ReconstructEntry(
		id, workshopID, name, email, phone,
		waitlist.Status(status),
		pgconv.StringPtrFromPgtype(tokenHash),
		pgconv.TimePtrFromPgtype(tokenExpiresAt),
		createdAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid waitlist row", err)
	}
	return e, nil
}
