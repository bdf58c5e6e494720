package repository

import (
	"context"
	"time"

	"workshop-enroll/internal/domain/enrollment"
	"workshop-enroll/internal/infra"
	"workshop-enroll/internal/infra/db"
	"workshop-enroll/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// EnrollmentRepository owns all enrollment writes. Every status transition is
// a conditional UPDATE guarded by the expected current status; the caller
// learns through the boolean result whether its precondition still held.
type EnrollmentRepository struct{}

func NewEnrollmentRepository() *EnrollmentRepository {
	return &EnrollmentRepository{}
}

const enrollmentColumns = `
id, workshop_id, customer_name, customer_email, customer_phone,
pricing_option_id, amount_cents, currency,
gateway_session_id, gateway_payment_intent_id, gateway_customer_id,
status, account_id, refund_id, refund_amount_cents, refunded_at,
notes, created_at, updated_at`

func (r *EnrollmentRepository) Create(ctx context.Context, dbtx db.DBTX, e *enrollment.Enrollment) error {
	_, err := dbtx.Exec(ctx, `
INSERT INTO enrollments (
	id, workshop_id, customer_name, customer_email, customer_phone,
	pricing_option_id, amount_cents, currency,
	gateway_session_id, status, account_id, notes
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		e.ID(), e.WorkshopID(),
		e.Customer().Name(), e.Customer().Email(), e.Customer().Phone(),
		pgconv.UUIDPtrToPgtype(e.PricingOptionID()),
		e.AmountCents(), e.Currency(),
		pgconv.StringPtrToPgtype(e.GatewaySessionID()),
		e.Status().String(),
		pgconv.UUIDPtrToPgtype(e.AccountID()),
		e.Notes(),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("enrollment already exists for gateway session", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create enrollment", err)
	}
	return nil
}

func (r *EnrollmentRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*enrollment.Enrollment, error) {
	row := dbtx.QueryRow(ctx, `SELECT `+enrollmentColumns+` FROM enrollments WHERE id = $1`, id)
	return scanEnrollment(row)
}

// FindBySessionID returns every enrollment attached to one gateway checkout
// session. A multi-item cart checkout creates one enrollment per workshop
// under a shared session id.
func (r *EnrollmentRepository) FindBySessionID(ctx context.Context, dbtx db.DBTX, sessionID string) ([]*enrollment.Enrollment, error) {
	rows, err := dbtx.Query(ctx,
		`SELECT `+enrollmentColumns+` FROM enrollments WHERE gateway_session_id = $1 ORDER BY created_at, id`,
		sessionID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query enrollments by session", err)
	}
	defer rows.Close()

	var result []*enrollment.Enrollment
	for rows.Next() {
		e, err := scanEnrollment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read enrollments by session", err)
	}
	return result, nil
}

func (r *EnrollmentRepository) FindByPaymentIntentID(ctx context.Context, dbtx db.DBTX, paymentIntentID string) (*enrollment.Enrollment, error) {
	row := dbtx.QueryRow(ctx,
		`SELECT `+enrollmentColumns+` FROM enrollments WHERE gateway_payment_intent_id = $1`,
		paymentIntentID,
	)
	return scanEnrollment(row)
}

// CompletePending is the pending -> completed CAS. Returns false when the row
// is no longer pending, which the caller treats as a stale event.
func (r *EnrollmentRepository) CompletePending(
	ctx context.Context, dbtx db.DBTX,
	id uuid.UUID,
	paymentIntentID, gatewayCustomerID string,
	amountCents int64,
	now time.Time,
) (bool, error) {
	tag, err := dbtx.Exec(ctx, `
UPDATE enrollments
SET status = 'completed',
    gateway_payment_intent_id = $2,
    gateway_customer_id = NULLIF($3, ''),
    amount_cents = CASE WHEN $4 > 0 THEN $4 ELSE amount_cents END,
    updated_at = $5
WHERE id = $1 AND status = 'pending'`,
		id, paymentIntentID, gatewayCustomerID, amountCents, now,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to complete enrollment", err)
	}
	return tag.RowsAffected() == 1, nil
}

// MarkRefunded is the completed -> refunded CAS for full refunds.
func (r *EnrollmentRepository) MarkRefunded(
	ctx context.Context, dbtx db.DBTX,
	id uuid.UUID,
	refundID string, amountCents int64, now time.Time,
) (bool, error) {
	tag, err := dbtx.Exec(ctx, `
UPDATE enrollments
SET status = 'refunded', refund_id = $2, refund_amount_cents = $3, refunded_at = $4, updated_at = $4
WHERE id = $1 AND status = 'completed'`,
		id, refundID, amountCents, now,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark enrollment refunded", err)
	}
	return tag.RowsAffected() == 1, nil
}

// RecordPartialRefund annotates a completed enrollment without changing its
// status; no seat is freed.
func (r *EnrollmentRepository) RecordPartialRefund(
	ctx context.Context, dbtx db.DBTX,
	id uuid.UUID,
	refundID string, amountCents int64, now time.Time,
) (bool, error) {
	tag, err := dbtx.Exec(ctx, `
UPDATE enrollments
SET refund_id = $2, refund_amount_cents = $3, refunded_at = $4, updated_at = $4
WHERE id = $1 AND status = 'completed'`,
		id, refundID, amountCents, now,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to record partial refund", err)
	}
	return tag.RowsAffected() == 1, nil
}

// MarkFailed is the pending -> failed CAS.
func (r *EnrollmentRepository) MarkFailed(ctx context.Context, dbtx db.DBTX, id uuid.UUID, now time.Time) (bool, error) {
	tag, err := dbtx.Exec(ctx, `
UPDATE enrollments SET status = 'failed', updated_at = $2
WHERE id = $1 AND status = 'pending'`,
		id, now,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark enrollment failed", err)
	}
	return tag.RowsAffected() == 1, nil
}

// CancelByAdmin applies the administrator override; pending and completed
// rows may both be cancelled.
func (r *EnrollmentRepository) CancelByAdmin(ctx context.Context, dbtx db.DBTX, id uuid.UUID, now time.Time) (bool, error) {
	tag, err := dbtx.Exec(ctx, `
UPDATE enrollments SET status = 'cancelled', updated_at = $2
WHERE id = $1 AND status IN ('pending', 'completed')`,
		id, now,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to cancel enrollment", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *EnrollmentRepository) LinkAccount(ctx context.Context, dbtx db.DBTX, id, accountID uuid.UUID) error {
	_, err := dbtx.Exec(ctx,
		`UPDATE enrollments SET account_id = $2 WHERE id = $1 AND account_id IS NULL`,
		id, accountID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to link account to enrollment", err)
	}
	return nil
}

func scanEnrollment(row pgx.Row) (*enrollment.Enrollment, error) {
	var (
		id, workshopID                            uuid.UUID
		name, email, phone, currency, notes       string
		pricingOptionID, accountID                pgtype.UUID
		amountCents                               int64
		sessionID, paymentIntentID, customerID    pgtype.Text
		status                                    string
		refundID                                  pgtype.Text
		refundAmountCents                         pgtype.Int8
		refundedAt, createdAt, updatedAt          pgtype.Timestamptz
	)
	err := row.Scan(
		&id, &workshopID, &name, &email, &phone,
		&pricingOptionID, &amountCents, &currency,
		&sessionID, &paymentIntentID, &customerID,
		&status, &accountID, &refundID, &refundAmountCents, &refundedAt,
		&notes, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("enrollment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan enrollment", err)
	}

	var refund *enrollment.Refund
	if refundID.Valid {
		refund = &enrollment.Refund{
			ID:          refundID.String,
			AmountCents: refundAmountCents.Int64,
			RefundedAt:  pgconv.TimeFromPgtype(refundedAt),
		}
	}

	e, err := enrollment.ReconstructEnrollment(
		id, workshopID,
		enrollment.ReconstructCustomer(name, email, phone),
		pgconv.UUIDPtrFromPgtype(pricingOptionID),
		amountCents, currency,
		pgconv.StringPtrFromPgtype(sessionID),
		pgconv.StringPtrFromPgtype(paymentIntentID),
		pgconv.StringPtrFromPgtype(customerID),
		enrollment.Status(status),
		pgconv.UUIDPtrFromPgtype(accountID),
		refund, notes,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid enrollment row", err)
	}
	return e, nil
}
