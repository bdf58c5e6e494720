package readstore

import (
	"context"

	"workshop-enroll/internal/infra"
	"workshop-enroll/internal/infra/db"
	"workshop-enroll/internal/pkg/pgconv"
	"workshop-enroll/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type EnrollmentReadStore struct {
	db db.DBTX
}

func NewEnrollmentReadStore(db db.DBTX) *EnrollmentReadStore {
	return &EnrollmentReadStore{db: db}
}

func (r *EnrollmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EnrollmentView, error) {
	row := r.db.QueryRow(ctx, `
SELECT e.id, e.workshop_id, w.title, e.customer_name, e.customer_email, e.status,
       e.amount_cents, e.currency, e.gateway_session_id,
       e.refund_id, e.refund_amount_cents, e.account_id, e.notes,
       e.created_at, e.updated_at
FROM enrollments e
JOIN workshops w ON w.id = e.workshop_id
WHERE e.id = $1`, id)

	var v queries.EnrollmentView
	var sessionID, refundID, notes pgtype.Text
	var refundedCents pgtype.Int8
	var accountID pgtype.UUID
	var createdAt, updatedAt pgtype.Timestamptz
	err := row.Scan(
		&v.ID, &v.WorkshopID, &v.WorkshopTitle, &v.CustomerName, &v.CustomerEmail, &v.Status,
		&v.AmountCents, &v.Currency, &sessionID,
		&refundID, &refundedCents, &accountID, &notes,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("enrollment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find enrollment view", err)
	}
	v.GatewaySessionID = pgconv.StringPtrFromPgtype(sessionID)
	v.RefundID = pgconv.StringPtrFromPgtype(refundID)
	v.RefundedCents = pgconv.Int64PtrFromPgtype(refundedCents)
	v.AccountID = pgconv.UUIDPtrFromPgtype(accountID)
	v.Notes = pgconv.StringPtrFromPgtype(notes)
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &v, nil
}

func (r *EnrollmentReadStore) FindByAccountID(ctx context.Context, accountID uuid.UUID, limit int32) ([]*queries.EnrollmentListItem, error) {
	return r.findList(ctx, "e.account_id = $1", accountID, limit)
}

func (r *EnrollmentReadStore) FindByWorkshopID(ctx context.Context, workshopID uuid.UUID, limit int32) ([]*queries.EnrollmentListItem, error) {
	return r.findList(ctx, "e.workshop_id = $1", workshopID, limit)
}

func (r *EnrollmentReadStore) findList(ctx context.Context, where string, arg any, limit int32) ([]*queries.EnrollmentListItem, error) {
	rows, err := r.db.Query(ctx, `
SELECT e.id, e.workshop_id, w.title, e.status, e.amount_cents, e.currency, e.created_at
FROM enrollments e
JOIN workshops w ON w.id = e.workshop_id
WHERE `+where+`
ORDER BY e.created_at DESC, e.id
LIMIT $2`, arg, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list enrollments", err)
	}
	defer rows.Close()

	result := make([]*queries.EnrollmentListItem, 0)
	for rows.Next() {
		var item queries.EnrollmentListItem
		var createdAt pgtype.Timestamptz
		if err := rows.Scan(
			&item.ID, &item.WorkshopID, &item.WorkshopTitle, &item.Status,
			&item.AmountCents, &item.Currency, &createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan enrollment list item", err)
		}
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate enrollments", err)
	}
	return result, nil
}
