package readstore

import (
	"context"

	"workshop-enroll/internal/domain/workshop"
	"workshop-enroll/internal/infra"
	"workshop-enroll/internal/infra/db"
	"workshop-enroll/internal/pkg/pgconv"
	"workshop-enroll/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type WorkshopReadStore struct {
	db db.DBTX
}

func NewWorkshopReadStore(db db.DBTX) *WorkshopReadStore {
	return &WorkshopReadStore{db: db}
}

func (r *WorkshopReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.WorkshopView, error) {
	row := r.db.QueryRow(ctx, `
SELECT w.id, w.title, w.capacity, w.waitlist_enabled, w.published, w.checkout_enabled,
       w.base_price_cents, w.currency, w.created_at, w.updated_at,
       (SELECT COUNT(*) FROM enrollments e WHERE e.workshop_id = w.id AND e.status = 'completed') AS confirmed
FROM workshops w
WHERE w.id = $1`, id)

	var v queries.WorkshopView
	var createdAt, updatedAt pgtype.Timestamptz
	var confirmed int32
	err := row.Scan(
		&v.ID, &v.Title, &v.Capacity, &v.WaitlistEnabled, &v.Published, &v.CheckoutEnabled,
		&v.BasePriceCents, &v.Currency, &createdAt, &updatedAt, &confirmed,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("workshop not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find workshop view", err)
	}
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	v.SpotsLeft = spotsLeft(v.Capacity, confirmed)

	options, err := r.findPricingOptions(ctx, id)
	if err != nil {
		return nil, err
	}
	v.PricingOptions = options
	return &v, nil
}

func (r *WorkshopReadStore) findPricingOptions(ctx context.Context, workshopID uuid.UUID) ([]queries.PricingOptionView, error) {
	rows, err := r.db.Query(ctx, `
SELECT id, label, price_cents
FROM workshop_pricing_options
WHERE workshop_id = $1
ORDER BY price_cents, label`, workshopID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find pricing options", err)
	}
	defer rows.Close()

	options := make([]queries.PricingOptionView, 0)
	for rows.Next() {
		var o queries.PricingOptionView
		if err := rows.Scan(&o.ID, &o.Label, &o.PriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pricing option", err)
		}
		options = append(options, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pricing options", err)
	}
	return options, nil
}

func (r *WorkshopReadStore) FindPublished(ctx context.Context, limit int32) ([]*queries.WorkshopListItem, error) {
	rows, err := r.db.Query(ctx, `
SELECT w.id, w.title, w.capacity, w.waitlist_enabled, w.base_price_cents, w.currency,
       (SELECT COUNT(*) FROM enrollments e WHERE e.workshop_id = w.id AND e.status = 'completed') AS confirmed
FROM workshops w
WHERE w.published = true
ORDER BY w.created_at DESC, w.id
LIMIT $1`, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list published workshops", err)
	}
	defer rows.Close()

	result := make([]*queries.WorkshopListItem, 0)
	for rows.Next() {
		var item queries.WorkshopListItem
		var confirmed int32
		if err := rows.Scan(
			&item.ID, &item.Title, &item.Capacity, &item.WaitlistEnabled,
			&item.BasePriceCents, &item.Currency, &confirmed,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan workshop list item", err)
		}
		item.SpotsLeft = spotsLeft(item.Capacity, confirmed)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate workshops", err)
	}
	return result, nil
}

// spotsLeft is nil for unlimited-capacity workshops.
func spotsLeft(capacity, confirmed int32) *int32 {
	if capacity == workshop.UnlimitedCapacity {
		return nil
	}
	left := capacity - confirmed
	if left < 0 {
		left = 0
	}
	return &left
}
