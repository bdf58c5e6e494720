package repository

import (
	"context"

	"workshop-enroll/internal/domain/workshop"
	"workshop-enroll/internal/infra"
	"workshop-enroll/internal/infra/db"
	"workshop-enroll/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// WorkshopRepository is read-only to the enrollment pipeline; administrators
// manage workshop records elsewhere.
type WorkshopRepository struct{}

func NewWorkshopRepository() *WorkshopRepository {
	return &WorkshopRepository{}
}

const workshopSelect = `
SELECT id, title, capacity, waitlist_enabled, published, checkout_enabled,
       base_price_cents, currency, created_at, updated_at
FROM workshops
WHERE id = $1`

const workshopPricingSelect = `
SELECT id, label, price_cents, is_default
FROM workshop_pricing_options
WHERE workshop_id = $1
ORDER BY is_default DESC, label`

func (r *WorkshopRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*workshop.Workshop, error) {
	var (
		wid                                         uuid.UUID
		title, currency                             string
		capacity                                    int
		waitlistEnabled, published, checkoutEnabled bool
		basePriceCents                              int64
		createdAt, updatedAt                        pgtype.Timestamptz
	)
	err := dbtx.QueryRow(ctx, workshopSelect, id).Scan(
		&wid, &title, &capacity, &waitlistEnabled, &published, &checkoutEnabled,
		&basePriceCents, &currency, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("workshop not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get workshop", err)
	}

	rows, err := dbtx.Query(ctx, workshopPricingSelect, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get workshop pricing options", err)
	}
	defer rows.Close()

	var options []workshop.PricingOption
	for rows.Next() {
		var opt workshop.PricingOption
		if err := rows.Scan(&opt.ID, &opt.Label, &opt.PriceCents, &opt.IsDefault); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pricing option", err)
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read pricing options", err)
	}

	entity, err := workshop.ReconstructWorkshop(
		wid, title, capacity, waitlistEnabled, published, checkoutEnabled,
		basePriceCents, currency, options,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid workshop row", err)
	}
	return entity, nil
}

// CountCompleted derives the confirmed-enrollment count at read time. Callers
// that gate a transition on capacity must run this inside the same
// transaction as the transition.
func (r *WorkshopRepository) CountCompleted(ctx context.Context, dbtx db.DBTX, workshopID uuid.UUID) (int, error) {
	var count int
	err := dbtx.QueryRow(ctx,
		`SELECT COUNT(*) FROM enrollments WHERE workshop_id = $1 AND status = 'completed'`,
		workshopID,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count completed enrollments", err)
	}
	return count, nil
}
