package readstore

import (
	"context"
	"time"

	"workshop-enroll/internal/domain/cart"
	"workshop-enroll/internal/infra"
	"workshop-enroll/internal/infra/db"
	"workshop-enroll/internal/pkg/pgconv"
	"workshop-enroll/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type CartReadStore struct {
	db db.DBTX
}

func NewCartReadStore(db db.DBTX) *CartReadStore {
	return &CartReadStore{db: db}
}

// FindByOwner returns an empty view rather than NotFound when the owner has
// no cart yet: to the caller a missing cart and an empty cart are the same.
func (r *CartReadStore) FindByOwner(ctx context.Context, owner cart.Owner) (*queries.CartView, error) {
	var ownerClause string
	var ownerArg any
	if owner.IsSession() {
		ownerClause = "c.session_key = $1"
		ownerArg = owner.SessionKey()
	} else {
		ownerClause = "c.account_id = $1"
		ownerArg = owner.AccountID()
	}

	rows, err := r.db.Query(ctx, `
SELECT ci.workshop_id, w.title, ci.pricing_option_id, po.label,
       ci.unit_price_cents, w.currency, ci.added_at, c.updated_at
FROM carts c
JOIN cart_items ci ON ci.cart_id = c.id
JOIN workshops w ON w.id = ci.workshop_id
LEFT JOIN workshop_pricing_options po ON po.id = ci.pricing_option_id
WHERE `+ownerClause+`
ORDER BY ci.added_at, ci.workshop_id`, ownerArg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find cart view", err)
	}
	defer rows.Close()

	view := &queries.CartView{Items: make([]queries.CartItemView, 0)}
	var lastUpdated time.Time
	for rows.Next() {
		var item queries.CartItemView
		var pricingOptionID pgtype.UUID
		var pricingLabel pgtype.Text
		var addedAt, updatedAt pgtype.Timestamptz
		var currency string
		if err := rows.Scan(
			&item.WorkshopID, &item.WorkshopTitle, &pricingOptionID, &pricingLabel,
			&item.UnitPriceCents, &currency, &addedAt, &updatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart item view", err)
		}
		item.PricingOptionID = pgconv.UUIDPtrFromPgtype(pricingOptionID)
		item.PricingLabel = pgconv.StringPtrFromPgtype(pricingLabel)
		item.AddedAt = pgconv.TimeFromPgtype(addedAt)

		view.Items = append(view.Items, item)
		view.TotalCents += item.UnitPriceCents
		view.Currency = currency
		lastUpdated = pgconv.TimeFromPgtype(updatedAt)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cart items", err)
	}
	if len(view.Items) > 0 {
		view.LastUpdated = &lastUpdated
	}
	return view, nil
}
