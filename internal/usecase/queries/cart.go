package queries

import (
	"context"
	"time"

	"workshop-enroll/internal/domain/cart"

	"github.com/google/uuid"
)

type CartView struct {
	Items       []CartItemView `json:"items"`
	TotalCents  int64          `json:"total_cents"`
	Currency    string         `json:"currency"`
	LastUpdated *time.Time     `json:"last_updated,omitempty"`
}

type CartItemView struct {
	WorkshopID      uuid.UUID  `json:"workshop_id"`
	WorkshopTitle   string     `json:"workshop_title"`
	PricingOptionID *uuid.UUID `json:"pricing_option_id,omitempty"`
	PricingLabel    *string    `json:"pricing_label,omitempty"`
	UnitPriceCents  int64      `json:"unit_price_cents"`
	AddedAt         time.Time  `json:"added_at"`
}

type CartQueries interface {
	GetByOwner(ctx context.Context, owner cart.Owner) (*CartView, error)
}

type CartViewRepo interface {
	FindByOwner(ctx context.Context, owner cart.Owner) (*CartView, error)
}

type cartQueriesImpl struct {
	repo CartViewRepo
}

func NewCartQueries(repo CartViewRepo) CartQueries {
	return &cartQueriesImpl{repo: repo}
}

func (q *cartQueriesImpl) GetByOwner(ctx context.Context, owner cart.Owner) (*CartView, error) {
	return q.repo.FindByOwner(ctx, owner)
}
