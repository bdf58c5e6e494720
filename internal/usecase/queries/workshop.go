package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type WorkshopView struct {
	ID              uuid.UUID           `json:"id"`
	Title           string              `json:"title"`
	Capacity        int32               `json:"capacity"`
	SpotsLeft       *int32              `json:"spots_left,omitempty"`
	WaitlistEnabled bool                `json:"waitlist_enabled"`
	Published       bool                `json:"published"`
	CheckoutEnabled bool                `json:"checkout_enabled"`
	BasePriceCents  int64               `json:"base_price_cents"`
	Currency        string              `json:"currency"`
	PricingOptions  []PricingOptionView `json:"pricing_options"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

type PricingOptionView struct {
	ID         uuid.UUID `json:"id"`
	Label      string    `json:"label"`
	PriceCents int64     `json:"price_cents"`
}

type WorkshopListItem struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Capacity        int32     `json:"capacity"`
	SpotsLeft       *int32    `json:"spots_left,omitempty"`
	WaitlistEnabled bool      `json:"waitlist_enabled"`
	BasePriceCents  int64     `json:"base_price_cents"`
	Currency        string    `json:"currency"`
}

type WorkshopQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*WorkshopView, error)
	ListPublished(ctx context.Context, limit int) ([]*WorkshopListItem, error)
}

type WorkshopViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*WorkshopView, error)
	FindPublished(ctx context.Context, limit int32) ([]*WorkshopListItem, error)
}

type workshopQueriesImpl struct {
	repo WorkshopViewRepo
}

func NewWorkshopQueries(repo WorkshopViewRepo) WorkshopQueries {
	return &workshopQueriesImpl{repo: repo}
}

func (q *workshopQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*WorkshopView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *workshopQueriesImpl) ListPublished(ctx context.Context, limit int) ([]*WorkshopListItem, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return q.repo.FindPublished(ctx, int32(limit))
}
