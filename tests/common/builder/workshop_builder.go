//go:build unit || e2e

package builder

import (
	"time"

	domworkshop "workshop-enroll/internal/domain/workshop"
	"workshop-enroll/internal/usecase/queries"

	"github.com/google/uuid"
)

type WorkshopBuilder struct {
	ID              uuid.UUID
	Title           string
	Capacity        int
	WaitlistEnabled bool
	Published       bool
	CheckoutEnabled bool
	BasePriceCents  int64
	Currency        string
	PricingOptions  []domworkshop.PricingOption
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewWorkshopBuilder() *WorkshopBuilder {
	now := time.Now()
	return &WorkshopBuilder{
		ID:              uuid.New(),
		Title:           "Intro to Pottery",
		Capacity:        10,
		WaitlistEnabled: true,
		Published:       true,
		CheckoutEnabled: true,
		BasePriceCents:  4500,
		Currency:        "usd",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *WorkshopBuilder) With(mutate func(*WorkshopBuilder)) *WorkshopBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *WorkshopBuilder) BuildDomain() (*domworkshop.Workshop, error) {
	return domworkshop.ReconstructWorkshop(
		b.ID, b.Title, b.Capacity,
		b.WaitlistEnabled, b.Published, b.CheckoutEnabled,
		b.BasePriceCents, b.Currency, b.PricingOptions,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *WorkshopBuilder) BuildView() *queries.WorkshopView {
	options := make([]queries.PricingOptionView, 0, len(b.PricingOptions))
	for _, opt := range b.PricingOptions {
		options = append(options, queries.PricingOptionView{
			ID:         opt.ID,
			Label:      opt.Label,
			PriceCents: opt.PriceCents,
		})
	}
	return &queries.WorkshopView{
		ID:              b.ID,
		Title:           b.Title,
		Capacity:        int32(b.Capacity),
		WaitlistEnabled: b.WaitlistEnabled,
		Published:       b.Published,
		CheckoutEnabled: b.CheckoutEnabled,
		BasePriceCents:  b.BasePriceCents,
		Currency:        b.Currency,
		PricingOptions:  options,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *WorkshopBuilder) BuildListItem() *queries.WorkshopListItem {
	return &queries.WorkshopListItem{
		ID:              b.ID,
		Title:           b.Title,
		Capacity:        int32(b.Capacity),
		WaitlistEnabled: b.WaitlistEnabled,
		BasePriceCents:  b.BasePriceCents,
		Currency:        b.Currency,
	}
}

// Fluent builder methods
func (b *WorkshopBuilder) WithID(id uuid.UUID) *WorkshopBuilder {
	b.ID = id
	return b
}

func (b *WorkshopBuilder) WithTitle(title string) *WorkshopBuilder {
	b.Title = title
	return b
}

func (b *WorkshopBuilder) WithCapacity(capacity int) *WorkshopBuilder {
	b.Capacity = capacity
	return b
}

func (b *WorkshopBuilder) WithWaitlistEnabled(enabled bool) *WorkshopBuilder {
	b.WaitlistEnabled = enabled
	return b
}

func (b *WorkshopBuilder) WithPublished(published bool) *WorkshopBuilder {
	b.Published = published
	return b
}

func (b *WorkshopBuilder) WithCheckoutEnabled(enabled bool) *WorkshopBuilder {
	b.CheckoutEnabled = enabled
	return b
}

func (b *WorkshopBuilder) WithBasePrice(cents int64) *WorkshopBuilder {
	b.BasePriceCents = cents
	return b
}

func (b *WorkshopBuilder) WithPricingOption(label string, cents int64, isDefault bool) *WorkshopBuilder {
	b.PricingOptions = append(b.PricingOptions, domworkshop.PricingOption{
		ID:         uuid.New(),
		Label:      label,
		PriceCents: cents,
		IsDefault:  isDefault,
	})
	return b
}

func (b *WorkshopBuilder) AsUnlimited() *WorkshopBuilder {
	b.Capacity = domworkshop.UnlimitedCapacity
	return b
}

func (b *WorkshopBuilder) AsUnpublished() *WorkshopBuilder {
	b.Published = false
	return b
}
