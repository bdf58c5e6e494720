//go:build unit || e2e

package builder

import (
	"time"

	domcart "workshop-enroll/internal/domain/cart"
	"workshop-enroll/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartBuilder struct {
	Owner    domcart.Owner
	Lines    []domcart.Line
	Currency string
}

func NewCartBuilder() *CartBuilder {
	owner, _ := domcart.SessionOwner("sess_" + uuid.NewString()[:8])
	return &CartBuilder{
		Owner:    owner,
		Currency: "usd",
	}
}

func (b *CartBuilder) With(mutate func(*CartBuilder)) *CartBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *CartBuilder) BuildSnapshot() domcart.Snapshot {
	return domcart.NewSnapshot(b.Owner, b.Lines)
}

func (b *CartBuilder) BuildView() *queries.CartView {
	items := make([]queries.CartItemView, 0, len(b.Lines))
	var total int64
	for _, line := range b.Lines {
		items = append(items, queries.CartItemView{
			WorkshopID:      line.WorkshopID,
			WorkshopTitle:   "Intro to Pottery",
			PricingOptionID: line.PricingOptionID,
			UnitPriceCents:  line.UnitPriceCents,
			AddedAt:         line.AddedAt,
		})
		total += line.UnitPriceCents
	}
	return &queries.CartView{
		Items:      items,
		TotalCents: total,
		Currency:   b.Currency,
	}
}

// Fluent builder methods
func (b *CartBuilder) WithSessionOwner(key string) *CartBuilder {
	owner, _ := domcart.SessionOwner(key)
	b.Owner = owner
	return b
}

func (b *CartBuilder) WithAccountOwner(id uuid.UUID) *CartBuilder {
	owner, _ := domcart.AccountOwner(id)
	b.Owner = owner
	return b
}

func (b *CartBuilder) WithLine(workshopID uuid.UUID, unitPriceCents int64) *CartBuilder {
	b.Lines = append(b.Lines, domcart.Line{
		WorkshopID:     workshopID,
		UnitPriceCents: unitPriceCents,
		AddedAt:        time.Now(),
	})
	return b
}

func (b *CartBuilder) WithPricedLine(workshopID, pricingOptionID uuid.UUID, unitPriceCents int64) *CartBuilder {
	b.Lines = append(b.Lines, domcart.Line{
		WorkshopID:      workshopID,
		PricingOptionID: &pricingOptionID,
		UnitPriceCents:  unitPriceCents,
		AddedAt:         time.Now(),
	})
	return b
}
