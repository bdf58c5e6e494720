package response

import (
	"workshop-enroll/internal/domain/cart"
	"workshop-enroll/internal/usecase/commands"

	"github.com/google/uuid"
)

type CartItemResponse struct {
	WorkshopID      uuid.UUID  `json:"workshop_id"`
	PricingOptionID *uuid.UUID `json:"pricing_option_id,omitempty"`
	UnitPriceCents  int64      `json:"unit_price_cents"`
}

type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	TotalCents int64              `json:"total_cents"`
}

func FromCartSnapshot(s cart.Snapshot) CartResponse {
	items := make([]CartItemResponse, 0, s.Size())
	for _, l := range s.Lines() {
		items = append(items, CartItemResponse{
			WorkshopID:      l.WorkshopID,
			PricingOptionID: l.PricingOptionID,
			UnitPriceCents:  l.UnitPriceCents,
		})
	}
	return CartResponse{
		Items:      items,
		TotalCents: s.TotalCents(),
	}
}

type ValidateCartResponse struct {
	Cart        CartResponse `json:"cart"`
	Invalidated []uuid.UUID  `json:"invalidated_workshop_ids"`
}

func FromValidateResult(r *commands.ValidateResult) ValidateCartResponse {
	invalidated := make([]uuid.UUID, 0, len(r.Invalidated))
	for _, l := range r.Invalidated {
		invalidated = append(invalidated, l.WorkshopID)
	}
	return ValidateCartResponse{
		Cart:        FromCartSnapshot(r.Cart),
		Invalidated: invalidated,
	}
}
