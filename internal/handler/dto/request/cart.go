package request

import "github.com/google/uuid"

type AddCartItemRequest struct {
	WorkshopID      uuid.UUID  `json:"workshop_id" binding:"required"`
	PricingOptionID *uuid.UUID `json:"pricing_option_id"`
}
