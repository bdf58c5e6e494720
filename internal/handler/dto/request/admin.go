package request

import "github.com/google/uuid"

type OfflineEnrollmentRequest struct {
	WorkshopID      uuid.UUID       `json:"workshop_id" binding:"required"`
	Customer        CustomerRequest `json:"customer" binding:"required"`
	PricingOptionID *uuid.UUID      `json:"pricing_option_id"`
	AmountCents     int64           `json:"amount_cents" binding:"min=0"`
	Currency        string          `json:"currency" binding:"required"`
	Notes           string          `json:"notes"`
}

type RefundRequest struct {
	// AmountCents absent means a full refund.
	AmountCents *int64 `json:"amount_cents" binding:"omitempty,min=1"`
}
