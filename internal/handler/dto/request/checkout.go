package request

import (
	"workshop-enroll/internal/domain/enrollment"

	"github.com/google/uuid"
)

type CustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
}

func (r CustomerRequest) ToDomain() (enrollment.Customer, error) {
	return enrollment.NewCustomer(r.Name, r.Email, r.Phone)
}

type CartCheckoutRequest struct {
	Customer CustomerRequest `json:"customer" binding:"required"`
}

type WorkshopCheckoutRequest struct {
	Customer        CustomerRequest `json:"customer" binding:"required"`
	PricingOptionID *uuid.UUID      `json:"pricing_option_id"`
	ClaimToken      string          `json:"claim_token"`
	ClaimEntryID    *uuid.UUID      `json:"claim_entry_id"`
}
