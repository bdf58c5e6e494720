package response

import (
	"workshop-enroll/internal/domain/enrollment"

	"github.com/google/uuid"
)

type EnrollmentResponse struct {
	ID          uuid.UUID `json:"id"`
	WorkshopID  uuid.UUID `json:"workshop_id"`
	Status      string    `json:"status"`
	AmountCents int64     `json:"amount_cents"`
	Currency    string    `json:"currency"`
}

func FromEnrollment(e *enrollment.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:          e.ID(),
		WorkshopID:  e.WorkshopID(),
		Status:      string(e.Status()),
		AmountCents: e.AmountCents(),
		Currency:    e.Currency(),
	}
}
