package response

import (
	"workshop-enroll/internal/domain/waitlist"
	"workshop-enroll/internal/usecase/commands"

	"github.com/google/uuid"
)

type WaitlistEntryResponse struct {
	ID         uuid.UUID `json:"id"`
	WorkshopID uuid.UUID `json:"workshop_id"`
	Status     string    `json:"status"`
}

func FromWaitlistEntry(e *waitlist.Entry) WaitlistEntryResponse {
	return WaitlistEntryResponse{
		ID:         e.ID(),
		WorkshopID: e.WorkshopID(),
		Status:     string(e.Status()),
	}
}

type ClaimResponse struct {
	EntryID    uuid.UUID `json:"entry_id"`
	WorkshopID uuid.UUID `json:"workshop_id"`
	ExpiresAt  string    `json:"expires_at"`
}

func FromClaimView(v *commands.ClaimView) ClaimResponse {
	return ClaimResponse{
		EntryID:    v.EntryID,
		WorkshopID: v.WorkshopID,
		ExpiresAt:  v.ExpiresAt,
	}
}
