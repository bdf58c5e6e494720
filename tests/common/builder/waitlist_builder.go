//go:build unit || e2e

package builder

import (
	"time"

	domwaitlist "workshop-enroll/internal/domain/waitlist"

	"github.com/google/uuid"
)

type WaitlistBuilder struct {
	ID             uuid.UUID
	WorkshopID     uuid.UUID
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
	Status         domwaitlist.Status
	ClaimTokenHash *string
	TokenExpiresAt *time.Time
	CreatedAt      time.Time
}

func NewWaitlistBuilder() *WaitlistBuilder {
	return &WaitlistBuilder{
		ID:            uuid.New(),
		WorkshopID:    uuid.New(),
		CustomerName:  "Jamie Doe",
		CustomerEmail: "jamie@example.com",
		CustomerPhone: "+15550100",
		Status:        domwaitlist.StatusWaiting,
		CreatedAt:     time.Now(),
	}
}

func (b *WaitlistBuilder) With(mutate func(*WaitlistBuilder)) *WaitlistBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *WaitlistBuilder) BuildDomain() (*domwaitlist.Entry, error) {
	return domwaitlist.ReconstructEntry(
		b.ID, b.WorkshopID,
		b.CustomerName, b.CustomerEmail, b.CustomerPhone,
		b.Status, b.ClaimTokenHash, b.TokenExpiresAt, b.CreatedAt,
	)
}

// Fluent builder methods
func (b *WaitlistBuilder) WithWorkshopID(id uuid.UUID) *WaitlistBuilder {
	b.WorkshopID = id
	return b
}

func (b *WaitlistBuilder) WithCustomerEmail(email string) *WaitlistBuilder {
	b.CustomerEmail = email
	return b
}

func (b *WaitlistBuilder) WithStatus(status domwaitlist.Status) *WaitlistBuilder {
	b.Status = status
	return b
}

func (b *WaitlistBuilder) WithCreatedAt(createdAt time.Time) *WaitlistBuilder {
	b.CreatedAt = createdAt
	return b
}

// AsNotified binds a claim token hash the way a promotion does.
func (b *WaitlistBuilder) AsNotified(tokenHash string, expiresAt time.Time) *WaitlistBuilder {
	b.Status = domwaitlist.StatusNotified
	b.ClaimTokenHash = &tokenHash
	b.TokenExpiresAt = &expiresAt
	return b
}
