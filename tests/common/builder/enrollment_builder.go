//go:build unit || e2e

package builder

import (
	"time"

	domenrollment "workshop-enroll/internal/domain/enrollment"
	"workshop-enroll/internal/usecase/queries"

	"github.com/google/uuid"
)

type EnrollmentBuilder struct {
	ID               uuid.UUID
	WorkshopID       uuid.UUID
	WorkshopTitle    string
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	PricingOptionID  *uuid.UUID
	AmountCents      int64
	Currency         string
	GatewaySessionID string
	PaymentIntentID  *string
	Status           domenrollment.Status
	AccountID        *uuid.UUID
	Refund           *domenrollment.Refund
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewEnrollmentBuilder() *EnrollmentBuilder {
	now := time.Now()
	return &EnrollmentBuilder{
		ID:               uuid.New(),
		WorkshopID:       uuid.New(),
		WorkshopTitle:    "Intro to Pottery",
		CustomerName:     "Jamie Doe",
		CustomerEmail:    "jamie@example.com",
		CustomerPhone:    "+15550100",
		AmountCents:      4500,
		Currency:         "usd",
		GatewaySessionID: "cs_test_" + uuid.NewString()[:8],
		Status:           domenrollment.StatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func (b *EnrollmentBuilder) With(mutate func(*EnrollmentBuilder)) *EnrollmentBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *EnrollmentBuilder) BuildPending() (*domenrollment.Enrollment, error) {
	customer, err := domenrollment.NewCustomer(b.CustomerName, b.CustomerEmail, b.CustomerPhone)
	if err != nil {
		return nil, err
	}
	return domenrollment.NewPending(
		b.WorkshopID, customer, b.PricingOptionID,
		b.AmountCents, b.Currency, b.GatewaySessionID,
	)
}

func (b *EnrollmentBuilder) BuildManual() (*domenrollment.Enrollment, error) {
	customer, err := domenrollment.NewCustomer(b.CustomerName, b.CustomerEmail, b.CustomerPhone)
	if err != nil {
		return nil, err
	}
	return domenrollment.NewManual(
		b.WorkshopID, customer, b.PricingOptionID,
		b.AmountCents, b.Currency, b.Notes,
	)
}

// BuildDomain reconstructs the enrollment with the builder's status, the way
// a repository read would.
func (b *EnrollmentBuilder) BuildDomain() (*domenrollment.Enrollment, error) {
	var sessionID *string
	if b.GatewaySessionID != "" {
		sessionID = &b.GatewaySessionID
	}
	return domenrollment.ReconstructEnrollment(
		b.ID, b.WorkshopID,
		domenrollment.ReconstructCustomer(b.CustomerName, b.CustomerEmail, b.CustomerPhone),
		b.PricingOptionID,
		b.AmountCents, b.Currency,
		sessionID, b.PaymentIntentID, nil,
		b.Status, b.AccountID, b.Refund, b.Notes,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *EnrollmentBuilder) BuildView() *queries.EnrollmentView {
	return &queries.EnrollmentView{
		ID:            b.ID,
		WorkshopID:    b.WorkshopID,
		WorkshopTitle: b.WorkshopTitle,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		Status:        b.Status.String(),
		AmountCents:   b.AmountCents,
		Currency:      b.Currency,
		AccountID:     b.AccountID,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *EnrollmentBuilder) BuildListItem() *queries.EnrollmentListItem {
	return &queries.EnrollmentListItem{
		ID:            b.ID,
		WorkshopID:    b.WorkshopID,
		WorkshopTitle: b.WorkshopTitle,
		Status:        b.Status.String(),
		AmountCents:   b.AmountCents,
		Currency:      b.Currency,
		CreatedAt:     b.CreatedAt,
	}
}

// Fluent builder methods
func (b *EnrollmentBuilder) WithWorkshopID(id uuid.UUID) *EnrollmentBuilder {
	b.WorkshopID = id
	return b
}

func (b *EnrollmentBuilder) WithCustomer(name, email, phone string) *EnrollmentBuilder {
	b.CustomerName = name
	b.CustomerEmail = email
	b.CustomerPhone = phone
	return b
}

func (b *EnrollmentBuilder) WithAmount(cents int64) *EnrollmentBuilder {
	b.AmountCents = cents
	return b
}

func (b *EnrollmentBuilder) WithSessionID(sessionID string) *EnrollmentBuilder {
	b.GatewaySessionID = sessionID
	return b
}

func (b *EnrollmentBuilder) WithPaymentIntentID(paymentIntentID string) *EnrollmentBuilder {
	b.PaymentIntentID = &paymentIntentID
	return b
}

func (b *EnrollmentBuilder) WithStatus(status domenrollment.Status) *EnrollmentBuilder {
	b.Status = status
	return b
}

func (b *EnrollmentBuilder) WithAccountID(id uuid.UUID) *EnrollmentBuilder {
	b.AccountID = &id
	return b
}

func (b *EnrollmentBuilder) AsCompleted() *EnrollmentBuilder {
	b.Status = domenrollment.StatusCompleted
	return b
}
