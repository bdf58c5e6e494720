package enrollment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNegativeAmount        = errors.New("amount cannot be negative")
	ErrInvalidStatus         = errors.New("invalid enrollment status")
	ErrIllegalTransition     = errors.New("illegal status transition")
	ErrRefundExceedsAmount   = errors.New("refund amount exceeds amount paid")
	ErrMissingGatewaySession = errors.New("gateway session id is required for pending enrollments")
)

type Refund struct {
	ID          string
	AmountCents int64
	RefundedAt  time.Time
}

// Enrollment is never deleted; every removal is a status transition so the
// record stays available for audit and export.
type Enrollment struct {
	id                     uuid.UUID
	workshopID             uuid.UUID
	customer               Customer
	pricingOptionID        *uuid.UUID
	amountCents            int64
	currency               string
	gatewaySessionID       *string
	gatewayPaymentIntentID *string
	gatewayCustomerID      *string
	status                 Status
	accountID              *uuid.UUID
	refund                 *Refund
	notes                  string
	createdAt              time.Time
	updatedAt              time.Time
}

// NewPending starts the checkout-initiated lifecycle. The gateway session id
// is attached immediately so the completed webhook can correlate back.
func NewPending(
	workshopID uuid.UUID,
	customer Customer,
	pricingOptionID *uuid.UUID,
	amountCents int64,
	currency string,
	gatewaySessionID string,
) (*Enrollment, error) {
	if amountCents < 0 {
		return nil, ErrNegativeAmount
	}
	if gatewaySessionID == "" {
		return nil, ErrMissingGatewaySession
	}
	return &Enrollment{
		id:               uuid.New(),
		workshopID:       workshopID,
		customer:         customer,
		pricingOptionID:  pricingOptionID,
		amountCents:      amountCents,
		currency:         currency,
		gatewaySessionID: &gatewaySessionID,
		status:           StatusPending,
	}, nil
}

// NewManual records an offline payment taken by an administrator. It is born
// completed and never interacts with the gateway or the event ledger.
func NewManual(
	workshopID uuid.UUID,
	customer Customer,
	pricingOptionID *uuid.UUID,
	amountCents int64,
	currency string,
	notes string,
) (*Enrollment, error) {
	if amountCents < 0 {
		return nil, ErrNegativeAmount
	}
	return &Enrollment{
		id:              uuid.New(),
		workshopID:      workshopID,
		customer:        customer,
		pricingOptionID: pricingOptionID,
		amountCents:     amountCents,
		currency:        currency,
		status:          StatusCompleted,
		notes:           notes,
	}, nil
}

func ReconstructEnrollment(
	id, workshopID uuid.UUID,
	customer Customer,
	pricingOptionID *uuid.UUID,
	amountCents int64,
	currency string,
	gatewaySessionID, gatewayPaymentIntentID, gatewayCustomerID *string,
	status Status,
	accountID *uuid.UUID,
	refund *Refund,
	notes string,
	createdAt, updatedAt time.Time,
) (*Enrollment, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Enrollment{
		id:                     id,
		workshopID:             workshopID,
		customer:               customer,
		pricingOptionID:        pricingOptionID,
		amountCents:            amountCents,
		currency:               currency,
		gatewaySessionID:       gatewaySessionID,
		gatewayPaymentIntentID: gatewayPaymentIntentID,
		gatewayCustomerID:      gatewayCustomerID,
		status:                 status,
		accountID:              accountID,
		refund:                 refund,
		notes:                  notes,
		createdAt:              createdAt,
		updatedAt:              updatedAt,
	}, nil
}

func (e *Enrollment) ID() uuid.UUID                    { return e.id }
func (e *Enrollment) WorkshopID() uuid.UUID            { return e.workshopID }
func (e *Enrollment) Customer() Customer               { return e.customer }
func (e *Enrollment) PricingOptionID() *uuid.UUID      { return e.pricingOptionID }
func (e *Enrollment) AmountCents() int64               { return e.amountCents }
func (e *Enrollment) Currency() string                 { return e.currency }
func (e *Enrollment) GatewaySessionID() *string        { return e.gatewaySessionID }
func (e *Enrollment) GatewayPaymentIntentID() *string  { return e.gatewayPaymentIntentID }
func (e *Enrollment) GatewayCustomerID() *string       { return e.gatewayCustomerID }
func (e *Enrollment) Status() Status                   { return e.status }
func (e *Enrollment) AccountID() *uuid.UUID            { return e.accountID }
func (e *Enrollment) Refund() *Refund                  { return e.refund }
func (e *Enrollment) Notes() string                    { return e.notes }
func (e *Enrollment) CreatedAt() time.Time             { return e.createdAt }
func (e *Enrollment) UpdatedAt() time.Time             { return e.updatedAt }

func (e *Enrollment) IsPending() bool   { return e.status == StatusPending }
func (e *Enrollment) IsCompleted() bool { return e.status == StatusCompleted }

// Complete applies the checkout-completed transition, attaching the payment
// identifiers carried by the gateway event.
func (e *Enrollment) Complete(paymentIntentID, gatewayCustomerID string, amountCents int64, now time.Time) error {
	if !e.status.CanTransition(StatusCompleted) {
		return ErrIllegalTransition
	}
	e.status = StatusCompleted
	e.gatewayPaymentIntentID = &paymentIntentID
	if gatewayCustomerID != "" {
		e.gatewayCustomerID = &gatewayCustomerID
	}
	if amountCents > 0 {
		e.amountCents = amountCents
	}
	e.updatedAt = now
	return nil
}

// ApplyRefund records a refund. A full refund transitions the status; a
// partial refund annotates the record and leaves it completed.
func (e *Enrollment) ApplyRefund(refundID string, amountCents int64, now time.Time) error {
	if e.status != StatusCompleted {
		return ErrIllegalTransition
	}
	if amountCents > e.amountCents {
		return ErrRefundExceedsAmount
	}
	e.refund = &Refund{ID: refundID, AmountCents: amountCents, RefundedAt: now}
	if amountCents == e.amountCents {
		e.status = StatusRefunded
	}
	e.updatedAt = now
	return nil
}

// IsFullRefund reports whether a refund of the given amount would free a seat.
func (e *Enrollment) IsFullRefund(refundCents int64) bool {
	return refundCents >= e.amountCents
}

func (e *Enrollment) Fail(now time.Time) error {
	if !e.status.CanTransition(StatusFailed) {
		return ErrIllegalTransition
	}
	e.status = StatusFailed
	e.updatedAt = now
	return nil
}

// CancelByAdmin is the explicit administrator override.
func (e *Enrollment) CancelByAdmin(now time.Time) error {
	if !e.status.CanAdminTransition(StatusCancelled) {
		return ErrIllegalTransition
	}
	e.status = StatusCancelled
	e.updatedAt = now
	return nil
}

func (e *Enrollment) LinkAccount(accountID uuid.UUID) {
	e.accountID = &accountID
}
