package waitlist

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid waitlist status")
	ErrIllegalTransition = errors.New("illegal waitlist transition")
	ErrTokenExpired      = errors.New("claim token expired")
	ErrNoActiveToken     = errors.New("entry has no active claim token")
)

// Entry is a customer's place in line for a full workshop. Entries are never
// deleted; cancellation and expiry are status transitions.
type Entry struct {
	id             uuid.UUID
	workshopID     uuid.UUID
	customerName   string
	customerEmail  string
	customerPhone  string
	status         Status
	claimTokenHash *string
	tokenExpiresAt *time.Time
	createdAt      time.Time
}

func NewEntry(workshopID uuid.UUID, customerName, customerEmail, customerPhone string, now time.Time) *Entry {
	return &Entry{
		id:            uuid.New(),
		workshopID:    workshopID,
		customerName:  customerName,
		customerEmail: customerEmail,
		customerPhone: customerPhone,
		status:        StatusWaiting,
		createdAt:     now,
	}
}

func ReconstructEntry(
	id, workshopID uuid.UUID,
	customerName, customerEmail, customerPhone string,
	status Status,
	claimTokenHash *string,
	tokenExpiresAt *time.Time,
	createdAt time.Time,
) (*Entry, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Entry{
		id:             id,
		workshopID:     workshopID,
		customerName:   customerName,
		customerEmail:  customerEmail,
		customerPhone:  customerPhone,
		status:         status,
		claimTokenHash: claimTokenHash,
		tokenExpiresAt: tokenExpiresAt,
		createdAt:      createdAt,
	}, nil
}

func (e *Entry) ID() uuid.UUID             { return e.id }
func (e *Entry) WorkshopID() uuid.UUID     { return e.workshopID }
func (e *Entry) CustomerName() string      { return e.customerName }
func (e *Entry) CustomerEmail() string     { return e.customerEmail }
func (e *Entry) CustomerPhone() string     { return e.customerPhone }
func (e *Entry) Status() Status            { return e.status }
func (e *Entry) ClaimTokenHash() *string   { return e.claimTokenHash }
func (e *Entry) TokenExpiresAt() *time.Time { return e.tokenExpiresAt }
func (e *Entry) CreatedAt() time.Time      { return e.createdAt }

// Notify moves the entry to the head-of-line state and binds the claim token
// hash with its absolute expiry.
func (e *Entry) Notify(tokenHash string, expiresAt time.Time) error {
	if !e.status.CanTransition(StatusNotified) {
		return ErrIllegalTransition
	}
	e.status = StatusNotified
	e.claimTokenHash = &tokenHash
	e.tokenExpiresAt = &expiresAt
	return nil
}

// TokenValid reports whether the bound token is presentable: only while
// notified and strictly before expiry.
func (e *Entry) TokenValid(now time.Time) bool {
	if e.status != StatusNotified || e.claimTokenHash == nil || e.tokenExpiresAt == nil {
		return false
	}
	return now.Before(*e.tokenExpiresAt)
}

func (e *Entry) TokenExpired(now time.Time) bool {
	return e.tokenExpiresAt != nil && !now.Before(*e.tokenExpiresAt)
}

// Convert consumes the claim. Conversion happens exactly once; the entry is
// immutable afterwards.
func (e *Entry) Convert() error {
	if !e.status.CanTransition(StatusConverted) {
		return ErrIllegalTransition
	}
	e.status = StatusConverted
	return nil
}

func (e *Entry) Expire() error {
	if !e.status.CanTransition(StatusExpired) {
		return ErrIllegalTransition
	}
	e.status = StatusExpired
	return nil
}

func (e *Entry) Cancel() error {
	if !e.status.CanTransition(StatusCancelled) {
		return ErrIllegalTransition
	}
	e.status = StatusCancelled
	return nil
}
