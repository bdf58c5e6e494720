package commands

import (
	"context"
	"time"

	"workshop-enroll/internal/domain/account"
	"workshop-enroll/internal/domain/cart"
	"workshop-enroll/internal/domain/enrollment"
	"workshop-enroll/internal/domain/waitlist"
	"workshop-enroll/internal/domain/workshop"
	"workshop-enroll/internal/infra/db"
	"workshop-enroll/internal/infra/gateway"

	"github.com/google/uuid"
)

// Write-side ports. Implementations live in internal/infra; tests substitute
// in-memory fakes.

type WorkshopRepository interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*workshop.Workshop, error)
	CountCompleted(ctx context.Context, dbtx db.DBTX, workshopID uuid.UUID) (int, error)
}

type EnrollmentRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, e *enrollment.Enrollment) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*enrollment.Enrollment, error)
	FindBySessionID(ctx context.Context, dbtx db.DBTX, sessionID string) ([]*enrollment.Enrollment, error)
	FindByPaymentIntentID(ctx context.Context, dbtx db.DBTX, paymentIntentID string) (*enrollment.Enrollment, error)
	CompletePending(ctx context.Context, dbtx db.DBTX, id uuid.UUID, paymentIntentID, gatewayCustomerID string, amountCents int64, now time.Time) (bool, error)
	MarkRefunded(ctx context.Context, dbtx db.DBTX, id uuid.UUID, refundID string, amountCents int64, now time.Time) (bool, error)
	RecordPartialRefund(ctx context.Context, dbtx db.DBTX, id uuid.UUID, refundID string, amountCents int64, now time.Time) (bool, error)
	MarkFailed(ctx context.Context, dbtx db.DBTX, id uuid.UUID, now time.Time) (bool, error)
	CancelByAdmin(ctx context.Context, dbtx db.DBTX, id uuid.UUID, now time.Time) (bool, error)
	LinkAccount(ctx context.Context, dbtx db.DBTX, id, accountID uuid.UUID) error
}

type WaitlistRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, e *waitlist.Entry) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*waitlist.Entry, error)
	FindByTokenHash(ctx context.Context, dbtx db.DBTX, tokenHash string) (*waitlist.Entry, error)
	LockOldestWaiting(ctx context.Context, dbtx db.DBTX, workshopID uuid.UUID) (*waitlist.Entry, error)
	MarkNotified(ctx context.Context, dbtx db.DBTX, id uuid.UUID, tokenHash string, expiresAt time.Time) (bool, error)
	MarkConverted(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error)
	MarkExpired(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error)
	HasActiveEntry(ctx context.Context, dbtx db.DBTX, workshopID uuid.UUID, email string) (bool, error)
}

type CartRepository interface {
	FindCartID(ctx context.Context, dbtx db.DBTX, owner cart.Owner) (uuid.UUID, error)
	EnsureCart(ctx context.Context, dbtx db.DBTX, owner cart.Owner, now time.Time) (uuid.UUID, error)
	FindByOwner(ctx context.Context, dbtx db.DBTX, owner cart.Owner) (cart.Snapshot, error)
	AddItem(ctx context.Context, dbtx db.DBTX, cartID uuid.UUID, line cart.Line) error
	RemoveItem(ctx context.Context, dbtx db.DBTX, cartID, workshopID uuid.UUID) (bool, error)
	RemoveItems(ctx context.Context, dbtx db.DBTX, cartID uuid.UUID, workshopIDs []uuid.UUID) error
	Clear(ctx context.Context, dbtx db.DBTX, cartID uuid.UUID) error
	DeleteExpired(ctx context.Context, dbtx db.DBTX, before time.Time) (int64, error)
}

type ProcessedEventRepository interface {
	Seen(ctx context.Context, dbtx db.DBTX, eventID string) (bool, error)
	Record(ctx context.Context, dbtx db.DBTX, eventID string) error
}

type AccountRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, a *account.Account) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*account.Account, error)
	FindByEmail(ctx context.Context, dbtx db.DBTX, email string) (*account.Account, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, dbtx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

// PaymentGateway is the capability-typed client boundary to the external
// payment processor.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, params gateway.CheckoutSessionParams) (*gateway.CreatedSession, error)
	CreateRefund(ctx context.Context, params gateway.RefundParams) (*gateway.CreatedRefund, error)
}
