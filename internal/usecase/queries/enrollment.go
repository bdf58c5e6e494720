package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EnrollmentView struct {
	ID                 uuid.UUID  `json:"id"`
	WorkshopID         uuid.UUID  `json:"workshop_id"`
	WorkshopTitle      string     `json:"workshop_title"`
	CustomerName       string     `json:"customer_name"`
	CustomerEmail      string     `json:"customer_email"`
	Status             string     `json:"status"`
	AmountCents        int64      `json:"amount_cents"`
	Currency           string     `json:"currency"`
	GatewaySessionID   *string    `json:"gateway_session_id,omitempty"`
	RefundID           *string    `json:"refund_id,omitempty"`
	RefundedCents      *int64     `json:"refunded_cents,omitempty"`
	AccountID          *uuid.UUID `json:"account_id,omitempty"`
	Notes              *string    `json:"notes,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type EnrollmentListItem struct {
	ID            uuid.UUID `json:"id"`
	WorkshopID    uuid.UUID `json:"workshop_id"`
	WorkshopTitle string    `json:"workshop_title"`
	Status        string    `json:"status"`
	AmountCents   int64     `json:"amount_cents"`
	Currency      string    `json:"currency"`
	CreatedAt     time.Time `json:"created_at"`
}

type EnrollmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*EnrollmentView, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]*EnrollmentListItem, error)
	ListByWorkshop(ctx context.Context, workshopID uuid.UUID, limit int) ([]*EnrollmentListItem, error)
}

type EnrollmentViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EnrollmentView, error)
	FindByAccountID(ctx context.Context, accountID uuid.UUID, limit int32) ([]*EnrollmentListItem, error)
	FindByWorkshopID(ctx context.Context, workshopID uuid.UUID, limit int32) ([]*EnrollmentListItem, error)
}

type enrollmentQueriesImpl struct {
	repo EnrollmentViewRepo
}

func NewEnrollmentQueries(repo EnrollmentViewRepo) EnrollmentQueries {
	return &enrollmentQueriesImpl{repo: repo}
}

func (q *enrollmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*EnrollmentView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *enrollmentQueriesImpl) ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]*EnrollmentListItem, error) {
	return q.repo.FindByAccountID(ctx, accountID, clampLimit(limit))
}

func (q *enrollmentQueriesImpl) ListByWorkshop(ctx context.Context, workshopID uuid.UUID, limit int) ([]*EnrollmentListItem, error) {
	return q.repo.FindByWorkshopID(ctx, workshopID, clampLimit(limit))
}

func clampLimit(limit int) int32 {
	if limit <= 0 {
		limit = 50
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return int32(limit)
}
