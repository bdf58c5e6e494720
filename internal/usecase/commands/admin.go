package commands

import (
	"context"

	"workshop-enroll/internal/domain/enrollment"
	"workshop-enroll/internal/infra"
	"workshop-enroll/internal/infra/db"
	"workshop-enroll/internal/infra/gateway"
	"workshop-enroll/internal/pkg/clock"
	"workshop-enroll/internal/pkg/errs"
	"workshop-enroll/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEnrollmentNotFound = errs.New("enrollment not found")
	ErrRefundNotAllowed   = errs.New("enrollment is not refundable")
	ErrCancelNotAllowed   = errs.New("enrollment cannot be cancelled")
	ErrRefundFailed       = errs.New("failed to initiate refund at the gateway")
)

type OfflineEnrollmentParams struct {
	WorkshopID      uuid.UUID
	Customer        enrollment.Customer
	PricingOptionID *uuid.UUID
	AmountCents     int64
	Currency        string
	Notes           string
}

type AdminCommands interface {
	RecordOfflineEnrollment(ctx context.Context, params OfflineEnrollmentParams) (*enrollment.Enrollment, error)
	// InitiateRefund asks the gateway to refund; the local status change
	// happens when the resulting charge.refunded event arrives.
	InitiateRefund(ctx context.Context, enrollmentID uuid.UUID, amountCents *int64) error
	CancelEnrollment(ctx context.Context, enrollmentID uuid.UUID) error
}

type adminCommandsImpl struct {
	enrollmentRepo EnrollmentRepository
	workshopRepo   WorkshopRepository
	accountRepo    AccountRepository
	waitlist       WaitlistCommands
	gatewayClient  PaymentGateway
	uow            shared.UnitOfWork
	clock          clock.Clock
}

func NewAdminCommands(
	enrollmentRepo EnrollmentRepository,
	workshopRepo WorkshopRepository,
	accountRepo AccountRepository,
	waitlist WaitlistCommands,
	gatewayClient PaymentGateway,
	uow shared.UnitOfWork,
	clock clock.Clock,
) AdminCommands {
	return &adminCommandsImpl{
		enrollmentRepo: enrollmentRepo,
		workshopRepo:   workshopRepo,
		accountRepo:    accountRepo,
		waitlist:       waitlist,
		gatewayClient:  gatewayClient,
		uow:            uow,
		clock:          clock,
	}
}

// RecordOfflineEnrollment registers a payment taken outside the gateway
// (cash, bank transfer). The enrollment is born completed and bypasses the
// event ledger entirely, since no gateway event will ever reference it.
func (a *adminCommandsImpl) RecordOfflineEnrollment(ctx context.Context, params OfflineEnrollmentParams) (*enrollment.Enrollment, error) {
	var created *enrollment.Enrollment
	err := a.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := a.workshopRepo.FindByID(ctx, tx, params.WorkshopID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrWorkshopNotFound
			}
			return err
		}

		e, err := enrollment.NewManual(
			params.WorkshopID, params.Customer, params.PricingOptionID,
			params.AmountCents, params.Currency, params.Notes,
		)
		if err != nil {
			return err
		}
		if err := a.enrollmentRepo.Create(ctx, tx, e); err != nil {
			return err
		}

		// Attach an existing account when the email matches one; offline
		// enrollments never create accounts.
		acct, err := a.accountRepo.FindByEmail(ctx, tx, params.Customer.Email())
		if err == nil {
			if err := a.enrollmentRepo.LinkAccount(ctx, tx, e.ID(), acct.ID()); err != nil {
				return err
			}
		} else if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}

		created = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (a *adminCommandsImpl) InitiateRefund(ctx context.Context, enrollmentID uuid.UUID, amountCents *int64) error {
	var paymentIntentID string
	err := a.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		e, err := a.enrollmentRepo.FindByID(ctx, dbtx, enrollmentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrEnrollmentNotFound
			}
			return err
		}
		if !e.IsCompleted() || e.GatewayPaymentIntentID() == nil {
			return ErrRefundNotAllowed
		}
		paymentIntentID = *e.GatewayPaymentIntentID()
		return nil
	})
	if err != nil {
		return err
	}

	if _, err := a.gatewayClient.CreateRefund(ctx, gateway.RefundParams{
		PaymentIntentID: paymentIntentID,
		AmountCents:     amountCents,
	}); err != nil {
		return errs.Mark(err, ErrRefundFailed)
	}
	return nil
}

// CancelEnrollment is the administrative lever for seats paid offline or
// abandoned pending rows. Cancelling a completed enrollment frees a seat, so
// the waitlist is promoted in the same transaction.
func (a *adminCommandsImpl) CancelEnrollment(ctx context.Context, enrollmentID uuid.UUID) error {
	return a.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		e, err := a.enrollmentRepo.FindByID(ctx, tx, enrollmentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrEnrollmentNotFound
			}
			return err
		}
		wasCompleted := e.IsCompleted()

		ok, err := a.enrollmentRepo.CancelByAdmin(ctx, tx, enrollmentID, a.clock.Now())
		if err != nil {
			return err
		}
		if !ok {
			return ErrCancelNotAllowed
		}

		if wasCompleted {
			return a.waitlist.PromoteNext(ctx, tx, e.WorkshopID())
		}
		return nil
	})
}
