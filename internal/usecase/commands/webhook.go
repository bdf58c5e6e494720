package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"workshop-enroll/internal/domain/account"
	"workshop-enroll/internal/domain/enrollment"
	"workshop-enroll/internal/infra"
	"workshop-enroll/internal/infra/db"
	"workshop-enroll/internal/infra/gateway"
	"workshop-enroll/internal/pkg/clock"
	"workshop-enroll/internal/pkg/errs"
	"workshop-enroll/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrEventProcessing = errs.New("failed to process gateway event")

// Notification kinds written to the outbox by webhook handling. Inserting the
// job in the same transaction as the ledger record is what caps delivery at
// one per event: a replayed event short-circuits on the ledger before it can
// enqueue a second job.
const (
	notificationKindConfirmation = "enrollment_confirmation"
	notificationKindRefund       = "refund_processed"
)

type ProcessResult struct {
	// Duplicate is true when the event id was already in the ledger and the
	// event produced no side effects.
	Duplicate bool
}

type WebhookCommands interface {
	Process(ctx context.Context, ev *gateway.Event) (*ProcessResult, error)
}

type webhookCommandsImpl struct {
	enrollmentRepo   EnrollmentRepository
	waitlistRepo     WaitlistRepository
	cartRepo         CartRepository
	accountRepo      AccountRepository
	eventRepo        ProcessedEventRepository
	notificationRepo NotificationRepository
	waitlist         WaitlistCommands
	tokens           *TokenService
	uow              shared.UnitOfWork
	clock            clock.Clock
	logger           *slog.Logger
}

func NewWebhookCommands(
	enrollmentRepo EnrollmentRepository,
	waitlistRepo WaitlistRepository,
	cartRepo CartRepository,
	accountRepo AccountRepository,
	eventRepo ProcessedEventRepository,
	notificationRepo NotificationRepository,
	waitlist WaitlistCommands,
	tokens *TokenService,
	uow shared.UnitOfWork,
	clock clock.Clock,
	logger *slog.Logger,
) WebhookCommands {
	return &webhookCommandsImpl{
		enrollmentRepo:   enrollmentRepo,
		waitlistRepo:     waitlistRepo,
		cartRepo:         cartRepo,
		accountRepo:      accountRepo,
		eventRepo:        eventRepo,
		notificationRepo: notificationRepo,
		waitlist:         waitlist,
		tokens:           tokens,
		uow:              uow,
		clock:            clock,
		logger:           logger,
	}
}

// Process applies a verified gateway event exactly once. The dedup ledger
// check, all side effects, and the ledger record run in one transaction, so
// a replayed event either sees the ledger row (and does nothing) or the whole
// first attempt rolled back (and retries cleanly). Status transitions are
// compare-and-set underneath as a backstop against out-of-order deliveries.
func (w *webhookCommandsImpl) Process(ctx context.Context, ev *gateway.Event) (*ProcessResult, error) {
	result := &ProcessResult{}
	err := w.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		seen, err := w.eventRepo.Seen(ctx, tx, ev.ID)
		if err != nil {
			return err
		}
		if seen {
			result.Duplicate = true
			return nil
		}

		switch ev.Type {
		case gateway.EventCheckoutCompleted:
			err = w.handleCheckoutCompleted(ctx, tx, ev)
		case gateway.EventChargeRefunded:
			err = w.handleChargeRefunded(ctx, tx, ev)
		case gateway.EventPaymentFailed:
			err = w.handlePaymentFailed(ctx, tx, ev)
		default:
			// Unknown event types are acknowledged so the gateway stops
			// retrying them, and recorded so replays stay cheap.
			w.logger.InfoContext(ctx, "ignoring unhandled gateway event type",
				slog.String("event_id", ev.ID), slog.String("type", ev.Type))
		}
		if err != nil {
			return err
		}

		return w.eventRepo.Record(ctx, tx, ev.ID)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrEventProcessing)
	}
	return result, nil
}

func (w *webhookCommandsImpl) handleCheckoutCompleted(ctx context.Context, tx db.DBTX, ev *gateway.Event) error {
	session, err := ev.CheckoutSession()
	if err != nil {
		return err
	}

	pending, err := w.enrollmentRepo.FindBySessionID(ctx, tx, session.ID)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		// The local pending write was lost after the gateway session was
		// opened. Rebuild the enrollments from the session metadata so the
		// paid customer is not dropped.
		pending, err = w.recreateFromMetadata(ctx, tx, session)
		if err != nil {
			return err
		}
	}

	acct, err := w.ensureAccount(ctx, tx, session)
	if err != nil {
		return err
	}

	now := w.clock.Now()
	var completed []*enrollment.Enrollment
	for _, e := range pending {
		ok, err := w.enrollmentRepo.CompletePending(
			ctx, tx, e.ID(), session.PaymentIntentID, session.CustomerID, e.AmountCents(), now,
		)
		if err != nil {
			return err
		}
		if !ok {
			// Already completed (or failed) by an earlier delivery; no new
			// side effects for this row.
			w.logger.InfoContext(ctx, "enrollment not pending, skipping completion",
				slog.String("enrollment_id", e.ID().String()),
				slog.String("session_id", session.ID))
			continue
		}
		if acct != nil && e.AccountID() == nil {
			if err := w.enrollmentRepo.LinkAccount(ctx, tx, e.ID(), acct.ID()); err != nil {
				return err
			}
		}
		completed = append(completed, e)
	}

	if len(completed) > 0 {
		if err := w.enqueueConfirmation(ctx, tx, session, completed); err != nil {
			return err
		}
	}

	if err := w.consumeClaim(ctx, tx, session); err != nil {
		return err
	}

	return w.clearPurchasedFromCart(ctx, tx, session, completed)
}

// recreateFromMetadata rebuilds pending enrollments for a paid session whose
// local rows never made it to the database. The workshop and pricing lists
// were stamped into the session metadata at checkout time.
func (w *webhookCommandsImpl) recreateFromMetadata(ctx context.Context, tx db.DBTX, session *gateway.CheckoutSession) ([]*enrollment.Enrollment, error) {
	rawWorkshops := session.Metadata[metaWorkshopIDs]
	if rawWorkshops == "" {
		return nil, errs.New("completed session has no enrollments and no workshop metadata")
	}
	workshopIDs := strings.Split(rawWorkshops, metaListSeparator)
	pricingIDs := strings.Split(session.Metadata[metaPricingOptionIDs], metaListSeparator)

	customer := enrollment.ReconstructCustomer(session.CustomerName, session.CustomerEmail, session.CustomerPhone)

	// The per-line price was not round-tripped; attribute the session total
	// to the first line and zero to the rest so the money still adds up.
	remaining := session.AmountTotal

	out := make([]*enrollment.Enrollment, 0, len(workshopIDs))
	for i, raw := range workshopIDs {
		workshopID, err := uuid.Parse(raw)
		if err != nil {
			return nil, errs.Wrap(err, "malformed workshop id in session metadata")
		}
		var pricingOptionID *uuid.UUID
		if i < len(pricingIDs) && pricingIDs[i] != metaNoPricingOption && pricingIDs[i] != "" {
			id, err := uuid.Parse(pricingIDs[i])
			if err != nil {
				return nil, errs.Wrap(err, "malformed pricing option id in session metadata")
			}
			pricingOptionID = &id
		}

		e, err := enrollment.NewPending(workshopID, customer, pricingOptionID, remaining, session.Currency, session.ID)
		if err != nil {
			return nil, err
		}
		remaining = 0
		if err := w.enrollmentRepo.Create(ctx, tx, e); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	w.logger.WarnContext(ctx, "recreated enrollments from session metadata",
		slog.String("session_id", session.ID), slog.Int("count", len(out)))
	return out, nil
}

// ensureAccount resolves the customer's account, creating an implicit
// password-less customer account on first purchase. A nil session email means
// there is nothing to key on and no account is linked.
func (w *webhookCommandsImpl) ensureAccount(ctx context.Context, tx db.DBTX, session *gateway.CheckoutSession) (*account.Account, error) {
	if session.CustomerEmail == "" {
		return nil, nil
	}
	email, err := account.NewEmail(session.CustomerEmail)
	if err != nil {
		w.logger.WarnContext(ctx, "skipping account link for malformed email",
			slog.String("session_id", session.ID))
		return nil, nil
	}

	acct, err := w.accountRepo.FindByEmail(ctx, tx, email.String())
	if err == nil {
		return acct, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}

	acct = account.NewAccount(email, session.CustomerName, nil, account.RoleCustomer)
	if err := w.accountRepo.Create(ctx, tx, acct); err != nil {
		// Lost a create race with a concurrent purchase; re-read the winner.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return w.accountRepo.FindByEmail(ctx, tx, email.String())
		}
		return nil, err
	}
	return acct, nil
}

// consumeClaim converts the waitlist entry bound to a claimed checkout. An
// expired or already-consumed token is not a processing failure: the payment
// stands either way, so the mismatch is logged and the freed claim slot is
// handed to the next waiting entry.
func (w *webhookCommandsImpl) consumeClaim(ctx context.Context, tx db.DBTX, session *gateway.CheckoutSession) error {
	token := session.Metadata[gateway.MetaClaimToken]
	rawEntryID := session.Metadata[gateway.MetaWaitlistEntryID]
	if token == "" || rawEntryID == "" {
		return nil
	}
	entryID, err := uuid.Parse(rawEntryID)
	if err != nil {
		w.logger.WarnContext(ctx, "malformed waitlist entry id in session metadata",
			slog.String("session_id", session.ID))
		return nil
	}

	err = w.tokens.Consume(ctx, tx, token, entryID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrTokenExpired):
		w.logger.InfoContext(ctx, "claim token expired before payment completed, repromoting",
			slog.String("entry_id", entryID.String()))
		entry, ferr := w.waitlistRepo.FindByID(ctx, tx, entryID)
		if ferr != nil {
			return ferr
		}
		return w.waitlist.PromoteNext(ctx, tx, entry.WorkshopID())
	case errors.Is(err, ErrTokenNotFound), errors.Is(err, ErrTokenAlreadyClaimed), errors.Is(err, ErrTokenMismatch):
		w.logger.WarnContext(ctx, "claim token could not be consumed",
			slog.String("entry_id", entryID.String()), slog.String("reason", err.Error()))
		return nil
	default:
		return err
	}
}

// clearPurchasedFromCart removes only the purchased lines from the cart named
// in the metadata. Lines added after checkout started are left alone.
func (w *webhookCommandsImpl) clearPurchasedFromCart(ctx context.Context, tx db.DBTX, session *gateway.CheckoutSession, completed []*enrollment.Enrollment) error {
	rawCartID := session.Metadata[gateway.MetaCartID]
	if rawCartID == "" || len(completed) == 0 {
		return nil
	}
	cartID, err := uuid.Parse(rawCartID)
	if err != nil {
		w.logger.WarnContext(ctx, "malformed cart id in session metadata",
			slog.String("session_id", session.ID))
		return nil
	}
	workshopIDs := make([]uuid.UUID, len(completed))
	for i, e := range completed {
		workshopIDs[i] = e.WorkshopID()
	}
	return w.cartRepo.RemoveItems(ctx, tx, cartID, workshopIDs)
}

func (w *webhookCommandsImpl) enqueueConfirmation(ctx context.Context, tx db.DBTX, session *gateway.CheckoutSession, completed []*enrollment.Enrollment) error {
	workshopIDs := make([]string, len(completed))
	for i, e := range completed {
		workshopIDs[i] = e.WorkshopID().String()
	}
	payload, err := json.Marshal(map[string]any{
		"session_id":   session.ID,
		"email":        session.CustomerEmail,
		"workshop_ids": workshopIDs,
		"amount_total": session.AmountTotal,
		"currency":     session.Currency,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode confirmation payload")
	}
	return w.notificationRepo.CreateJob(
		ctx, tx, notificationKindConfirmation, session.CustomerEmail, payload, w.clock.Now(),
	)
}

func (w *webhookCommandsImpl) handleChargeRefunded(ctx context.Context, tx db.DBTX, ev *gateway.Event) error {
	charge, err := ev.Charge()
	if err != nil {
		return err
	}

	e, err := w.enrollmentRepo.FindByPaymentIntentID(ctx, tx, charge.PaymentIntentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Refund for a payment this system never completed. Acknowledge
			// so the gateway stops retrying.
			w.logger.WarnContext(ctx, "refund event for unknown payment intent",
				slog.String("event_id", ev.ID),
				slog.String("payment_intent", charge.PaymentIntentID))
			return nil
		}
		return err
	}

	now := w.clock.Now()
	full := charge.AmountRefunded >= e.AmountCents()

	if full {
		ok, err := w.enrollmentRepo.MarkRefunded(ctx, tx, e.ID(), charge.RefundID, charge.AmountRefunded, now)
		if err != nil {
			return err
		}
		if !ok {
			// Not completed anymore; a previous delivery already refunded it.
			w.logger.InfoContext(ctx, "enrollment not completed, skipping refund",
				slog.String("enrollment_id", e.ID().String()))
			return nil
		}
		if err := w.waitlist.PromoteNext(ctx, tx, e.WorkshopID()); err != nil {
			return err
		}
	} else {
		ok, err := w.enrollmentRepo.RecordPartialRefund(ctx, tx, e.ID(), charge.RefundID, charge.AmountRefunded, now)
		if err != nil {
			return err
		}
		if !ok {
			w.logger.InfoContext(ctx, "enrollment not completed, skipping partial refund",
				slog.String("enrollment_id", e.ID().String()))
			return nil
		}
	}

	payload, err := json.Marshal(map[string]any{
		"enrollment_id":   e.ID().String(),
		"email":           e.Customer().Email(),
		"amount_refunded": charge.AmountRefunded,
		"full":            full,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode refund payload")
	}
	return w.notificationRepo.CreateJob(ctx, tx, notificationKindRefund, e.Customer().Email(), payload, now)
}

// handlePaymentFailed marks the session's pending enrollments failed. No
// customer notification: the gateway surfaces the failure in the checkout UI.
func (w *webhookCommandsImpl) handlePaymentFailed(ctx context.Context, tx db.DBTX, ev *gateway.Event) error {
	failure, err := ev.PaymentFailure()
	if err != nil {
		return err
	}
	if failure.CheckoutSessionID == "" {
		w.logger.WarnContext(ctx, "payment failure without session reference",
			slog.String("event_id", ev.ID))
		return nil
	}

	pending, err := w.enrollmentRepo.FindBySessionID(ctx, tx, failure.CheckoutSessionID)
	if err != nil {
		return err
	}
	now := w.clock.Now()
	for _, e := range pending {
		ok, err := w.enrollmentRepo.MarkFailed(ctx, tx, e.ID(), now)
		if err != nil {
			return err
		}
		if !ok {
			w.logger.InfoContext(ctx, "enrollment not pending, skipping failure mark",
				slog.String("enrollment_id", e.ID().String()))
		}
	}
	return nil
}
