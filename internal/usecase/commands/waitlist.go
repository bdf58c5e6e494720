package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"workshop-enroll/internal/domain/waitlist"
	"workshop-enroll/internal/infra"
	"workshop-enroll/internal/infra/db"
	"workshop-enroll/internal/pkg/clock"
	"workshop-enroll/internal/pkg/config"
	"workshop-enroll/internal/pkg/errs"
	"workshop-enroll/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSeatsAvailable    = errs.New("workshop still has open seats")
	ErrWaitlistDisabled  = errs.New("waitlist is not enabled for this workshop")
	ErrAlreadyOnWaitlist = errs.New("an active waitlist entry already exists for this email")
	ErrWaitlistEntryGone = errs.New("waitlist entry not found")
)

const notificationKindWaitlist = "waitlist_spot_available"

type JoinWaitlistParams struct {
	WorkshopID    uuid.UUID
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

type ClaimView struct {
	EntryID       uuid.UUID
	WorkshopID    uuid.UUID
	ExpiresAt     string
	CustomerEmail string
}

type WaitlistCommands interface {
	Join(ctx context.Context, params JoinWaitlistParams) (*waitlist.Entry, error)
	// PromoteNext runs inside the caller's transaction so the freed seat and
	// the promotion commit or roll back together.
	PromoteNext(ctx context.Context, tx db.DBTX, workshopID uuid.UUID) error
	ValidateClaim(ctx context.Context, token string, entryID uuid.UUID) (*ClaimView, error)
}

type waitlistCommandsImpl struct {
	waitlistRepo     WaitlistRepository
	workshopRepo     WorkshopRepository
	notificationRepo NotificationRepository
	tokens           *TokenService
	uow              shared.UnitOfWork
	clock            clock.Clock
	cfg              config.WaitlistConfig
}

func NewWaitlistCommands(
	waitlistRepo WaitlistRepository,
	workshopRepo WorkshopRepository,
	notificationRepo NotificationRepository,
	tokens *TokenService,
	uow shared.UnitOfWork,
	clock clock.Clock,
	cfg config.WaitlistConfig,
) WaitlistCommands {
	return &waitlistCommandsImpl{
		waitlistRepo:     waitlistRepo,
		workshopRepo:     workshopRepo,
		notificationRepo: notificationRepo,
		tokens:           tokens,
		uow:              uow,
		clock:            clock,
		cfg:              cfg,
	}
}

func (w *waitlistCommandsImpl) Join(ctx context.Context, params JoinWaitlistParams) (*waitlist.Entry, error) {
	var entry *waitlist.Entry
	err := w.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		ws, err := w.workshopRepo.FindByID(ctx, tx, params.WorkshopID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrWorkshopNotFound
			}
			return err
		}
		if !ws.WaitlistEnabled() {
			return ErrWaitlistDisabled
		}

		// Joining only makes sense once the workshop is actually full.
		if ws.IsUnlimited() {
			return ErrSeatsAvailable
		}
		confirmed, err := w.workshopRepo.CountCompleted(ctx, tx, params.WorkshopID)
		if err != nil {
			return err
		}
		if ws.HasSeats(confirmed) {
			return ErrSeatsAvailable
		}

		active, err := w.waitlistRepo.HasActiveEntry(ctx, tx, params.WorkshopID, params.CustomerEmail)
		if err != nil {
			return err
		}
		if active {
			return ErrAlreadyOnWaitlist
		}

		entry = waitlist.NewEntry(
			params.WorkshopID, params.CustomerName, params.CustomerEmail, params.CustomerPhone, w.clock.Now(),
		)
		if err := w.waitlistRepo.Create(ctx, tx, entry); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrAlreadyOnWaitlist
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// PromoteNext moves the oldest waiting entry to notified and enqueues the
// claim notification. Exactly one entry can win: the row is locked with SKIP
// LOCKED and the waiting -> notified transition is a compare-and-set, so two
// concurrent refunds for the same workshop promote two distinct entries at
// most, never the same one twice.
func (w *waitlistCommandsImpl) PromoteNext(ctx context.Context, tx db.DBTX, workshopID uuid.UUID) error {
	ws, err := w.workshopRepo.FindByID(ctx, tx, workshopID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrWorkshopNotFound
		}
		return err
	}
	if !ws.WaitlistEnabled() {
		return nil
	}
	if !ws.IsUnlimited() {
		confirmed, err := w.workshopRepo.CountCompleted(ctx, tx, workshopID)
		if err != nil {
			return err
		}
		// Another transaction may have refilled the seat already.
		if !ws.HasSeats(confirmed) {
			return nil
		}
	}

	entry, err := w.waitlistRepo.LockOldestWaiting(ctx, tx, workshopID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return err
	}

	plaintext, expiresAt, err := w.tokens.Issue(ctx, tx, entry)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(map[string]string{
		"entry_id":       entry.ID().String(),
		"workshop_id":    workshopID.String(),
		"workshop_title": ws.Title(),
		"email":          entry.CustomerEmail(),
		"claim_url":      w.claimURL(plaintext, entry.ID()),
		"expires_at":     expiresAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode waitlist notification payload")
	}
	return w.notificationRepo.CreateJob(ctx, tx, notificationKindWaitlist, entry.CustomerEmail(), payload, w.clock.Now())
}

// ValidateClaim backs the claim landing page. It does not consume the token;
// consumption happens when the claimed checkout's payment completes.
func (w *waitlistCommandsImpl) ValidateClaim(ctx context.Context, token string, entryID uuid.UUID) (*ClaimView, error) {
	if _, err := w.tokens.Validate(ctx, token, entryID); err != nil {
		return nil, err
	}

	var view *ClaimView
	err := w.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		entry, err := w.waitlistRepo.FindByID(ctx, dbtx, entryID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrWaitlistEntryGone
			}
			return err
		}
		expires := ""
		if at := entry.TokenExpiresAt(); at != nil {
			expires = at.UTC().Format(time.RFC3339)
		}
		view = &ClaimView{
			EntryID:       entry.ID(),
			WorkshopID:    entry.WorkshopID(),
			ExpiresAt:     expires,
			CustomerEmail: entry.CustomerEmail(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (w *waitlistCommandsImpl) claimURL(token string, entryID uuid.UUID) string {
	q := url.Values{}
	q.Set("token", token)
	q.Set("entry", entryID.String())
	return fmt.Sprintf("%s?%s", w.cfg.ClaimBaseURL, q.Encode())
}
