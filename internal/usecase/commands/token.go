package commands

import (
	"context"
	"time"

	"workshop-enroll/internal/domain/waitlist"
	"workshop-enroll/internal/infra"
	"workshop-enroll/internal/infra/db"
	"workshop-enroll/internal/pkg/claimtoken"
	"workshop-enroll/internal/pkg/clock"
	"workshop-enroll/internal/pkg/errs"
	"workshop-enroll/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrTokenNotFound       = errs.New("claim token not found")
	ErrTokenExpired        = errs.New("claim token expired")
	ErrTokenAlreadyClaimed = errs.New("claim token already claimed")
	ErrTokenMismatch       = errs.New("claim token does not match waitlist entry")
	ErrTokenIssueFailed    = errs.New("failed to issue claim token")
)

// TokenService owns the claim-token protocol: issue against a waitlist entry,
// validate a presented token, and consume it on conversion. Only the token
// hash is persisted.
type TokenService struct {
	waitlistRepo WaitlistRepository
	uow          shared.UnitOfWork
	clock        clock.Clock
	ttl          time.Duration
}

func NewTokenService(
	waitlistRepo WaitlistRepository,
	uow shared.UnitOfWork,
	clock clock.Clock,
	ttl time.Duration,
) *TokenService {
	return &TokenService{
		waitlistRepo: waitlistRepo,
		uow:          uow,
		clock:        clock,
		ttl:          ttl,
	}
}

// Issue generates a fresh token and binds its hash to the entry via the
// waiting -> notified CAS. Runs inside the caller's transaction so promotion
// and token binding commit together. The plaintext is returned exactly once.
func (s *TokenService) Issue(ctx context.Context, tx db.DBTX, entry *waitlist.Entry) (plaintext string, expiresAt time.Time, err error) {
	plaintext, hash, err := claimtoken.Generate()
	if err != nil {
		return "", time.Time{}, errs.Mark(err, ErrTokenIssueFailed)
	}
	expiresAt = s.clock.Now().Add(s.ttl)

	ok, err := s.waitlistRepo.MarkNotified(ctx, tx, entry.ID(), hash, expiresAt)
	if err != nil {
		return "", time.Time{}, errs.Mark(err, ErrTokenIssueFailed)
	}
	if !ok {
		// Entry left waiting state concurrently; the caller lost the race.
		return "", time.Time{}, ErrTokenAlreadyClaimed
	}
	return plaintext, expiresAt, nil
}

// Validate checks a presented token without consuming it (claim page load).
// An expired token transitions the entry to expired as a side effect.
func (s *TokenService) Validate(ctx context.Context, token string, expectedEntryID uuid.UUID) (uuid.UUID, error) {
	var entryID uuid.UUID
	err := s.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		entry, err := s.check(ctx, tx, token, expectedEntryID)
		if err != nil {
			return err
		}
		entryID = entry.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return entryID, nil
}

// Consume validates and then applies the notified -> converted CAS inside the
// caller's transaction. The CAS is what makes the token single-use: a second
// presentation finds the entry no longer notified and fails AlreadyClaimed.
func (s *TokenService) Consume(ctx context.Context, tx db.DBTX, token string, expectedEntryID uuid.UUID) error {
	entry, err := s.check(ctx, tx, token, expectedEntryID)
	if err != nil {
		return err
	}
	ok, err := s.waitlistRepo.MarkConverted(ctx, tx, entry.ID())
	if err != nil {
		return err
	}
	if !ok {
		return ErrTokenAlreadyClaimed
	}
	return nil
}

func (s *TokenService) check(ctx context.Context, tx db.DBTX, token string, expectedEntryID uuid.UUID) (*waitlist.Entry, error) {
	entry, err := s.waitlistRepo.FindByTokenHash(ctx, tx, claimtoken.Hash(token))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}

	// Entry id substitution defense: the token must be presented for the
	// entry it was bound to.
	if entry.ID() != expectedEntryID {
		return nil, ErrTokenMismatch
	}

	if entry.Status() != waitlist.StatusNotified {
		return nil, ErrTokenAlreadyClaimed
	}

	if entry.TokenExpired(s.clock.Now()) {
		if _, err := s.waitlistRepo.MarkExpired(ctx, tx, entry.ID()); err != nil {
			return nil, err
		}
		return nil, ErrTokenExpired
	}
	return entry, nil
}
