package commands

import (
	"context"
	"errors"
	"time"

	"workshop-enroll/internal/domain/cart"
	"workshop-enroll/internal/domain/workshop"
	"workshop-enroll/internal/infra"
	"workshop-enroll/internal/infra/db"
	"workshop-enroll/internal/pkg/clock"
	"workshop-enroll/internal/pkg/errs"
	"workshop-enroll/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrWorkshopNotFound         = errs.New("workshop not found")
	ErrWorkshopUnavailable      = errs.New("workshop is not open for checkout")
	ErrCapacityExhausted        = errs.New("workshop has no seats left")
	ErrWorkshopFullJoinWaitlist = errs.New("workshop is full but the waitlist is open")
	ErrAlreadyInCart            = errs.New("workshop already in cart")
	ErrItemNotFound             = errs.New("workshop not in cart")
	ErrInvalidPricingOption     = errs.New("invalid pricing option")
)

// ValidateResult separates the lines that survived the self-healing pass from
// those silently dropped, so the caller can surface a notice.
type ValidateResult struct {
	Cart        cart.Snapshot
	Invalidated []cart.Line
}

type CartCommands interface {
	Add(ctx context.Context, owner cart.Owner, workshopID uuid.UUID, pricingOptionID *uuid.UUID) (cart.Snapshot, error)
	Remove(ctx context.Context, owner cart.Owner, workshopID uuid.UUID) (cart.Snapshot, error)
	Clear(ctx context.Context, owner cart.Owner) error
	Validate(ctx context.Context, owner cart.Owner) (*ValidateResult, error)
	Merge(ctx context.Context, sessionKey string, accountID uuid.UUID) error
	SweepExpired(ctx context.Context, retention time.Duration) (int64, error)
}

type cartCommandsImpl struct {
	cartRepo     CartRepository
	workshopRepo WorkshopRepository
	uow          shared.UnitOfWork
	clock        clock.Clock
}

func NewCartCommands(
	cartRepo CartRepository,
	workshopRepo WorkshopRepository,
	uow shared.UnitOfWork,
	clock clock.Clock,
) CartCommands {
	return &cartCommandsImpl{
		cartRepo:     cartRepo,
		workshopRepo: workshopRepo,
		uow:          uow,
		clock:        clock,
	}
}

func (c *cartCommandsImpl) Add(ctx context.Context, owner cart.Owner, workshopID uuid.UUID, pricingOptionID *uuid.UUID) (cart.Snapshot, error) {
	var snapshot cart.Snapshot
	err := c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		w, err := loadSellable(ctx, tx, c.workshopRepo, workshopID)
		if err != nil {
			return err
		}

		opt, err := resolvePricing(w, pricingOptionID)
		if err != nil {
			return err
		}

		cartID, err := c.cartRepo.EnsureCart(ctx, tx, owner, c.clock.Now())
		if err != nil {
			return err
		}

		line := cart.Line{
			WorkshopID:      workshopID,
			PricingOptionID: pricingOptionID,
			UnitPriceCents:  opt.PriceCents,
			AddedAt:         c.clock.Now(),
		}
		if err := c.cartRepo.AddItem(ctx, tx, cartID, line); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrAlreadyInCart
			}
			return err
		}

		snapshot, err = c.cartRepo.FindByOwner(ctx, tx, owner)
		return err
	})
	if err != nil {
		return cart.Snapshot{}, err
	}
	return snapshot, nil
}

func (c *cartCommandsImpl) Remove(ctx context.Context, owner cart.Owner, workshopID uuid.UUID) (cart.Snapshot, error) {
	var snapshot cart.Snapshot
	err := c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		cartID, err := c.cartRepo.FindCartID(ctx, tx, owner)
		if err != nil {
			return err
		}
		if cartID == uuid.Nil {
			return ErrItemNotFound
		}

		removed, err := c.cartRepo.RemoveItem(ctx, tx, cartID, workshopID)
		if err != nil {
			return err
		}
		if !removed {
			return ErrItemNotFound
		}

		snapshot, err = c.cartRepo.FindByOwner(ctx, tx, owner)
		return err
	})
	if err != nil {
		return cart.Snapshot{}, err
	}
	return snapshot, nil
}

func (c *cartCommandsImpl) Clear(ctx context.Context, owner cart.Owner) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		cartID, err := c.cartRepo.FindCartID(ctx, tx, owner)
		if err != nil {
			return err
		}
		if cartID == uuid.Nil {
			return nil
		}
		return c.cartRepo.Clear(ctx, tx, cartID)
	})
}

// Validate re-checks every line against live workshop state and silently
// drops lines that became invalid. This is the self-healing pass; it never
// hard-fails on a stale line.
func (c *cartCommandsImpl) Validate(ctx context.Context, owner cart.Owner) (*ValidateResult, error) {
	var result ValidateResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		snapshot, err := c.cartRepo.FindByOwner(ctx, tx, owner)
		if err != nil {
			return err
		}

		var invalid []cart.Line
		for _, line := range snapshot.Lines() {
			if ok, err := c.lineStillValid(ctx, tx, line); err != nil {
				return err
			} else if !ok {
				invalid = append(invalid, line)
			}
		}

		if len(invalid) > 0 {
			cartID, err := c.cartRepo.FindCartID(ctx, tx, owner)
			if err != nil {
				return err
			}
			ids := make([]uuid.UUID, len(invalid))
			for i, line := range invalid {
				ids[i] = line.WorkshopID
			}
			if err := c.cartRepo.RemoveItems(ctx, tx, cartID, ids); err != nil {
				return err
			}
			snapshot, err = c.cartRepo.FindByOwner(ctx, tx, owner)
			if err != nil {
				return err
			}
		}

		result = ValidateResult{Cart: snapshot, Invalidated: invalid}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Merge folds a session cart into the account cart on authentication. The
// account cart wins ties; only the session items read here are cleared, so a
// concurrent add from another tab is not dropped. Running it twice is a no-op
// the second time.
func (c *cartCommandsImpl) Merge(ctx context.Context, sessionKey string, accountID uuid.UUID) error {
	sessionOwner, err := cart.SessionOwner(sessionKey)
	if err != nil {
		return err
	}
	accountOwner, err := cart.AccountOwner(accountID)
	if err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		sessionCart, err := c.cartRepo.FindByOwner(ctx, tx, sessionOwner)
		if err != nil {
			return err
		}
		if sessionCart.IsEmpty() {
			return nil
		}

		accountCart, err := c.cartRepo.FindByOwner(ctx, tx, accountOwner)
		if err != nil {
			return err
		}

		added := cart.MergeLines(accountCart, sessionCart)
		if len(added) > 0 {
			accountCartID, err := c.cartRepo.EnsureCart(ctx, tx, accountOwner, c.clock.Now())
			if err != nil {
				return err
			}
			for _, line := range added {
				if err := c.cartRepo.AddItem(ctx, tx, accountCartID, line); err != nil {
					// A concurrent merge already moved this line; account wins.
					if infra.IsKind(err, infra.KindDuplicateKey) {
						continue
					}
					return err
				}
			}
		}

		sessionCartID, err := c.cartRepo.FindCartID(ctx, tx, sessionOwner)
		if err != nil {
			return err
		}
		readIDs := make([]uuid.UUID, 0, sessionCart.Size())
		for _, line := range sessionCart.Lines() {
			readIDs = append(readIDs, line.WorkshopID)
		}
		return c.cartRepo.RemoveItems(ctx, tx, sessionCartID, readIDs)
	})
}

// SweepExpired drops guest carts untouched for longer than the retention
// window. Account carts are kept indefinitely.
func (c *cartCommandsImpl) SweepExpired(ctx context.Context, retention time.Duration) (int64, error) {
	var deleted int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		deleted, err = c.cartRepo.DeleteExpired(ctx, tx, c.clock.Now().Add(-retention))
		return err
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// loadSellable resolves a workshop and rejects it unless it could be sold
// right now: it must exist, be open for checkout, and have a seat left.
func loadSellable(ctx context.Context, tx db.DBTX, repo WorkshopRepository, workshopID uuid.UUID) (*workshop.Workshop, error) {
	w, err := repo.FindByID(ctx, tx, workshopID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrWorkshopNotFound
		}
		return nil, err
	}
	if !w.IsOpenForCheckout() {
		return nil, ErrWorkshopUnavailable
	}

	if !w.IsUnlimited() {
		confirmed, err := repo.CountCompleted(ctx, tx, workshopID)
		if err != nil {
			return nil, err
		}
		if !w.HasSeats(confirmed) {
			if w.WaitlistEnabled() {
				return nil, ErrWorkshopFullJoinWaitlist
			}
			return nil, ErrCapacityExhausted
		}
	}
	return w, nil
}

func (c *cartCommandsImpl) lineStillValid(ctx context.Context, tx db.DBTX, line cart.Line) (bool, error) {
	w, err := loadSellable(ctx, tx, c.workshopRepo, line.WorkshopID)
	if err != nil {
		switch {
		case errors.Is(err, ErrWorkshopNotFound),
			errors.Is(err, ErrWorkshopUnavailable),
			errors.Is(err, ErrCapacityExhausted),
			errors.Is(err, ErrWorkshopFullJoinWaitlist):
			return false, nil
		default:
			return false, err
		}
	}
	if _, err := resolvePricing(w, line.PricingOptionID); err != nil {
		return false, nil
	}
	return true, nil
}

func resolvePricing(w *workshop.Workshop, pricingOptionID *uuid.UUID) (*workshop.PricingOption, error) {
	if pricingOptionID != nil {
		opt, err := w.PricingOptionByID(*pricingOptionID)
		if err != nil {
			return nil, ErrInvalidPricingOption
		}
		return opt, nil
	}
	opt, err := w.DefaultPricingOption()
	if err != nil {
		return nil, ErrInvalidPricingOption
	}
	return opt, nil
}
