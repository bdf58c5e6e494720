package commands

import (
	"context"
	"errors"
	"strings"

	"workshop-enroll/internal/domain/cart"
	"workshop-enroll/internal/domain/enrollment"
	"workshop-enroll/internal/domain/workshop"
	"workshop-enroll/internal/infra"
	"workshop-enroll/internal/infra/db"
	"workshop-enroll/internal/infra/gateway"
	"workshop-enroll/internal/pkg/clock"
	"workshop-enroll/internal/pkg/config"
	"workshop-enroll/internal/pkg/errs"
	"workshop-enroll/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCartEmpty      = errs.New("cart is empty")
	ErrCheckoutFailed = errs.New("failed to start checkout")
	ErrGatewayTimeout = errs.New("payment gateway did not respond in time")
)

// Metadata keys internal to the checkout/webhook pair, alongside the gateway
// constants: the workshop/pricing lists let the webhook recreate enrollments
// if the local pending write was lost after the gateway call succeeded.
const (
	metaWorkshopIDs      = "workshop_ids"
	metaPricingOptionIDs = "pricing_option_ids"
	metaListSeparator    = ","
	// pricing list placeholder for lines without an explicit option
	metaNoPricingOption = "-"
)

type CheckoutResult struct {
	GatewaySessionID string
	CheckoutURL      string
}

type SingleCheckoutParams struct {
	WorkshopID      uuid.UUID
	PricingOptionID *uuid.UUID
	Customer        enrollment.Customer
	// ClaimToken and ClaimEntryID carry a waitlist claim URL into checkout.
	ClaimToken   string
	ClaimEntryID *uuid.UUID
}

type CheckoutCommands interface {
	StartCartCheckout(ctx context.Context, owner cart.Owner, customer enrollment.Customer) (*CheckoutResult, error)
	StartWorkshopCheckout(ctx context.Context, params SingleCheckoutParams) (*CheckoutResult, error)
}

type checkoutCommandsImpl struct {
	cartRepo       CartRepository
	workshopRepo   WorkshopRepository
	enrollmentRepo EnrollmentRepository
	tokens         *TokenService
	gatewayClient  PaymentGateway
	uow            shared.UnitOfWork
	clock          clock.Clock
	cfg            config.GatewayConfig
}

func NewCheckoutCommands(
	cartRepo CartRepository,
	workshopRepo WorkshopRepository,
	enrollmentRepo EnrollmentRepository,
	tokens *TokenService,
	gatewayClient PaymentGateway,
	uow shared.UnitOfWork,
	clock clock.Clock,
	cfg config.GatewayConfig,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		cartRepo:       cartRepo,
		workshopRepo:   workshopRepo,
		enrollmentRepo: enrollmentRepo,
		tokens:         tokens,
		gatewayClient:  gatewayClient,
		uow:            uow,
		clock:          clock,
		cfg:            cfg,
	}
}

type checkoutLine struct {
	workshop        *workshop.Workshop
	pricingOptionID *uuid.UUID
	priceCents      int64
}

// StartCartCheckout opens a gateway session for every valid cart line and
// records one pending enrollment per line under the shared session id. The
// cart itself is untouched: it is only cleared by the completed webhook, so a
// gateway timeout or a crash here leaves no half-updated cart.
func (c *checkoutCommandsImpl) StartCartCheckout(ctx context.Context, owner cart.Owner, customer enrollment.Customer) (*CheckoutResult, error) {
	var lines []checkoutLine
	var cartID uuid.UUID
	err := c.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		snapshot, err := c.cartRepo.FindByOwner(ctx, dbtx, owner)
		if err != nil {
			return err
		}
		if snapshot.IsEmpty() {
			return ErrCartEmpty
		}
		cartID, err = c.cartRepo.FindCartID(ctx, dbtx, owner)
		if err != nil {
			return err
		}
		for _, l := range snapshot.Lines() {
			line, err := c.resolveLine(ctx, dbtx, l.WorkshopID, l.PricingOptionID)
			if err != nil {
				return err
			}
			lines = append(lines, *line)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metadata := map[string]string{gateway.MetaCartID: cartID.String()}
	return c.openSessionAndRecord(ctx, lines, customer, metadata)
}

// StartWorkshopCheckout sells a single workshop, optionally under a waitlist
// claim. A valid claim bypasses the capacity check: the claimed seat is the
// one the coordinator freed.
func (c *checkoutCommandsImpl) StartWorkshopCheckout(ctx context.Context, params SingleCheckoutParams) (*CheckoutResult, error) {
	claimed := params.ClaimToken != "" && params.ClaimEntryID != nil
	if claimed {
		if _, err := c.tokens.Validate(ctx, params.ClaimToken, *params.ClaimEntryID); err != nil {
			return nil, err
		}
	}

	var line *checkoutLine
	err := c.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		if claimed {
			line, err = c.resolveLineUnchecked(ctx, dbtx, params.WorkshopID, params.PricingOptionID)
		} else {
			line, err = c.resolveLine(ctx, dbtx, params.WorkshopID, params.PricingOptionID)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	metadata := map[string]string{}
	if claimed {
		metadata[gateway.MetaWaitlistEntryID] = params.ClaimEntryID.String()
		metadata[gateway.MetaClaimToken] = params.ClaimToken
	}
	return c.openSessionAndRecord(ctx, []checkoutLine{*line}, params.Customer, metadata)
}

func (c *checkoutCommandsImpl) openSessionAndRecord(
	ctx context.Context,
	lines []checkoutLine,
	customer enrollment.Customer,
	metadata map[string]string,
) (*CheckoutResult, error) {
	workshopIDs := make([]string, len(lines))
	pricingIDs := make([]string, len(lines))
	items := make([]gateway.CheckoutLineItem, len(lines))
	currency := ""
	for i, l := range lines {
		workshopIDs[i] = l.workshop.ID().String()
		pricingIDs[i] = metaNoPricingOption
		if l.pricingOptionID != nil {
			pricingIDs[i] = l.pricingOptionID.String()
		}
		items[i] = gateway.CheckoutLineItem{
			Name:           l.workshop.Title(),
			UnitPriceCents: l.priceCents,
			Quantity:       1,
		}
		currency = l.workshop.Currency()
	}
	metadata[metaWorkshopIDs] = strings.Join(workshopIDs, metaListSeparator)
	metadata[metaPricingOptionIDs] = strings.Join(pricingIDs, metaListSeparator)

	session, err := c.gatewayClient.CreateCheckoutSession(ctx, gateway.CheckoutSessionParams{
		LineItems:     items,
		CustomerEmail: customer.Email(),
		Currency:      currency,
		SuccessURL:    c.cfg.SuccessURL,
		CancelURL:     c.cfg.CancelURL,
		Metadata:      metadata,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, errs.Mark(err, ErrGatewayTimeout)
		}
		return nil, errs.Mark(err, ErrCheckoutFailed)
	}

	// Pending rows are inert bookkeeping until a webhook lands; if this write
	// fails after the gateway call succeeded, the completed webhook recreates
	// them from the session metadata.
	err = c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		for _, l := range lines {
			pending, err := enrollment.NewPending(
				l.workshop.ID(), customer, l.pricingOptionID, l.priceCents, l.workshop.Currency(), session.ID,
			)
			if err != nil {
				return err
			}
			if err := c.enrollmentRepo.Create(ctx, tx, pending); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrCheckoutFailed)
	}

	return &CheckoutResult{GatewaySessionID: session.ID, CheckoutURL: session.URL}, nil
}

func (c *checkoutCommandsImpl) resolveLine(ctx context.Context, dbtx db.DBTX, workshopID uuid.UUID, pricingOptionID *uuid.UUID) (*checkoutLine, error) {
	w, err := loadSellable(ctx, dbtx, c.workshopRepo, workshopID)
	if err != nil {
		return nil, err
	}
	opt, err := resolvePricing(w, pricingOptionID)
	if err != nil {
		return nil, err
	}
	return &checkoutLine{workshop: w, pricingOptionID: pricingOptionID, priceCents: opt.PriceCents}, nil
}

// resolveLineUnchecked skips the seat check for claim-backed checkouts.
func (c *checkoutCommandsImpl) resolveLineUnchecked(ctx context.Context, dbtx db.DBTX, workshopID uuid.UUID, pricingOptionID *uuid.UUID) (*checkoutLine, error) {
	w, err := c.workshopRepo.FindByID(ctx, dbtx, workshopID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrWorkshopNotFound
		}
		return nil, err
	}
	if !w.IsOpenForCheckout() {
		return nil, ErrWorkshopUnavailable
	}
	opt, err := resolvePricing(w, pricingOptionID)
	if err != nil {
		return nil, err
	}
	return &checkoutLine{workshop: w, pricingOptionID: pricingOptionID, priceCents: opt.PriceCents}, nil
}
