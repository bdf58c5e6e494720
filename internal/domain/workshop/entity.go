package workshop

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCapacity      = errors.New("capacity cannot be negative")
	ErrPricingOptionUnknown = errors.New("pricing option does not belong to this workshop")
	ErrNoDefaultPricing     = errors.New("workshop has no default pricing option")
)

// UnlimitedCapacity is the stored capacity value meaning "no seat limit".
const UnlimitedCapacity = 0

type PricingOption struct {
	ID         uuid.UUID
	Label      string
	PriceCents int64
	IsDefault  bool
}

// Workshop is read-only to the enrollment pipeline; administrators own its
// lifecycle. The confirmed-enrollment count is derived at read time, never
// stored here.
type Workshop struct {
	id              uuid.UUID
	title           string
	capacity        int
	waitlistEnabled bool
	published       bool
	checkoutEnabled bool
	basePriceCents  int64
	currency        string
	pricingOptions  []PricingOption
	createdAt       time.Time
	updatedAt       time.Time
}

func ReconstructWorkshop(
	id uuid.UUID,
	title string,
	capacity int,
	waitlistEnabled, published, checkoutEnabled bool,
	basePriceCents int64,
	currency string,
	pricingOptions []PricingOption,
	createdAt, updatedAt time.Time,
) (*Workshop, error) {
	if capacity < 0 {
		return nil, ErrInvalidCapacity
	}
	return &Workshop{
		id:              id,
		title:           title,
		capacity:        capacity,
		waitlistEnabled: waitlistEnabled,
		published:       published,
		checkoutEnabled: checkoutEnabled,
		basePriceCents:  basePriceCents,
		currency:        currency,
		pricingOptions:  pricingOptions,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (w *Workshop) ID() uuid.UUID                   { return w.id }
func (w *Workshop) Title() string                   { return w.title }
func (w *Workshop) Capacity() int                   { return w.capacity }
func (w *Workshop) WaitlistEnabled() bool           { return w.waitlistEnabled }
func (w *Workshop) BasePriceCents() int64           { return w.basePriceCents }
func (w *Workshop) Currency() string                { return w.currency }
func (w *Workshop) PricingOptions() []PricingOption { return w.pricingOptions }
func (w *Workshop) CreatedAt() time.Time            { return w.createdAt }
func (w *Workshop) UpdatedAt() time.Time            { return w.updatedAt }

func (w *Workshop) IsUnlimited() bool {
	return w.capacity == UnlimitedCapacity
}

// IsOpenForCheckout reports whether the enrollment pipeline may sell this
// workshop at all, independent of seat availability.
func (w *Workshop) IsOpenForCheckout() bool {
	return w.published && w.checkoutEnabled
}

// SpotsLeft computes remaining seats from the derived confirmed count.
// Returns -1 for unlimited-capacity workshops.
func (w *Workshop) SpotsLeft(confirmedCount int) int {
	if w.IsUnlimited() {
		return -1
	}
	left := w.capacity - confirmedCount
	if left < 0 {
		left = 0
	}
	return left
}

func (w *Workshop) HasSeats(confirmedCount int) bool {
	return w.IsUnlimited() || w.capacity > confirmedCount
}

// PricingOptionByID resolves an option id against this workshop's options,
// guarding against cross-workshop option substitution.
func (w *Workshop) PricingOptionByID(id uuid.UUID) (*PricingOption, error) {
	for i := range w.pricingOptions {
		if w.pricingOptions[i].ID == id {
			return &w.pricingOptions[i], nil
		}
	}
	return nil, ErrPricingOptionUnknown
}

// DefaultPricingOption falls back to the base price when no options exist.
func (w *Workshop) DefaultPricingOption() (*PricingOption, error) {
	if len(w.pricingOptions) == 0 {
		return &PricingOption{PriceCents: w.basePriceCents, IsDefault: true}, nil
	}
	for i := range w.pricingOptions {
		if w.pricingOptions[i].IsDefault {
			return &w.pricingOptions[i], nil
		}
	}
	return nil, ErrNoDefaultPricing
}
