package cart

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyInCart = errors.New("workshop already in cart")
	ErrItemNotFound  = errors.New("workshop not in cart")
)

type Line struct {
	WorkshopID      uuid.UUID
	PricingOptionID *uuid.UUID
	UnitPriceCents  int64
	AddedAt         time.Time
}

// Snapshot is the cart state as read from the store. Order is irrelevant; the
// invariant is at most one line per workshop id.
type Snapshot struct {
	owner Owner
	lines []Line
}

func NewSnapshot(owner Owner, lines []Line) Snapshot {
	return Snapshot{owner: owner, lines: lines}
}

func (s Snapshot) Owner() Owner  { return s.owner }
func (s Snapshot) Lines() []Line { return s.lines }
func (s Snapshot) IsEmpty() bool { return len(s.lines) == 0 }
func (s Snapshot) Size() int     { return len(s.lines) }

func (s Snapshot) Contains(workshopID uuid.UUID) bool {
	for _, l := range s.lines {
		if l.WorkshopID == workshopID {
			return true
		}
	}
	return false
}

func (s Snapshot) Line(workshopID uuid.UUID) (Line, bool) {
	for _, l := range s.lines {
		if l.WorkshopID == workshopID {
			return l, true
		}
	}
	return Line{}, false
}

func (s Snapshot) TotalCents() int64 {
	var total int64
	for _, l := range s.lines {
		total += l.UnitPriceCents
	}
	return total
}

// WithLine returns a new snapshot with the line appended, enforcing cart
// uniqueness.
func (s Snapshot) WithLine(line Line) (Snapshot, error) {
	if s.Contains(line.WorkshopID) {
		return s, ErrAlreadyInCart
	}
	lines := make([]Line, 0, len(s.lines)+1)
	lines = append(lines, s.lines...)
	lines = append(lines, line)
	return Snapshot{owner: s.owner, lines: lines}, nil
}

func (s Snapshot) WithoutLine(workshopID uuid.UUID) (Snapshot, error) {
	if !s.Contains(workshopID) {
		return s, ErrItemNotFound
	}
	lines := make([]Line, 0, len(s.lines)-1)
	for _, l := range s.lines {
		if l.WorkshopID != workshopID {
			lines = append(lines, l)
		}
	}
	return Snapshot{owner: s.owner, lines: lines}, nil
}

// MergeLines computes the lines the account cart gains from a session cart:
// only lines whose workshop id the account cart does not already hold. On a
// tie the account cart's line wins.
func MergeLines(account, session Snapshot) []Line {
	var added []Line
	for _, l := range session.lines {
		if !account.Contains(l.WorkshopID) {
			added = append(added, l)
		}
	}
	return added
}
