package enrollment

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusRefunded  Status = "refunded"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled, StatusRefunded, StatusFailed:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no automated event may move the status further.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusRefunded, StatusFailed, StatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransition encodes the automated state machine. Transitions are monotone:
// once a status leaves pending it never returns, and terminal states accept
// nothing. Administrator overrides go through CanAdminTransition instead.
func (s Status) CanTransition(to Status) bool {
	switch s {
	case StatusPending:
		return to == StatusCompleted || to == StatusFailed || to == StatusCancelled
	case StatusCompleted:
		return to == StatusRefunded
	default:
		return false
	}
}

// CanAdminTransition additionally allows the explicit administrator override
// of cancelling a completed enrollment.
func (s Status) CanAdminTransition(to Status) bool {
	if s.CanTransition(to) {
		return true
	}
	return s == StatusCompleted && to == StatusCancelled
}

// OccupiesSeat reports whether the enrollment counts against workshop
// capacity.
func (s Status) OccupiesSeat() bool {
	return s == StatusCompleted
}
