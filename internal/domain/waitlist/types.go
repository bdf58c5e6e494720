package waitlist

type Status string

const (
	StatusWaiting   Status = "waiting"
	StatusNotified  Status = "notified"
	StatusClaimed   Status = "claimed"
	StatusConverted Status = "converted"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusNotified, StatusClaimed, StatusConverted, StatusExpired, StatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransition encodes the entry lifecycle. A converted entry is immutable.
func (s Status) CanTransition(to Status) bool {
	switch s {
	case StatusWaiting:
		return to == StatusNotified || to == StatusCancelled
	case StatusNotified:
		return to == StatusClaimed || to == StatusConverted || to == StatusExpired || to == StatusCancelled
	case StatusClaimed:
		return to == StatusConverted || to == StatusExpired
	default:
		return false
	}
}
