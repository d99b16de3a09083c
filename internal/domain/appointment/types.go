package appointment

// Status is the lifecycle state of an appointment. Only cancelled
// appointments release their slot.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// OccupiesSlot reports whether the appointment blocks its interval for
// conflict purposes.
func (s Status) OccupiesSlot() bool {
	return s != StatusCancelled
}

// CanTransitionTo encodes the store-side lifecycle:
// scheduled → confirmed|cancelled, confirmed → completed|cancelled;
// cancelled and completed are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusScheduled:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}
