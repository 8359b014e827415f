package appointment

import "strings"

// ===============================
// Appointment Status
// ===============================

// Status is the canonical, upper-case form. The backend and the old UI mix
// cases ("Confirmed", "CONFIRMED", "confirmed"); everything entering this
// layer goes through ParseStatus so comparisons never re-derive variants.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

func ParseStatus(raw string) Status {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "CONFIRMED":
		return StatusConfirmed
	case "COMPLETED":
		return StatusCompleted
	case "CANCELLED":
		return StatusCancelled
	default:
		return StatusPending
	}
}

// Display returns the lower-case form the UI renders in badges.
func (s Status) Display() string {
	return strings.ToLower(string(s))
}

func (s Status) IsPending() bool {
	return s == StatusPending
}
