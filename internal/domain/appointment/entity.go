package appointment

import (
	"strings"
	"time"
)

// ===============================
// Entity
// ===============================

type Appointment struct {
	ID   uint   `json:"id"`
	UUID string `json:"uuid"`

	ClientName     string `json:"client_name"`
	ClientLastName string `json:"client_last_name"`
	ClientPhone    string `json:"client_phone"`

	// Service is a display projection: the backend carries no service
	// field, the UI shows the notes (or "Appointment" when empty).
	Service string `json:"service"`
	Notes   string `json:"notes"`

	// Start is the single source of truth for scheduling. Zero when the
	// backend timestamp did not parse; such records are kept in lists but
	// never bucketed into the calendar.
	Start       time.Time `json:"start"`
	RawDateTime string    `json:"date_time"`

	Status Status `json:"status"`

	EmailReminder bool       `json:"email_reminder"`
	ReminderAt    *time.Time `json:"reminder_at,omitempty"`
	ReminderSent  bool       `json:"reminder_sent"`

	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// HasValidStart reports whether the backend timestamp parsed.
func (a Appointment) HasValidStart() bool {
	return !a.Start.IsZero()
}

// DisplayClientName trims and falls back to "Unknown Client" at the
// presentation boundary only; the stored value stays as received.
func (a Appointment) DisplayClientName() string {
	name := strings.TrimSpace(a.ClientName)
	if name == "" {
		return "Unknown Client"
	}
	return name
}

// DateLabel and TimeLabel are the el-GR projections the UI shows in
// non-calendar views. Both are derived from Start, never stored.
func (a Appointment) DateLabel(loc *time.Location) string {
	if !a.HasValidStart() {
		return ""
	}
	return a.Start.In(loc).Format("02/01/2006")
}

func (a Appointment) TimeLabel(loc *time.Location) string {
	if !a.HasValidStart() {
		return ""
	}
	return a.Start.In(loc).Format("15:04")
}
