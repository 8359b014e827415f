package appointment

import (
	"time"
)

// ===============================
// Backend DTO
// ===============================

// ReadOnlyDTO is the wire shape of the backend's AppointmentReadOnlyDTO.
type ReadOnlyDTO struct {
	ID                  uint   `json:"id"`
	UUID                string `json:"uuid"`
	ClientName          string `json:"clientName"`
	ClientLastName      string `json:"clientLastName"`
	ClientPhone         string `json:"clientPhone"`
	Notes               string `json:"notes"`
	AppointmentDateTime string `json:"appointmentDateTime"`
	Status              string `json:"status"`
	EmailReminder       bool   `json:"emailReminder"`
	ReminderDateTime    string `json:"reminderDateTime"`
	ReminderSent        bool   `json:"reminderSent"`
	CreatedAt           string `json:"createdAt"`
	UpdatedAt           string `json:"updatedAt"`
}

// timestampLayouts covers the backend's ISO variants: zoned RFC3339 and the
// zoneless LocalDateTime serialization, with and without seconds.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func parseTimestamp(raw string, loc *time.Location) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t.In(loc), true
		}
	}
	return time.Time{}, false
}

// FromBackend decodes a backend DTO into the domain entity. A timestamp
// that does not parse leaves Start zero instead of failing: one malformed
// record must never take down a whole list or the calendar grid.
func FromBackend(dto ReadOnlyDTO, loc *time.Location) Appointment {
	start, _ := parseTimestamp(dto.AppointmentDateTime, loc)

	service := dto.Notes
	if service == "" {
		service = "Appointment"
	}

	var reminderAt *time.Time
	if t, ok := parseTimestamp(dto.ReminderDateTime, loc); ok {
		reminderAt = &t
	}

	return Appointment{
		ID:             dto.ID,
		UUID:           dto.UUID,
		ClientName:     dto.ClientName,
		ClientLastName: dto.ClientLastName,
		ClientPhone:    dto.ClientPhone,
		Service:        service,
		Notes:          dto.Notes,
		Start:          start,
		RawDateTime:    dto.AppointmentDateTime,
		Status:         ParseStatus(dto.Status),
		EmailReminder:  dto.EmailReminder,
		ReminderAt:     reminderAt,
		ReminderSent:   dto.ReminderSent,
		CreatedAt:      dto.CreatedAt,
		UpdatedAt:      dto.UpdatedAt,
	}
}

func FromBackendList(dtos []ReadOnlyDTO, loc *time.Location) []Appointment {
	out := make([]Appointment, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, FromBackend(dto, loc))
	}
	return out
}
