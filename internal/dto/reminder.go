package dto

import (
	"time"

	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
)

// When parses ReminderTime. A bare time of day is placed on today's date,
// taken from now, and left naive.
func (r SetReminderRequest) When(now time.Time) (domain.Timestamp, error) {
	if clock, err := time.Parse(ClockLayout, r.ReminderTime); err == nil {
		return domain.NaiveTimestamp(now.Year(), now.Month(), now.Day(), clock.Hour(), clock.Minute(), 0), nil
	}
	return domain.ParseTimestamp(r.ReminderTime)
}

// SetReminderRequest is the medicine reminder form. ReminderTime is either a
// time of day ("08:30", meaning today) or a full timestamp.
type SetReminderRequest struct {
	Medication   string `json:"medication" binding:"required"`
	ReminderTime string `json:"reminderTime" binding:"required,clock"`
}

// ReminderResponse is one row of the reminders table.
type ReminderResponse struct {
	ReminderID   int64  `json:"reminderID"`
	Medication   string `json:"medication"`
	ReminderTime string `json:"reminderTime"` // ISO-8601, local timezone
	Display      string `json:"display"`
	Sent         bool   `json:"sent"`
}

// ListRemindersResponse wraps the patient's reminders, oldest first.
type ListRemindersResponse struct {
	Reminders []ReminderResponse `json:"reminders"`
}

// SetReminderResponse is returned after scheduling a reminder.
type SetReminderResponse struct {
	Message  string           `json:"message"`
	Reminder ReminderResponse `json:"reminder"`
}

// ToReminderResponse converts a domain.Reminder to its DTO.
func ToReminderResponse(r *domain.Reminder) ReminderResponse {
	return ReminderResponse{
		ReminderID:   r.ID,
		Medication:   r.Medication,
		ReminderTime: domain.FormatISO(r.ReminderTime),
		Display:      domain.FormatDisplay(r.ReminderTime),
		Sent:         r.Sent,
	}
}

// ToListRemindersResponse converts a slice of domain.Reminder.
func ToListRemindersResponse(reminders []domain.Reminder) ListRemindersResponse {
	resp := ListRemindersResponse{Reminders: make([]ReminderResponse, len(reminders))}
	for i := range reminders {
		resp.Reminders[i] = ToReminderResponse(&reminders[i])
	}
	return resp
}
