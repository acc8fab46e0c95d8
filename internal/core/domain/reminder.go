package domain

import "time"

// Reminder is a stored medication reminder. ReminderTime is always expressed
// in the fixed local timezone, unlike appointments which are kept in UTC.
//
// Sent is persisted but nothing ever sets it: reminders are not dispatched.
type Reminder struct {
	ID           int64     `json:"id"`
	PatientName  string    `json:"patientName"`
	Medication   string    `json:"medication"`
	ReminderTime time.Time `json:"reminderTime"`
	Sent         bool      `json:"sent"`
}
