package services

import (
	"context"

	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
)

// ReminderSvc is the medication reminder ledger.
type ReminderSvc interface {
	// ScheduleReminder stores a reminder with its time expressed in the local
	// timezone (not UTC) and sent=false.
	ScheduleReminder(ctx context.Context, patientName, medication string, when domain.Timestamp) (*domain.Reminder, error)

	// ListReminders returns the patient's reminders, oldest first.
	ListReminders(ctx context.Context, patientName string) ([]domain.Reminder, error)

	// DeleteReminder removes a reminder; unknown ids are not an error.
	DeleteReminder(ctx context.Context, reminderID int64) error
}
