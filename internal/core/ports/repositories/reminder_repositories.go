package repositories

import (
	"context"

	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
)

// ReminderRepositoryFacade persists medication reminder rows.
type ReminderRepositoryFacade interface {
	// SaveReminder inserts a row with sent=false and returns it with its assigned ID.
	SaveReminder(ctx context.Context, reminder domain.Reminder) (*domain.Reminder, error)

	// FindRemindersByPatient returns the patient's rows ordered by time, oldest first.
	FindRemindersByPatient(ctx context.Context, patientName string) ([]domain.Reminder, error)

	// DeleteReminder removes the row with id. A missing row is not an error.
	DeleteReminder(ctx context.Context, id int64) error
}
