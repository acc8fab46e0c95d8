package pgsql

import (
	"context"

	"github.com/SscSPs/healthcare_assistant_app/internal/apperrors"
	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
	portsrepo "github.com/SscSPs/healthcare_assistant_app/internal/core/ports/repositories"
)

type PgxReminderRepository struct {
	BaseRepository
}

func newPgxReminderRepository(db Querier) portsrepo.ReminderRepositoryFacade {
	return &PgxReminderRepository{BaseRepository{DB: db}}
}

var _ portsrepo.ReminderRepositoryFacade = (*PgxReminderRepository)(nil)

// SaveReminder stores the time as an ISO-8601 string keeping the offset it
// was given; the service has already converted it to local time.
func (r *PgxReminderRepository) SaveReminder(ctx context.Context, reminder domain.Reminder) (*domain.Reminder, error) {
	query := `
        INSERT INTO reminders (patient_name, medication, reminder_time)
        VALUES ($1, $2, $3)
        RETURNING id, sent;
    `
	err := r.DB.QueryRow(ctx, query,
		reminder.PatientName,
		reminder.Medication,
		domain.FormatISO(reminder.ReminderTime),
	).Scan(&reminder.ID, &reminder.Sent)
	if err != nil {
		return nil, apperrors.Storage("failed to save reminder", err)
	}
	return &reminder, nil
}

func (r *PgxReminderRepository) FindRemindersByPatient(ctx context.Context, patientName string) ([]domain.Reminder, error) {
	query := `
        SELECT id, patient_name, medication, reminder_time, sent
        FROM reminders
        WHERE patient_name = $1
        ORDER BY reminder_time::timestamptz ASC, id ASC;
    `
	rows, err := r.DB.Query(ctx, query, patientName)
	if err != nil {
		return nil, apperrors.Storage("failed to query reminders", err)
	}
	defer rows.Close()

	reminders := []domain.Reminder{}
	for rows.Next() {
		var rem domain.Reminder
		var stored string
		if err := rows.Scan(&rem.ID, &rem.PatientName, &rem.Medication, &stored, &rem.Sent); err != nil {
			return nil, apperrors.Storage("failed to scan reminder row", err)
		}
		if rem.ReminderTime, err = domain.ParseISO(stored); err != nil {
			return nil, apperrors.Storage("corrupt reminder row", err)
		}
		reminders = append(reminders, rem)
	}

	if rows.Err() != nil {
		return nil, apperrors.Storage("error iterating reminder rows", rows.Err())
	}

	return reminders, nil
}

func (r *PgxReminderRepository) DeleteReminder(ctx context.Context, id int64) error {
	if _, err := r.DB.Exec(ctx, `DELETE FROM reminders WHERE id = $1;`, id); err != nil {
		return apperrors.Storage("failed to delete reminder", err)
	}
	return nil
}
