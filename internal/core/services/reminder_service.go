package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
	portsrepo "github.com/SscSPs/healthcare_assistant_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/healthcare_assistant_app/internal/core/ports/services"
)

type reminderService struct {
	BaseService
	repo portsrepo.ReminderRepositoryFacade
	loc  *time.Location
}

// NewReminderService creates the reminder ledger. Reminder times are stored
// in loc, unlike appointments which are stored in UTC.
func NewReminderService(repo portsrepo.ReminderRepositoryFacade, loc *time.Location) portssvc.ReminderSvc {
	return &reminderService{repo: repo, loc: loc}
}

var _ portssvc.ReminderSvc = (*reminderService)(nil)

func (s *reminderService) ScheduleReminder(ctx context.Context, patientName, medication string, when domain.Timestamp) (*domain.Reminder, error) {
	reminder, err := s.repo.SaveReminder(ctx, domain.Reminder{
		PatientName:  patientName,
		Medication:   medication,
		ReminderTime: domain.ReminderInstant(when, s.loc),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to set reminder", slog.String("patient", patientName))
		return nil, err
	}
	s.LogInfo(ctx, "Reminder set",
		slog.Int64("reminder_id", reminder.ID),
		slog.String("patient", patientName))
	return reminder, nil
}

func (s *reminderService) ListReminders(ctx context.Context, patientName string) ([]domain.Reminder, error) {
	reminders, err := s.repo.FindRemindersByPatient(ctx, patientName)
	if err != nil {
		s.LogError(ctx, err, "Failed to list reminders", slog.String("patient", patientName))
		return nil, err
	}
	for i := range reminders {
		reminders[i].ReminderTime = reminders[i].ReminderTime.In(s.loc)
	}
	return reminders, nil
}

func (s *reminderService) DeleteReminder(ctx context.Context, reminderID int64) error {
	if err := s.repo.DeleteReminder(ctx, reminderID); err != nil {
		s.LogError(ctx, err, "Failed to delete reminder", slog.Int64("reminder_id", reminderID))
		return err
	}
	return nil
}
