package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
	portsrepo "github.com/SscSPs/healthcare_assistant_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/healthcare_assistant_app/internal/core/ports/services"
)

type appointmentService struct {
	BaseService
	repo portsrepo.AppointmentRepositoryFacade
	loc  *time.Location
}

// NewAppointmentService creates the appointment ledger. Naive booking times
// are read in loc.
func NewAppointmentService(repo portsrepo.AppointmentRepositoryFacade, loc *time.Location) portssvc.AppointmentSvc {
	return &appointmentService{repo: repo, loc: loc}
}

var _ portssvc.AppointmentSvc = (*appointmentService)(nil)

func (s *appointmentService) BookAppointment(ctx context.Context, patientName, doctorName string, when domain.Timestamp) (*domain.Appointment, error) {
	appointment, err := s.repo.SaveAppointment(ctx, domain.Appointment{
		PatientName:         patientName,
		DoctorName:          doctorName,
		AppointmentDatetime: domain.AppointmentInstant(when, s.loc),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to book appointment", slog.String("patient", patientName))
		return nil, err
	}
	s.LogInfo(ctx, "Appointment booked",
		slog.Int64("appointment_id", appointment.ID),
		slog.String("patient", patientName),
		slog.String("doctor", doctorName))
	return appointment, nil
}

func (s *appointmentService) ListAppointments(ctx context.Context, patientName string) ([]domain.Appointment, error) {
	appointments, err := s.repo.FindAppointmentsByPatient(ctx, patientName)
	if err != nil {
		s.LogError(ctx, err, "Failed to list appointments", slog.String("patient", patientName))
		return nil, err
	}
	return appointments, nil
}

func (s *appointmentService) DeleteAppointment(ctx context.Context, appointmentID int64) error {
	if err := s.repo.DeleteAppointment(ctx, appointmentID); err != nil {
		s.LogError(ctx, err, "Failed to delete appointment", slog.Int64("appointment_id", appointmentID))
		return err
	}
	return nil
}
