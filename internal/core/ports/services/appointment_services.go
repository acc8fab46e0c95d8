package services

import (
	"context"

	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
)

// AppointmentSvc is the appointment ledger.
type AppointmentSvc interface {
	// BookAppointment stores an appointment with its time normalised to UTC.
	// A naive when is first read in the default timezone.
	BookAppointment(ctx context.Context, patientName, doctorName string, when domain.Timestamp) (*domain.Appointment, error)

	// ListAppointments returns the patient's appointments, oldest first.
	ListAppointments(ctx context.Context, patientName string) ([]domain.Appointment, error)

	// DeleteAppointment removes an appointment; unknown ids are not an error.
	DeleteAppointment(ctx context.Context, appointmentID int64) error
}
