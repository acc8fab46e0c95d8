package repositories

import (
	"context"

	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
)

// AppointmentRepositoryFacade persists appointment rows.
type AppointmentRepositoryFacade interface {
	// SaveAppointment inserts a row and returns it with its assigned ID.
	SaveAppointment(ctx context.Context, appointment domain.Appointment) (*domain.Appointment, error)

	// FindAppointmentsByPatient returns the patient's rows ordered by time, oldest first.
	FindAppointmentsByPatient(ctx context.Context, patientName string) ([]domain.Appointment, error)

	// DeleteAppointment removes the row with id. A missing row is not an error.
	DeleteAppointment(ctx context.Context, id int64) error
}
