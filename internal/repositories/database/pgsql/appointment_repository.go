package pgsql

import (
	"context"

	"github.com/SscSPs/healthcare_assistant_app/internal/apperrors"
	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
	portsrepo "github.com/SscSPs/healthcare_assistant_app/internal/core/ports/repositories"
)

type PgxAppointmentRepository struct {
	BaseRepository
}

func newPgxAppointmentRepository(db Querier) portsrepo.AppointmentRepositoryFacade {
	return &PgxAppointmentRepository{BaseRepository{DB: db}}
}

var _ portsrepo.AppointmentRepositoryFacade = (*PgxAppointmentRepository)(nil)

// SaveAppointment stores the time as an ISO-8601 string in UTC.
func (r *PgxAppointmentRepository) SaveAppointment(ctx context.Context, appointment domain.Appointment) (*domain.Appointment, error) {
	appointment.AppointmentDatetime = appointment.AppointmentDatetime.UTC()
	query := `
        INSERT INTO appointments (patient_name, doctor_name, appointment_datetime)
        VALUES ($1, $2, $3)
        RETURNING id;
    `
	err := r.DB.QueryRow(ctx, query,
		appointment.PatientName,
		appointment.DoctorName,
		domain.FormatISO(appointment.AppointmentDatetime),
	).Scan(&appointment.ID)
	if err != nil {
		return nil, apperrors.Storage("failed to save appointment", err)
	}
	return &appointment, nil
}

func (r *PgxAppointmentRepository) FindAppointmentsByPatient(ctx context.Context, patientName string) ([]domain.Appointment, error) {
	query := `
        SELECT id, patient_name, doctor_name, appointment_datetime
        FROM appointments
        WHERE patient_name = $1
        ORDER BY appointment_datetime::timestamptz ASC, id ASC;
    `
	rows, err := r.DB.Query(ctx, query, patientName)
	if err != nil {
		return nil, apperrors.Storage("failed to query appointments", err)
	}
	defer rows.Close()

	appointments := []domain.Appointment{}
	for rows.Next() {
		var a domain.Appointment
		var stored string
		if err := rows.Scan(&a.ID, &a.PatientName, &a.DoctorName, &stored); err != nil {
			return nil, apperrors.Storage("failed to scan appointment row", err)
		}
		when, err := domain.ParseISO(stored)
		if err != nil {
			return nil, apperrors.Storage("corrupt appointment row", err)
		}
		a.AppointmentDatetime = when.UTC()
		appointments = append(appointments, a)
	}

	if rows.Err() != nil {
		return nil, apperrors.Storage("error iterating appointment rows", rows.Err())
	}

	return appointments, nil
}

func (r *PgxAppointmentRepository) DeleteAppointment(ctx context.Context, id int64) error {
	if _, err := r.DB.Exec(ctx, `DELETE FROM appointments WHERE id = $1;`, id); err != nil {
		return apperrors.Storage("failed to delete appointment", err)
	}
	return nil
}
