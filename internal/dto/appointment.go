package dto

import (
	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
)

// When parses AppointmentDatetime. A naive value with an explicit Timezone is
// localized here; without one it stays naive for the ledger to localize.
func (r BookAppointmentRequest) When() (domain.Timestamp, error) {
	ts, err := domain.ParseTimestamp(r.AppointmentDatetime)
	if err != nil || ts.Aware || r.Timezone == "" {
		return ts, err
	}
	loc, err := domain.LoadLocation(r.Timezone)
	if err != nil {
		return domain.Timestamp{}, err
	}
	return domain.AwareTimestamp(domain.Localize(ts, loc)), nil
}

// BookAppointmentRequest is the appointment booking form. AppointmentDatetime
// may be naive ("2025-06-01 10:00") or carry an offset; a naive value is read
// in Timezone, or in the default timezone when Timezone is empty.
type BookAppointmentRequest struct {
	DoctorName          string `json:"doctorName" binding:"required"`
	AppointmentDatetime string `json:"appointmentDatetime" binding:"required,timestamp"`
	Timezone            string `json:"timezone" binding:"omitempty,timezone"`
}

// AppointmentResponse is one row of the appointments table.
type AppointmentResponse struct {
	AppointmentID       int64  `json:"appointmentID"`
	DoctorName          string `json:"doctorName"`
	AppointmentDatetime string `json:"appointmentDatetime"` // ISO-8601, UTC
	Display             string `json:"display"`
}

// ListAppointmentsResponse wraps the patient's appointments, oldest first.
type ListAppointmentsResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// BookAppointmentResponse is returned after a booking.
type BookAppointmentResponse struct {
	Message     string              `json:"message"`
	Appointment AppointmentResponse `json:"appointment"`
}

// DoctorsResponse lists the doctors that can be booked.
type DoctorsResponse struct {
	Doctors []string `json:"doctors"`
}

// ToAppointmentResponse converts a domain.Appointment to its DTO.
func ToAppointmentResponse(a *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		AppointmentID:       a.ID,
		DoctorName:          a.DoctorName,
		AppointmentDatetime: domain.FormatISO(a.AppointmentDatetime),
		Display:             domain.FormatDisplay(a.AppointmentDatetime),
	}
}

// ToListAppointmentsResponse converts a slice of domain.Appointment.
func ToListAppointmentsResponse(appointments []domain.Appointment) ListAppointmentsResponse {
	resp := ListAppointmentsResponse{Appointments: make([]AppointmentResponse, len(appointments))}
	for i := range appointments {
		resp.Appointments[i] = ToAppointmentResponse(&appointments[i])
	}
	return resp
}
