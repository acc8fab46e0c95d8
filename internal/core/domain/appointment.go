package domain

import "time"

// Appointment is a booked visit. AppointmentDatetime is always in UTC.
type Appointment struct {
	ID                  int64     `json:"id"`
	PatientName         string    `json:"patientName"`
	DoctorName          string    `json:"doctorName"`
	AppointmentDatetime time.Time `json:"appointmentDatetime"`
}
