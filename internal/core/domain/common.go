package domain

// StatusMessage is the human-readable outcome of a user action, shown as-is
// by the presentation layer.
type StatusMessage string

const (
	MsgSignupSuccess       StatusMessage = "Signup successful!"
	MsgLoginSuccess        StatusMessage = "Login successful!"
	MsgAppointmentBooked   StatusMessage = "Appointment booked!"
	MsgAppointmentDeleted  StatusMessage = "Appointment deleted!"
	MsgReminderSet         StatusMessage = "Medicine reminder set!"
	MsgReminderDeleted     StatusMessage = "Medicine reminder deleted!"
	MsgProfileUpdated      StatusMessage = "Profile Updated Successfully!"
	MsgProfilePictureSaved StatusMessage = "Profile picture saved!"
)
