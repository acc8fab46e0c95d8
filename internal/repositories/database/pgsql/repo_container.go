package pgsql

import (
	portsrepo "github.com/SscSPs/healthcare_assistant_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository onto the same store handle.
func NewRepositoryProvider(db Querier) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(db),
		ProfileRepo:     newPgxProfileRepository(db),
		AppointmentRepo: newPgxAppointmentRepository(db),
		ReminderRepo:    newPgxReminderRepository(db),
	}
}
