package handlers_test

import (
	"context"

	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
	portssvc "github.com/SscSPs/healthcare_assistant_app/internal/core/ports/services"
	"github.com/SscSPs/healthcare_assistant_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock CredentialService ---
type MockCredentialService struct {
	mock.Mock
}

func (m *MockCredentialService) Register(ctx context.Context, username, password, email string) (domain.StatusMessage, error) {
	args := m.Called(ctx, username, password, email)
	return args.Get(0).(domain.StatusMessage), args.Error(1)
}

func (m *MockCredentialService) Authenticate(ctx context.Context, username, password string) (domain.StatusMessage, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(domain.StatusMessage), args.Error(1)
}

var _ portssvc.CredentialSvc = (*MockCredentialService)(nil)

// --- Mock AppointmentService ---
type MockAppointmentService struct {
	mock.Mock
}

func (m *MockAppointmentService) BookAppointment(ctx context.Context, patientName, doctorName string, when domain.Timestamp) (*domain.Appointment, error) {
	args := m.Called(ctx, patientName, doctorName, when)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}

func (m *MockAppointmentService) ListAppointments(ctx context.Context, patientName string) ([]domain.Appointment, error) {
	args := m.Called(ctx, patientName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Appointment), args.Error(1)
}

func (m *MockAppointmentService) DeleteAppointment(ctx context.Context, appointmentID int64) error {
	args := m.Called(ctx, appointmentID)
	return args.Error(0)
}

var _ portssvc.AppointmentSvc = (*MockAppointmentService)(nil)

// --- Mock ReminderService ---
type MockReminderService struct {
	mock.Mock
}

func (m *MockReminderService) ScheduleReminder(ctx context.Context, patientName, medication string, when domain.Timestamp) (*domain.Reminder, error) {
	args := m.Called(ctx, patientName, medication, when)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reminder), args.Error(1)
}

func (m *MockReminderService) ListReminders(ctx context.Context, patientName string) ([]domain.Reminder, error) {
	args := m.Called(ctx, patientName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reminder), args.Error(1)
}

func (m *MockReminderService) DeleteReminder(ctx context.Context, reminderID int64) error {
	args := m.Called(ctx, reminderID)
	return args.Error(0)
}

var _ portssvc.ReminderSvc = (*MockReminderService)(nil)

// --- Mock ProfileService ---
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) UpsertProfile(ctx context.Context, username string, req dto.UpsertProfileRequest) (*domain.Profile, error) {
	args := m.Called(ctx, username, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileService) UpsertPicture(ctx context.Context, username string, picture []byte) error {
	args := m.Called(ctx, username, picture)
	return args.Error(0)
}

func (m *MockProfileService) GetPicture(ctx context.Context, username string) ([]byte, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockProfileService) GetProfile(ctx context.Context, username string) (*domain.Profile, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

var _ portssvc.ProfileSvc = (*MockProfileService)(nil)

// --- Mock AssistantService ---
type MockAssistantService struct {
	mock.Mock
}

func (m *MockAssistantService) Ask(ctx context.Context, message string) string {
	args := m.Called(ctx, message)
	return args.String(0)
}

var _ portssvc.AssistantSvc = (*MockAssistantService)(nil)
