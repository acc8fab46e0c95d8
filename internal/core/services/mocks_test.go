package services_test

import (
	"context"

	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	var saved *domain.User
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.User)
	}
	return saved, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

// --- Mock AppointmentRepository ---
type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) SaveAppointment(ctx context.Context, appointment domain.Appointment) (*domain.Appointment, error) {
	args := m.Called(ctx, appointment)
	var saved *domain.Appointment
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.Appointment)
	}
	return saved, args.Error(1)
}

func (m *MockAppointmentRepository) FindAppointmentsByPatient(ctx context.Context, patientName string) ([]domain.Appointment, error) {
	args := m.Called(ctx, patientName)
	var out []domain.Appointment
	if args.Get(0) != nil {
		out = args.Get(0).([]domain.Appointment)
	}
	return out, args.Error(1)
}

func (m *MockAppointmentRepository) DeleteAppointment(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Mock ReminderRepository ---
type MockReminderRepository struct {
	mock.Mock
}

func (m *MockReminderRepository) SaveReminder(ctx context.Context, reminder domain.Reminder) (*domain.Reminder, error) {
	args := m.Called(ctx, reminder)
	var saved *domain.Reminder
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.Reminder)
	}
	return saved, args.Error(1)
}

func (m *MockReminderRepository) FindRemindersByPatient(ctx context.Context, patientName string) ([]domain.Reminder, error) {
	args := m.Called(ctx, patientName)
	var out []domain.Reminder
	if args.Get(0) != nil {
		out = args.Get(0).([]domain.Reminder)
	}
	return out, args.Error(1)
}

func (m *MockReminderRepository) DeleteReminder(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Mock ProfileRepository ---
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindProfileByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	args := m.Called(ctx, username)
	var p *domain.Profile
	if args.Get(0) != nil {
		p = args.Get(0).(*domain.Profile)
	}
	return p, args.Error(1)
}

func (m *MockProfileRepository) ReplaceProfile(ctx context.Context, profile domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// --- Mock TextGenerator ---
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Generate(ctx context.Context, prompt string, params domain.GenerationParams) (string, error) {
	args := m.Called(ctx, prompt, params)
	return args.String(0), args.Error(1)
}
