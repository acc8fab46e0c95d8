package services

import (
	"fmt"

	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
	"github.com/SscSPs/healthcare_assistant_app/internal/core/ports"
	portsrepo "github.com/SscSPs/healthcare_assistant_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/healthcare_assistant_app/internal/core/ports/services"
	"github.com/SscSPs/healthcare_assistant_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, generator ports.TextGenerator, hasher ports.PasswordHasher) (*portssvc.ServiceContainer, error) {
	loc, err := domain.LoadLocation(cfg.DefaultTimezone)
	if err != nil {
		return nil, err
	}

	sessions, err := NewSessionService(cfg.ChatHistorySessions, cfg.ChatHistorySize)
	if err != nil {
		return nil, fmt.Errorf("failed to create session store: %w", err)
	}

	params := domain.DefaultGenerationParams
	if cfg.AssistantMaxLength > 0 {
		params.MaxLength = cfg.AssistantMaxLength
	}
	if cfg.AssistantTemperature > 0 {
		params.Temperature = cfg.AssistantTemperature
	}

	return &portssvc.ServiceContainer{
		Credential:  NewCredentialService(repos.UserRepo, hasher),
		Token:       NewTokenService(cfg),
		Session:     sessions,
		Appointment: NewAppointmentService(repos.AppointmentRepo, loc),
		Reminder:    NewReminderService(repos.ReminderRepo, loc),
		Profile:     NewProfileService(repos.ProfileRepo),
		Assistant:   NewAssistantService(generator, params),
	}, nil
}
