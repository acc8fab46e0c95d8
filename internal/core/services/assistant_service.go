package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
	"github.com/SscSPs/healthcare_assistant_app/internal/core/ports"
	portssvc "github.com/SscSPs/healthcare_assistant_app/internal/core/ports/services"
)

type assistantService struct {
	BaseService
	generator ports.TextGenerator
	params    domain.GenerationParams
}

// NewAssistantService creates the chat gateway over generator.
func NewAssistantService(generator ports.TextGenerator, params domain.GenerationParams) portssvc.AssistantSvc {
	return &assistantService{generator: generator, params: params}
}

var _ portssvc.AssistantSvc = (*assistantService)(nil)

// Ask never fails: a generation error is rendered into the reply text.
func (s *assistantService) Ask(ctx context.Context, message string) string {
	reply, err := s.generator.Generate(ctx, message, s.params)
	if err != nil {
		s.LogError(ctx, err, "Text generation failed")
		return fmt.Sprintf("Error: %v", err)
	}
	return reply + "\n\n" + domain.Disclaimer
}
