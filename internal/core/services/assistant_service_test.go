package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/healthcare_assistant_app/internal/apperrors"
	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
	"github.com/SscSPs/healthcare_assistant_app/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func TestAsk_AppendsDisclaimer(t *testing.T) {
	ctx := context.Background()
	gen := new(MockTextGenerator)
	gen.On("Generate", ctx, "I have a headache", domain.DefaultGenerationParams).
		Return("Drink some water.", nil).Once()

	svc := services.NewAssistantService(gen, domain.DefaultGenerationParams)
	reply := svc.Ask(ctx, "I have a headache")

	assert.Equal(t, "Drink some water.\n\n"+domain.Disclaimer, reply)
	gen.AssertExpectations(t)
}

func TestAsk_EmptyReplyStillCarriesDisclaimer(t *testing.T) {
	ctx := context.Background()
	gen := new(MockTextGenerator)
	gen.On("Generate", ctx, "", domain.DefaultGenerationParams).Return("", nil).Once()

	reply := services.NewAssistantService(gen, domain.DefaultGenerationParams).Ask(ctx, "")

	assert.Equal(t, "\n\n"+domain.Disclaimer, reply)
}

func TestAsk_ErrorIsReturnedAsContent(t *testing.T) {
	ctx := context.Background()
	gen := new(MockTextGenerator)
	cause := fmt.Errorf("%w: %w", apperrors.ErrGateway, errors.New("model unavailable"))
	gen.On("Generate", ctx, "hello", domain.DefaultGenerationParams).Return("", cause).Once()

	reply := services.NewAssistantService(gen, domain.DefaultGenerationParams).Ask(ctx, "hello")

	assert.Equal(t, "Error: assistant gateway error: model unavailable", reply)
	assert.NotContains(t, reply, domain.Disclaimer)
}

func TestAsk_UsesConfiguredParams(t *testing.T) {
	ctx := context.Background()
	params := domain.GenerationParams{MaxLength: 64, Temperature: 0.2}
	gen := new(MockTextGenerator)
	gen.On("Generate", ctx, "hi", params).Return("hello", nil).Once()

	services.NewAssistantService(gen, params).Ask(ctx, "hi")

	gen.AssertExpectations(t)
}
