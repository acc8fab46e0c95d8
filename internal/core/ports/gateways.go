package ports

import (
	"context"

	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
)

// TextGenerator is the external text-generation capability behind the chat
// assistant: text in, text out.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, params domain.GenerationParams) (string, error)
}

// PasswordHasher is the one-way salted hash used for credentials.
type PasswordHasher interface {
	Hash(password string) ([]byte, error)
	Verify(password string, hash []byte) bool
}
