package services

import (
	"context"
	"time"

	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
)

// TokenSvc issues the session tokens that keep a user logged in.
type TokenSvc interface {
	// GenerateAccessToken signs a token whose subject is username.
	GenerateAccessToken(ctx context.Context, username string) (string, time.Time, error)
}

// SessionSvc assembles and updates the per-user presentation state.
type SessionSvc interface {
	// Session returns the session of a logged-in user, chat history included.
	Session(username string) *domain.Session

	// AppendMessages adds lines to the user's chat transcript.
	AppendMessages(username string, messages ...domain.ChatMessage)

	// Reset forgets the user's transcript.
	Reset(username string)
}
