package services

import (
	"context"

	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
)

// CredentialSvc registers and authenticates users. It never issues session
// tokens; session lifetime belongs to the presentation layer.
type CredentialSvc interface {
	// Register creates a user. It fails with apperrors.ErrInvalidFormat,
	// apperrors.ErrDuplicateUsername or apperrors.ErrStorage.
	Register(ctx context.Context, username, password, email string) (domain.StatusMessage, error)

	// Authenticate checks a username/password pair. It fails with
	// apperrors.ErrInvalidCredentials and never writes a row.
	Authenticate(ctx context.Context, username, password string) (domain.StatusMessage, error)
}
