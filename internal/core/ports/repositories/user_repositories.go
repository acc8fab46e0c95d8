package repositories

import (
	"context"

	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
)

// UserReader defines read operations for credential rows
type UserReader interface {
	// FindUserByUsername retrieves a user by username, or apperrors.ErrNotFound.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserWriter defines write operations for credential rows
type UserWriter interface {
	// SaveUser inserts a new user. A taken username yields apperrors.ErrDuplicateUsername.
	SaveUser(ctx context.Context, user domain.User) (*domain.User, error)
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
