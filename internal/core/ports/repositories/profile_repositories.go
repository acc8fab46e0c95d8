package repositories

import (
	"context"

	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
)

// ProfileReader defines read operations for profile rows
type ProfileReader interface {
	// FindProfileByUsername retrieves the profile row, or apperrors.ErrNotFound.
	FindProfileByUsername(ctx context.Context, username string) (*domain.Profile, error)
}

// ProfileWriter defines write operations for profile rows
type ProfileWriter interface {
	// ReplaceProfile inserts the row or replaces every column of the existing
	// row keyed by username, including the picture.
	ReplaceProfile(ctx context.Context, profile domain.Profile) error
}

// ProfileRepositoryFacade combines all profile-related repository interfaces
type ProfileRepositoryFacade interface {
	ProfileReader
	ProfileWriter
}
