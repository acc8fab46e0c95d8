package services

import (
	"context"

	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
	"github.com/SscSPs/healthcare_assistant_app/internal/dto"
)

// ProfileSvc is the medical profile store.
type ProfileSvc interface {
	// UpsertProfile replaces the user's whole profile row with the given
	// fields. A previously stored picture is dropped.
	UpsertProfile(ctx context.Context, username string, req dto.UpsertProfileRequest) (*domain.Profile, error)

	// UpsertPicture replaces the user's whole profile row with one holding
	// only the picture. Previously saved text fields are dropped.
	UpsertPicture(ctx context.Context, username string, picture []byte) error

	// GetPicture returns the stored picture, or nil when there is none.
	GetPicture(ctx context.Context, username string) ([]byte, error)

	// GetProfile returns the stored profile, or apperrors.ErrNotFound.
	GetProfile(ctx context.Context, username string) (*domain.Profile, error)
}
