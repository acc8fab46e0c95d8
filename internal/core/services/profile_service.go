package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/healthcare_assistant_app/internal/apperrors"
	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
	portsrepo "github.com/SscSPs/healthcare_assistant_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/healthcare_assistant_app/internal/core/ports/services"
	"github.com/SscSPs/healthcare_assistant_app/internal/dto"
)

// profileService stores one profile row per user. Both writes replace the
// entire row, so saving the form drops the picture and saving a picture
// drops the form fields.
type profileService struct {
	BaseService
	repo portsrepo.ProfileRepositoryFacade
}

// NewProfileService creates the profile store.
func NewProfileService(repo portsrepo.ProfileRepositoryFacade) portssvc.ProfileSvc {
	return &profileService{repo: repo}
}

var _ portssvc.ProfileSvc = (*profileService)(nil)

func (s *profileService) UpsertProfile(ctx context.Context, username string, req dto.UpsertProfileRequest) (*domain.Profile, error) {
	profile := req.ToDomainProfile(username)
	if err := s.repo.ReplaceProfile(ctx, profile); err != nil {
		s.LogError(ctx, err, "Failed to save profile", slog.String("username", username))
		return nil, err
	}
	return &profile, nil
}

func (s *profileService) UpsertPicture(ctx context.Context, username string, picture []byte) error {
	if len(picture) == 0 {
		return apperrors.NewAppError(400, "empty picture", apperrors.ErrValidation)
	}
	if err := s.repo.ReplaceProfile(ctx, domain.Profile{Username: username, Picture: picture}); err != nil {
		s.LogError(ctx, err, "Failed to save profile picture", slog.String("username", username))
		return err
	}
	s.LogDebug(ctx, "Profile picture saved", slog.String("username", username), slog.Int("bytes", len(picture)))
	return nil
}

func (s *profileService) GetPicture(ctx context.Context, username string) ([]byte, error) {
	profile, err := s.repo.FindProfileByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		s.LogError(ctx, err, "Failed to load profile picture", slog.String("username", username))
		return nil, err
	}
	if !profile.HasPicture() {
		return nil, nil
	}
	return profile.Picture, nil
}

func (s *profileService) GetProfile(ctx context.Context, username string) (*domain.Profile, error) {
	profile, err := s.repo.FindProfileByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load profile", slog.String("username", username))
		}
		return nil, err
	}
	return profile, nil
}
