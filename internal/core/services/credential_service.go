package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/healthcare_assistant_app/internal/apperrors"
	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
	"github.com/SscSPs/healthcare_assistant_app/internal/core/ports"
	portsrepo "github.com/SscSPs/healthcare_assistant_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/healthcare_assistant_app/internal/core/ports/services"
)

type credentialService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	hasher   ports.PasswordHasher
}

// NewCredentialService creates the credential store over userRepo.
func NewCredentialService(userRepo portsrepo.UserRepositoryFacade, hasher ports.PasswordHasher) portssvc.CredentialSvc {
	return &credentialService{userRepo: userRepo, hasher: hasher}
}

var _ portssvc.CredentialSvc = (*credentialService)(nil)

func (s *credentialService) Register(ctx context.Context, username, password, email string) (domain.StatusMessage, error) {
	if !domain.ValidUsername(username) {
		return "", apperrors.ErrInvalidFormat
	}

	hash, err := s.hasher.Hash(password)
	if errors.Is(err, apperrors.ErrValidation) {
		return "", err
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password", slog.String("username", username))
		return "", apperrors.NewAppError(500, "failed to hash password", err)
	}

	user, err := s.userRepo.SaveUser(ctx, domain.User{
		Username:     username,
		PasswordHash: hash,
		Email:        email,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateUsername) {
			s.LogDebug(ctx, "Signup rejected, username taken", slog.String("username", username))
			return "", err
		}
		s.LogError(ctx, err, "Failed to save user", slog.String("username", username))
		return "", err
	}

	s.LogInfo(ctx, "User registered", slog.String("username", user.Username), slog.Int64("user_id", user.ID))
	return domain.MsgSignupSuccess, nil
}

func (s *credentialService) Authenticate(ctx context.Context, username, password string) (domain.StatusMessage, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		s.LogError(ctx, err, "Failed to look up user", slog.String("username", username))
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", apperrors.ErrInvalidCredentials
	}

	return domain.MsgLoginSuccess, nil
}
