package services

import (
	"context"
	"log/slog"
	"time"

	portssvc "github.com/SscSPs/healthcare_assistant_app/internal/core/ports/services"
	"github.com/SscSPs/healthcare_assistant_app/internal/platform/config"
	"github.com/SscSPs/healthcare_assistant_app/internal/utils"
)

// tokenService issues the JWTs that stand in for the logged-in session flag.
type tokenService struct {
	BaseService
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvc {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, username string) (string, time.Time, error) {
	token, expiresAt, err := utils.GenerateJWT(username, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("username", username))
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}
