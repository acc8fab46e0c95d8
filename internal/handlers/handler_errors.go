package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/healthcare_assistant_app/internal/apperrors"
	"github.com/SscSPs/healthcare_assistant_app/internal/dto"
	"github.com/SscSPs/healthcare_assistant_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto a status code and a user-facing
// message. Unknown faults are logged and reported as a generic 500.
func respondError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	switch {
	case errors.Is(err, apperrors.ErrInvalidFormat):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid username (3-20 chars, alphanumeric)"})
	case errors.Is(err, apperrors.ErrDuplicateUsername):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Username already exists"})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid credentials"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Not found"})
	default:
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to " + action})
	}
}

// currentUser returns the logged-in username, answering 401 when missing.
func currentUser(c *gin.Context) (string, bool) {
	username, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Username not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Please do log in to continue with the app."})
		return "", false
	}
	return username, true
}
