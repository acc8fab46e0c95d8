package apperrors_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/healthcare_assistant_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestStorageWrapsBothCauses(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperrors.Storage("failed to insert appointment", cause)

	assert.ErrorIs(t, err, apperrors.ErrStorage)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to insert appointment")
	assert.Contains(t, err.Error(), "connection reset")

	var appErr *apperrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.Code)
}

func TestAppErrorWithoutCause(t *testing.T) {
	err := apperrors.NewAppError(400, "bad input", nil)
	assert.Equal(t, "bad input", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
