package utils

import (
	"errors"

	"github.com/SscSPs/healthcare_assistant_app/internal/apperrors"
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher hashes passwords with bcrypt, which salts every hash.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using bcrypt.DefaultCost.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// NewBcryptHasherWithCost is mostly for tests, where bcrypt.MinCost keeps them fast.
func NewBcryptHasherWithCost(cost int) *BcryptHasher {
	return &BcryptHasher{cost: cost}
}

// Hash hashes a plaintext password using bcrypt. Passwords over bcrypt's
// 72-byte input limit are a validation error.
func (h *BcryptHasher) Hash(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, apperrors.NewAppError(400, "password must be at most 72 bytes", apperrors.ErrValidation)
	}
	return hash, err
}

// Verify compares a plaintext password with a bcrypt hash.
func (h *BcryptHasher) Verify(password string, hash []byte) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}
