package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/healthcare_assistant_app/internal/apperrors"
	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
	portsrepo "github.com/SscSPs/healthcare_assistant_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db Querier) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository{DB: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (username, password, email)
        VALUES ($1, $2, $3)
        RETURNING id;
    `
	err := r.DB.QueryRow(ctx, query, user.Username, user.PasswordHash, user.Email).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicateUsername
		}
		return nil, apperrors.Storage("failed to save user", err)
	}
	return &user, nil
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT id, username, password, email
		FROM users
		WHERE username = $1;
	`
	var user domain.User
	var email *string
	err := r.DB.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Storage("failed to find user by username", err)
	}
	if email != nil {
		user.Email = *email
	}
	return &user, nil
}
