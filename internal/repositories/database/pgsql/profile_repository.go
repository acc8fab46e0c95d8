package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/healthcare_assistant_app/internal/apperrors"
	"github.com/SscSPs/healthcare_assistant_app/internal/core/domain"
	portsrepo "github.com/SscSPs/healthcare_assistant_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

type PgxProfileRepository struct {
	BaseRepository
}

func newPgxProfileRepository(db Querier) portsrepo.ProfileRepositoryFacade {
	return &PgxProfileRepository{BaseRepository{DB: db}}
}

var _ portsrepo.ProfileRepositoryFacade = (*PgxProfileRepository)(nil)

// ReplaceProfile overwrites every column of the row keyed by username.
// Columns left nil on profile become NULL, the picture included.
func (r *PgxProfileRepository) ReplaceProfile(ctx context.Context, profile domain.Profile) error {
	query := `
        INSERT INTO profiles (username, full_name, age, medical_history, allergies,
                              medications, blood_type, height, weight, profile_picture)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        ON CONFLICT (username) DO UPDATE SET
            full_name = EXCLUDED.full_name,
            age = EXCLUDED.age,
            medical_history = EXCLUDED.medical_history,
            allergies = EXCLUDED.allergies,
            medications = EXCLUDED.medications,
            blood_type = EXCLUDED.blood_type,
            height = EXCLUDED.height,
            weight = EXCLUDED.weight,
            profile_picture = EXCLUDED.profile_picture;
    `
	_, err := r.DB.Exec(ctx, query,
		profile.Username,
		profile.FullName,
		profile.Age,
		profile.MedicalHistory,
		profile.Allergies,
		profile.Medications,
		profile.BloodType,
		profile.Height,
		profile.Weight,
		profile.Picture,
	)
	if err != nil {
		return apperrors.Storage("failed to replace profile", err)
	}
	return nil
}

func (r *PgxProfileRepository) FindProfileByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	query := `
        SELECT id, username, full_name, age, medical_history, allergies,
               medications, blood_type, height, weight, profile_picture
        FROM profiles
        WHERE username = $1;
    `
	var p domain.Profile
	err := r.DB.QueryRow(ctx, query, username).Scan(
		&p.ID,
		&p.Username,
		&p.FullName,
		&p.Age,
		&p.MedicalHistory,
		&p.Allergies,
		&p.Medications,
		&p.BloodType,
		&p.Height,
		&p.Weight,
		&p.Picture,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Storage("failed to find profile", err)
	}
	return &p, nil
}
