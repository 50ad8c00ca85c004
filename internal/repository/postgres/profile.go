package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nurselink/booking-api/internal/model"
	"github.com/nurselink/booking-api/internal/repository"
)

func (r *nurseProfileRepository) Create(ctx context.Context, profile *model.NurseProfile) error {
	profile.ID = uuid.New()
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = time.Now()

	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO nurse_profiles (
				id, nurse_id, qualifications, experience, areas_of_expertise,
				email, first_name, last_name, phone, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`
		_, err := tx.ExecContext(ctx, query,
			profile.ID,
			profile.NurseID,
			profile.Qualifications,
			profile.Experience,
			profile.AreasOfExpertise,
			profile.Email,
			profile.FirstName,
			profile.LastName,
			profile.Phone,
			profile.CreatedAt,
			profile.UpdatedAt,
		)
		return mapError(err, "failed to create nurse profile")
	})
}

func (r *nurseProfileRepository) GetByNurse(ctx context.Context, nurseID uuid.UUID) (*model.NurseProfile, error) {
	query := `
		SELECT id, nurse_id, qualifications, experience, areas_of_expertise,
			   email, first_name, last_name, phone, created_at, updated_at
		FROM nurse_profiles
		WHERE nurse_id = $1
	`
	var profile model.NurseProfile
	if err := r.db.GetContext(ctx, &profile, query, nurseID); err != nil {
		return nil, mapError(err, "failed to get nurse profile")
	}
	return &profile, nil
}

func (r *nurseProfileRepository) Update(ctx context.Context, profile *model.NurseProfile) error {
	profile.UpdatedAt = time.Now()

	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			UPDATE nurse_profiles
			SET qualifications = $1, experience = $2, areas_of_expertise = $3,
				email = $4, first_name = $5, last_name = $6, phone = $7, updated_at = $8
			WHERE nurse_id = $9
		`
		result, err := tx.ExecContext(ctx, query,
			profile.Qualifications,
			profile.Experience,
			profile.AreasOfExpertise,
			profile.Email,
			profile.FirstName,
			profile.LastName,
			profile.Phone,
			profile.UpdatedAt,
			profile.NurseID,
		)
		if err != nil {
			return mapError(err, "failed to update nurse profile")
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return mapError(err, "failed to get rows affected")
		}
		if rows == 0 {
			return repository.ErrNotFound
		}
		return nil
	})
}

func (r *patientProfileRepository) Create(ctx context.Context, profile *model.PatientProfile) error {
	profile.ID = uuid.New()
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = time.Now()

	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO patient_profiles (
				id, patient_id, email, first_name, last_name, phone, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`
		_, err := tx.ExecContext(ctx, query,
			profile.ID,
			profile.PatientID,
			profile.Email,
			profile.FirstName,
			profile.LastName,
			profile.Phone,
			profile.CreatedAt,
			profile.UpdatedAt,
		)
		return mapError(err, "failed to create patient profile")
	})
}

func (r *patientProfileRepository) GetByPatient(ctx context.Context, patientID uuid.UUID) (*model.PatientProfile, error) {
	query := `
		SELECT id, patient_id, email, first_name, last_name, phone, created_at, updated_at
		FROM patient_profiles
		WHERE patient_id = $1
	`
	var profile model.PatientProfile
	if err := r.db.GetContext(ctx, &profile, query, patientID); err != nil {
		return nil, mapError(err, "failed to get patient profile")
	}
	return &profile, nil
}

func (r *patientProfileRepository) Update(ctx context.Context, profile *model.PatientProfile) error {
	profile.UpdatedAt = time.Now()

	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `
			UPDATE patient_profiles
			SET email = $1, first_name = $2, last_name = $3, phone = $4, updated_at = $5
			WHERE patient_id = $6
		`
		result, err := tx.ExecContext(ctx, query,
			profile.Email,
			profile.FirstName,
			profile.LastName,
			profile.Phone,
			profile.UpdatedAt,
			profile.PatientID,
		)
		if err != nil {
			return mapError(err, "failed to update patient profile")
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return mapError(err, "failed to get rows affected")
		}
		if rows == 0 {
			return repository.ErrNotFound
		}
		return nil
	})
}
