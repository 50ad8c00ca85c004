package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nurselink/booking-api/internal/model"
)

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	query := `
		INSERT INTO patients (id, username, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	patient.ID = uuid.New()
	patient.CreatedAt = time.Now()
	patient.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		patient.ID,
		patient.Username,
		patient.PasswordHash,
		patient.CreatedAt,
		patient.UpdatedAt,
	)
	return mapError(err, "failed to create patient")
}

func (r *patientRepository) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	query := `
		SELECT id, username, password_hash, created_at, updated_at
		FROM patients
		WHERE id = $1
	`
	var patient model.Patient
	if err := r.db.GetContext(ctx, &patient, query, id); err != nil {
		return nil, mapError(err, "failed to get patient")
	}
	return &patient, nil
}

func (r *patientRepository) GetByUsername(ctx context.Context, username string) (*model.Patient, error) {
	query := `
		SELECT id, username, password_hash, created_at, updated_at
		FROM patients
		WHERE username = $1
	`
	var patient model.Patient
	if err := r.db.GetContext(ctx, &patient, query, username); err != nil {
		return nil, mapError(err, "failed to get patient by username")
	}
	return &patient, nil
}
