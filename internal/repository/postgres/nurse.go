package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nurselink/booking-api/internal/model"
)

func (r *nurseRepository) Create(ctx context.Context, nurse *model.Nurse) error {
	query := `
		INSERT INTO nurses (id, username, password_hash, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	nurse.ID = uuid.New()
	nurse.CreatedAt = time.Now()
	nurse.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		nurse.ID,
		nurse.Username,
		nurse.PasswordHash,
		nurse.IsAvailable,
		nurse.CreatedAt,
		nurse.UpdatedAt,
	)
	return mapError(err, "failed to create nurse")
}

func (r *nurseRepository) Get(ctx context.Context, id uuid.UUID) (*model.Nurse, error) {
	query := `
		SELECT id, username, password_hash, is_available, created_at, updated_at
		FROM nurses
		WHERE id = $1
	`
	var nurse model.Nurse
	if err := r.db.GetContext(ctx, &nurse, query, id); err != nil {
		return nil, mapError(err, "failed to get nurse")
	}
	return &nurse, nil
}

func (r *nurseRepository) GetByUsername(ctx context.Context, username string) (*model.Nurse, error) {
	query := `
		SELECT id, username, password_hash, is_available, created_at, updated_at
		FROM nurses
		WHERE username = $1
	`
	var nurse model.Nurse
	if err := r.db.GetContext(ctx, &nurse, query, username); err != nil {
		return nil, mapError(err, "failed to get nurse by username")
	}
	return &nurse, nil
}

func (r *nurseRepository) List(ctx context.Context) ([]*model.Nurse, error) {
	query := `
		SELECT id, username, password_hash, is_available, created_at, updated_at
		FROM nurses
		ORDER BY created_at ASC
	`
	var nurses []*model.Nurse
	if err := r.db.SelectContext(ctx, &nurses, query); err != nil {
		return nil, mapError(err, "failed to list nurses")
	}
	return nurses, nil
}
