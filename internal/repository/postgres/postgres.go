package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/nurselink/booking-api/internal/repository"
)

const uniqueViolation = "23505"

type nurseRepository struct {
	db *sqlx.DB
}

type patientRepository struct {
	db *sqlx.DB
}

type appointmentRepository struct {
	db *sqlx.DB
}

type reviewRepository struct {
	db *sqlx.DB
}

type nurseProfileRepository struct {
	db *sqlx.DB
}

type patientProfileRepository struct {
	db *sqlx.DB
}

func NewNurseRepository(db *sqlx.DB) repository.NurseRepository {
	return &nurseRepository{db: db}
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

func NewAppointmentRepository(db *sqlx.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func NewReviewRepository(db *sqlx.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func NewNurseProfileRepository(db *sqlx.DB) repository.NurseProfileRepository {
	return &nurseProfileRepository{db: db}
}

func NewPatientProfileRepository(db *sqlx.DB) repository.PatientProfileRepository {
	return &patientProfileRepository{db: db}
}

// mapError converts driver-level failures into the repository sentinels.
func mapError(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return repository.ErrDuplicate
	}
	return fmt.Errorf("%s: %w", op, err)
}

// withTx runs fn inside a transaction, rolling back on any error.
func withTx(ctx context.Context, db *sqlx.DB, fn func(*sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original: %w)", rbErr, err)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
