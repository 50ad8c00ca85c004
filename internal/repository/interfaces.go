package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/nurselink/booking-api/internal/model"
)

// Sentinel errors the storage layer maps database failures onto. Services
// translate these into the API error taxonomy.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate record")
)

type NurseRepository interface {
	Create(ctx context.Context, nurse *model.Nurse) error
	Get(ctx context.Context, id uuid.UUID) (*model.Nurse, error)
	GetByUsername(ctx context.Context, username string) (*model.Nurse, error)
	List(ctx context.Context) ([]*model.Nurse, error)
}

type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	Get(ctx context.Context, id uuid.UUID) (*model.Patient, error)
	GetByUsername(ctx context.Context, username string) (*model.Patient, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
	Update(ctx context.Context, appointment *model.Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListAll(ctx context.Context) ([]*model.AppointmentDetail, error)
	ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*model.PatientAppointment, error)
	ListForNurse(ctx context.Context, nurseID uuid.UUID) ([]*model.NurseAppointment, error)
	ExistsAt(ctx context.Context, nurseID uuid.UUID, at time.Time, excludeID *uuid.UUID) (bool, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	Get(ctx context.Context, id uuid.UUID) (*model.Review, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*model.ReviewDetail, error)
	Update(ctx context.Context, review *model.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListForNurse(ctx context.Context, nurseID uuid.UUID) ([]*model.NurseReview, error)
}

type NurseProfileRepository interface {
	Create(ctx context.Context, profile *model.NurseProfile) error
	GetByNurse(ctx context.Context, nurseID uuid.UUID) (*model.NurseProfile, error)
	Update(ctx context.Context, profile *model.NurseProfile) error
}

type PatientProfileRepository interface {
	Create(ctx context.Context, profile *model.PatientProfile) error
	GetByPatient(ctx context.Context, patientID uuid.UUID) (*model.PatientProfile, error)
	Update(ctx context.Context, profile *model.PatientProfile) error
}

// TokenRevocationStore remembers revoked token ids until their natural expiry.
type TokenRevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
