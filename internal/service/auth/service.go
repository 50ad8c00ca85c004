package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nurselink/booking-api/internal/model"
	"github.com/nurselink/booking-api/internal/repository"
	"github.com/nurselink/booking-api/pkg/auth"
	apperrors "github.com/nurselink/booking-api/pkg/errors"
	"github.com/nurselink/booking-api/pkg/security"
)

const bcryptCost = 12

// NurseDirectory is notified when the set of nurses changes, so cached public
// listings do not serve stale data.
type NurseDirectory interface {
	InvalidateNurses()
}

type Service struct {
	nurses      repository.NurseRepository
	patients    repository.PatientRepository
	tokens      auth.TokenService
	revocations repository.TokenRevocationStore
	hasher      security.PasswordHasher
	directory   NurseDirectory
}

func NewService(
	nurses repository.NurseRepository,
	patients repository.PatientRepository,
	tokens auth.TokenService,
	revocations repository.TokenRevocationStore,
	directory NurseDirectory,
) *Service {
	return &Service{
		nurses:      nurses,
		patients:    patients,
		tokens:      tokens,
		revocations: revocations,
		hasher:      security.NewBcryptHasher(bcryptCost),
		directory:   directory,
	}
}

func (s *Service) RegisterNurse(ctx context.Context, username, password string) (*model.Nurse, error) {
	if _, err := s.nurses.GetByUsername(ctx, username); err == nil {
		return nil, apperrors.Conflict("username already exists", nil)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.Internal(err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	nurse := &model.Nurse{
		Username:     username,
		PasswordHash: hash,
		IsAvailable:  true,
	}
	if err := s.nurses.Create(ctx, nurse); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.Conflict("username already exists", err)
		}
		return nil, apperrors.Internal(err)
	}

	if s.directory != nil {
		s.directory.InvalidateNurses()
	}
	return nurse, nil
}

func (s *Service) RegisterPatient(ctx context.Context, username, password string) (*model.Patient, error) {
	if _, err := s.patients.GetByUsername(ctx, username); err == nil {
		return nil, apperrors.Conflict("username already exists", nil)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.Internal(err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	patient := &model.Patient{
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.patients.Create(ctx, patient); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.Conflict("username already exists", err)
		}
		return nil, apperrors.Internal(err)
	}
	return patient, nil
}

// LoginNurse verifies credentials and issues a nurse-typed token. The error
// never distinguishes an unknown username from a wrong password.
func (s *Service) LoginNurse(ctx context.Context, username, password string) (*model.TokenResponse, error) {
	nurse, err := s.nurses.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid credentials", nil)
	}
	if err := s.hasher.Compare(nurse.PasswordHash, password); err != nil {
		return nil, apperrors.Unauthorized("invalid credentials", nil)
	}

	token, err := s.tokens.Generate(nurse.ID, model.PrincipalNurse)
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to generate token: %w", err))
	}
	return &model.TokenResponse{AccessToken: token}, nil
}

func (s *Service) LoginPatient(ctx context.Context, username, password string) (*model.TokenResponse, error) {
	patient, err := s.patients.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid credentials", nil)
	}
	if err := s.hasher.Compare(patient.PasswordHash, password); err != nil {
		return nil, apperrors.Unauthorized("invalid credentials", nil)
	}

	token, err := s.tokens.Generate(patient.ID, model.PrincipalPatient)
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to generate token: %w", err))
	}
	return &model.TokenResponse{AccessToken: token}, nil
}

// Authenticate validates the raw bearer token and rejects revoked tokens.
func (s *Service) Authenticate(ctx context.Context, rawToken string) (*model.TokenClaims, error) {
	claims, err := s.tokens.Validate(rawToken)
	if err != nil {
		return nil, apperrors.Unauthorized("invalid token", err)
	}

	revoked, err := s.revocations.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if revoked {
		return nil, apperrors.Unauthorized("token has been revoked", nil)
	}
	return claims, nil
}

// Logout revokes the presented token until its natural expiry.
func (s *Service) Logout(ctx context.Context, rawToken string) error {
	claims, err := s.tokens.Validate(rawToken)
	if err != nil {
		return apperrors.Unauthorized("invalid token", err)
	}

	if err := s.revocations.Revoke(ctx, claims.TokenID, time.Until(claims.ExpiresAt)); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}
