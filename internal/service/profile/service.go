package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/nurselink/booking-api/internal/model"
	"github.com/nurselink/booking-api/internal/repository"
	apperrors "github.com/nurselink/booking-api/pkg/errors"
)

type Service struct {
	nurseProfiles   repository.NurseProfileRepository
	patientProfiles repository.PatientProfileRepository
	nurses          repository.NurseRepository
	patients        repository.PatientRepository
}

func NewService(
	nurseProfiles repository.NurseProfileRepository,
	patientProfiles repository.PatientProfileRepository,
	nurses repository.NurseRepository,
	patients repository.PatientRepository,
) *Service {
	return &Service{
		nurseProfiles:   nurseProfiles,
		patientProfiles: patientProfiles,
		nurses:          nurses,
		patients:        patients,
	}
}

func (s *Service) CreateNurseProfile(ctx context.Context, nurseID uuid.UUID, req *model.CreateNurseProfileRequest) (*model.NurseProfileResponse, error) {
	if _, err := s.nurses.Get(ctx, nurseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("nurse", err)
		}
		return nil, apperrors.Internal(err)
	}

	profile := &model.NurseProfile{
		NurseID:          nurseID,
		Qualifications:   req.Qualifications,
		Experience:       req.Experience,
		AreasOfExpertise: model.JoinExpertise(req.AreasOfExpertise),
		Email:            req.Email,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Phone:            req.Phone,
	}
	if err := s.nurseProfiles.Create(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.Conflict("profile already exists or email is taken", err)
		}
		return nil, apperrors.Internal(err)
	}
	return nurseProfileResponse(profile), nil
}

func (s *Service) GetNurseProfile(ctx context.Context, nurseID uuid.UUID) (*model.NurseProfileResponse, error) {
	profile, err := s.nurseProfiles.GetByNurse(ctx, nurseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("nurse profile", err)
		}
		return nil, apperrors.Internal(err)
	}
	return nurseProfileResponse(profile), nil
}

// UpdateNurseProfile overwrites only the fields present in the payload.
func (s *Service) UpdateNurseProfile(ctx context.Context, nurseID uuid.UUID, req *model.UpdateNurseProfileRequest) (*model.NurseProfileResponse, error) {
	profile, err := s.nurseProfiles.GetByNurse(ctx, nurseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("nurse profile", err)
		}
		return nil, apperrors.Internal(err)
	}

	if req.Qualifications != nil {
		profile.Qualifications = req.Qualifications
	}
	if req.Experience != nil {
		profile.Experience = req.Experience
	}
	if req.AreasOfExpertise != nil {
		profile.AreasOfExpertise = model.JoinExpertise(*req.AreasOfExpertise)
	}
	if req.Email != nil {
		profile.Email = req.Email
	}
	if req.FirstName != nil {
		profile.FirstName = req.FirstName
	}
	if req.LastName != nil {
		profile.LastName = req.LastName
	}
	if req.Phone != nil {
		profile.Phone = req.Phone
	}

	if err := s.nurseProfiles.Update(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.Conflict("email is already taken", err)
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("nurse profile", err)
		}
		return nil, apperrors.Internal(err)
	}
	return nurseProfileResponse(profile), nil
}

func (s *Service) CreatePatientProfile(ctx context.Context, patientID uuid.UUID, req *model.CreatePatientProfileRequest) (*model.PatientProfile, error) {
	if _, err := s.patients.Get(ctx, patientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("patient", err)
		}
		return nil, apperrors.Internal(err)
	}

	profile := &model.PatientProfile{
		PatientID: patientID,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}
	if err := s.patientProfiles.Create(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.Conflict("profile already exists or email is taken", err)
		}
		return nil, apperrors.Internal(err)
	}
	return profile, nil
}

func (s *Service) GetPatientProfile(ctx context.Context, patientID uuid.UUID) (*model.PatientProfile, error) {
	profile, err := s.patientProfiles.GetByPatient(ctx, patientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("patient profile", err)
		}
		return nil, apperrors.Internal(err)
	}
	return profile, nil
}

// UpdatePatientProfile overwrites only the fields present in the payload,
// matching the nurse-side semantics.
func (s *Service) UpdatePatientProfile(ctx context.Context, patientID uuid.UUID, req *model.UpdatePatientProfileRequest) (*model.PatientProfile, error) {
	profile, err := s.patientProfiles.GetByPatient(ctx, patientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("patient profile", err)
		}
		return nil, apperrors.Internal(err)
	}

	if req.Email != nil {
		profile.Email = req.Email
	}
	if req.FirstName != nil {
		profile.FirstName = req.FirstName
	}
	if req.LastName != nil {
		profile.LastName = req.LastName
	}
	if req.Phone != nil {
		profile.Phone = req.Phone
	}

	if err := s.patientProfiles.Update(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.Conflict("email is already taken", err)
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("patient profile", err)
		}
		return nil, apperrors.Internal(err)
	}
	return profile, nil
}

func nurseProfileResponse(p *model.NurseProfile) *model.NurseProfileResponse {
	return &model.NurseProfileResponse{
		Qualifications:   p.Qualifications,
		Experience:       p.Experience,
		AreasOfExpertise: model.SplitExpertise(p.AreasOfExpertise),
		Email:            p.Email,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		Phone:            p.Phone,
	}
}
