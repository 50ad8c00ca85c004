package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurselink/booking-api/internal/email"
	"github.com/nurselink/booking-api/internal/model"
	"github.com/nurselink/booking-api/internal/repository"
	apperrors "github.com/nurselink/booking-api/pkg/errors"
)

// Accepted datetime layouts. The API documents ISO-8601; timestamps without
// an offset are taken as UTC.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

type Service struct {
	appointments    repository.AppointmentRepository
	nurses          repository.NurseRepository
	patients        repository.PatientRepository
	patientProfiles repository.PatientProfileRepository
	mailer          email.Service
	logger          zerolog.Logger
}

func NewService(
	appointments repository.AppointmentRepository,
	nurses repository.NurseRepository,
	patients repository.PatientRepository,
	patientProfiles repository.PatientProfileRepository,
	mailer email.Service,
	logger zerolog.Logger,
) *Service {
	return &Service{
		appointments:    appointments,
		nurses:          nurses,
		patients:        patients,
		patientProfiles: patientProfiles,
		mailer:          mailer,
		logger:          logger,
	}
}

func parseDatetime(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range datetimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// Create books an appointment for the calling patient. The nurse must exist,
// be accepting appointments, and have the requested slot free.
func (s *Service) Create(ctx context.Context, patientID uuid.UUID, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	patient, err := s.patients.Get(ctx, patientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.Unauthorized("only patients can book appointments", nil)
		}
		return nil, apperrors.Internal(err)
	}

	nurse, err := s.nurses.Get(ctx, req.NurseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("nurse", err)
		}
		return nil, apperrors.Internal(err)
	}

	if !nurse.IsAvailable {
		return nil, apperrors.BadRequest("nurse is not available for appointments at this time", nil)
	}

	at, err := parseDatetime(req.AppointmentDatetime)
	if err != nil {
		return nil, apperrors.BadRequest("invalid datetime format", err)
	}

	taken, err := s.appointments.ExistsAt(ctx, nurse.ID, at, nil)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if taken {
		return nil, apperrors.BadRequest("nurse is already booked at this time", nil)
	}

	appointment := &model.Appointment{
		NurseID:             nurse.ID,
		PatientID:           patient.ID,
		AppointmentDatetime: at,
	}
	if err := s.appointments.Create(ctx, appointment); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.BadRequest("nurse is already booked at this time", err)
		}
		return nil, apperrors.Internal(err)
	}

	s.sendConfirmation(ctx, patient.ID, nurse.Username, at)

	return appointment, nil
}

// sendConfirmation emails the booking patient when a profile email exists.
// Failures are logged and never surfaced to the caller.
func (s *Service) sendConfirmation(ctx context.Context, patientID uuid.UUID, nurse string, at time.Time) {
	profile, err := s.patientProfiles.GetByPatient(ctx, patientID)
	if err != nil || profile.Email == nil {
		return
	}
	if err := s.mailer.SendAppointmentConfirmation(ctx, *profile.Email, nurse, at); err != nil {
		s.logger.Warn().Err(err).Str("patient_id", patientID.String()).Msg("confirmation email failed")
	}
}

func (s *Service) ListAll(ctx context.Context) ([]*model.AppointmentDetail, error) {
	appointments, err := s.appointments.ListAll(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if appointments == nil {
		appointments = []*model.AppointmentDetail{}
	}
	return appointments, nil
}

// ListForPatient returns the caller's own bookings. A caller without a
// patient row is rejected, even if a nurse with the same id exists.
func (s *Service) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*model.PatientAppointment, error) {
	if _, err := s.patients.Get(ctx, patientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.Unauthorized("only patients can access this resource", nil)
		}
		return nil, apperrors.Internal(err)
	}

	appointments, err := s.appointments.ListForPatient(ctx, patientID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if appointments == nil {
		appointments = []*model.PatientAppointment{}
	}
	return appointments, nil
}

func (s *Service) ListForNurse(ctx context.Context, nurseID uuid.UUID) ([]*model.NurseAppointment, error) {
	if _, err := s.nurses.Get(ctx, nurseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.Unauthorized("only nurses can access this resource", nil)
		}
		return nil, apperrors.Internal(err)
	}

	appointments, err := s.appointments.ListForNurse(ctx, nurseID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if appointments == nil {
		appointments = []*model.NurseAppointment{}
	}
	return appointments, nil
}

// Update reschedules an appointment. Only the owning patient may do so.
func (s *Service) Update(ctx context.Context, callerID, appointmentID uuid.UUID, req *model.UpdateAppointmentRequest) error {
	appointment, err := s.appointments.Get(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("appointment", err)
		}
		return apperrors.Internal(err)
	}

	if appointment.PatientID != callerID {
		return apperrors.Unauthorized("", nil)
	}

	at, err := parseDatetime(req.AppointmentDatetime)
	if err != nil {
		return apperrors.BadRequest("invalid datetime format", err)
	}

	taken, err := s.appointments.ExistsAt(ctx, appointment.NurseID, at, &appointment.ID)
	if err != nil {
		return apperrors.Internal(err)
	}
	if taken {
		return apperrors.BadRequest("nurse is already booked at this time", nil)
	}

	appointment.AppointmentDatetime = at
	if err := s.appointments.Update(ctx, appointment); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("appointment", err)
		}
		return apperrors.Internal(err)
	}
	return nil
}

// Delete cancels an appointment. Only the owning patient may do so.
func (s *Service) Delete(ctx context.Context, callerID, appointmentID uuid.UUID) error {
	appointment, err := s.appointments.Get(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("appointment", err)
		}
		return apperrors.Internal(err)
	}

	if appointment.PatientID != callerID {
		return apperrors.Unauthorized("", nil)
	}

	if err := s.appointments.Delete(ctx, appointmentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("appointment", err)
		}
		return apperrors.Internal(err)
	}
	return nil
}
