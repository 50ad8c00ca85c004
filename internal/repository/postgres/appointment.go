package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nurselink/booking-api/internal/model"
	"github.com/nurselink/booking-api/internal/repository"
)

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (id, nurse_id, patient_id, appointment_datetime, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	appointment.ID = uuid.New()
	appointment.CreatedAt = time.Now()
	appointment.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		appointment.ID,
		appointment.NurseID,
		appointment.PatientID,
		appointment.AppointmentDatetime,
		appointment.CreatedAt,
		appointment.UpdatedAt,
	)
	return mapError(err, "failed to create appointment")
}

func (r *appointmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	query := `
		SELECT id, nurse_id, patient_id, appointment_datetime, created_at, updated_at
		FROM appointments
		WHERE id = $1
	`
	var appointment model.Appointment
	if err := r.db.GetContext(ctx, &appointment, query, id); err != nil {
		return nil, mapError(err, "failed to get appointment")
	}
	return &appointment, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *model.Appointment) error {
	query := `
		UPDATE appointments
		SET appointment_datetime = $1, updated_at = $2
		WHERE id = $3
	`
	appointment.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		appointment.AppointmentDatetime,
		appointment.UpdatedAt,
		appointment.ID,
	)
	if err != nil {
		return mapError(err, "failed to update appointment")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return mapError(err, "failed to get rows affected")
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM appointments
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return mapError(err, "failed to delete appointment")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return mapError(err, "failed to get rows affected")
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *appointmentRepository) ListAll(ctx context.Context) ([]*model.AppointmentDetail, error) {
	query := `
		SELECT a.id, n.username AS nurse, p.username AS patient, a.appointment_datetime
		FROM appointments a
		JOIN nurses n ON n.id = a.nurse_id
		JOIN patients p ON p.id = a.patient_id
		ORDER BY a.appointment_datetime ASC
	`
	var appointments []*model.AppointmentDetail
	if err := r.db.SelectContext(ctx, &appointments, query); err != nil {
		return nil, mapError(err, "failed to list appointments")
	}
	return appointments, nil
}

func (r *appointmentRepository) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*model.PatientAppointment, error) {
	query := `
		SELECT a.id, n.username AS nurse, a.appointment_datetime
		FROM appointments a
		JOIN nurses n ON n.id = a.nurse_id
		WHERE a.patient_id = $1
		ORDER BY a.appointment_datetime ASC
	`
	var appointments []*model.PatientAppointment
	if err := r.db.SelectContext(ctx, &appointments, query, patientID); err != nil {
		return nil, mapError(err, "failed to list patient appointments")
	}
	return appointments, nil
}

func (r *appointmentRepository) ListForNurse(ctx context.Context, nurseID uuid.UUID) ([]*model.NurseAppointment, error) {
	query := `
		SELECT a.id, p.username AS patient, a.appointment_datetime
		FROM appointments a
		JOIN patients p ON p.id = a.patient_id
		WHERE a.nurse_id = $1
		ORDER BY a.appointment_datetime ASC
	`
	var appointments []*model.NurseAppointment
	if err := r.db.SelectContext(ctx, &appointments, query, nurseID); err != nil {
		return nil, mapError(err, "failed to list nurse appointments")
	}
	return appointments, nil
}

func (r *appointmentRepository) ExistsAt(ctx context.Context, nurseID uuid.UUID, at time.Time, excludeID *uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM appointments
			WHERE nurse_id = $1
			AND appointment_datetime = $2
	`
	args := []interface{}{nurseID, at}

	if excludeID != nil {
		query += " AND id != $3"
		args = append(args, *excludeID)
	}
	query += ")"

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, args...); err != nil {
		return false, mapError(err, "failed to check appointment slot")
	}
	return exists, nil
}
