package model

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	ID                  uuid.UUID `db:"id" json:"id"`
	NurseID             uuid.UUID `db:"nurse_id" json:"nurse_id"`
	PatientID           uuid.UUID `db:"patient_id" json:"patient_id"`
	AppointmentDatetime time.Time `db:"appointment_datetime" json:"appointment_datetime"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time `db:"updated_at" json:"updated_at"`
}

type CreateAppointmentRequest struct {
	NurseID             uuid.UUID `json:"nurse_id" binding:"required"`
	AppointmentDatetime string    `json:"appointment_datetime" binding:"required,iso8601"`
}

type UpdateAppointmentRequest struct {
	AppointmentDatetime string `json:"appointment_datetime" binding:"required,iso8601"`
}

// AppointmentDetail is the public listing row with both usernames resolved.
type AppointmentDetail struct {
	AppointmentID       uuid.UUID `db:"id" json:"appointment_id"`
	Nurse               string    `db:"nurse" json:"nurse"`
	Patient             string    `db:"patient" json:"patient"`
	AppointmentDatetime time.Time `db:"appointment_datetime" json:"appointment_datetime"`
}

// PatientAppointment is a row of the patient's own listing.
type PatientAppointment struct {
	AppointmentID       uuid.UUID `db:"id" json:"appointment_id"`
	Nurse               string    `db:"nurse" json:"nurse"`
	AppointmentDatetime time.Time `db:"appointment_datetime" json:"appointment_datetime"`
}

// NurseAppointment is a row of the nurse's own listing.
type NurseAppointment struct {
	AppointmentID       uuid.UUID `db:"id" json:"appointment_id"`
	Patient             string    `db:"patient" json:"patient"`
	AppointmentDatetime time.Time `db:"appointment_datetime" json:"appointment_datetime"`
}
