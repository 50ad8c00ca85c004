package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const expertiseSeparator = ","

type NurseProfile struct {
	ID               uuid.UUID `db:"id" json:"-"`
	NurseID          uuid.UUID `db:"nurse_id" json:"-"`
	Qualifications   *string   `db:"qualifications" json:"qualifications"`
	Experience       *string   `db:"experience" json:"experience"`
	AreasOfExpertise *string   `db:"areas_of_expertise" json:"-"`
	Email            *string   `db:"email" json:"email"`
	FirstName        *string   `db:"first_name" json:"first_name"`
	LastName         *string   `db:"last_name" json:"last_name"`
	Phone            *string   `db:"phone" json:"phone"`
	CreatedAt        time.Time `db:"created_at" json:"-"`
	UpdatedAt        time.Time `db:"updated_at" json:"-"`
}

type PatientProfile struct {
	ID        uuid.UUID `db:"id" json:"-"`
	PatientID uuid.UUID `db:"patient_id" json:"-"`
	Email     *string   `db:"email" json:"email"`
	FirstName *string   `db:"first_name" json:"first_name"`
	LastName  *string   `db:"last_name" json:"last_name"`
	Phone     *string   `db:"phone" json:"phone"`
	CreatedAt time.Time `db:"created_at" json:"-"`
	UpdatedAt time.Time `db:"updated_at" json:"-"`
}

type CreateNurseProfileRequest struct {
	Qualifications   *string  `json:"qualifications"`
	Experience       *string  `json:"experience"`
	AreasOfExpertise []string `json:"areas_of_expertise"`
	Email            *string  `json:"email" binding:"omitempty,email"`
	FirstName        *string  `json:"first_name"`
	LastName         *string  `json:"last_name"`
	Phone            *string  `json:"phone"`
}

// UpdateNurseProfileRequest carries only the fields present in the payload.
// Nil pointers leave the stored value untouched.
type UpdateNurseProfileRequest struct {
	Qualifications   *string   `json:"qualifications"`
	Experience       *string   `json:"experience"`
	AreasOfExpertise *[]string `json:"areas_of_expertise"`
	Email            *string   `json:"email" binding:"omitempty,email"`
	FirstName        *string   `json:"first_name"`
	LastName         *string   `json:"last_name"`
	Phone            *string   `json:"phone"`
}

type CreatePatientProfileRequest struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
}

type UpdatePatientProfileRequest struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
}

// NurseProfileResponse exposes areas_of_expertise as the ordered list the API
// accepts, regardless of the delimited storage format.
type NurseProfileResponse struct {
	Qualifications   *string  `json:"qualifications"`
	Experience       *string  `json:"experience"`
	AreasOfExpertise []string `json:"areas_of_expertise"`
	Email            *string  `json:"email"`
	FirstName        *string  `json:"first_name"`
	LastName         *string  `json:"last_name"`
	Phone            *string  `json:"phone"`
}

// JoinExpertise serializes the list for storage. An empty list stores NULL.
func JoinExpertise(areas []string) *string {
	if len(areas) == 0 {
		return nil
	}
	s := strings.Join(areas, expertiseSeparator)
	return &s
}

// SplitExpertise restores the ordered list from the stored delimited string.
func SplitExpertise(s *string) []string {
	if s == nil || *s == "" {
		return []string{}
	}
	parts := strings.Split(*s, expertiseSeparator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
