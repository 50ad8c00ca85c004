package model

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID        uuid.UUID `db:"id" json:"id"`
	NurseID   uuid.UUID `db:"nurse_id" json:"nurse_id"`
	PatientID uuid.UUID `db:"patient_id" json:"patient_id"`
	Rating    int       `db:"rating" json:"rating"`
	Comment   *string   `db:"comment" json:"comment,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type CreateReviewRequest struct {
	NurseID uuid.UUID `json:"nurse_id" binding:"required"`
	Rating  int       `json:"rating" binding:"required,min=1,max=5"`
	Comment *string   `json:"comment"`
}

type UpdateReviewRequest struct {
	Rating  int     `json:"rating" binding:"required,min=1,max=5"`
	Comment *string `json:"comment"`
}

// ReviewDetail is a single review with both usernames resolved.
type ReviewDetail struct {
	Patient string  `db:"patient" json:"patient"`
	Nurse   string  `db:"nurse" json:"nurse"`
	Rating  int     `db:"rating" json:"rating"`
	Comment *string `db:"comment" json:"comment"`
}

// NurseReview is a row of a nurse's review listing.
type NurseReview struct {
	Patient string  `db:"patient" json:"patient"`
	Rating  int     `db:"rating" json:"rating"`
	Comment *string `db:"comment" json:"comment"`
}

// NurseReviews is the review listing for a nurse. AverageRating is 0 when no
// reviews exist.
type NurseReviews struct {
	Nurse         string         `json:"nurse"`
	AverageRating float64        `json:"average_rating"`
	Reviews       []*NurseReview `json:"reviews"`
}
