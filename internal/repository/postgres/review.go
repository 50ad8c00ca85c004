package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nurselink/booking-api/internal/model"
	"github.com/nurselink/booking-api/internal/repository"
)

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	query := `
		INSERT INTO reviews (id, nurse_id, patient_id, rating, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	review.ID = uuid.New()
	review.CreatedAt = time.Now()
	review.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		review.ID,
		review.NurseID,
		review.PatientID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
		review.UpdatedAt,
	)
	return mapError(err, "failed to create review")
}

func (r *reviewRepository) Get(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	query := `
		SELECT id, nurse_id, patient_id, rating, comment, created_at, updated_at
		FROM reviews
		WHERE id = $1
	`
	var review model.Review
	if err := r.db.GetContext(ctx, &review, query, id); err != nil {
		return nil, mapError(err, "failed to get review")
	}
	return &review, nil
}

func (r *reviewRepository) GetDetail(ctx context.Context, id uuid.UUID) (*model.ReviewDetail, error) {
	query := `
		SELECT p.username AS patient, n.username AS nurse, r.rating, r.comment
		FROM reviews r
		JOIN patients p ON p.id = r.patient_id
		JOIN nurses n ON n.id = r.nurse_id
		WHERE r.id = $1
	`
	var detail model.ReviewDetail
	if err := r.db.GetContext(ctx, &detail, query, id); err != nil {
		return nil, mapError(err, "failed to get review detail")
	}
	return &detail, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *model.Review) error {
	query := `
		UPDATE reviews
		SET rating = $1, comment = $2, updated_at = $3
		WHERE id = $4
	`
	review.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		review.Rating,
		review.Comment,
		review.UpdatedAt,
		review.ID,
	)
	if err != nil {
		return mapError(err, "failed to update review")
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

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM reviews
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return mapError(err, "failed to delete review")
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

func (r *reviewRepository) ListForNurse(ctx context.Context, nurseID uuid.UUID) ([]*model.NurseReview, error) {
	query := `
		SELECT p.username AS patient, r.rating, r.comment
		FROM reviews r
		JOIN patients p ON p.id = r.patient_id
		WHERE r.nurse_id = $1
		ORDER BY r.created_at ASC
	`
	var reviews []*model.NurseReview
	if err := r.db.SelectContext(ctx, &reviews, query, nurseID); err != nil {
		return nil, mapError(err, "failed to list nurse reviews")
	}
	return reviews, nil
}
