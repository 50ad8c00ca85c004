package review

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/nurselink/booking-api/internal/model"
	"github.com/nurselink/booking-api/internal/repository"
	apperrors "github.com/nurselink/booking-api/pkg/errors"
)

type Service struct {
	reviews  repository.ReviewRepository
	nurses   repository.NurseRepository
	patients repository.PatientRepository
	cache    *gocache.Cache
}

func NewService(
	reviews repository.ReviewRepository,
	nurses repository.NurseRepository,
	patients repository.PatientRepository,
	cacheTTL, cacheCleanup time.Duration,
) *Service {
	return &Service{
		reviews:  reviews,
		nurses:   nurses,
		patients: patients,
		cache:    gocache.New(cacheTTL, cacheCleanup),
	}
}

func (s *Service) Create(ctx context.Context, patientID uuid.UUID, req *model.CreateReviewRequest) (*model.Review, error) {
	patient, err := s.patients.Get(ctx, patientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.Unauthorized("only patients can leave reviews", nil)
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

	review := &model.Review{
		NurseID:   nurse.ID,
		PatientID: patient.ID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, apperrors.Internal(err)
	}

	s.cache.Delete(nurse.ID.String())
	return review, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.ReviewDetail, error) {
	detail, err := s.reviews.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("review", err)
		}
		return nil, apperrors.Internal(err)
	}
	return detail, nil
}

// ListForNurse returns all reviews for a nurse with the arithmetic mean
// rating, 0 when none exist. The assembled payload is cached per nurse and
// invalidated on every review mutation.
func (s *Service) ListForNurse(ctx context.Context, nurseID uuid.UUID) (*model.NurseReviews, error) {
	if cached, ok := s.cache.Get(nurseID.String()); ok {
		return cached.(*model.NurseReviews), nil
	}

	nurse, err := s.nurses.Get(ctx, nurseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("nurse", err)
		}
		return nil, apperrors.Internal(err)
	}

	reviews, err := s.reviews.ListForNurse(ctx, nurseID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if reviews == nil {
		reviews = []*model.NurseReview{}
	}

	var average float64
	if len(reviews) > 0 {
		var sum int
		for _, r := range reviews {
			sum += r.Rating
		}
		average = float64(sum) / float64(len(reviews))
	}

	result := &model.NurseReviews{
		Nurse:         nurse.Username,
		AverageRating: average,
		Reviews:       reviews,
	}
	s.cache.SetDefault(nurseID.String(), result)
	return result, nil
}

// Update modifies a review. Only the authoring patient may do so.
func (s *Service) Update(ctx context.Context, callerID, reviewID uuid.UUID, req *model.UpdateReviewRequest) error {
	review, err := s.reviews.Get(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("review", err)
		}
		return apperrors.Internal(err)
	}

	if review.PatientID != callerID {
		return apperrors.Unauthorized("", nil)
	}

	review.Rating = req.Rating
	review.Comment = req.Comment
	if err := s.reviews.Update(ctx, review); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("review", err)
		}
		return apperrors.Internal(err)
	}

	s.cache.Delete(review.NurseID.String())
	return nil
}

// Delete removes a review. Only the authoring patient may do so.
func (s *Service) Delete(ctx context.Context, callerID, reviewID uuid.UUID) error {
	review, err := s.reviews.Get(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("review", err)
		}
		return apperrors.Internal(err)
	}

	if review.PatientID != callerID {
		return apperrors.Unauthorized("", nil)
	}

	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("review", err)
		}
		return apperrors.Internal(err)
	}

	s.cache.Delete(review.NurseID.String())
	return nil
}
