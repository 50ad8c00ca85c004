package review

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurselink/booking-api/internal/model"
	"github.com/nurselink/booking-api/internal/repository"
	apperrors "github.com/nurselink/booking-api/pkg/errors"
)

type reviewRepoStub struct {
	reviews map[uuid.UUID]*model.Review
}

func newReviewRepoStub() *reviewRepoStub {
	return &reviewRepoStub{reviews: make(map[uuid.UUID]*model.Review)}
}

func (s *reviewRepoStub) Create(_ context.Context, r *model.Review) error {
	r.ID = uuid.New()
	copied := *r
	s.reviews[r.ID] = &copied
	return nil
}

func (s *reviewRepoStub) Get(_ context.Context, id uuid.UUID) (*model.Review, error) {
	if r, ok := s.reviews[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (s *reviewRepoStub) GetDetail(_ context.Context, id uuid.UUID) (*model.ReviewDetail, error) {
	if r, ok := s.reviews[id]; ok {
		return &model.ReviewDetail{Rating: r.Rating, Comment: r.Comment}, nil
	}
	return nil, repository.ErrNotFound
}

func (s *reviewRepoStub) Update(_ context.Context, r *model.Review) error {
	if _, ok := s.reviews[r.ID]; !ok {
		return repository.ErrNotFound
	}
	copied := *r
	s.reviews[r.ID] = &copied
	return nil
}

func (s *reviewRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.reviews[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.reviews, id)
	return nil
}

func (s *reviewRepoStub) ListForNurse(_ context.Context, nurseID uuid.UUID) ([]*model.NurseReview, error) {
	var out []*model.NurseReview
	for _, r := range s.reviews {
		if r.NurseID == nurseID {
			out = append(out, &model.NurseReview{Rating: r.Rating, Comment: r.Comment})
		}
	}
	return out, nil
}

type nurseRepoStub struct {
	nurses map[uuid.UUID]*model.Nurse
}

func (s *nurseRepoStub) Create(_ context.Context, _ *model.Nurse) error { return nil }

func (s *nurseRepoStub) Get(_ context.Context, id uuid.UUID) (*model.Nurse, error) {
	if n, ok := s.nurses[id]; ok {
		return n, nil
	}
	return nil, repository.ErrNotFound
}

func (s *nurseRepoStub) GetByUsername(_ context.Context, _ string) (*model.Nurse, error) {
	return nil, repository.ErrNotFound
}

func (s *nurseRepoStub) List(_ context.Context) ([]*model.Nurse, error) { return nil, nil }

type patientRepoStub struct {
	patients map[uuid.UUID]*model.Patient
}

func (s *patientRepoStub) Create(_ context.Context, _ *model.Patient) error { return nil }

func (s *patientRepoStub) Get(_ context.Context, id uuid.UUID) (*model.Patient, error) {
	if p, ok := s.patients[id]; ok {
		return p, nil
	}
	return nil, repository.ErrNotFound
}

func (s *patientRepoStub) GetByUsername(_ context.Context, _ string) (*model.Patient, error) {
	return nil, repository.ErrNotFound
}

type fixture struct {
	svc     *Service
	reviews *reviewRepoStub
	nurse   *model.Nurse
	patient *model.Patient
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	nurse := &model.Nurse{ID: uuid.New(), Username: "nurse_joy", IsAvailable: true}
	patient := &model.Patient{ID: uuid.New(), Username: "pat"}

	reviews := newReviewRepoStub()
	svc := NewService(
		reviews,
		&nurseRepoStub{nurses: map[uuid.UUID]*model.Nurse{nurse.ID: nurse}},
		&patientRepoStub{patients: map[uuid.UUID]*model.Patient{patient.ID: patient}},
		time.Minute, time.Minute,
	)
	return &fixture{svc: svc, reviews: reviews, nurse: nurse, patient: patient}
}

func errCode(t *testing.T, err error) apperrors.ErrorCode {
	t.Helper()
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Code
}

func TestListForNurseAverageRating(t *testing.T) {
	f := newFixture(t)

	for _, rating := range []int{3, 5} {
		_, err := f.svc.Create(context.Background(), f.patient.ID, &model.CreateReviewRequest{
			NurseID: f.nurse.ID,
			Rating:  rating,
		})
		require.NoError(t, err)
	}

	result, err := f.svc.ListForNurse(context.Background(), f.nurse.ID)
	require.NoError(t, err)
	assert.Equal(t, "nurse_joy", result.Nurse)
	assert.Equal(t, 4.0, result.AverageRating)
	assert.Len(t, result.Reviews, 2)
}

func TestListForNurseNoReviews(t *testing.T) {
	f := newFixture(t)

	result, err := f.svc.ListForNurse(context.Background(), f.nurse.ID)
	require.NoError(t, err)
	assert.Zero(t, result.AverageRating)
	assert.NotNil(t, result.Reviews)
	assert.Empty(t, result.Reviews)
}

func TestListForNurseUnknownNurse(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ListForNurse(context.Background(), uuid.New())
	assert.Equal(t, apperrors.ErrNotFound, errCode(t, err))
}

func TestListForNurseCachesUntilMutation(t *testing.T) {
	f := newFixture(t)

	first, err := f.svc.ListForNurse(context.Background(), f.nurse.ID)
	require.NoError(t, err)
	assert.Empty(t, first.Reviews)

	// Bypass the service so the cached listing goes stale.
	require.NoError(t, f.reviews.Create(context.Background(), &model.Review{
		NurseID: f.nurse.ID, PatientID: f.patient.ID, Rating: 5,
	}))

	cached, err := f.svc.ListForNurse(context.Background(), f.nurse.ID)
	require.NoError(t, err)
	assert.Empty(t, cached.Reviews)

	_, err = f.svc.Create(context.Background(), f.patient.ID, &model.CreateReviewRequest{
		NurseID: f.nurse.ID, Rating: 1,
	})
	require.NoError(t, err)

	fresh, err := f.svc.ListForNurse(context.Background(), f.nurse.ID)
	require.NoError(t, err)
	assert.Len(t, fresh.Reviews, 2)
}

func TestCreateRejectsNonPatientCaller(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), f.nurse.ID, &model.CreateReviewRequest{
		NurseID: f.nurse.ID,
		Rating:  4,
	})
	assert.Equal(t, apperrors.ErrUnauthorized, errCode(t, err))
}

func TestCreateUnknownNurse(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), f.patient.ID, &model.CreateReviewRequest{
		NurseID: uuid.New(),
		Rating:  4,
	})
	assert.Equal(t, apperrors.ErrNotFound, errCode(t, err))
}

func TestUpdateRequiresAuthor(t *testing.T) {
	f := newFixture(t)

	review, err := f.svc.Create(context.Background(), f.patient.ID, &model.CreateReviewRequest{
		NurseID: f.nurse.ID,
		Rating:  2,
	})
	require.NoError(t, err)

	err = f.svc.Update(context.Background(), uuid.New(), review.ID, &model.UpdateReviewRequest{Rating: 5})
	assert.Equal(t, apperrors.ErrUnauthorized, errCode(t, err))

	err = f.svc.Update(context.Background(), f.patient.ID, review.ID, &model.UpdateReviewRequest{Rating: 5})
	require.NoError(t, err)

	stored, err := f.reviews.Get(context.Background(), review.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Rating)
}

func TestDeleteRequiresAuthor(t *testing.T) {
	f := newFixture(t)

	review, err := f.svc.Create(context.Background(), f.patient.ID, &model.CreateReviewRequest{
		NurseID: f.nurse.ID,
		Rating:  2,
	})
	require.NoError(t, err)

	err = f.svc.Delete(context.Background(), uuid.New(), review.ID)
	assert.Equal(t, apperrors.ErrUnauthorized, errCode(t, err))

	err = f.svc.Delete(context.Background(), f.patient.ID, review.ID)
	require.NoError(t, err)

	_, err = f.reviews.Get(context.Background(), review.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGetUnknownReview(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Get(context.Background(), uuid.New())
	assert.Equal(t, apperrors.ErrNotFound, errCode(t, err))
}
