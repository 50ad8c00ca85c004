package directory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/nurselink/booking-api/internal/repository"
	apperrors "github.com/nurselink/booking-api/pkg/errors"
)

const nursesKey = "nurses"

// Service serves the public, unauthenticated nurse directory. Listings are
// cached with a TTL and invalidated when a nurse registers.
type Service struct {
	nurses repository.NurseRepository
	cache  *gocache.Cache
}

func NewService(nurses repository.NurseRepository, cacheTTL, cacheCleanup time.Duration) *Service {
	return &Service{
		nurses: nurses,
		cache:  gocache.New(cacheTTL, cacheCleanup),
	}
}

// ListNurses returns all nurse usernames.
func (s *Service) ListNurses(ctx context.Context) ([]string, error) {
	if cached, ok := s.cache.Get(nursesKey); ok {
		return cached.([]string), nil
	}

	nurses, err := s.nurses.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	usernames := make([]string, 0, len(nurses))
	for _, n := range nurses {
		usernames = append(usernames, n.Username)
	}

	s.cache.SetDefault(nursesKey, usernames)
	return usernames, nil
}

// GetNurse returns a single nurse's username by id.
func (s *Service) GetNurse(ctx context.Context, id uuid.UUID) (string, error) {
	nurse, err := s.nurses.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", apperrors.NotFound("nurse", err)
		}
		return "", apperrors.Internal(err)
	}
	return nurse.Username, nil
}

// InvalidateNurses drops the cached listing.
func (s *Service) InvalidateNurses() {
	s.cache.Delete(nursesKey)
}
