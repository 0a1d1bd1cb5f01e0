package flights

import (
	"context"

	"github.com/emolina91/reservavuelos/internal/domain"
	"github.com/emolina91/reservavuelos/internal/repository"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByNumber(ctx context.Context, number string) (*domain.Flight, error)
	CreateMany(ctx context.Context, flights []domain.Flight) (int64, error)
	Update(ctx context.Context, number string, f *domain.Flight) (*domain.Flight, error)
	Delete(ctx context.Context, number string) (*domain.Flight, error)
}

type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type FlightService struct {
	repo  repository.FlightRepository
	cache Cache
}

func NewFlightService(repo repository.FlightRepository, cache Cache) *FlightService {
	return &FlightService{repo: repo, cache: cache}
}

// List serves the date-ordered flight listing, cache-aside. A cache
// error falls through to the repository.
func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *FlightService) GetByNumber(ctx context.Context, number string) (*domain.Flight, error) {
	return s.repo.GetByNumber(ctx, number)
}

func (s *FlightService) CreateMany(ctx context.Context, flights []domain.Flight) (int64, error) {
	count, err := s.repo.CreateMany(ctx, flights)
	if err != nil {
		return count, err
	}
	s.invalidate(ctx)
	return count, nil
}

func (s *FlightService) Update(ctx context.Context, number string, f *domain.Flight) (*domain.Flight, error) {
	updated, err := s.repo.Update(ctx, number, f)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return updated, nil
}

func (s *FlightService) Delete(ctx context.Context, number string) (*domain.Flight, error) {
	deleted, err := s.repo.Delete(ctx, number)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return deleted, nil
}

func (s *FlightService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
}

var _ FlightUseCase = (*FlightService)(nil)
