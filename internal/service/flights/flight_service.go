package flights

import (
	"context"
	"sort"
	"time"

	"github.com/Saruman1/airline/internal/domain"
	"github.com/Saruman1/airline/internal/registry"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByNumber(ctx context.Context, number string) (*domain.Flight, error)
	GetByDate(ctx context.Context, date string) (*domain.Flight, error)
}

type FlightCache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type FlightService struct {
	inventory *registry.AirlineInventory
	cache     FlightCache
	cacheTTL  time.Duration
}

func NewFlightService(inventory *registry.AirlineInventory, cache FlightCache, cacheTTL time.Duration) *FlightService {
	return &FlightService{inventory: inventory, cache: cache, cacheTTL: cacheTTL}
}

func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights := s.inventory.Flights()
	out := make([]domain.Flight, 0, len(flights))
	for _, f := range flights {
		out = append(out, *f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DepartureDate.Before(out[j].DepartureDate) })

	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, out)
	}
	return out, nil
}

func (s *FlightService) GetByNumber(ctx context.Context, number string) (*domain.Flight, error) {
	return s.inventory.FindFlight(number)
}

func (s *FlightService) GetByDate(ctx context.Context, date string) (*domain.Flight, error) {
	return s.inventory.FindFlightByDate(date)
}

var _ FlightUseCase = (*FlightService)(nil)
