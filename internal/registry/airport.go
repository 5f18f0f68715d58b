package registry

import (
	"github.com/Saruman1/airline/internal/domain"
)

// Airport groups the flights departing from one location with the planes
// stationed there. It is a thin view; bookings always go through the
// inventory's ledgers.
type Airport struct {
	Location string
	Flights  []*domain.Flight
	Planes   []*domain.Plane
}

func NewAirport(location string, flights []*domain.Flight, planes []*domain.Plane) *Airport {
	return &Airport{Location: location, Flights: flights, Planes: planes}
}

func (a *Airport) FindFlight(number string) (*domain.Flight, error) {
	for _, f := range a.Flights {
		if f.Number == number {
			return f, nil
		}
	}
	return nil, domain.ErrNotFound
}
