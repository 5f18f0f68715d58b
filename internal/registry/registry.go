package registry

import (
	"sync"

	"github.com/Saruman1/airline/internal/domain"
	"github.com/Saruman1/airline/internal/ledger"
)

// AirlineInventory indexes the flights, planes and passengers the engine
// can be routed to, plus the global record of issued tickets. Lookups miss
// with domain.ErrNotFound. Each flight gets its own ledger on AddFlight.
type AirlineInventory struct {
	mu         sync.RWMutex
	flights    map[string]*domain.Flight
	ledgers    map[string]*ledger.Ledger
	planes     map[string]*domain.Plane
	passengers map[string]*domain.Passenger
	tickets    map[string]*domain.Ticket
}

func NewAirlineInventory() *AirlineInventory {
	return &AirlineInventory{
		flights:    make(map[string]*domain.Flight),
		ledgers:    make(map[string]*ledger.Ledger),
		planes:     make(map[string]*domain.Plane),
		passengers: make(map[string]*domain.Passenger),
		tickets:    make(map[string]*domain.Ticket),
	}
}

func (inv *AirlineInventory) AddFlight(f *domain.Flight) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.flights[f.Number] = f
	inv.ledgers[f.Number] = ledger.New(f)
}

func (inv *AirlineInventory) AddPlane(p *domain.Plane) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.planes[p.Type] = p
}

func (inv *AirlineInventory) AddPassenger(p *domain.Passenger) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	if p.Passport.Valid() {
		inv.passengers[p.Passport.String()] = p
	}
}

func (inv *AirlineInventory) FindFlight(number string) (*domain.Flight, error) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	f, ok := inv.flights[number]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return f, nil
}

// FindFlightByDate returns the first flight departing on the given
// calendar day.
func (inv *AirlineInventory) FindFlightByDate(date string) (*domain.Flight, error) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	for _, f := range inv.flights {
		if f.DepartureDate.Format("2006-01-02") == date {
			return f, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (inv *AirlineInventory) FindPlane(planeType string) (*domain.Plane, error) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	p, ok := inv.planes[planeType]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (inv *AirlineInventory) FindPassenger(passport string) (*domain.Passenger, error) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	p, ok := inv.passengers[passport]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (inv *AirlineInventory) FindBookedTicket(number string) (*domain.Ticket, error) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	t, ok := inv.tickets[number]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

// Ledger returns the booking ledger for a flight number.
func (inv *AirlineInventory) Ledger(number string) (*ledger.Ledger, error) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	l, ok := inv.ledgers[number]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return l, nil
}

// RecordTicket adds an issued ticket to the global index.
func (inv *AirlineInventory) RecordTicket(t *domain.Ticket) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.tickets[t.Number] = t
}

// RemoveTicket drops a cancelled ticket from the global index.
func (inv *AirlineInventory) RemoveTicket(number string) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	delete(inv.tickets, number)
}

func (inv *AirlineInventory) Flights() []*domain.Flight {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	out := make([]*domain.Flight, 0, len(inv.flights))
	for _, f := range inv.flights {
		out = append(out, f)
	}
	return out
}
