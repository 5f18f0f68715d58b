package ledger

import (
	"sync"
	"time"

	"github.com/Saruman1/airline/internal/domain"
	"github.com/google/uuid"
)

// Ledger is the authority over one flight's bookings: it enforces the
// capacity bound, issues and revokes tickets, and owns the seat map.
// A single mutex serializes booking and cancellation per flight, so two
// concurrent bookings can never both pass the capacity check. Different
// flights have different ledgers and do not contend.
type Ledger struct {
	mu         sync.Mutex
	flight     *domain.Flight
	passengers []*domain.Passenger
	tickets    []*domain.Ticket
	seats      map[int]string // seat index -> ticket number
}

func New(flight *domain.Flight) *Ledger {
	return &Ledger{
		flight: flight,
		seats:  make(map[int]string),
	}
}

func (l *Ledger) Flight() *domain.Flight {
	return l.flight
}

// Book issues a ticket for the passenger at the flight's current price.
// The price is snapshotted on the ticket, so later fare changes do not
// affect already-sold tickets. The passenger gets the lowest free seat.
func (l *Ledger) Book(p *domain.Passenger) (*domain.Ticket, error) {
	if l == nil || l.flight == nil || p == nil {
		return nil, domain.ErrInvalidArgument
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.passengers) >= l.flight.MaxPassengers {
		return nil, domain.ErrCapacityExceeded
	}
	for _, t := range l.tickets {
		if l.samePassenger(t.Passenger, p) {
			return nil, domain.ErrDuplicateBooking
		}
	}

	ticket := &domain.Ticket{
		Number:     uuid.NewString(),
		Flight:     l.flight,
		Passenger:  p,
		Seat:       l.lowestFreeSeat(),
		PriceCents: l.flight.PriceCents,
		IssuedAt:   time.Now(),
	}

	l.passengers = append(l.passengers, p)
	l.tickets = append(l.tickets, ticket)
	l.seats[ticket.Seat] = ticket.Number
	p.TicketNumber = ticket.Number

	return ticket, nil
}

// Cancel revokes the passenger's ticket on this flight. The ticket is
// resolved by the ticket number the passenger holds; if the passenger
// carries none, the ledger is scanned for a matching passenger. A miss
// returns ErrNotFound and leaves the ledger untouched.
func (l *Ledger) Cancel(p *domain.Passenger) (*domain.Ticket, error) {
	if l == nil || l.flight == nil || p == nil {
		return nil, domain.ErrInvalidArgument
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	idx := -1
	for i, t := range l.tickets {
		if p.TicketNumber != "" {
			if t.Number == p.TicketNumber {
				idx = i
				break
			}
			continue
		}
		if l.samePassenger(t.Passenger, p) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, domain.ErrNotFound
	}

	ticket := l.tickets[idx]
	l.tickets = append(l.tickets[:idx], l.tickets[idx+1:]...)
	for i, rp := range l.passengers {
		if l.samePassenger(rp, ticket.Passenger) {
			l.passengers = append(l.passengers[:i], l.passengers[i+1:]...)
			break
		}
	}
	delete(l.seats, ticket.Seat)
	ticket.Passenger.TicketNumber = ""

	return ticket, nil
}

// TotalCostCents sums the price snapshots of all booked tickets.
func (l *Ledger) TotalCostCents() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	var total int64
	for _, t := range l.tickets {
		total += t.PriceCents
	}
	return total
}

// FreeSeats reports the unassigned seat indices in 1..totalSeats for the
// plane currently assigned to the flight, in ascending order.
func (l *Ledger) FreeSeats(totalSeats int) []int {
	l.mu.Lock()
	defer l.mu.Unlock()

	free := make([]int, 0, totalSeats)
	for i := 1; i <= totalSeats; i++ {
		if _, taken := l.seats[i]; !taken {
			free = append(free, i)
		}
	}
	return free
}

func (l *Ledger) Booked() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.tickets)
}

func (l *Ledger) Passengers() []*domain.Passenger {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*domain.Passenger, len(l.passengers))
	copy(out, l.passengers)
	return out
}

func (l *Ledger) Tickets() []*domain.Ticket {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*domain.Ticket, len(l.tickets))
	copy(out, l.tickets)
	return out
}

// samePassenger matches by identity first, then by valid passport number,
// the natural key within a passenger registry.
func (l *Ledger) samePassenger(a, b *domain.Passenger) bool {
	if a == b {
		return true
	}
	return a != nil && b != nil && a.Passport.Valid() && a.Passport == b.Passport
}

func (l *Ledger) lowestFreeSeat() int {
	for i := 1; ; i++ {
		if _, taken := l.seats[i]; !taken {
			return i
		}
	}
}
