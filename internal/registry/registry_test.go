package registry

import (
	"testing"
	"time"

	"github.com/Saruman1/airline/internal/domain"
	"github.com/stretchr/testify/assert"
)

func inventoryWithFixtures(t *testing.T) *AirlineInventory {
	t.Helper()
	inv := NewAirlineInventory()

	inv.AddFlight(&domain.Flight{
		Number:        "FL123",
		Departure:     "New York",
		Destination:   "Los Angeles",
		DepartureDate: time.Date(2023, 4, 15, 9, 0, 0, 0, time.UTC),
		PriceCents:    500,
		MaxPassengers: 100,
	})
	inv.AddFlight(&domain.Flight{
		Number:        "FL456",
		Departure:     "Chicago",
		Destination:   "Miami",
		DepartureDate: time.Date(2023, 4, 16, 9, 0, 0, 0, time.UTC),
		PriceCents:    300,
		MaxPassengers: 80,
	})
	inv.AddPlane(&domain.Plane{Type: "Boeing 747", MaxBaggageKg: 50, TotalSeats: 200})

	passport, err := domain.ParsePassport("123456789")
	assert.NoError(t, err)
	inv.AddPassenger(&domain.Passenger{FirstName: "John", LastName: "Doe", Passport: passport, PhoneNumber: "1234567890"})

	return inv
}

func TestAirlineInventory_FindFlight(t *testing.T) {
	inv := inventoryWithFixtures(t)

	flight, err := inv.FindFlight("FL123")
	assert.NoError(t, err)
	assert.Equal(t, "Los Angeles", flight.Destination)

	_, err = inv.FindFlight("FL999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAirlineInventory_FindFlightByDate(t *testing.T) {
	inv := inventoryWithFixtures(t)

	flight, err := inv.FindFlightByDate("2023-04-16")
	assert.NoError(t, err)
	assert.Equal(t, "FL456", flight.Number)

	_, err = inv.FindFlightByDate("2023-04-17")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAirlineInventory_FindPassenger(t *testing.T) {
	inv := inventoryWithFixtures(t)

	passenger, err := inv.FindPassenger("123456789")
	assert.NoError(t, err)
	assert.Equal(t, "John", passenger.FirstName)

	_, err = inv.FindPassenger("000000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAirlineInventory_AddPassenger_SkipsUnsetPassport(t *testing.T) {
	inv := NewAirlineInventory()
	inv.AddPassenger(&domain.Passenger{FirstName: "Ghost", LastName: "Rider"})

	_, err := inv.FindPassenger("")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAirlineInventory_FindPlane(t *testing.T) {
	inv := inventoryWithFixtures(t)

	plane, err := inv.FindPlane("Boeing 747")
	assert.NoError(t, err)
	assert.Equal(t, 200, plane.TotalSeats)

	_, err = inv.FindPlane("Concorde")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAirlineInventory_TicketIndex(t *testing.T) {
	inv := inventoryWithFixtures(t)
	flight, err := inv.FindFlight("FL123")
	assert.NoError(t, err)
	passenger, err := inv.FindPassenger("123456789")
	assert.NoError(t, err)

	l, err := inv.Ledger("FL123")
	assert.NoError(t, err)

	ticket, err := l.Book(passenger)
	assert.NoError(t, err)
	assert.Equal(t, flight, ticket.Flight)

	inv.RecordTicket(ticket)
	found, err := inv.FindBookedTicket(ticket.Number)
	assert.NoError(t, err)
	assert.Equal(t, ticket, found)

	inv.RemoveTicket(ticket.Number)
	_, err = inv.FindBookedTicket(ticket.Number)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAirlineInventory_Ledger_NotFound(t *testing.T) {
	inv := NewAirlineInventory()

	_, err := inv.Ledger("FL123")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAirport_FindFlight(t *testing.T) {
	flight := &domain.Flight{Number: "FL123"}
	airport := NewAirport("JFK", []*domain.Flight{flight}, []*domain.Plane{{Type: "Boeing 747"}})

	found, err := airport.FindFlight("FL123")
	assert.NoError(t, err)
	assert.Equal(t, flight, found)

	_, err = airport.FindFlight("FL456")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
