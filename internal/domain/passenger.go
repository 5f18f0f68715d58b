package domain

import "time"

type Passenger struct {
	FirstName   string
	LastName    string
	Passport    Passport
	PhoneNumber string
	// TicketNumber is empty while the passenger holds no ticket.
	TicketNumber string
}

func (p *Passenger) Booked() bool {
	return p.TicketNumber != ""
}

type Ticket struct {
	Number     string
	Flight     *Flight
	Passenger  *Passenger
	Seat       int
	PriceCents int64
	IssuedAt   time.Time
}
