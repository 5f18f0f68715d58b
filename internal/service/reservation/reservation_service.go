package reservation

import (
	"context"
	"log"

	"github.com/Saruman1/airline/internal/domain"
	"github.com/Saruman1/airline/internal/kafka"
	"github.com/Saruman1/airline/internal/registry"
)

type ReservationUseCase interface {
	BookTicket(ctx context.Context, flightNumber, passport string) (*domain.Ticket, error)
	CancelTicket(ctx context.Context, flightNumber, passport string) (*domain.Ticket, error)
	CancelByTicketNumber(ctx context.Context, ticketNumber string) (*domain.Ticket, error)
	TotalCost(ctx context.Context, flightNumber string) (int64, error)
	FreeSeats(ctx context.Context, flightNumber, planeType string) ([]int, error)
}

type Cache interface {
	InvalidateFlights(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type ReservationService struct {
	inventory          *registry.AirlineInventory
	cache              Cache
	producer           Producer
	ticketTopic        string
	notificationsTopic string
}

type ReservationServiceOption func(*ReservationService)

func WithNotificationsTopic(topic string) ReservationServiceOption {
	return func(s *ReservationService) {
		s.notificationsTopic = topic
	}
}

func NewReservationService(
	inventory *registry.AirlineInventory,
	cache Cache,
	producer Producer,
	ticketTopic string,
	opts ...ReservationServiceOption,
) *ReservationService {
	service := &ReservationService{
		inventory:   inventory,
		cache:       cache,
		producer:    producer,
		ticketTopic: ticketTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// BookTicket routes a booking request to the flight's ledger. The ledger
// enforces capacity, rejects duplicates and assigns the seat; on success
// the ticket enters the global index and a ticket_issued event goes out.
func (s *ReservationService) BookTicket(ctx context.Context, flightNumber, passport string) (*domain.Ticket, error) {
	ledger, err := s.inventory.Ledger(flightNumber)
	if err != nil {
		return nil, err
	}
	passenger, err := s.inventory.FindPassenger(passport)
	if err != nil {
		return nil, err
	}

	ticket, err := ledger.Book(passenger)
	if err != nil {
		return nil, err
	}

	s.inventory.RecordTicket(ticket)
	s.invalidate(ctx)
	if err := s.publish(ctx, kafka.EventTicketIssued, ticket); err != nil {
		log.Printf("WARNING: failed to publish ticket_issued event for ticket %s: %v", ticket.Number, err)
	}
	return ticket, nil
}

func (s *ReservationService) CancelTicket(ctx context.Context, flightNumber, passport string) (*domain.Ticket, error) {
	ledger, err := s.inventory.Ledger(flightNumber)
	if err != nil {
		return nil, err
	}
	passenger, err := s.inventory.FindPassenger(passport)
	if err != nil {
		return nil, err
	}

	ticket, err := ledger.Cancel(passenger)
	if err != nil {
		return nil, err
	}

	s.inventory.RemoveTicket(ticket.Number)
	s.invalidate(ctx)
	if err := s.publish(ctx, kafka.EventTicketCancelled, ticket); err != nil {
		log.Printf("WARNING: failed to publish ticket_cancelled event for ticket %s: %v", ticket.Number, err)
	}
	return ticket, nil
}

// CancelByTicketNumber resolves the ticket in the global index first, then
// cancels it on its flight.
func (s *ReservationService) CancelByTicketNumber(ctx context.Context, ticketNumber string) (*domain.Ticket, error) {
	ticket, err := s.inventory.FindBookedTicket(ticketNumber)
	if err != nil {
		return nil, err
	}
	return s.CancelTicket(ctx, ticket.Flight.Number, ticket.Passenger.Passport.String())
}

func (s *ReservationService) TotalCost(ctx context.Context, flightNumber string) (int64, error) {
	ledger, err := s.inventory.Ledger(flightNumber)
	if err != nil {
		return 0, err
	}
	return ledger.TotalCostCents(), nil
}

// FreeSeats reports the open seat indices on a flight for the plane flying
// it. Plane assignment lives in the registry, not on the flight itself.
func (s *ReservationService) FreeSeats(ctx context.Context, flightNumber, planeType string) ([]int, error) {
	ledger, err := s.inventory.Ledger(flightNumber)
	if err != nil {
		return nil, err
	}
	plane, err := s.inventory.FindPlane(planeType)
	if err != nil {
		return nil, err
	}
	return ledger.FreeSeats(plane.TotalSeats), nil
}

func (s *ReservationService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateFlights(ctx)
	}
}

func (s *ReservationService) publish(ctx context.Context, eventType string, ticket *domain.Ticket) error {
	if s.producer == nil || s.ticketTopic == "" {
		return nil
	}
	event := kafka.TicketEvent{
		Type:         eventType,
		TicketNumber: ticket.Number,
		FlightNumber: ticket.Flight.Number,
		Passport:     ticket.Passenger.Passport.String(),
		Passenger:    ticket.Passenger.FirstName + " " + ticket.Passenger.LastName,
		Seat:         ticket.Seat,
		PriceCents:   ticket.PriceCents,
		IssuedAt:     ticket.IssuedAt,
	}
	if err := s.producer.Publish(ctx, s.ticketTopic, ticket.Number, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, ticket.Number, event)
	}
	return nil
}

var _ ReservationUseCase = (*ReservationService)(nil)
