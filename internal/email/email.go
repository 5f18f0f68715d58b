package email

import (
	"context"
	"fmt"

	"github.com/Saruman1/airline/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.TicketEvent) error {
	fmt.Printf("notify %s (passport %s) about %s for flight %s seat %d\n", event.Passenger, event.Passport, event.Type, event.FlightNumber, event.Seat)
	return nil
}
