package repository

import (
	"context"
	"errors"

	"github.com/Saruman1/airline/internal/kafka"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TicketArchive keeps a durable trail of issued and cancelled tickets,
// fed from the ticket event stream. The live ledger stays in memory; the
// archive is for reporting and audit only.
type TicketArchive interface {
	RecordIssued(ctx context.Context, event kafka.TicketEvent) error
	RecordCancelled(ctx context.Context, event kafka.TicketEvent) error
}

type PGTicketArchive struct {
	db *pgxpool.Pool
}

func NewTicketArchive(db *pgxpool.Pool) TicketArchive {
	return &PGTicketArchive{db: db}
}

func (r *PGTicketArchive) RecordIssued(ctx context.Context, event kafka.TicketEvent) error {
	_, err := r.db.Exec(ctx, `INSERT INTO ticket_archive (ticket_number, flight_number, passport, passenger, seat, price_cents, issued_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (ticket_number) DO NOTHING`,
		event.TicketNumber, event.FlightNumber, event.Passport, event.Passenger, event.Seat, event.PriceCents, event.IssuedAt)
	return err
}

func (r *PGTicketArchive) RecordCancelled(ctx context.Context, event kafka.TicketEvent) error {
	cmd, err := r.db.Exec(ctx, `UPDATE ticket_archive SET cancelled_at = now() WHERE ticket_number = $1`, event.TicketNumber)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("ticket not found in archive")
	}
	return nil
}

var _ TicketArchive = (*PGTicketArchive)(nil)
