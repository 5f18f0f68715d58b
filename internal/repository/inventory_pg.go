package repository

import (
	"context"
	"log"

	"github.com/Saruman1/airline/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InventoryRepository supplies the seed flights, planes and passengers the
// in-memory registry is loaded with at startup.
type InventoryRepository interface {
	Flights(ctx context.Context) ([]domain.Flight, error)
	Planes(ctx context.Context) ([]domain.Plane, error)
	Passengers(ctx context.Context) ([]domain.Passenger, error)
}

type PGInventoryRepository struct {
	db *pgxpool.Pool
}

func NewInventoryRepository(db *pgxpool.Pool) InventoryRepository {
	return &PGInventoryRepository{db: db}
}

func (r *PGInventoryRepository) Flights(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT number, departure, destination, departure_date, arrival_date, price_cents, max_passengers FROM flights ORDER BY departure_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.Number, &f.Departure, &f.Destination, &f.DepartureDate, &f.ArrivalDate, &f.PriceCents, &f.MaxPassengers); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGInventoryRepository) Planes(ctx context.Context) ([]domain.Plane, error) {
	rows, err := r.db.Query(ctx, `SELECT type, max_baggage_kg, total_seats FROM planes ORDER BY type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	planes := make([]domain.Plane, 0)
	for rows.Next() {
		var p domain.Plane
		if err := rows.Scan(&p.Type, &p.MaxBaggageKg, &p.TotalSeats); err != nil {
			return nil, err
		}
		planes = append(planes, p)
	}
	return planes, rows.Err()
}

func (r *PGInventoryRepository) Passengers(ctx context.Context) ([]domain.Passenger, error) {
	rows, err := r.db.Query(ctx, `SELECT first_name, last_name, passport_number, phone_number FROM passengers ORDER BY last_name, first_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	passengers := make([]domain.Passenger, 0)
	for rows.Next() {
		var p domain.Passenger
		var passport string
		if err := rows.Scan(&p.FirstName, &p.LastName, &passport, &p.PhoneNumber); err != nil {
			return nil, err
		}
		parsed, err := domain.ParsePassport(passport)
		if err != nil {
			// Stored value fails the format check: keep the passenger with
			// an unset passport rather than carrying the bad number.
			log.Printf("passenger %s %s has invalid passport number %q", p.FirstName, p.LastName, passport)
		}
		p.Passport = parsed
		passengers = append(passengers, p)
	}
	return passengers, rows.Err()
}

var _ InventoryRepository = (*PGInventoryRepository)(nil)
