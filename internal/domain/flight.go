package domain

import "time"

type Flight struct {
	Number        string
	Departure     string
	Destination   string
	DepartureDate time.Time
	ArrivalDate   time.Time
	PriceCents    int64
	MaxPassengers int
}

type Plane struct {
	Type         string
	MaxBaggageKg int
	TotalSeats   int
}
