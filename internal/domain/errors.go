package domain

import "errors"

var (
	ErrInvalidArgument  = errors.New("flight and passenger are required")
	ErrCapacityExceeded = errors.New("flight is fully booked")
	ErrDuplicateBooking = errors.New("passenger already holds a ticket on this flight")
	ErrNotFound         = errors.New("not found")
	ErrInvalidPassport  = errors.New("passport number must be exactly 9 digits")
)
