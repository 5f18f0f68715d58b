package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/Saruman1/airline/internal/domain"
	"github.com/Saruman1/airline/internal/service/reservation"
	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	service reservation.ReservationUseCase
}

type bookTicketRequest struct {
	FlightNumber string `json:"flight_number" binding:"required"`
	Passport     string `json:"passport" binding:"required"`
}

type ticketResponse struct {
	TicketNumber string `json:"ticket_number"`
	FlightNumber string `json:"flight_number"`
	Passport     string `json:"passport"`
	Seat         int    `json:"seat"`
	PriceCents   int64  `json:"price_cents"`
	IssuedAt     string `json:"issued_at"`
}

func NewTicketHandler(service reservation.ReservationUseCase) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.book)
	router.DELETE("/:number", h.cancel)
}

func (h *TicketHandler) book(c *gin.Context) {
	var req bookTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.service.BookTicket(c.Request.Context(), req.FlightNumber, req.Passport)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toTicketResponse(ticket))
}

func (h *TicketHandler) cancel(c *gin.Context) {
	ticket, err := h.service.CancelByTicketNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toTicketResponse(ticket))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrCapacityExceeded), errors.Is(err, domain.ErrDuplicateBooking):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func toTicketResponse(t *domain.Ticket) ticketResponse {
	return ticketResponse{
		TicketNumber: t.Number,
		FlightNumber: t.Flight.Number,
		Passport:     t.Passenger.Passport.String(),
		Seat:         t.Seat,
		PriceCents:   t.PriceCents,
		IssuedAt:     t.IssuedAt.Format(time.RFC3339),
	}
}
