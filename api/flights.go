package api

import (
	"errors"
	"net/http"

	"github.com/Saruman1/airline/internal/domain"
	"github.com/Saruman1/airline/internal/service/flights"
	"github.com/Saruman1/airline/internal/service/reservation"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service      flights.FlightUseCase
	reservations reservation.ReservationUseCase
}

func NewFlightHandler(service flights.FlightUseCase, reservations reservation.ReservationUseCase) *FlightHandler {
	return &FlightHandler{service: service, reservations: reservations}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/by-date", h.getByDate)
	router.GET("/:number", h.get)
	router.GET("/:number/cost", h.totalCost)
	router.GET("/:number/seats", h.freeSeats)
}

func (h *FlightHandler) list(c *gin.Context) {
	flights, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) get(c *gin.Context) {
	flight, err := h.service.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) getByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}
	flight, err := h.service.GetByDate(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) totalCost(c *gin.Context) {
	total, err := h.reservations.TotalCost(c.Request.Context(), c.Param("number"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"flight_number": c.Param("number"), "total_cost_cents": total})
}

func (h *FlightHandler) freeSeats(c *gin.Context) {
	plane := c.Query("plane")
	if plane == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "plane query parameter is required"})
		return
	}
	seats, err := h.reservations.FreeSeats(c.Request.Context(), c.Param("number"), plane)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, domain.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"flight_number": c.Param("number"), "plane": plane, "free_seats": seats})
}
