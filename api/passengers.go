package api

import (
	"net/http"

	"github.com/Saruman1/airline/internal/domain"
	"github.com/Saruman1/airline/internal/registry"
	"github.com/gin-gonic/gin"
)

type PassengerHandler struct {
	inventory *registry.AirlineInventory
}

type passengerResponse struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Passport     string `json:"passport"`
	PhoneNumber  string `json:"phone_number"`
	TicketNumber string `json:"ticket_number,omitempty"`
}

func NewPassengerHandler(inventory *registry.AirlineInventory) *PassengerHandler {
	return &PassengerHandler{inventory: inventory}
}

func (h *PassengerHandler) Register(router *gin.RouterGroup) {
	router.GET("/:passport", h.get)
}

func (h *PassengerHandler) get(c *gin.Context) {
	passenger, err := h.inventory.FindPassenger(c.Param("passport"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toPassengerResponse(passenger))
}

func toPassengerResponse(p *domain.Passenger) passengerResponse {
	return passengerResponse{
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Passport:     p.Passport.String(),
		PhoneNumber:  p.PhoneNumber,
		TicketNumber: p.TicketNumber,
	}
}
