package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Saruman1/airline/api"
	"github.com/Saruman1/airline/config"
	"github.com/Saruman1/airline/internal/registry"
	"github.com/Saruman1/airline/internal/service/flights"
	"github.com/Saruman1/airline/internal/service/reservation"
	"github.com/gin-gonic/gin"
)

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, inventory *registry.AirlineInventory, flightSvc flights.FlightUseCase, reservationSvc reservation.ReservationUseCase) error {
	router := NewRouter(inventory, flightSvc, reservationSvc)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

// NewRouter wires the handlers onto a gin engine.
func NewRouter(inventory *registry.AirlineInventory, flightSvc flights.FlightUseCase, reservationSvc reservation.ReservationUseCase) *gin.Engine {
	router := gin.Default()

	flightHandler := api.NewFlightHandler(flightSvc, reservationSvc)
	ticketHandler := api.NewTicketHandler(reservationSvc)
	passengerHandler := api.NewPassengerHandler(inventory)

	flightHandler.Register(router.Group("/flights"))
	ticketHandler.Register(router.Group("/tickets"))
	passengerHandler.Register(router.Group("/passengers"))

	return router
}
