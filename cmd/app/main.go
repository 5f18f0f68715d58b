package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Saruman1/airline/config"
	"github.com/Saruman1/airline/internal/bootstrap"
	"github.com/Saruman1/airline/internal/cache"
	"github.com/Saruman1/airline/internal/kafka"
	"github.com/Saruman1/airline/internal/registry"
	"github.com/Saruman1/airline/internal/repository"
	"github.com/Saruman1/airline/internal/service/flights"
	"github.com/Saruman1/airline/internal/service/reservation"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	inventory := registry.NewAirlineInventory()
	if err := loadInventory(ctx, repository.NewInventoryRepository(pool), inventory); err != nil {
		log.Fatalf("load inventory: %v", err)
	}

	flightsTTL := time.Duration(cfg.Cache.FlightsTTLSeconds) * time.Second
	redisCache := cache.NewRedisCache(cfg.Redis, flightsTTL)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	flightService := flights.NewFlightService(inventory, redisCache, flightsTTL)
	reservationService := reservation.NewReservationService(
		inventory,
		redisCache,
		producer,
		cfg.Kafka.TicketEventsTopic,
		reservation.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	if err := bootstrap.Run(ctx, cfg, inventory, flightService, reservationService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func loadInventory(ctx context.Context, repo repository.InventoryRepository, inventory *registry.AirlineInventory) error {
	flightRows, err := repo.Flights(ctx)
	if err != nil {
		return err
	}
	for i := range flightRows {
		inventory.AddFlight(&flightRows[i])
	}

	planeRows, err := repo.Planes(ctx)
	if err != nil {
		return err
	}
	for i := range planeRows {
		inventory.AddPlane(&planeRows[i])
	}

	passengerRows, err := repo.Passengers(ctx)
	if err != nil {
		return err
	}
	for i := range passengerRows {
		inventory.AddPassenger(&passengerRows[i])
	}

	log.Printf("inventory loaded: %d flights, %d planes, %d passengers", len(flightRows), len(planeRows), len(passengerRows))
	return nil
}
