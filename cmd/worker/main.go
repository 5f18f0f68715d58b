package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Saruman1/airline/config"
	"github.com/Saruman1/airline/internal/email"
	"github.com/Saruman1/airline/internal/kafka"
	"github.com/Saruman1/airline/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	kafkaGo "github.com/segmentio/kafka-go"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	archive := repository.NewTicketArchive(pool)
	emailSender := email.NewSender()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.TicketEventsTopic)
	defer consumer.Close()

	go func() {
		if err := consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
			var event kafka.TicketEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				log.Printf("decode event error: %v", err)
				return nil
			}

			switch event.Type {
			case kafka.EventTicketIssued:
				if err := archive.RecordIssued(ctx, event); err != nil {
					log.Printf("archive ticket %s: %v", event.TicketNumber, err)
				}
			case kafka.EventTicketCancelled:
				if err := archive.RecordCancelled(ctx, event); err != nil {
					log.Printf("archive cancellation %s: %v", event.TicketNumber, err)
				}
			default:
				log.Printf("unknown event type %q", event.Type)
				return nil
			}

			return emailSender.Send(ctx, event)
		}); err != nil {
			log.Printf("consumer stopped: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	s := <-sig
	log.Printf("received signal %v, shutting down", s)
}
