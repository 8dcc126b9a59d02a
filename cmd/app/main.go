package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/rkalsi89/flightdesk/config"
	"github.com/rkalsi89/flightdesk/internal/bootstrap"
	"github.com/rkalsi89/flightdesk/internal/catalog"
	"github.com/rkalsi89/flightdesk/internal/kafka"
	"github.com/rkalsi89/flightdesk/internal/service/booking"
	"github.com/rkalsi89/flightdesk/internal/service/flights"
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

	var producer *kafka.Producer
	if cfg.Kafka.Enabled() {
		producer = kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
	}

	cat := catalog.Builtin()
	flightService := flights.NewFlightService(cat)
	bookingService := booking.NewBookingService(cat, producer, cfg.Kafka.BookingTopic)

	if err := bootstrap.Run(ctx, cfg, flightService, bookingService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
