package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/rkalsi89/flightdesk/config"
	"github.com/rkalsi89/flightdesk/internal/kafka"
	"github.com/rkalsi89/flightdesk/internal/notify"
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
	if !cfg.Kafka.Enabled() {
		log.Fatal("kafka is not configured; nothing for the worker to consume")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.BookingTopic)
	defer consumer.Close()

	notifier := notify.NewNotifier()

	if err := consumer.Consume(ctx, notifier.Notify); err != nil && ctx.Err() == nil {
		log.Printf("consumer stopped: %v", err)
	}
}
