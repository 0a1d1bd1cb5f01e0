package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/emolina91/reservavuelos/config"
	"github.com/emolina91/reservavuelos/internal/email"
	"github.com/emolina91/reservavuelos/internal/kafka"
	"github.com/emolina91/reservavuelos/internal/repository"
	"github.com/emolina91/reservavuelos/internal/service/checkin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	kafkaGo "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Fatal("connect postgres", zap.Error(err))
	}
	defer pool.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	checkInRepo := repository.NewCheckInRepository(pool)
	delayedRepo := repository.NewDelayedPassengerRepository(pool)
	emailRepo := repository.NewEmailRepository(pool)

	checkInService := checkin.NewCheckInService(checkInRepo, delayedRepo, producer, cfg.Kafka.NotificationsTopic, logger)
	emailSender := email.NewSender(emailRepo, logger)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	go func() {
		if err := consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
			var event kafka.NotificationEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				logger.Warn("decode event", zap.Error(err))
				return nil
			}
			return emailSender.Send(ctx, event)
		}); err != nil {
			logger.Warn("consumer stopped", zap.Error(err))
		}
	}()

	sweepTicker := time.NewTicker(time.Duration(cfg.Worker.SweepIntervalMinutes) * time.Minute)
	defer sweepTicker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-sweepTicker.C:
			registered, err := checkInService.SweepMissedCheckIns(ctx)
			if err != nil {
				logger.Error("sweep missed check-ins", zap.Error(err))
				continue
			}
			if len(registered) > 0 {
				logger.Info("registered delayed passengers", zap.Int("count", len(registered)))
			}
		case <-sig:
			logger.Info("worker stopping")
			return
		}
	}
}
