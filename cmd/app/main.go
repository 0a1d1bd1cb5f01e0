package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/emolina91/reservavuelos/api"
	"github.com/emolina91/reservavuelos/config"
	"github.com/emolina91/reservavuelos/internal/bootstrap"
	"github.com/emolina91/reservavuelos/internal/cache"
	"github.com/emolina91/reservavuelos/internal/kafka"
	"github.com/emolina91/reservavuelos/internal/repository"
	"github.com/emolina91/reservavuelos/internal/service/checkin"
	"github.com/emolina91/reservavuelos/internal/service/flights"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Fatal("connect postgres", zap.Error(err))
	}
	defer pool.Close()

	flightsTTL := time.Duration(cfg.Cache.FlightsTTLSeconds) * time.Second
	redisCache := cache.NewRedisCache(cfg.Redis, flightsTTL)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	airlineRepo := repository.NewAirlineRepository(pool)
	airportRepo := repository.NewAirportRepository(pool)
	planeRepo := repository.NewPlaneRepository(pool)
	countryRepo := repository.NewCountryRepository(pool)
	passengerRepo := repository.NewPassengerRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	checkInRepo := repository.NewCheckInRepository(pool)
	emailRepo := repository.NewEmailRepository(pool)
	phoneRepo := repository.NewPhoneRepository(pool)
	layoverRepo := repository.NewLayoverRepository(pool)
	delayedRepo := repository.NewDelayedPassengerRepository(pool)

	flightService := flights.NewFlightService(flightRepo, redisCache)
	checkInService := checkin.NewCheckInService(checkInRepo, delayedRepo, producer, cfg.Kafka.NotificationsTopic, logger)

	offset := cfg.Time.OffsetHours

	handlers := api.Handlers{
		Airlines:          api.NewAirlineHandler(airlineRepo, logger),
		Airports:          api.NewAirportHandler(airportRepo, logger),
		Planes:            api.NewPlaneHandler(planeRepo, logger),
		Countries:         api.NewCountryHandler(countryRepo, logger),
		Passengers:        api.NewPassengerHandler(passengerRepo, logger),
		Flights:           api.NewFlightHandler(flightService, offset, logger),
		Tickets:           api.NewTicketHandler(ticketRepo, logger),
		CheckIns:          api.NewCheckInHandler(checkInService, offset, logger),
		Emails:            api.NewEmailHandler(emailRepo, logger),
		Phones:            api.NewPhoneHandler(phoneRepo, logger),
		Layovers:          api.NewLayoverHandler(layoverRepo, offset, logger),
		DelayedPassengers: api.NewDelayedPassengerHandler(delayedRepo, offset, logger),
	}

	if err := bootstrap.Run(ctx, cfg, handlers, logger); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
