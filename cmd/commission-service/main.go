package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/comissio/commission-service/internal/config"
	httpserver "github.com/comissio/commission-service/internal/delivery/http"
	"github.com/comissio/commission-service/internal/delivery/http/handlers"
	"github.com/comissio/commission-service/internal/infrastructure/email"
	publisher "github.com/comissio/commission-service/internal/infrastructure/kafka"
	"github.com/comissio/commission-service/internal/infrastructure/metrics"
	"github.com/comissio/commission-service/internal/infrastructure/migrate"
	"github.com/comissio/commission-service/internal/infrastructure/postgres"
	"github.com/comissio/commission-service/internal/infrastructure/postgres/repository"
	"github.com/comissio/commission-service/internal/usecase"
	"github.com/comissio/commission-service/internal/usecase/performedservice"
	"github.com/comissio/commission-service/internal/usecase/settlement"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()

	setupLogger(cfg.LogConfig)

	// Init database
	db := postgres.MustInitDB(cfg)
	if err := migrate.RunMigrations(db, cfg.MigrationsPath); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Init repositories
	serviceTypeRepo := repository.NewDefaultServiceTypeRepository(db)
	employeeRepo := repository.NewDefaultEmployeeRepository(db)
	overrideRepo := repository.NewDefaultCommissionOverrideRepository(db)
	defaultRepo := repository.NewDefaultCommissionDefaultRepository(db)
	serviceRepo := repository.NewDefaultPerformedServiceRepository(db)
	paymentRepo := repository.NewDefaultCommissionPaymentRepository(db)
	txManager := repository.NewGormTxManager(db)

	// Init side effects
	commissionMetrics := metrics.NewCommissionMetrics()
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	settlementPublisher := publisher.NewSettlementPublisher(brokers, cfg.KafkaService.Topic)
	defer settlementPublisher.Close()
	notifier := email.NewNotifier(
		cfg.MailService.Host,
		cfg.MailService.Port,
		cfg.MailService.Username,
		cfg.MailService.Password,
		cfg.MailService.From,
	)

	// Init usecases
	resolver := usecase.NewDefaultRateResolver(overrideRepo, defaultRepo)
	serviceTypeUsecase := usecase.NewDefaultServiceTypeUsecase(serviceTypeRepo)
	employeeUsecase := usecase.NewDefaultEmployeeUsecase(employeeRepo)
	rateUsecase := usecase.NewDefaultCommissionRateUsecase(overrideRepo, defaultRepo, employeeRepo, serviceTypeRepo)
	performedServiceUsecase := performedservice.NewDefaultPerformedServiceUsecase(
		serviceRepo,
		employeeRepo,
		serviceTypeRepo,
		paymentRepo,
		resolver,
		txManager,
		settlementPublisher,
		commissionMetrics,
	)
	settlementUsecase := settlement.NewDefaultSettlementUsecase(
		employeeRepo,
		serviceRepo,
		paymentRepo,
		txManager,
		settlementPublisher,
		notifier,
		commissionMetrics,
	)

	// HTTP server
	router := httpserver.NewRouter(cfg.Auth.JWTSecret, httpserver.Handlers{
		PerformedService: handlers.NewPerformedServiceHandler(performedServiceUsecase),
		Settlement:       handlers.NewSettlementHandler(settlementUsecase),
		ServiceType:      handlers.NewServiceTypeHandler(serviceTypeUsecase),
		Employee:         handlers.NewEmployeeHandler(employeeUsecase),
		Rate:             handlers.NewRateHandler(rateUsecase, resolver),
	})

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	slog.Info("commission service listening", "addr", addr)
	if err := router.Start(addr); err != nil {
		log.Fatalf("http server stopped: %v", err)
	}
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
