package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/effendiaiwebsite/housesinbc/internal/application/usecase"
	"github.com/effendiaiwebsite/housesinbc/internal/domain/service"
	"github.com/effendiaiwebsite/housesinbc/internal/infrastructure/cache"
	"github.com/effendiaiwebsite/housesinbc/internal/infrastructure/config"
	"github.com/effendiaiwebsite/housesinbc/internal/infrastructure/messaging"
	pgRepo "github.com/effendiaiwebsite/housesinbc/internal/infrastructure/persistence/postgres"
	"github.com/effendiaiwebsite/housesinbc/internal/infrastructure/rates"
	grpcPresentation "github.com/effendiaiwebsite/housesinbc/internal/presentation/grpc"
	"github.com/effendiaiwebsite/housesinbc/internal/presentation/rest"
	"github.com/effendiaiwebsite/housesinbc/pkg/auth"
	"github.com/effendiaiwebsite/housesinbc/pkg/kafka"
	"github.com/effendiaiwebsite/housesinbc/pkg/observability"
	"github.com/effendiaiwebsite/housesinbc/pkg/postgres"
)

func main() {
	cfg := config.Load()
	cfg.Validate()

	logger := observability.InitLogger(cfg.Log)
	logger.Info("starting journey service",
		"grpc_port", cfg.GRPCPort,
		"http_port", cfg.HTTPPort,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Database -----------------------------------------------------------
	if err := postgres.RunMigrations(cfg.DB.DSN(), cfg.MigrationsPath); err != nil {
		logger.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// --- Redis --------------------------------------------------------------
	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	// --- Metrics ------------------------------------------------------------
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := meterProvider.Shutdown(context.Background()); err != nil {
			logger.Warn("meter provider shutdown error", "error", err)
		}
	}()

	// --- Infrastructure adapters -------------------------------------------
	quizRepo := pgRepo.NewQuizResultRepo(pool)
	journeyRepo := pgRepo.NewJourneyRepo(pool)
	apptRepo := pgRepo.NewAppointmentRepo(pool)
	offerRepo := pgRepo.NewOfferRepo(pool)
	rateRepo := pgRepo.NewLenderRateRepo(pool)
	rateCache := cache.NewRateCache(redisClient, rateRepo, logger)

	producer := kafka.NewProducer(cfg.Kafka)
	defer producer.Close()
	publisher := messaging.NewKafkaEventPublisher(producer, messaging.DefaultTopic, logger)

	jwtService, err := auth.NewJWTService(cfg.JWT)
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// --- Domain services ----------------------------------------------------
	affordability := service.NewAffordabilityCalculator()
	incentives := service.NewIncentiveCalculator()
	rateEngine := service.NewRateEngine()

	// --- Use cases ----------------------------------------------------------
	submitQuizUC := usecase.NewSubmitQuizUseCase(quizRepo, journeyRepo, publisher, affordability, incentives)
	getProgressUC := usecase.NewGetProgressUseCase(journeyRepo, publisher)
	updateMilestoneUC := usecase.NewUpdateMilestoneUseCase(journeyRepo, publisher)
	completeMilestoneUC := usecase.NewCompleteMilestoneUseCase(journeyRepo, publisher)
	personalizeRatesUC := usecase.NewPersonalizeRatesUseCase(rateCache, rateEngine, affordability)
	createAppointmentUC := usecase.NewCreateAppointmentUseCase(apptRepo, journeyRepo, publisher, logger)
	createOfferUC := usecase.NewCreateOfferUseCase(offerRepo, publisher)
	submitOfferUC := usecase.NewSubmitOfferUseCase(offerRepo, journeyRepo, publisher, logger)

	// --- Rate refresher -----------------------------------------------------
	refresher := rates.NewRefresher(rateCache, cfg.RateRefreshSchedule, logger)
	if err := refresher.Start(ctx); err != nil {
		logger.Error("failed to start rate refresher", "error", err)
		os.Exit(1)
	}
	defer refresher.Stop()

	// --- gRPC server --------------------------------------------------------
	handler := grpcPresentation.NewJourneyHandler(
		submitQuizUC, getProgressUC, updateMilestoneUC, completeMilestoneUC,
		personalizeRatesUC, createAppointmentUC, createOfferUC, submitOfferUC,
	)
	grpcServer := grpcPresentation.NewServer(handler, logger, jwtService)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			logger.Error("gRPC server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- HTTP health and metrics server ------------------------------------
	mux := http.NewServeMux()
	rest.NewHealthHandler(pool, logger).RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: mux,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", cfg.HTTPAddr())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- Graceful shutdown --------------------------------------------------
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received shutdown signal", "signal", sig.String())

	grpcServer.GracefulStop()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("journey service stopped")
}
