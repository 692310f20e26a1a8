package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripwise-service/internal/infrastructure/config"
	"tripwise-service/internal/infrastructure/middleware"
	"tripwise-service/internal/infrastructure/persistence"
	"tripwise-service/internal/infrastructure/router"
	"tripwise-service/internal/interface/handler"
	"tripwise-service/internal/interface/repository"
	"tripwise-service/internal/usecase"
	"tripwise-service/pkg/logger"
	"tripwise-service/pkg/metrics"

	domainRepo "tripwise-service/internal/domain/repository"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	defer log.Sync()
	log.Info("Starting Tripwise Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// The generation audit log is optional; without a DSN the planner
	// simply skips recording model interactions.
	var interactionRepo domainRepo.InteractionRepository
	if cfg.PostgresURI != "" {
		gormDB, err := persistence.NewPostgres(cfg.PostgresURI)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", "error", err)
		}
		interactionRepo, err = repository.NewGormInteractionRepository(gormDB)
		if err != nil {
			log.Fatal("Failed to migrate interaction log", "error", err)
		}
	}

	// Set up repositories
	tripRepo := repository.NewMongoTripRepository(db)
	itineraryRepo := repository.NewMongoItineraryRepository(db)
	likeRepo := repository.NewMongoLikeRepository(db)
	hotelRepo := repository.NewMakcorpsHotelRepository(cfg.MakcorpsBaseURL, cfg.MakcorpsAPIKey, cfg.HotelCurrency, cfg.UpstreamTimeout, log)
	weatherRepo := repository.NewOpenMeteoWeatherRepository(cfg.GeocodeBaseURL, cfg.ForecastBaseURL, cfg.ArchiveBaseURL, cfg.ReferenceDate, cfg.UpstreamTimeout, log)

	geminiRepo, err := repository.NewGeminiRepository(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, log)
	if err != nil {
		log.Fatal("Failed to create Gemini client", "error", err)
	}

	// Set up usecases
	m := metrics.NewMetrics("tripwise")
	validator := usecase.NewRequestValidator(cfg.ReferenceDate, cfg.ForecastHorizonDays)
	hotelResolver := usecase.NewHotelResolver(hotelRepo, m, log)
	weatherResolver := usecase.NewWeatherResolver(weatherRepo, m, log)
	planner := usecase.NewItineraryPlanner(validator, hotelResolver, weatherResolver, geminiRepo, interactionRepo, m, log)

	// Set up HTTP surface
	handlers := router.Handlers{
		AI:          handler.NewAIHandler(planner, tripRepo, itineraryRepo, log),
		Trips:       handler.NewTripHandler(tripRepo, log),
		Itineraries: handler.NewItineraryHandler(itineraryRepo, tripRepo, log),
		Likes:       handler.NewLikeHandler(likeRepo, log),
		Weather:     handler.NewWeatherHandler(weatherRepo, log),
	}
	auth := middleware.NewAuth(cfg.JWTSecret)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.New(handlers, auth),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	geminiRepo.Close()

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Tripwise Service stopped")
}
