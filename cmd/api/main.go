package main

// @title WanderPlan API
// @version 1.0.0
// @description Сервис планирования поездок. Предоставляет API для хранения поездок и точек маршрута, автодополнения мест (Photon), генерации маршрутов через генеративный провайдер, группировки маршрута по дням, просмотрщика фотографий и календарной сетки.
// @description
// @description Основные возможности:
// @description - Поездки и точки маршрута в едином хранилище сущностей
// @description - Автодополнение мест с дебаунсом и защитой от гонок запросов
// @description - Генерация поездки по направлению, числу дней и темпу
// @description - Проекция маршрута по дням с расстояниями между точками
// @description - Просмотрщик фотографий с циклической навигацией
// @description - Календарная сетка для выбора даты старта

// @contact.name API Support
// @contact.email support@wanderplan.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/wanderplan/docs"
	"github.com/wanderplan/internal/config"
	httpDelivery "github.com/wanderplan/internal/delivery/http"
	"github.com/wanderplan/internal/delivery/http/handler"
	"github.com/wanderplan/internal/domain/repository"
	"github.com/wanderplan/internal/infrastructure/genai"
	"github.com/wanderplan/internal/infrastructure/photon"
	"github.com/wanderplan/internal/pkg/logger"
	"github.com/wanderplan/internal/repository/cache"
	"github.com/wanderplan/internal/repository/memory"
	"github.com/wanderplan/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting WanderPlan")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to Redis (optional suggestion cache)
	var cacheRepo repository.CacheRepository
	var redisClient *cache.Redis
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Health(ctx); err != nil {
			cancel()
			log.Fatal("Redis health check failed", zap.Error(err))
		}
		cancel()

		cacheRepo = cache.NewCacheRepository(redisClient)
		log.Info("Redis connected")
	} else {
		log.Info("Suggestion cache disabled, running without Redis")
	}

	// 4. Initialize Repositories
	entityStore := memory.NewEntityStore()
	placeRepo := photon.NewPhotonClient(&cfg.Photon, log)
	genRepo := genai.NewGenAIClient(&cfg.GenAI, log)

	hasCredentials := cfg.GenAI.APIKey != ""
	if !hasCredentials {
		log.Warn("GENAI_API_KEY is not set, trip generation will be unavailable")
	}

	log.Info("Repositories initialized")

	// 5. Initialize Use Cases
	searchUC := usecase.NewSearchUseCase(
		placeRepo,
		cacheRepo,
		&cfg.Search,
		cfg.Photon.FetchLimit,
		cfg.Cache.SearchCacheTTL,
		log,
	)
	tripUC := usecase.NewTripUseCase(entityStore, log)
	spotUC := usecase.NewSpotUseCase(entityStore, log)
	itineraryUC := usecase.NewItineraryUseCase(entityStore, log)
	generationUC := usecase.NewGenerationUseCase(entityStore, genRepo, hasCredentials, log)
	lightboxUC := usecase.NewLightboxUseCase(entityStore, log)
	calendarUC := usecase.NewCalendarUseCase()

	log.Info("Use cases initialized")

	// 6. Initialize HTTP Handlers
	searchHandler := handler.NewSearchHandler(searchUC, log)
	tripHandler := handler.NewTripHandler(tripUC, itineraryUC, log)
	spotHandler := handler.NewSpotHandler(spotUC, log)
	generationHandler := handler.NewGenerationHandler(generationUC, log)
	lightboxHandler := handler.NewLightboxHandler(lightboxUC, log)
	calendarHandler := handler.NewCalendarHandler(calendarUC, log)

	log.Info("HTTP handlers initialized")

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		searchHandler,
		tripHandler,
		spotHandler,
		generationHandler,
		lightboxHandler,
		calendarHandler,
	)

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
