package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/wanderplan/internal/config"
	"github.com/wanderplan/internal/delivery/http/handler"
	"github.com/wanderplan/internal/delivery/http/middleware"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	searchHandler     *handler.SearchHandler
	tripHandler       *handler.TripHandler
	spotHandler       *handler.SpotHandler
	generationHandler *handler.GenerationHandler
	lightboxHandler   *handler.LightboxHandler
	calendarHandler   *handler.CalendarHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	searchHandler *handler.SearchHandler,
	tripHandler *handler.TripHandler,
	spotHandler *handler.SpotHandler,
	generationHandler *handler.GenerationHandler,
	lightboxHandler *handler.LightboxHandler,
	calendarHandler *handler.CalendarHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "WanderPlan",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		searchHandler:     searchHandler,
		tripHandler:       tripHandler,
		spotHandler:       spotHandler,
		generationHandler: generationHandler,
		lightboxHandler:   lightboxHandler,
		calendarHandler:   calendarHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Place autocomplete
	api.Get("/search", s.searchHandler.Search)

	// Trips
	api.Post("/trips/generate", s.generationHandler.Generate)
	api.Get("/trips", s.tripHandler.ListTrips)
	api.Get("/trips/:id", s.tripHandler.GetTrip)
	api.Delete("/trips/:id", s.tripHandler.DeleteTrip)
	api.Get("/trips/:id/itinerary", s.tripHandler.GetItinerary)

	// Spots. Статическая часть пути регистрируется до параметрической,
	// иначе "saved" и "selection" матчатся как :id.
	api.Get("/spots/saved", s.spotHandler.ListSaved)
	api.Put("/spots/selection", s.spotHandler.SelectSpot)
	api.Get("/spots/selection", s.spotHandler.GetSelection)
	api.Delete("/spots/selection", s.spotHandler.ClearSelection)
	api.Post("/spots", s.spotHandler.CreateSpot)
	api.Get("/spots/:id", s.spotHandler.GetSpot)
	api.Patch("/spots/:id", s.spotHandler.UpdateSpot)
	api.Delete("/spots/:id", s.spotHandler.DeleteSpot)
	api.Post("/spots/:id/photos", s.spotHandler.AddPhoto)
	api.Delete("/spots/:id/photos/:index", s.spotHandler.RemovePhoto)

	// Lightbox
	api.Post("/lightbox/open", s.lightboxHandler.Open)
	api.Post("/lightbox/next", s.lightboxHandler.Next)
	api.Post("/lightbox/prev", s.lightboxHandler.Prev)
	api.Post("/lightbox/close", s.lightboxHandler.Close)
	api.Get("/lightbox", s.lightboxHandler.State)

	// Calendar grid for the date picker
	api.Get("/calendar/:year/:month", s.calendarHandler.MonthGrid)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App возвращает приложение Fiber (используется в тестах)
func (s *Server) App() *fiber.App {
	return s.app
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
