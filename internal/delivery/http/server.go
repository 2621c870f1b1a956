package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/emergency-locator/internal/config"
	"github.com/emergency-locator/internal/delivery/http/handler"
	"github.com/emergency-locator/internal/delivery/http/middleware"
	"github.com/emergency-locator/internal/pkg/metrics"
)

// Server is the Fiber HTTP server.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	serviceHandler *handler.ServiceHandler
	reviewHandler  *handler.ReviewHandler
	routingHandler *handler.RoutingHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	serviceHandler *handler.ServiceHandler,
	reviewHandler *handler.ReviewHandler,
	routingHandler *handler.RoutingHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Emergency Locator",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		serviceHandler: serviceHandler,
		reviewHandler:  reviewHandler,
		routingHandler: routingHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(metrics.Middleware())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Prometheus scrape endpoint
	s.app.Get("/metrics", metrics.Handler())

	// Static files for the map UI
	s.app.Static("/static", "./static")

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Service routes
	api.Get("/services", s.serviceHandler.GetAll)
	api.Post("/services", s.serviceHandler.Create)
	api.Delete("/services/:id", s.serviceHandler.Delete)
	api.Post("/services/radius", s.serviceHandler.SearchByRadius)

	// Review routes
	api.Post("/reviews", s.reviewHandler.Create)
	api.Get("/services/:id/reviews", s.reviewHandler.GetByService)

	// Routing routes
	api.Get("/route-to-service", s.routingHandler.RouteToService)
	api.Get("/route", s.routingHandler.GetRoute)

	// Browser map key for the static UI
	api.Get("/config/maps", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"key": s.config.Maps.BrowserKey,
		})
	})
}

// Start runs the HTTP server until Shutdown is called.
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

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
				"code":    errorCodeForStatus(code),
				"message": err.Error(),
			},
		})
	}
}

// errorCodeForStatus maps framework-level errors, mostly route misses, to the
// machine-readable codes the rest of the API uses.
func errorCodeForStatus(status int) string {
	switch {
	case status == fiber.StatusNotFound:
		return "NOT_FOUND"
	case status == fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case status >= 400 && status < 500:
		return "INVALID_REQUEST"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}
