package api

import (
	"time"

	"github.com/astoltz/ohai/internal/cpu"
	"github.com/astoltz/ohai/internal/platform"
	"github.com/go-logr/logr"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// Server represents the API server
type Server struct {
	app       *fiber.App
	cpuReader cpu.Reader
	arch      platform.Arch
	log       logr.Logger
}

// NewServer creates a new API server. arch is reported by the health
// endpoint and may be empty when it is detected per request.
func NewServer(reader cpu.Reader, arch platform.Arch, log logr.Logger) *Server {
	app := fiber.New(fiber.Config{
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           120 * time.Second,
		ServerHeader:          "ohai-cpu",
		AppName:               "ohai-cpu v1.0",
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "*",
		MaxAge:       86400, // 24 hours
	}))

	server := &Server{
		app:       app,
		cpuReader: reader,
		arch:      arch,
		log:       log,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.app.Group("/api")

	api.Get("/cpu", s.getCPU)
	api.Post("/cpu/parse", s.parseCPU)

	// Health check
	api.Get("/health", s.healthCheck)
}

// Start starts the API server
func (s *Server) Start(address string) error {
	s.log.Info("Starting server", "address", address)
	return s.app.Listen(address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	s.log.Info("Shutting down server")
	return s.app.Shutdown()
}

// Health check endpoint
func (s *Server) healthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"platform":  platform.GetOS(),
		"arch":      s.arch,
		"timestamp": time.Now().Unix(),
	})
}
