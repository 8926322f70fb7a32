package api

import (
	"time"

	"github.com/CristiGvl/memviz/internal/platform"
	"github.com/CristiGvl/memviz/internal/report"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// Server represents the API server. Every request builds its report on demand.
type Server struct {
	app           *fiber.App
	builder       *report.Builder
	defaultLength int
}

// NewServer creates a new API server rendering bars of defaultLength unless a
// request asks otherwise
func NewServer(builder *report.Builder, defaultLength int) (*Server, error) {
	// Validate platform support
	if err := platform.ValidateSupport(); err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           120 * time.Second,
		ServerHeader:          "memviz",
		AppName:               "memviz v1.0",
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		MaxAge:       86400, // 24 hours
	}))

	server := &Server{
		app:           app,
		builder:       builder,
		defaultLength: defaultLength,
	}

	server.setupRoutes()
	return server, nil
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.app.Group("/api")

	api.Get("/memory", s.getSystemMemory)
	api.Get("/memory/:program", s.getProgramMemory)

	// Health check
	api.Get("/health", s.healthCheck)
}

// Start starts the API server
func (s *Server) Start(address string) error {
	return s.app.Listen(address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// Health check endpoint
func (s *Server) healthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"platform":  platform.GetOS(),
		"backend":   platform.GetBackend(),
		"timestamp": time.Now().Unix(),
	})
}
