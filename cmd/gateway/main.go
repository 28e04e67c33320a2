package main

import (
	"fmt"
	"log"
	"time"

	"house-planner/internal/common/config"
	"house-planner/internal/common/middleware"
	"house-planner/internal/gateway/handlers"
	"house-planner/internal/gateway/proxy"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// API Gateway
// ============================================================

func main() {
	cfg := config.Load()

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "API Gateway",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS())

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", handlers.LivenessProbe)
	app.Get("/health/ready", handlers.ReadinessProbe)
	app.Get("/health/startup", handlers.StartupProbe)

	// ============================================================
	// API Routes
	// ============================================================

	api := app.Group("/api/v1")

	api.Get("/", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "House Planner API v1",
			"status":  "ok",
		})
	})

	// ============================================================
	// Service Routes (Proxy)
	// ============================================================

	// Geometry Service
	geometryURL := config.Getenv("GEOMETRY_URL", "http://localhost:3001")
	api.Post("/model", proxy.ProxyTo(geometryURL+"/model"))
	api.Post("/plan", proxy.ProxyTo(geometryURL+"/plan"))

	// Planner Service
	plannerURL := config.Getenv("PLANNER_URL", "http://localhost:3002")
	api.Post("/rate", proxy.ProxyTo(plannerURL+"/rate"))
	api.Post("/chat/init", proxy.ProxyTo(plannerURL+"/chat/init"))
	api.Post("/chat", proxy.ProxyTo(plannerURL+"/chat"))
	api.Post("/generate", proxy.ProxyTo(plannerURL+"/generate"))
	api.Get("/requests", proxy.ProxyTo(plannerURL+"/requests"))
	api.Get("/requests/:id", func(c fiber.Ctx) error {
		return proxy.Forward(c, fmt.Sprintf("%s/requests/%s", plannerURL, c.Params("id")))
	})
	api.Get("/requests/:id/model", func(c fiber.Ctx) error {
		return proxy.Forward(c, fmt.Sprintf("%s/requests/%s/model", plannerURL, c.Params("id")))
	})
	api.Get("/requests/:id/plan", func(c fiber.Ctx) error {
		return proxy.Forward(c, fmt.Sprintf("%s/requests/%s/plan", plannerURL, c.Params("id")))
	})

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting API Gateway on %s (env: %s)", addr, cfg.Environment)
	log.Printf("Proxying /model to %s", geometryURL)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
