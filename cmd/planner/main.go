package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"house-planner/internal/common/config"
	"house-planner/internal/common/middleware"
	"house-planner/internal/planner/handlers"
	"house-planner/internal/planner/llm"
	"house-planner/internal/planner/repository"
	"house-planner/internal/planner/service"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// Planner Service
// ============================================================

func main() {
	cfg := config.Load()
	if os.Getenv("PORT") == "" {
		cfg.Port = "3002"
	}

	dbPath := config.Getenv("PLANNER_DB_PATH", "data/db/planner.db")
	db, err := repository.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	repo := repository.New(db)
	if err := repo.Init(context.Background(), "migrations/001_init_planner.sql"); err != nil {
		log.Fatalf("init db: %v", err)
	}

	sessions := service.NewSessionManager()
	storage := service.NewFileStorage(config.Getenv("STORAGE_ROOT", "data/generated"))
	geometry := service.NewGeometryClient(config.Getenv("GEOMETRY_URL", "http://localhost:3001"))

	chat := llm.NewOpenRouter(os.Getenv("OPENROUTER_API_KEY"), config.Getenv("CHAT_MODEL", ""))
	plan := llm.NewGemini(os.Getenv("GEMINI_API_KEY"), config.Getenv("PLAN_MODEL", ""))

	plannerHandler := handlers.NewPlannerHandler(repo, sessions, storage, chat, plan, geometry)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Planner Service",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})

	app.Get("/health/ready", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ready"})
	})

	// ============================================================
	// Planner Routes
	// ============================================================

	app.Post("/rate", plannerHandler.Rate)
	app.Post("/chat/init", plannerHandler.InitChat)
	app.Post("/chat", plannerHandler.Chat)
	app.Post("/generate", plannerHandler.Generate)
	app.Get("/requests", plannerHandler.ListRequests)
	app.Get("/requests/:id", plannerHandler.GetRequest)
	app.Get("/requests/:id/model", plannerHandler.GetModel)
	app.Get("/requests/:id/plan", plannerHandler.GetPlan)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Planner Service on %s (env: %s)", addr, cfg.Environment)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
