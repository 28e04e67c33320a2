package handlers

import (
	"encoding/json"
	"log"

	"house-planner/internal/geometry/models"
	"house-planner/internal/geometry/svgplan"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Plan Handler
// ============================================================

// GeneratePlan возвращает SVG план этажа по категории bhk.
func GeneratePlan(c fiber.Ctx) error {
	log.Printf("[GEOMETRY] Plan request, %d bytes", len(c.Body()))

	if len(c.Body()) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "body required"})
	}

	var req models.PlanRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON payload"})
	}

	svg := svgplan.Render(req.BHK)

	c.Set("Content-Type", "image/svg+xml")
	return c.SendString(svg)
}
