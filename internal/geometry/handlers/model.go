package handlers

import (
	"encoding/json"
	"log"

	"house-planner/internal/geometry/builder"
	"house-planner/internal/geometry/models"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Model Handler
// ============================================================

// GenerateModel собирает 3D сцену дома и возвращает GLB.
func GenerateModel(c fiber.Ctx) error {
	log.Printf("[GEOMETRY] Model request, %d bytes", len(c.Body()))

	if len(c.Body()) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "body required"})
	}

	var req models.ModelRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON payload"})
	}

	scene := builder.Build(req.BHK, req.Sqft, req.StructuredRooms())

	data, err := scene.ExportGLB()
	if err != nil {
		log.Printf("[GEOMETRY] Export error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	log.Printf("[GEOMETRY] Model built: %d nodes, %d bytes", scene.Len(), len(data))
	c.Set("Content-Type", "model/gltf-binary")
	return c.Send(data)
}
