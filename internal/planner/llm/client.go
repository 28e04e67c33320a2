package llm

import (
	"context"

	"house-planner/internal/planner/models"
)

// ChatClient ведет диалог: полная история сообщений, ответ ассистента.
type ChatClient interface {
	Chat(ctx context.Context, messages []models.ChatMessage) (string, error)
}

// PlanClient генерирует структурированный план дома по одному промпту.
type PlanClient interface {
	GeneratePlan(ctx context.Context, prompt string) (string, error)
}
