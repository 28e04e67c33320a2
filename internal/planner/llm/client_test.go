package llm

import (
	"context"
	"testing"

	"house-planner/internal/planner/models"
)

func TestOpenRouterRequiresAPIKey(t *testing.T) {
	c := NewOpenRouter("", "")
	if _, err := c.Chat(context.Background(), []models.ChatMessage{{Role: "user", Content: "hi"}}); err == nil {
		t.Error("expected error without API key")
	}
}

func TestGeminiRequiresAPIKey(t *testing.T) {
	c := NewGemini("", "")
	if _, err := c.GeneratePlan(context.Background(), "prompt"); err == nil {
		t.Error("expected error without API key")
	}
}

func TestDefaultModels(t *testing.T) {
	if c := NewOpenRouter("key", ""); c.model != DefaultChatModel {
		t.Errorf("chat model %q", c.model)
	}
	if c := NewOpenRouter("key", "custom/model"); c.model != "custom/model" {
		t.Errorf("chat model %q", c.model)
	}
	if c := NewGemini("key", ""); c.model != DefaultPlanModel {
		t.Errorf("plan model %q", c.model)
	}
}
