package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"house-planner/internal/planner/models"
)

const (
	openRouterBaseURL = "https://openrouter.ai/api/v1/chat/completions"

	// DefaultChatModel — модель диалога по умолчанию.
	DefaultChatModel = "anthropic/claude-3.5-sonnet"

	requestTimeout = 30 * time.Second
)

// OpenRouter реализует ChatClient поверх OpenRouter Chat Completions API.
type OpenRouter struct {
	apiKey string
	model  string
	client *http.Client
}

func NewOpenRouter(apiKey, model string) *OpenRouter {
	if model == "" {
		model = DefaultChatModel
	}
	return &OpenRouter{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: requestTimeout},
	}
}

type openRouterRequest struct {
	Model    string               `json:"model"`
	Messages []models.ChatMessage `json:"messages"`
}

type openRouterResponse struct {
	Choices []struct {
		Message models.ChatMessage `json:"message"`
	} `json:"choices"`
}

// Chat отправляет историю диалога и возвращает ответ ассистента.
func (c *OpenRouter) Chat(ctx context.Context, messages []models.ChatMessage) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("openrouter: API key not set")
	}

	body, err := json.Marshal(openRouterRequest{Model: c.model, Messages: messages})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, openRouterBaseURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openrouter: %s", resp.Status)
	}

	var out openRouterResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("openrouter: no choices in response")
	}
	return out.Choices[0].Message.Content, nil
}
