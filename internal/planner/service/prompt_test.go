package service

import (
	"fmt"
	"strings"
	"testing"

	"house-planner/internal/planner/models"
)

func TestFormatINR(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{45000, "45,000"},
		{1234567, "1,234,567"},
		{1500000, "1,500,000"},
		{-4500, "-4,500"},
	}
	for _, tc := range cases {
		if got := FormatINR(tc.in); got != tc.want {
			t.Errorf("FormatINR(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSmartChips(t *testing.T) {
	if chips := SmartChips("rooms"); chips[0] != "Master bedroom with attached bathroom" {
		t.Errorf("rooms chips start with %q", chips[0])
	}
	// Незнакомый этап отдает стартовые подсказки.
	if chips := SmartChips("bogus"); chips[0] != "Modern minimalist design" {
		t.Errorf("fallback chips start with %q", chips[0])
	}
}

func TestChipsForHistory(t *testing.T) {
	cases := []struct {
		historyLen int
		first      string
	}{
		{0, "Modern minimalist design"},
		{2, "Modern minimalist design"},
		{3, "Master bedroom with attached bathroom"},
		{4, "Master bedroom with attached bathroom"},
		{5, "Natural lighting focus"},
		{12, "Natural lighting focus"},
	}
	for _, tc := range cases {
		if got := ChipsForHistory(tc.historyLen); got[0] != tc.first {
			t.Errorf("ChipsForHistory(%d)[0] = %q, want %q", tc.historyLen, got[0], tc.first)
		}
	}
}

func TestSystemPrompt(t *testing.T) {
	params := models.UserParams{BHK: 3, Sqft: 1500, Facing: "East", CostEstimate: 1500000}
	prompt := SystemPrompt(params)

	for _, want := range []string{"3 BHK", "1500 sqft", "East facing", "₹1,500,000"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}

func TestPlanPromptKeepsRecentHistory(t *testing.T) {
	params := models.UserParams{BHK: 3, Sqft: 1500, Facing: "North", Style: "Modern"}

	var history []models.ChatMessage
	for i := 1; i <= 8; i++ {
		history = append(history, models.ChatMessage{Role: "user", Content: fmt.Sprintf("message-%d", i)})
	}

	prompt := PlanPrompt(params, history)

	for i := 3; i <= 8; i++ {
		if !strings.Contains(prompt, fmt.Sprintf("message-%d", i)) {
			t.Errorf("prompt missing message-%d", i)
		}
	}
	for i := 1; i <= 2; i++ {
		if strings.Contains(prompt, fmt.Sprintf("message-%d\n", i)) {
			t.Errorf("prompt should not contain message-%d", i)
		}
	}

	for _, want := range []string{"BHK: 3", "Total Area: 1500 sq ft", "Facing: North", "user: message-8", "Return ONLY valid JSON"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestFallbackPlanText(t *testing.T) {
	params := models.UserParams{BHK: 2, Sqft: 1000, Facing: "East", Style: "Modern"}
	text := FallbackPlanText(params)
	if !strings.HasPrefix(text, "2 BHK House Plan") {
		t.Errorf("fallback text starts with %q", text)
	}
}
