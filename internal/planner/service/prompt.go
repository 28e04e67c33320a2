package service

import (
	"fmt"
	"strings"

	"house-planner/internal/planner/models"
)

// ============================================================
// Smart Chips
// ============================================================

var smartChips = map[string][]string{
	"initial": {
		"Modern minimalist design",
		"Traditional Tamil Nadu style",
		"Open kitchen layout",
		"Vastu-compliant design",
		"Add a pooja room",
		"Include a balcony",
	},
	"rooms": {
		"Master bedroom with attached bathroom",
		"Walk-in closet in master bedroom",
		"Large living room",
		"Separate dining area",
		"Modular kitchen",
		"Study room / home office",
	},
	"features": {
		"Natural lighting focus",
		"Cross ventilation",
		"Rainwater harvesting setup",
		"Solar panel ready",
		"Garden space",
		"Car parking area",
	},
}

// SmartChips возвращает подсказки этапа: initial, rooms или features.
func SmartChips(stage string) []string {
	if chips, ok := smartChips[stage]; ok {
		return chips
	}
	return smartChips["initial"]
}

// ChipsForHistory подбирает этап подсказок по длине диалога.
func ChipsForHistory(historyLen int) []string {
	switch {
	case historyLen > 4:
		return smartChips["features"]
	case historyLen > 2:
		return smartChips["rooms"]
	default:
		return smartChips["initial"]
	}
}

// ============================================================
// Prompts
// ============================================================

// SystemPrompt — системный промпт ассистента для диалога о доме.
func SystemPrompt(params models.UserParams) string {
	return fmt.Sprintf(`You are a helpful house planning assistant for Landcraft.

User wants to build a %d BHK house with %d sqft area, %s facing.
Estimated cost: ₹%s

Your job:
1. Ask clarifying questions about room preferences
2. Understand their style and functional needs
3. Suggest smart improvements
4. Keep responses concise (2-3 sentences max)
5. After gathering enough info, say "Ready to generate your house plan!"

Current conversation context available. Be conversational and helpful.`,
		params.BHK, params.Sqft, params.Facing, FormatINR(params.CostEstimate))
}

// promptHistoryLimit — сколько последних сообщений диалога попадает в промпт.
const promptHistoryLimit = 6

// PlanPrompt собирает промпт генерации структурированного плана дома из
// параметров и хвоста диалога.
func PlanPrompt(params models.UserParams, history []models.ChatMessage) string {
	if len(history) > promptHistoryLimit {
		history = history[len(history)-promptHistoryLimit:]
	}

	var summary strings.Builder
	for i, msg := range history {
		if i > 0 {
			summary.WriteString("\n")
		}
		summary.WriteString(msg.Role)
		summary.WriteString(": ")
		summary.WriteString(msg.Content)
	}

	return fmt.Sprintf(`Generate a detailed 3D house plan specification in JSON format.

USER REQUIREMENTS:
- BHK: %d
- Total Area: %d sq ft
- Facing: %s
- Style: %s

CONVERSATION CONTEXT:
%s

Generate a JSON structure with:
{
  "rooms": [
    {
      "name": "Master Bedroom",
      "dimensions": {"length": 14, "width": 12, "height": 10},
      "position": {"x": 0, "y": 0, "z": 0},
      "features": ["attached_bathroom", "balcony"]
    },
    ...
  ],
  "vastu_compliance": "...",
  "materials": [...],
  "cost_breakdown": {...}
}

Consider:
1. Room proportions for %d BHK
2. %s facing Vastu principles
3. User preferences from conversation
4. %s architectural style
5. Tamil Nadu climate considerations

Return ONLY valid JSON, no explanations.`,
		params.BHK, params.Sqft, params.Facing, params.Style,
		summary.String(),
		params.BHK, params.Facing, params.Style)
}

// FallbackPlanText — текстовый план, когда структурированный не получился.
func FallbackPlanText(params models.UserParams) string {
	return fmt.Sprintf("%d BHK House Plan\nArea: %d sqft\nFacing: %s\nStyle: %s\n\nBased on your conversation, we've designed a custom layout.",
		params.BHK, params.Sqft, params.Facing, params.Style)
}

// ============================================================
// Formatting
// ============================================================

// FormatINR добавляет разделители тысяч: 1234567 -> "1,234,567".
func FormatINR(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := fmt.Sprintf("%d", amount)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return sign + strings.Join(groups, ",")
}
