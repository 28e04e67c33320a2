package models

// ============================================================
// Generation Request Model
// ============================================================

// Request — сохраненный результат генерации плана дома.
type Request struct {
	ID           int64  `json:"id"`
	BHK          int    `json:"bhk"`
	Sqft         int    `json:"sqft"`
	Facing       string `json:"facing"`
	Pincode      string `json:"pincode"`
	Rate         int    `json:"rate"`
	CostEstimate int    `json:"cost_estimate"`
	Style        string `json:"style"`
	ChatHistory  string `json:"chat_history"`
	FinalPrompt  string `json:"final_prompt"`
	ModelFile    string `json:"model_file"`
	PlanText     string `json:"plan_text"`
	PlanFile     string `json:"plan_file"`
	CreatedAt    string `json:"created_at"`
}

// ============================================================
// Chat
// ============================================================

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// UserParams — параметры дома, собранные до начала диалога.
type UserParams struct {
	BHK          int    `json:"bhk"`
	Sqft         int    `json:"sqft"`
	Facing       string `json:"facing"`
	Style        string `json:"style"`
	Pincode      string `json:"pincode"`
	Rate         int    `json:"rate"`
	CostEstimate int    `json:"cost_estimate"`
}
