package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"house-planner/internal/planner/llm"
	"house-planner/internal/planner/models"
	"house-planner/internal/planner/repository"
	"house-planner/internal/planner/service"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Planner Handler
// ============================================================

const (
	adminListLimit = 50

	// Диалог считается достаточным для генерации после этого числа сообщений.
	readyHistoryLen = 8
)

type PlannerHandler struct {
	repo     *repository.Repository
	sessions *service.SessionManager
	storage  *service.FileStorage
	chat     llm.ChatClient
	plan     llm.PlanClient
	geometry *service.GeometryClient
}

func NewPlannerHandler(
	repo *repository.Repository,
	sessions *service.SessionManager,
	storage *service.FileStorage,
	chat llm.ChatClient,
	plan llm.PlanClient,
	geometry *service.GeometryClient,
) *PlannerHandler {
	return &PlannerHandler{
		repo:     repo,
		sessions: sessions,
		storage:  storage,
		chat:     chat,
		plan:     plan,
		geometry: geometry,
	}
}

// ============================================================
// Rate
// ============================================================

type rateRequest struct {
	PlotSize float64 `json:"plot_size"`
	Unit     string  `json:"unit"`
	Pincode  string  `json:"pincode"`
}

// Rate считает стоимость строительства по площади участка и пинкоду.
func (h *PlannerHandler) Rate(c fiber.Ctx) error {
	var req rateRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
	}

	if req.PlotSize == 0 {
		req.PlotSize = 1000
	}
	if req.Pincode == "" {
		req.Pincode = "641035"
	}

	var sqft int
	switch req.Unit {
	case "sqm":
		sqft = int(req.PlotSize * 10.764)
	case "cent":
		sqft = int(req.PlotSize * 435.6)
	default:
		sqft = int(req.PlotSize)
	}

	rate := service.RateForPincode(req.Pincode)
	cost := sqft * rate

	return c.JSON(fiber.Map{
		"sqft":           sqft,
		"rate":           rate,
		"cost_estimate":  cost,
		"formatted_cost": "₹" + service.FormatINR(cost),
		"district":       service.DistrictForPincode(req.Pincode),
	})
}

// ============================================================
// Chat
// ============================================================

type initChatRequest struct {
	BHK     int    `json:"bhk"`
	Sqft    int    `json:"sqft"`
	Facing  string `json:"facing"`
	Style   string `json:"style"`
	Pincode string `json:"pincode"`
}

// InitChat открывает сессию диалога и возвращает приветствие.
func (h *PlannerHandler) InitChat(c fiber.Ctx) error {
	var req initChatRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
	}

	if req.BHK == 0 {
		req.BHK = 2
	}
	if req.Sqft == 0 {
		req.Sqft = 1000
	}
	if req.Facing == "" {
		req.Facing = "East"
	}
	if req.Style == "" {
		req.Style = "Modern"
	}
	if req.Pincode == "" {
		req.Pincode = "641035"
	}

	rate := service.RateForPincode(req.Pincode)
	params := models.UserParams{
		BHK:          req.BHK,
		Sqft:         req.Sqft,
		Facing:       req.Facing,
		Style:        req.Style,
		Pincode:      req.Pincode,
		Rate:         rate,
		CostEstimate: req.Sqft * rate,
	}

	token := h.sessions.Create(params)

	greeting := "Great! I'll help you design your " + strconv.Itoa(params.BHK) + " BHK house (" +
		strconv.Itoa(params.Sqft) + " sqft, " + params.Facing + " facing).\n\n" +
		"What's most important to you? Room sizes, natural lighting, privacy, or something else?"

	h.sessions.Append(token, models.ChatMessage{Role: "assistant", Content: greeting})

	return c.JSON(fiber.Map{
		"token":       token,
		"message":     greeting,
		"smart_chips": service.SmartChips("initial"),
	})
}

type chatRequest struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// Chat обрабатывает реплику пользователя и отвечает через LLM.
func (h *PlannerHandler) Chat(c fiber.Ctx) error {
	var req chatRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
	}

	sess, ok := h.sessions.Get(req.Token)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "unknown session"})
	}

	h.sessions.Append(req.Token, models.ChatMessage{Role: "user", Content: req.Message})

	messages := make([]models.ChatMessage, 0, len(sess.History)+2)
	messages = append(messages, models.ChatMessage{Role: "system", Content: service.SystemPrompt(sess.Params)})
	messages = append(messages, sess.History...)
	messages = append(messages, models.ChatMessage{Role: "user", Content: req.Message})

	reply, err := h.chat.Chat(context.Background(), messages)
	if err != nil {
		log.Printf("[PLANNER] chat error: %v", err)
		reply = "Error calling assistant: " + err.Error()
	}

	h.sessions.Append(req.Token, models.ChatMessage{Role: "assistant", Content: reply})

	historyLen := len(sess.History) + 2
	ready := strings.Contains(strings.ToLower(reply), "ready to generate") || historyLen > readyHistoryLen

	return c.JSON(fiber.Map{
		"response":          reply,
		"smart_chips":       service.ChipsForHistory(historyLen),
		"ready_to_generate": ready,
	})
}

// ============================================================
// Generation
// ============================================================

type generateRequest struct {
	Token string `json:"token"`
}

type planSpec struct {
	Rooms json.RawMessage `json:"rooms"`
}

// Generate строит итоговый план: запрашивает у LLM структурированную
// планировку, получает GLB и SVG от геометрического сервиса и сохраняет
// результат. Непригодный ответ LLM не ошибка — геометрия соберет сцену из
// шаблона.
func (h *PlannerHandler) Generate(c fiber.Ctx) error {
	var req generateRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
	}

	sess, ok := h.sessions.Get(req.Token)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "unknown session"})
	}
	params := sess.Params

	prompt := service.PlanPrompt(params, sess.History)

	var rooms json.RawMessage
	planText := ""
	raw, err := h.plan.GeneratePlan(context.Background(), prompt)
	if err != nil {
		log.Printf("[PLANNER] plan generation error: %v", err)
	} else if spec, pretty, ok := parsePlan(raw); ok {
		rooms = spec.Rooms
		planText = pretty
	}
	if planText == "" {
		planText = service.FallbackPlanText(params)
	}

	glb, err := h.geometry.Model(context.Background(), params.BHK, params.Sqft, rooms)
	if err != nil {
		log.Printf("[PLANNER] model error: %v", err)
		return c.Status(http.StatusBadGateway).JSON(fiber.Map{"error": "model generation failed"})
	}

	svg, err := h.geometry.Plan(context.Background(), params.BHK)
	if err != nil {
		log.Printf("[PLANNER] plan error: %v", err)
		return c.Status(http.StatusBadGateway).JSON(fiber.Map{"error": "plan generation failed"})
	}

	modelFile, err := h.storage.SaveModel(glb)
	if err != nil {
		log.Printf("[PLANNER] save model error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to store model"})
	}
	planFile, err := h.storage.SavePlan(svg)
	if err != nil {
		log.Printf("[PLANNER] save plan error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to store plan"})
	}

	history, _ := json.Marshal(sess.History)

	id, err := h.repo.Insert(context.Background(), &models.Request{
		BHK:          params.BHK,
		Sqft:         params.Sqft,
		Facing:       params.Facing,
		Pincode:      params.Pincode,
		Rate:         params.Rate,
		CostEstimate: params.CostEstimate,
		Style:        params.Style,
		ChatHistory:  string(history),
		FinalPrompt:  prompt,
		ModelFile:    modelFile,
		PlanText:     planText,
		PlanFile:     planFile,
	})
	if err != nil {
		log.Printf("[PLANNER] insert error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to store request"})
	}

	h.sessions.Drop(req.Token)

	return c.JSON(fiber.Map{
		"success":    true,
		"request_id": id,
	})
}

// parsePlan снимает markdown-ограждения и разбирает JSON плана. Возвращает
// план, отформатированный текст и признак успеха.
func parsePlan(raw string) (planSpec, string, bool) {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
		cleaned = strings.TrimSpace(cleaned)
	}

	var spec planSpec
	if err := json.Unmarshal([]byte(cleaned), &spec); err != nil {
		return planSpec{}, "", false
	}
	var rooms []json.RawMessage
	if err := json.Unmarshal(spec.Rooms, &rooms); err != nil || len(rooms) == 0 {
		return planSpec{}, "", false
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, []byte(cleaned), "", "  "); err != nil {
		return spec, cleaned, true
	}
	return spec, pretty.String(), true
}

// ============================================================
// Results
// ============================================================

// GetRequest возвращает сохраненный результат генерации.
func (h *PlannerHandler) GetRequest(c fiber.Ctx) error {
	req, ok := h.lookup(c)
	if !ok {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "request not found"})
	}
	return c.JSON(req)
}

// GetModel отдает GLB сохраненного результата.
func (h *PlannerHandler) GetModel(c fiber.Ctx) error {
	req, ok := h.lookup(c)
	if !ok {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "request not found"})
	}

	c.Set("Content-Type", "model/gltf-binary")
	return c.SendFile(h.storage.ModelPath(req.ModelFile))
}

// GetPlan отдает SVG план сохраненного результата.
func (h *PlannerHandler) GetPlan(c fiber.Ctx) error {
	req, ok := h.lookup(c)
	if !ok {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "request not found"})
	}

	c.Set("Content-Type", "image/svg+xml")
	return c.SendFile(h.storage.PlanPath(req.PlanFile))
}

// ListRequests возвращает последние генерации (админский обзор).
func (h *PlannerHandler) ListRequests(c fiber.Ctx) error {
	requests, err := h.repo.ListRecent(context.Background(), adminListLimit)
	if err != nil {
		log.Printf("[PLANNER] list error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list requests"})
	}
	return c.JSON(fiber.Map{"requests": requests})
}

func (h *PlannerHandler) lookup(c fiber.Ctx) (*models.Request, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return nil, false
	}
	req, err := h.repo.GetByID(context.Background(), id)
	if err != nil {
		return nil, false
	}
	return req, true
}
