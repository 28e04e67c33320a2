package models

import "encoding/json"

// ============================================================
// Layout primitives
// ============================================================

// Room — комната шаблонной планировки на плоскости пола.
type Room struct {
	Name  string
	X     float64
	Y     float64
	W     float64
	D     float64
	H     float64
	Color [4]uint8
}

// PlanRoom — прямоугольник комнаты на 2D плане (координаты холста, не метры).
type PlanRoom struct {
	Name string
	X    int
	Y    int
	W    int
	H    int
}

// ============================================================
// Structured layout (LLM output)
// ============================================================

type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// StructuredRoom описывает комнату из внешнего JSON-плана. Размеры в футах.
type StructuredRoom struct {
	Name       string      `json:"name"`
	Dimensions *Dimensions `json:"dimensions"`
	Position   *Position   `json:"position"`
	Features   []string    `json:"features"`
}

// ============================================================
// Service payloads
// ============================================================

// ModelRequest держит rooms сырым JSON: описание комнат приходит из LLM и
// может не соответствовать схеме. Непригодный список — не ошибка запроса.
type ModelRequest struct {
	BHK   int             `json:"bhk"`
	Sqft  float64         `json:"sqft"`
	Rooms json.RawMessage `json:"rooms"`
}

// StructuredRooms разбирает rooms; непригодный JSON дает nil.
func (r *ModelRequest) StructuredRooms() []StructuredRoom {
	if len(r.Rooms) == 0 {
		return nil
	}
	var rooms []StructuredRoom
	if err := json.Unmarshal(r.Rooms, &rooms); err != nil {
		return nil
	}
	return rooms
}

type PlanRequest struct {
	BHK int `json:"bhk"`
}
