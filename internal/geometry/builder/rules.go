package builder

import "strings"

// ============================================================
// Keyword Rules
// ============================================================

// Категория комнаты выбирается по подстроке имени (без учета регистра),
// первый совпавший ключ выигрывает. Порядок правил фиксирован: порядок
// цветовой палитры и порядок мебельных правил исторически различаются.

type colorRule struct {
	Keyword string
	Color   [4]uint8
}

var roomColorRules = []colorRule{
	{"bedroom", [4]uint8{200, 150, 150, 255}},
	{"living", [4]uint8{150, 200, 150, 255}},
	{"kitchen", [4]uint8{150, 150, 200, 255}},
	{"bathroom", [4]uint8{200, 200, 150, 255}},
	{"dining", [4]uint8{180, 150, 200, 255}},
}

var defaultRoomColor = [4]uint8{180, 180, 180, 255}

var furnitureKeywords = []string{"bedroom", "living", "kitchen", "dining", "bathroom"}

// ColorFor возвращает цвет комнаты по ключевому слову в имени.
func ColorFor(roomName string) [4]uint8 {
	name := strings.ToLower(roomName)
	for _, rule := range roomColorRules {
		if strings.Contains(name, rule.Keyword) {
			return rule.Color
		}
	}
	return defaultRoomColor
}

// furnitureCategory возвращает категорию мебели или "" если правил нет.
func furnitureCategory(roomName string) string {
	name := strings.ToLower(roomName)
	for _, keyword := range furnitureKeywords {
		if strings.Contains(name, keyword) {
			return keyword
		}
	}
	return ""
}
