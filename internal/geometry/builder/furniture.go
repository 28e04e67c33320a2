package builder

import "house-planner/internal/geometry/mesh"

// ============================================================
// Furniture Synthesizer
// ============================================================

// Item — именованный примитив, готовый к добавлению в сцену.
type Item struct {
	Name string
	Mesh *mesh.Mesh
}

var (
	colorWood     = [4]uint8{139, 69, 19, 255}
	colorWoodSoft = [4]uint8{160, 82, 45, 255}
	colorSofa     = [4]uint8{70, 130, 180, 255}
	colorCounter  = [4]uint8{192, 192, 192, 255}
	colorWhite    = [4]uint8{255, 255, 255, 255}
)

// Furniture возвращает мебель для комнаты с началом в (x, y, z) и габаритами
// w на d. Все смещения заданы относительно начала комнаты. Комната без
// подходящей категории остается пустой.
func Furniture(roomName string, x, y, z, w, d float64) []Item {
	switch furnitureCategory(roomName) {
	case "bedroom":
		return []Item{
			{"Bed", mesh.Box(1.8, 2.0, 0.5).Translate(x+w/2, y+d/2, z+0.25).SetColor(colorWood)},
			{"Nightstand", mesh.Box(0.4, 0.4, 0.5).Translate(x+w/2+1.2, y+d/2, z+0.25).SetColor(colorWoodSoft)},
		}
	case "living":
		return []Item{
			{"Sofa", mesh.Box(2.0, 0.8, 0.7).Translate(x+w/2, y+1.0, z+0.35).SetColor(colorSofa)},
			{"Table", mesh.Box(1.0, 0.6, 0.4).Translate(x+w/2, y+2.2, z+0.2).SetColor(colorWood)},
		}
	case "kitchen":
		return []Item{
			{"Counter", mesh.Box(w-0.5, 0.6, 0.9).Translate(x+w/2, y+0.5, z+0.45).SetColor(colorCounter)},
		}
	case "dining":
		return []Item{
			{"Dining_Table", mesh.Box(1.5, 1.0, 0.75).Translate(x+w/2, y+d/2, z+0.375).SetColor(colorWood)},
		}
	case "bathroom":
		return []Item{
			{"Toilet", mesh.Cylinder(0.25, 0.4).Translate(x+0.5, y+0.5, z+0.2).SetColor(colorWhite)},
		}
	}
	return nil
}
