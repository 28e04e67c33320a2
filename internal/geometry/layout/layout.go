package layout

import "house-planner/internal/geometry/models"

// ============================================================
// Layout Templates
// ============================================================

// Фиксированные планировки по числу спален. Координаты подобраны так,
// чтобы смежные комнаты разделяли ровно одну грань.

var (
	colorLiving   = [4]uint8{150, 200, 150, 255}
	colorBedroom  = [4]uint8{200, 150, 150, 255}
	colorKitchen  = [4]uint8{150, 150, 200, 255}
	colorBathroom = [4]uint8{200, 200, 150, 255}
	colorDining   = [4]uint8{180, 150, 200, 255}
)

var templates = map[int][]models.Room{
	1: {
		{Name: "Living Room", X: 0, Y: 0, W: 4, D: 5, H: 3, Color: colorLiving},
		{Name: "Bedroom", X: 4.5, Y: 0, W: 4, D: 4, H: 3, Color: colorBedroom},
		{Name: "Kitchen", X: 0, Y: 5.5, W: 3, D: 3, H: 3, Color: colorKitchen},
		{Name: "Bathroom", X: 4.5, Y: 4.5, W: 2, D: 2, H: 3, Color: colorBathroom},
	},
	2: {
		{Name: "Living Room", X: 0, Y: 0, W: 5, D: 4, H: 3, Color: colorLiving},
		{Name: "Bedroom 1", X: 5.5, Y: 0, W: 4, D: 4, H: 3, Color: colorBedroom},
		{Name: "Bedroom 2", X: 10, Y: 0, W: 3.5, D: 4, H: 3, Color: colorBedroom},
		{Name: "Kitchen", X: 0, Y: 4.5, W: 3, D: 3.5, H: 3, Color: colorKitchen},
		{Name: "Bathroom", X: 3.5, Y: 4.5, W: 2, D: 2.5, H: 3, Color: colorBathroom},
		{Name: "Dining", X: 6, Y: 4.5, W: 3, D: 3, H: 3, Color: colorDining},
	},
	3: {
		{Name: "Living Room", X: 0, Y: 0, W: 5, D: 5, H: 3, Color: colorLiving},
		{Name: "Bedroom 1", X: 5.5, Y: 0, W: 4, D: 4, H: 3, Color: colorBedroom},
		{Name: "Bedroom 2", X: 10, Y: 0, W: 3.5, D: 4, H: 3, Color: colorBedroom},
		{Name: "Bedroom 3", X: 0, Y: 5.5, W: 3.5, D: 4, H: 3, Color: colorBedroom},
		{Name: "Kitchen", X: 4, Y: 5.5, W: 3, D: 3, H: 3, Color: colorKitchen},
		{Name: "Bathroom 1", X: 7.5, Y: 5.5, W: 2, D: 2, H: 3, Color: colorBathroom},
		{Name: "Bathroom 2", X: 10, Y: 5.5, W: 2, D: 2, H: 3, Color: colorBathroom},
		{Name: "Dining", X: 4, Y: 9, W: 3.5, D: 3, H: 3, Color: colorDining},
	},
	4: {
		{Name: "Living Room", X: 0, Y: 0, W: 6, D: 5, H: 3, Color: colorLiving},
		{Name: "Bedroom 1", X: 6.5, Y: 0, W: 4, D: 4.5, H: 3, Color: colorBedroom},
		{Name: "Bedroom 2", X: 11, Y: 0, W: 4, D: 4, H: 3, Color: colorBedroom},
		{Name: "Bedroom 3", X: 0, Y: 5.5, W: 4, D: 4, H: 3, Color: colorBedroom},
		{Name: "Bedroom 4", X: 4.5, Y: 5.5, W: 3.5, D: 4, H: 3, Color: colorBedroom},
		{Name: "Kitchen", X: 8.5, Y: 5.5, W: 3.5, D: 3, H: 3, Color: colorKitchen},
		{Name: "Bathroom 1", X: 12.5, Y: 5.5, W: 2, D: 2, H: 3, Color: colorBathroom},
		{Name: "Bathroom 2", X: 0, Y: 10, W: 2, D: 2, H: 3, Color: colorBathroom},
		{Name: "Dining", X: 2.5, Y: 10, W: 4, D: 3.5, H: 3, Color: colorDining},
	},
}

// Clamp приводит произвольное число спален к поддерживаемой категории.
func Clamp(bhk int) int {
	if bhk <= 1 {
		return 1
	}
	if bhk >= 4 {
		return 4
	}
	return bhk
}

// ForBHK возвращает копию шаблона планировки для категории bhk.
func ForBHK(bhk int) []models.Room {
	template := templates[Clamp(bhk)]
	rooms := make([]models.Room, len(template))
	copy(rooms, template)
	return rooms
}

// ============================================================
// 2D Plan Templates
// ============================================================

// Координаты 2D плана независимы от 3D шаблонов (холст 800x600).

var planTemplates = map[int][]models.PlanRoom{
	1: {
		{Name: "Living", X: 50, Y: 50, W: 300, H: 250},
		{Name: "Bedroom", X: 400, Y: 50, W: 300, H: 250},
		{Name: "Kitchen", X: 50, Y: 350, W: 200, H: 150},
		{Name: "Bathroom", X: 300, Y: 350, W: 150, H: 150},
	},
	2: {
		{Name: "Living", X: 50, Y: 50, W: 250, H: 200},
		{Name: "Bedroom 1", X: 350, Y: 50, W: 200, H: 200},
		{Name: "Bedroom 2", X: 600, Y: 50, W: 200, H: 200},
		{Name: "Kitchen", X: 50, Y: 300, W: 180, H: 150},
		{Name: "Bathroom", X: 280, Y: 300, W: 150, H: 150},
	},
	3: {
		{Name: "Living", X: 50, Y: 50, W: 220, H: 180},
		{Name: "Bedroom 1", X: 320, Y: 50, W: 180, H: 180},
		{Name: "Bedroom 2", X: 550, Y: 50, W: 180, H: 180},
		{Name: "Bedroom 3", X: 50, Y: 280, W: 180, H: 180},
		{Name: "Kitchen", X: 280, Y: 280, W: 150, H: 130},
		{Name: "Bath 1", X: 480, Y: 280, W: 120, H: 130},
	},
	4: {
		{Name: "Living", X: 50, Y: 50, W: 200, H: 150},
		{Name: "Dining", X: 300, Y: 50, W: 150, H: 150},
		{Name: "BR 1", X: 500, Y: 50, W: 150, H: 150},
		{Name: "BR 2", X: 700, Y: 50, W: 150, H: 150},
		{Name: "BR 3", X: 50, Y: 250, W: 150, H: 150},
		{Name: "Kitchen", X: 250, Y: 250, W: 150, H: 130},
	},
}

// PlanForBHK возвращает копию 2D шаблона для категории bhk.
func PlanForBHK(bhk int) []models.PlanRoom {
	template := planTemplates[Clamp(bhk)]
	rooms := make([]models.PlanRoom, len(template))
	copy(rooms, template)
	return rooms
}
