package builder

import (
	"house-planner/internal/geometry/layout"
	"house-planner/internal/geometry/mesh"
	"house-planner/internal/geometry/models"
)

// ============================================================
// Scene Assembler
// ============================================================

const (
	ftPerMeter = 3.28

	roomFloorThickness = 0.05
	floorSlabThickness = 0.1
	floorSlabMargin    = 2
	defaultExtent      = 10
)

var (
	colorRoomFloor = [4]uint8{245, 245, 220, 255}
	colorFloorSlab = [4]uint8{220, 220, 220, 255}
)

// Build собирает сцену дома. Валидное структурированное описание комнат
// рендерится напрямую (путь A); иначе — полная сцена из шаблона по числу
// спален (путь B). Некорректное описание не является ошибкой: вызов всегда
// возвращает непустую сцену.
func Build(bhk int, sqft float64, rooms []models.StructuredRoom) *mesh.Scene {
	if validStructured(rooms) {
		return buildStructured(rooms)
	}
	return buildTemplate(bhk)
}

// validStructured требует непустой список, где у каждой комнаты заданы
// положительные размеры. Отсутствующая позиция не считается дефектом.
func validStructured(rooms []models.StructuredRoom) bool {
	if len(rooms) == 0 {
		return false
	}
	for _, r := range rooms {
		d := r.Dimensions
		if d == nil || d.Length <= 0 || d.Width <= 0 || d.Height <= 0 {
			return false
		}
	}
	return true
}

// ============================================================
// Path A: structured layout
// ============================================================

// buildStructured рисует по коробке на комнату из внешнего описания.
// Размеры приходят в футах и переводятся в метры. Мебель, внутренние стены
// и участок на этом пути не строятся.
func buildStructured(rooms []models.StructuredRoom) *mesh.Scene {
	scene := mesh.NewScene()

	maxX, maxY := 0.0, 0.0
	for _, r := range rooms {
		length := r.Dimensions.Length / ftPerMeter
		width := r.Dimensions.Width / ftPerMeter
		height := r.Dimensions.Height / ftPerMeter

		var px, py float64
		if r.Position != nil {
			px, py = r.Position.X, r.Position.Y
		}

		box := mesh.Box(length, width, height).
			Translate(px, py, height/2).
			SetColor(ColorFor(r.Name))

		name := r.Name
		if name == "" {
			name = "room"
		}
		scene.Add(name, box)

		if px+length > maxX {
			maxX = px + length
		}
		if py+width > maxY {
			maxY = py + width
		}
	}

	if maxX <= 0 {
		maxX = defaultExtent
	}
	if maxY <= 0 {
		maxY = defaultExtent
	}

	slab := mesh.Box(maxX+floorSlabMargin, maxY+floorSlabMargin, floorSlabThickness).
		Translate(maxX/2, maxY/2, -floorSlabThickness/2).
		SetColor(colorFloorSlab)
	scene.Add("floor", slab)

	return scene
}

// ============================================================
// Path B: template layout
// ============================================================

func buildTemplate(bhk int) *mesh.Scene {
	scene := mesh.NewScene()
	rooms := layout.ForBHK(bhk)

	for _, room := range rooms {
		floor := mesh.Box(room.W, room.D, roomFloorThickness).
			Translate(room.X+room.W/2, room.Y+room.D/2, roomFloorThickness/2).
			SetColor(colorRoomFloor)
		scene.Add(room.Name+"_floor", floor)

		for _, item := range Furniture(room.Name, room.X, room.Y, roomFloorThickness, room.W, room.D) {
			scene.Add(room.Name+"_"+item.Name, item.Mesh)
		}
	}

	maxX, maxY := 0.0, 0.0
	for _, room := range rooms {
		if room.X+room.W > maxX {
			maxX = room.X + room.W
		}
		if room.Y+room.D > maxY {
			maxY = room.Y + room.D
		}
	}

	ground := Ground(maxX, maxY)
	scene.Add(ground.Name, ground.Mesh)

	for _, wall := range PerimeterWalls(maxX, maxY) {
		scene.Add(wall.Name, wall.Mesh)
	}
	for _, wall := range InternalWalls(rooms) {
		scene.Add(wall.Name, wall.Mesh)
	}
	for _, tree := range Trees(maxX, maxY) {
		scene.Add(tree.Name, tree.Mesh)
	}

	driveway := Driveway(maxX, maxY)
	scene.Add(driveway.Name, driveway.Mesh)

	return scene
}
