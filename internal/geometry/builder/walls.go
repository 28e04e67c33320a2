package builder

import (
	"fmt"
	"math"

	"house-planner/internal/geometry/mesh"
	"house-planner/internal/geometry/models"
)

// ============================================================
// Wall Synthesizer
// ============================================================

const (
	perimeterThickness = 0.25
	wallHeight         = 3.5
	internalThickness  = 0.15

	// Грани считаются общими при расхождении меньше 0.1.
	adjacencyTolerance = 0.1
)

var (
	colorExterior = [4]uint8{210, 180, 140, 255}
	colorInterior = [4]uint8{220, 220, 220, 255}
)

// PerimeterWalls возвращает четыре внешние стены вплотную к габаритному
// прямоугольнику (0,0)-(maxX,maxY).
func PerimeterWalls(maxX, maxY float64) []Item {
	t := perimeterThickness
	h := wallHeight

	return []Item{
		{"Wall_North", mesh.Box(maxX+t, t, h).Translate(maxX/2, -t/2, h/2).SetColor(colorExterior)},
		{"Wall_South", mesh.Box(maxX+t, t, h).Translate(maxX/2, maxY+t/2, h/2).SetColor(colorExterior)},
		{"Wall_East", mesh.Box(t, maxY, h).Translate(-t/2, maxY/2, h/2).SetColor(colorExterior)},
		{"Wall_West", mesh.Box(t, maxY, h).Translate(maxX+t/2, maxY/2, h/2).SetColor(colorExterior)},
	}
}

// InternalWalls находит смежные пары комнат и ставит стену вдоль общего
// отрезка. Пара без общей грани стены не дает. Проверка симметрична, на
// смежную пару приходится ровно одна стена.
func InternalWalls(rooms []models.Room) []Item {
	var walls []Item

	for i := 0; i < len(rooms); i++ {
		for j := i + 1; j < len(rooms); j++ {
			if wall, ok := sharedWall(rooms[i], rooms[j], i, j); ok {
				walls = append(walls, wall)
			}
		}
	}
	return walls
}

func sharedWall(a, b models.Room, i, j int) (Item, bool) {
	ax2, ay2 := a.X+a.W, a.Y+a.D
	bx2, by2 := b.X+b.W, b.Y+b.D

	// Вертикальная стена: комнаты стоят бок о бок.
	if edgeX, ok := coincide(ax2, b.X, bx2, a.X); ok && !(ay2 < b.Y || by2 < a.Y) {
		y1 := math.Max(a.Y, b.Y)
		y2 := math.Min(ay2, by2)
		if y2 > y1 {
			wall := mesh.Box(internalThickness, y2-y1, wallHeight).
				Translate(edgeX, (y1+y2)/2, wallHeight/2).
				SetColor(colorInterior)
			return Item{fmt.Sprintf("Wall_internal_%d_%d", i, j), wall}, true
		}
		return Item{}, false
	}

	// Горизонтальная стена: комнаты одна над другой.
	if edgeY, ok := coincide(ay2, b.Y, by2, a.Y); ok && !(ax2 < b.X || bx2 < a.X) {
		x1 := math.Max(a.X, b.X)
		x2 := math.Min(ax2, bx2)
		if x2 > x1 {
			wall := mesh.Box(x2-x1, internalThickness, wallHeight).
				Translate((x1+x2)/2, edgeY, wallHeight/2).
				SetColor(colorInterior)
			return Item{fmt.Sprintf("Wall_internal_%d_%d_h", i, j), wall}, true
		}
	}
	return Item{}, false
}

// coincide проверяет совпадение правой грани одной комнаты с левой гранью
// другой в любом порядке и возвращает координату общей грани.
func coincide(aHigh, bLow, bHigh, aLow float64) (float64, bool) {
	if math.Abs(aHigh-bLow) < adjacencyTolerance {
		return aHigh, true
	}
	if math.Abs(bHigh-aLow) < adjacencyTolerance {
		return bHigh, true
	}
	return 0, false
}
