package builder

import "house-planner/internal/geometry/mesh"

// ============================================================
// Landscaping Synthesizer
// ============================================================

var (
	colorTrunk   = [4]uint8{101, 67, 33, 255}
	colorFoliage = [4]uint8{34, 139, 34, 255}
	colorGrass   = [4]uint8{144, 238, 144, 255}
	colorAsphalt = [4]uint8{128, 128, 128, 255}
)

// Trees ставит четыре дерева по углам снаружи от габарита дома:
// ствол-цилиндр и крона-конус.
func Trees(maxX, maxY float64) []Item {
	positions := []struct {
		X, Y float64
		Name string
	}{
		{-1.5, 2, "Tree_1"},
		{-1.5, maxY - 2, "Tree_2"},
		{maxX + 1.5, 2, "Tree_3"},
		{maxX + 1.5, maxY - 2, "Tree_4"},
	}

	var items []Item
	for _, p := range positions {
		trunk := mesh.Cylinder(0.15, 1.5).Translate(p.X, p.Y, 0.75).SetColor(colorTrunk)
		foliage := mesh.Cone(0.8, 1.5).Translate(p.X, p.Y, 2.25).SetColor(colorFoliage)
		items = append(items,
			Item{p.Name + "_trunk", trunk},
			Item{p.Name + "_foliage", foliage},
		)
	}
	return items
}

// Ground — газон с запасом 4 единицы вокруг дома.
func Ground(maxX, maxY float64) Item {
	slab := mesh.Box(maxX+4, maxY+4, 0.1).Translate(maxX/2, maxY/2, -0.05).SetColor(colorGrass)
	return Item{"Ground", slab}
}

// Driveway — подъездная дорожка вдоль западной стороны участка.
func Driveway(maxX, maxY float64) Item {
	slab := mesh.Box(2, maxY+4, 0.08).Translate(-2, maxY/2, 0.04).SetColor(colorAsphalt)
	return Item{"Driveway", slab}
}
