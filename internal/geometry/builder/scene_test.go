package builder

import (
	"math"
	"reflect"
	"testing"

	"house-planner/internal/geometry/models"
)

func TestTemplateSceneTwoBHK(t *testing.T) {
	scene := Build(2, 1000, nil)

	// 6 полов + 9 предметов мебели + газон + 4 стены + 8 деталей деревьев
	// + дорожка. Внутренних стен в шаблонах нет: комнаты разнесены на 0.5.
	if scene.Len() != 29 {
		t.Errorf("scene has %d nodes, want 29: %v", scene.Len(), scene.Names())
	}

	floors := []string{
		"Living Room_floor",
		"Bedroom 1_floor",
		"Bedroom 2_floor",
		"Kitchen_floor",
		"Bathroom_floor",
		"Dining_floor",
	}
	for _, name := range floors {
		if _, ok := scene.Find(name); !ok {
			t.Errorf("missing floor node %q", name)
		}
	}

	for _, name := range []string{
		"Living Room_Sofa", "Living Room_Table",
		"Bedroom 1_Bed", "Bedroom 1_Nightstand",
		"Kitchen_Counter", "Bathroom_Toilet", "Dining_Dining_Table",
	} {
		if _, ok := scene.Find(name); !ok {
			t.Errorf("missing furniture node %q", name)
		}
	}

	for _, name := range []string{"Wall_North", "Wall_South", "Wall_East", "Wall_West", "Ground", "Driveway"} {
		if _, ok := scene.Find(name); !ok {
			t.Errorf("missing node %q", name)
		}
	}

	trunks, foliage := 0, 0
	for _, name := range scene.Names() {
		switch {
		case len(name) > 6 && name[len(name)-6:] == "_trunk":
			trunks++
		case len(name) > 8 && name[len(name)-8:] == "_foliage":
			foliage++
		}
	}
	if trunks != 4 || foliage != 4 {
		t.Errorf("got %d trunks and %d foliage cones, want 4 each", trunks, foliage)
	}
}

func TestStructuredScene(t *testing.T) {
	rooms := []models.StructuredRoom{
		{
			Name:       "Master Bedroom",
			Dimensions: &models.Dimensions{Length: 16.4, Width: 13.12, Height: 9.84},
			Position:   &models.Position{X: 0, Y: 0},
		},
		{
			Name:       "Kitchen",
			Dimensions: &models.Dimensions{Length: 9.84, Width: 9.84, Height: 9.84},
			Position:   &models.Position{X: 5, Y: 0},
		},
	}

	scene := Build(3, 1200, rooms)

	// Две комнаты и общая плита, без мебели и стен.
	if scene.Len() != 3 {
		t.Fatalf("scene has %d nodes, want 3: %v", scene.Len(), scene.Names())
	}

	bedroom, ok := scene.Find("Master Bedroom")
	if !ok {
		t.Fatal("missing Master Bedroom node")
	}
	if bedroom.Mesh.Color != [4]uint8{200, 150, 150, 255} {
		t.Errorf("bedroom color %v", bedroom.Mesh.Color)
	}
	// 16.4 ft / 3.28 = 5 m.
	min, max := bedroom.Mesh.Bounds()
	if math.Abs(float64(max[0]-min[0])-5) > 1e-3 {
		t.Errorf("bedroom length %f m, want 5", max[0]-min[0])
	}
	if math.Abs(float64(min[2])) > 1e-4 {
		t.Errorf("bedroom rests at z=%f, want 0", min[2])
	}

	floor, ok := scene.Find("floor")
	if !ok {
		t.Fatal("missing floor slab")
	}
	// Габарит комнат: x до 8, y до 4; плита с запасом 2.
	fMin, fMax := floor.Mesh.Bounds()
	if math.Abs(float64(fMin[0])-(-1)) > 1e-3 || math.Abs(float64(fMax[0])-9) > 1e-3 {
		t.Errorf("floor x range [%f, %f], want [-1, 9]", fMin[0], fMax[0])
	}
	if math.Abs(float64(fMin[1])-(-1)) > 1e-3 || math.Abs(float64(fMax[1])-5) > 1e-3 {
		t.Errorf("floor y range [%f, %f], want [-1, 5]", fMin[1], fMax[1])
	}
}

func TestStructuredRoomWithoutNameOrPosition(t *testing.T) {
	rooms := []models.StructuredRoom{
		{Dimensions: &models.Dimensions{Length: 10, Width: 10, Height: 9}},
	}
	scene := Build(1, 500, rooms)
	if _, ok := scene.Find("room"); !ok {
		t.Errorf("unnamed room not placed: %v", scene.Names())
	}
}

func TestMalformedRoomsFallBackToTemplate(t *testing.T) {
	malformed := []models.StructuredRoom{
		{Name: "Bedroom", Dimensions: &models.Dimensions{Length: 10, Width: 10, Height: 9}},
		{Name: "Kitchen"}, // нет размеров
	}
	got := Build(2, 1000, malformed).Names()
	want := Build(2, 1000, nil).Names()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("malformed input did not fall back to template:\ngot  %v\nwant %v", got, want)
	}
}

func TestNonPositiveDimensionsFallBack(t *testing.T) {
	rooms := []models.StructuredRoom{
		{Name: "Bedroom", Dimensions: &models.Dimensions{Length: -5, Width: 10, Height: 9}},
	}
	scene := Build(1, 500, rooms)
	if _, ok := scene.Find("Living Room_floor"); !ok {
		t.Errorf("expected template scene, got %v", scene.Names())
	}
}

func TestEmptyRoomsFallBackToTemplate(t *testing.T) {
	scene := Build(2, 1000, []models.StructuredRoom{})
	if _, ok := scene.Find("Living Room_floor"); !ok {
		t.Errorf("expected template scene, got %v", scene.Names())
	}
}
