package mesh

import (
	"encoding/binary"
	"encoding/json"
	"math"
	"testing"
)

func TestBoxBounds(t *testing.T) {
	min, max := Box(2, 3, 4).Bounds()
	if min != [3]float32{-1, -1.5, -2} || max != [3]float32{1, 1.5, 2} {
		t.Errorf("bounds %v - %v", min, max)
	}
}

func TestTranslate(t *testing.T) {
	min, max := Box(2, 2, 2).Translate(10, 20, 30).Bounds()
	if min != [3]float32{9, 19, 29} || max != [3]float32{11, 21, 31} {
		t.Errorf("bounds %v - %v", min, max)
	}
}

func TestCylinderBounds(t *testing.T) {
	min, max := Cylinder(1, 2).Bounds()
	if math.Abs(float64(min[2]+1)) > 1e-6 || math.Abs(float64(max[2]-1)) > 1e-6 {
		t.Errorf("z range [%f, %f], want [-1, 1]", min[2], max[2])
	}
	if math.Abs(float64(max[0]-1)) > 1e-6 || math.Abs(float64(min[0]+1)) > 1e-6 {
		t.Errorf("x range [%f, %f], want [-1, 1]", min[0], max[0])
	}
}

func TestConeBounds(t *testing.T) {
	min, max := Cone(0.8, 1.5).Bounds()
	if min[2] != 0 || math.Abs(float64(max[2]-1.5)) > 1e-6 {
		t.Errorf("z range [%f, %f], want [0, 1.5]", min[2], max[2])
	}
}

func TestSceneFind(t *testing.T) {
	s := NewScene()
	s.Add("a", Box(1, 1, 1))
	s.Add("b", Box(2, 2, 2))

	if _, ok := s.Find("b"); !ok {
		t.Error("Find(b) failed")
	}
	if _, ok := s.Find("c"); ok {
		t.Error("Find(c) matched nothing")
	}
	if got := s.Names(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Names() = %v", got)
	}
}

// ============================================================
// GLB container
// ============================================================

func TestExportGLBContainer(t *testing.T) {
	s := NewScene()
	s.Add("box", Box(1, 2, 3).SetColor([4]uint8{10, 20, 30, 255}))
	s.Add("post", Cylinder(0.5, 2))

	data, err := s.ExportGLB()
	if err != nil {
		t.Fatalf("ExportGLB: %v", err)
	}

	if len(data)%4 != 0 {
		t.Errorf("GLB length %d not 4-byte aligned", len(data))
	}
	if string(data[0:4]) != "glTF" {
		t.Fatalf("magic %q", data[0:4])
	}
	if v := binary.LittleEndian.Uint32(data[4:8]); v != 2 {
		t.Errorf("version %d, want 2", v)
	}
	if total := binary.LittleEndian.Uint32(data[8:12]); int(total) != len(data) {
		t.Errorf("declared length %d, actual %d", total, len(data))
	}

	jsonLen := binary.LittleEndian.Uint32(data[12:16])
	if jsonLen%4 != 0 {
		t.Errorf("JSON chunk length %d not aligned", jsonLen)
	}
	if string(data[16:20]) != "JSON" {
		t.Fatalf("first chunk type %q", data[16:20])
	}

	var doc struct {
		Asset struct {
			Version string `json:"version"`
		} `json:"asset"`
		Nodes []struct {
			Name string `json:"name"`
			Mesh int    `json:"mesh"`
		} `json:"nodes"`
		Meshes    []json.RawMessage `json:"meshes"`
		Accessors []struct {
			Type string `json:"type"`
		} `json:"accessors"`
		Buffers []struct {
			ByteLength int `json:"byteLength"`
		} `json:"buffers"`
	}
	if err := json.Unmarshal(data[20:20+jsonLen], &doc); err != nil {
		t.Fatalf("JSON chunk does not parse: %v", err)
	}

	if doc.Asset.Version != "2.0" {
		t.Errorf("asset version %q", doc.Asset.Version)
	}
	if len(doc.Nodes) != 2 || doc.Nodes[0].Name != "box" || doc.Nodes[1].Name != "post" {
		t.Errorf("nodes %+v", doc.Nodes)
	}
	if len(doc.Meshes) != 2 {
		t.Errorf("got %d meshes, want 2", len(doc.Meshes))
	}
	// POSITION + COLOR_0 + indices на каждый узел.
	if len(doc.Accessors) != 6 {
		t.Errorf("got %d accessors, want 6", len(doc.Accessors))
	}

	binOffset := 20 + int(jsonLen)
	binLen := binary.LittleEndian.Uint32(data[binOffset : binOffset+4])
	if string(data[binOffset+4:binOffset+7]) != "BIN" {
		t.Fatalf("second chunk type %q", data[binOffset+4:binOffset+8])
	}
	if binOffset+8+int(binLen) != len(data) {
		t.Errorf("BIN chunk length %d does not close the file", binLen)
	}

	if len(doc.Buffers) != 1 {
		t.Fatalf("got %d buffers, want 1", len(doc.Buffers))
	}
	// BIN-чанк — это буфер, добитый нулями до кратности 4.
	if padding := int(binLen) - doc.Buffers[0].ByteLength; padding < 0 || padding > 3 {
		t.Errorf("buffer byteLength %d vs BIN chunk %d", doc.Buffers[0].ByteLength, binLen)
	}
}

func TestExportGLBEmptyScene(t *testing.T) {
	if _, err := NewScene().ExportGLB(); err == nil {
		t.Error("expected error for empty scene")
	}
}

func TestExportGLBEmptyMesh(t *testing.T) {
	s := NewScene()
	s.Add("hollow", &Mesh{})
	if _, err := s.ExportGLB(); err == nil {
		t.Error("expected error for mesh without geometry")
	}
}
