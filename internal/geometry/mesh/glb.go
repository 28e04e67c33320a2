package mesh

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
)

// ============================================================
// GLB Export
// ============================================================

// Контейнер glTF 2.0 Binary: 12-байтовый заголовок, JSON-чанк, BIN-чанк.
const (
	glbMagic     = 0x46546C67 // "glTF"
	glbVersion   = 2
	chunkJSON    = 0x4E4F534A // "JSON"
	chunkBIN     = 0x004E4942 // "BIN\0"
	headerLength = 12
	chunkHeader  = 8

	componentFloat = 5126
	componentUint  = 5125
	componentUbyte = 5121

	targetArrayBuffer        = 34962
	targetElementArrayBuffer = 34963
)

type gltfAsset struct {
	Version   string `json:"version"`
	Generator string `json:"generator"`
}

type gltfScene struct {
	Nodes []int `json:"nodes"`
}

type gltfNode struct {
	Name string `json:"name"`
	Mesh int    `json:"mesh"`
}

type gltfPrimitive struct {
	Attributes map[string]int `json:"attributes"`
	Indices    int            `json:"indices"`
}

type gltfMesh struct {
	Name       string          `json:"name"`
	Primitives []gltfPrimitive `json:"primitives"`
}

type gltfAccessor struct {
	BufferView    int       `json:"bufferView"`
	ComponentType int       `json:"componentType"`
	Count         int       `json:"count"`
	Type          string    `json:"type"`
	Normalized    bool      `json:"normalized,omitempty"`
	Min           []float32 `json:"min,omitempty"`
	Max           []float32 `json:"max,omitempty"`
}

type gltfBufferView struct {
	Buffer     int `json:"buffer"`
	ByteOffset int `json:"byteOffset"`
	ByteLength int `json:"byteLength"`
	Target     int `json:"target,omitempty"`
}

type gltfBuffer struct {
	ByteLength int `json:"byteLength"`
}

type gltfDocument struct {
	Asset       gltfAsset        `json:"asset"`
	Scene       int              `json:"scene"`
	Scenes      []gltfScene      `json:"scenes"`
	Nodes       []gltfNode       `json:"nodes"`
	Meshes      []gltfMesh       `json:"meshes"`
	Accessors   []gltfAccessor   `json:"accessors"`
	BufferViews []gltfBufferView `json:"bufferViews"`
	Buffers     []gltfBuffer     `json:"buffers"`
}

// ExportGLB сериализует сцену в GLB в памяти.
func (s *Scene) ExportGLB() ([]byte, error) {
	if len(s.nodes) == 0 {
		return nil, fmt.Errorf("scene is empty")
	}

	doc := gltfDocument{
		Asset:  gltfAsset{Version: "2.0", Generator: "house-planner"},
		Scene:  0,
		Scenes: []gltfScene{{Nodes: []int{}}},
	}
	bin := &bytes.Buffer{}

	for i, node := range s.nodes {
		m := node.Mesh
		if m == nil || len(m.Vertices) == 0 || len(m.Indices) == 0 {
			return nil, fmt.Errorf("node %q: empty mesh", node.Name)
		}

		posAccessor := writePositions(&doc, bin, m)
		colorAccessor := writeColors(&doc, bin, m)
		idxAccessor := writeIndices(&doc, bin, m)

		doc.Meshes = append(doc.Meshes, gltfMesh{
			Name: node.Name,
			Primitives: []gltfPrimitive{{
				Attributes: map[string]int{
					"POSITION": posAccessor,
					"COLOR_0":  colorAccessor,
				},
				Indices: idxAccessor,
			}},
		})
		doc.Nodes = append(doc.Nodes, gltfNode{Name: node.Name, Mesh: i})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, i)
	}

	doc.Buffers = []gltfBuffer{{ByteLength: bin.Len()}}

	jsonChunk, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal gltf: %w", err)
	}
	jsonChunk = pad(jsonChunk, ' ')
	binChunk := pad(bin.Bytes(), 0)

	total := headerLength + chunkHeader + len(jsonChunk) + chunkHeader + len(binChunk)

	out := &bytes.Buffer{}
	writeUint32(out, glbMagic)
	writeUint32(out, glbVersion)
	writeUint32(out, uint32(total))

	writeUint32(out, uint32(len(jsonChunk)))
	writeUint32(out, chunkJSON)
	out.Write(jsonChunk)

	writeUint32(out, uint32(len(binChunk)))
	writeUint32(out, chunkBIN)
	out.Write(binChunk)

	return out.Bytes(), nil
}

// ============================================================
// Buffer writers
// ============================================================

func writePositions(doc *gltfDocument, bin *bytes.Buffer, m *Mesh) int {
	offset := bin.Len()
	for _, v := range m.Vertices {
		writeFloat32(bin, v[0])
		writeFloat32(bin, v[1])
		writeFloat32(bin, v[2])
	}
	min, max := m.Bounds()

	doc.BufferViews = append(doc.BufferViews, gltfBufferView{
		Buffer:     0,
		ByteOffset: offset,
		ByteLength: bin.Len() - offset,
		Target:     targetArrayBuffer,
	})
	doc.Accessors = append(doc.Accessors, gltfAccessor{
		BufferView:    len(doc.BufferViews) - 1,
		ComponentType: componentFloat,
		Count:         len(m.Vertices),
		Type:          "VEC3",
		Min:           []float32{min[0], min[1], min[2]},
		Max:           []float32{max[0], max[1], max[2]},
	})
	return len(doc.Accessors) - 1
}

// Плоский цвет примитива пишется как COLOR_0 на каждую вершину.
func writeColors(doc *gltfDocument, bin *bytes.Buffer, m *Mesh) int {
	offset := bin.Len()
	for range m.Vertices {
		bin.Write(m.Color[:])
	}

	doc.BufferViews = append(doc.BufferViews, gltfBufferView{
		Buffer:     0,
		ByteOffset: offset,
		ByteLength: bin.Len() - offset,
		Target:     targetArrayBuffer,
	})
	doc.Accessors = append(doc.Accessors, gltfAccessor{
		BufferView:    len(doc.BufferViews) - 1,
		ComponentType: componentUbyte,
		Count:         len(m.Vertices),
		Type:          "VEC4",
		Normalized:    true,
	})
	return len(doc.Accessors) - 1
}

func writeIndices(doc *gltfDocument, bin *bytes.Buffer, m *Mesh) int {
	offset := bin.Len()
	for _, idx := range m.Indices {
		writeUint32(bin, idx)
	}

	doc.BufferViews = append(doc.BufferViews, gltfBufferView{
		Buffer:     0,
		ByteOffset: offset,
		ByteLength: bin.Len() - offset,
		Target:     targetElementArrayBuffer,
	})
	doc.Accessors = append(doc.Accessors, gltfAccessor{
		BufferView:    len(doc.BufferViews) - 1,
		ComponentType: componentUint,
		Count:         len(m.Indices),
		Type:          "SCALAR",
	})
	return len(doc.Accessors) - 1
}

// ============================================================
// Low-level helpers
// ============================================================

func pad(data []byte, filler byte) []byte {
	for len(data)%4 != 0 {
		data = append(data, filler)
	}
	return data
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func writeFloat32(buf *bytes.Buffer, v float32) {
	writeUint32(buf, math.Float32bits(v))
}
