package mesh

import "math"

// ============================================================
// Mesh
// ============================================================

const cylinderSegments = 32

// Mesh — индексированная сетка с одним плоским цветом на весь примитив.
type Mesh struct {
	Vertices [][3]float32
	Indices  []uint32
	Color    [4]uint8
}

// Translate сдвигает все вершины на (x, y, z).
func (m *Mesh) Translate(x, y, z float64) *Mesh {
	for i := range m.Vertices {
		m.Vertices[i][0] += float32(x)
		m.Vertices[i][1] += float32(y)
		m.Vertices[i][2] += float32(z)
	}
	return m
}

func (m *Mesh) SetColor(c [4]uint8) *Mesh {
	m.Color = c
	return m
}

// Bounds возвращает min/max по каждой оси.
func (m *Mesh) Bounds() (min, max [3]float32) {
	if len(m.Vertices) == 0 {
		return min, max
	}
	min = m.Vertices[0]
	max = m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		for a := 0; a < 3; a++ {
			if v[a] < min[a] {
				min[a] = v[a]
			}
			if v[a] > max[a] {
				max[a] = v[a]
			}
		}
	}
	return min, max
}

// ============================================================
// Primitives
// ============================================================

// Box строит параллелепипед с габаритами (w, d, h), центр в начале координат.
func Box(w, d, h float64) *Mesh {
	hw := float32(w / 2)
	hd := float32(d / 2)
	hh := float32(h / 2)

	vertices := [][3]float32{
		{-hw, -hd, -hh},
		{hw, -hd, -hh},
		{hw, hd, -hh},
		{-hw, hd, -hh},
		{-hw, -hd, hh},
		{hw, -hd, hh},
		{hw, hd, hh},
		{-hw, hd, hh},
	}
	indices := []uint32{
		0, 2, 1, 0, 3, 2, // низ
		4, 5, 6, 4, 6, 7, // верх
		0, 1, 5, 0, 5, 4,
		1, 2, 6, 1, 6, 5,
		2, 3, 7, 2, 7, 6,
		3, 0, 4, 3, 4, 7,
	}
	return &Mesh{Vertices: vertices, Indices: indices}
}

// Cylinder строит цилиндр вдоль оси Z, центр в начале координат.
func Cylinder(radius, height float64) *Mesh {
	n := cylinderSegments
	hh := float32(height / 2)
	r := float32(radius)

	m := &Mesh{}
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		x := r * float32(math.Cos(a))
		y := r * float32(math.Sin(a))
		m.Vertices = append(m.Vertices, [3]float32{x, y, -hh}, [3]float32{x, y, hh})
	}
	bottomCenter := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, [3]float32{0, 0, -hh})
	topCenter := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, [3]float32{0, 0, hh})

	for i := 0; i < n; i++ {
		b0 := uint32(2 * i)
		t0 := b0 + 1
		b1 := uint32(2 * ((i + 1) % n))
		t1 := b1 + 1

		m.Indices = append(m.Indices,
			b0, b1, t1,
			b0, t1, t0,
			bottomCenter, b1, b0,
			topCenter, t0, t1,
		)
	}
	return m
}

// Cone строит конус: основание в плоскости z=0, вершина в (0, 0, height).
func Cone(radius, height float64) *Mesh {
	n := cylinderSegments
	r := float32(radius)

	m := &Mesh{}
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		m.Vertices = append(m.Vertices, [3]float32{r * float32(math.Cos(a)), r * float32(math.Sin(a)), 0})
	}
	apex := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, [3]float32{0, 0, float32(height)})
	baseCenter := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, [3]float32{0, 0, 0})

	for i := 0; i < n; i++ {
		v0 := uint32(i)
		v1 := uint32((i + 1) % n)
		m.Indices = append(m.Indices,
			v0, v1, apex,
			baseCenter, v1, v0,
		)
	}
	return m
}

// ============================================================
// Scene
// ============================================================

type Node struct {
	Name string
	Mesh *Mesh
}

// Scene — упорядоченный набор именованных узлов. Только добавление.
type Scene struct {
	nodes []Node
}

func NewScene() *Scene {
	return &Scene{}
}

func (s *Scene) Add(name string, m *Mesh) {
	s.nodes = append(s.nodes, Node{Name: name, Mesh: m})
}

func (s *Scene) Nodes() []Node {
	return s.nodes
}

func (s *Scene) Len() int {
	return len(s.nodes)
}

// Names возвращает имена узлов в порядке добавления.
func (s *Scene) Names() []string {
	out := make([]string, 0, len(s.nodes))
	for _, n := range s.nodes {
		out = append(out, n.Name)
	}
	return out
}

// Find возвращает первый узел с данным именем.
func (s *Scene) Find(name string) (Node, bool) {
	for _, n := range s.nodes {
		if n.Name == name {
			return n, true
		}
	}
	return Node{}, false
}
