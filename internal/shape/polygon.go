package shape

// MaxVertices bounds the vertex buffer of an interactive polygon.
const MaxVertices = 10000

// Polygon is a closed chain of straight segments built one vertex at a time.
//
// While building, verts[count] holds the tentative vertex that follows the
// pointer. It starts out equal to the first vertex.
type Polygon struct {
	Bounded
	verts    []Point
	count    int
	capacity int
}

// NewPolygon creates an incomplete polygon whose first vertex is start.
// A capacity of zero or less selects MaxVertices.
func NewPolygon(start Point, st Style, capacity int) *Polygon {
	if capacity <= 0 {
		capacity = MaxVertices
	}
	p := &Polygon{Bounded: newBounded(start, start, st), capacity: capacity}
	first := p.p1
	p.verts = []Point{first, first}
	p.count = 1
	return p
}

func (p *Polygon) Kind() Kind { return KindPolygon }

// VertexCount is the number of confirmed vertices.
func (p *Polygon) VertexCount() int { return p.count }

// Vertices returns a copy of the confirmed vertices.
func (p *Polygon) Vertices() []Point {
	return append([]Point(nil), p.verts[:p.count]...)
}

// FirstVertex is the point the polygon was started at.
func (p *Polygon) FirstVertex() Point { return p.verts[0] }

// Tentative returns the unconfirmed trailing vertex, if any.
func (p *Polygon) Tentative() (Point, bool) {
	if p.completed || p.count >= len(p.verts) {
		return Point{}, false
	}
	return p.verts[p.count], true
}

// SetTentative moves the trailing vertex to (x, y) without confirming it. It
// reports false when the polygon is complete or its buffer is exhausted.
func (p *Polygon) SetTentative(x, y int) bool {
	if p.completed || p.count >= p.capacity-2 {
		return false
	}
	p.verts[p.count] = Point{clampCoord(x), clampCoord(y)}
	p.SetP2(x, y)
	return true
}

// AddVertex confirms (x, y) as the next vertex. When the point cannot be
// taken the polygon is completed instead.
func (p *Polygon) AddVertex(x, y int) {
	if p.SetTentative(x, y) {
		p.count++
		p.verts = append(p.verts, p.verts[0])
		return
	}
	if !p.completed {
		p.Complete()
	}
}

// Complete trims the vertex buffer and points the gradient axis at the last
// vertex (three or fewer) or the one before it.
func (p *Polygon) Complete() {
	p.completed = true
	p.verts = append([]Point(nil), p.verts[:p.count]...)
	last := p.verts[p.count-1]
	if p.count > 3 {
		last = p.verts[p.count-2]
	}
	p.SetP2(last.X, last.Y)
}

func (p *Polygon) Render(s Surface) {
	p.setup(s)
	if !p.completed {
		s.StrokePath(p.verts[:p.count+1], false)
		return
	}
	if p.filled {
		s.FillPath(p.verts)
	}
	s.StrokePath(p.verts, true)
}
