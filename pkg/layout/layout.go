// Package layout maps lattice coordinates to pixels and pointer
// positions back to candidate edges. It is purely geometric and knows
// nothing about the rules.
package layout

import "dotsandboxes/pkg/grid"

const (
	DefaultDotDistance = float32(75)

	// Dot width and board margin track the dot spacing.
	widthRatio  = float32(1) / 5
	marginRatio = float32(2) / 3
)

// Point is a pixel position.
type Point struct {
	X, Y float32
}

// Rect is a pixel rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float32
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Layout places a size×size dot lattice on a canvas. Columns grow
// along X, rows along Y.
type Layout struct {
	Size        int
	DotDistance float32
	DotWidth    float32
	Margin      float32
}

// NewLayout builds the default layout for a lattice.
func NewLayout(size int) Layout {
	return NewLayoutWithDistance(size, DefaultDotDistance)
}

// NewLayoutWithDistance builds a layout with an explicit dot spacing;
// dot size and margin keep their usual proportions. Used when the
// viewport is resized.
func NewLayoutWithDistance(size int, dotDistance float32) Layout {
	return Layout{
		Size:        size,
		DotDistance: dotDistance,
		DotWidth:    dotDistance * widthRatio,
		Margin:      dotDistance * marginRatio,
	}
}

// Span is the board's total pixel side length.
func (l Layout) Span() float32 {
	return l.DotDistance*float32(l.Size-1) + 2*l.Margin + l.DotWidth
}

// DistanceForSpan inverts Span: the dot spacing that makes a size×size
// board fill span pixels. Used to refit the board to the viewport.
func DistanceForSpan(size int, span float32) float32 {
	return span / (float32(size-1) + 2*marginRatio + widthRatio)
}

func (l Layout) trans(i int) float32 {
	return l.Margin + float32(i)*l.DotDistance
}

// DotPosition is the top-left corner of the dot's bounding square.
func (l Layout) DotPosition(d grid.Dot) Point {
	return Point{X: l.trans(d.Col()), Y: l.trans(d.Row())}
}

func (l Layout) dotCenter(row, col int) Point {
	return Point{
		X: l.trans(col) + l.DotWidth/2,
		Y: l.trans(row) + l.DotWidth/2,
	}
}

// EdgeSegment is the edge's line segment between its two dot centers.
func (l Layout) EdgeSegment(e grid.Edge) (p1, p2 Point) {
	d1, d2 := e.Dot1(), e.Dot2()
	return l.dotCenter(d1.Row(), d1.Col()), l.dotCenter(d2.Row(), d2.Col())
}

// EdgeRect is the tolerance band around an edge: DotDistance long,
// DotWidth across, centered on the segment.
func (l Layout) EdgeRect(e grid.Edge) Rect {
	p1, p2 := l.EdgeSegment(e)
	cx := (p1.X + p2.X) / 2
	cy := (p1.Y + p2.Y) / 2

	w, h := l.DotDistance, l.DotWidth
	if e.Kind() == grid.Vertical {
		w, h = h, w
	}
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// BoxRect is the fillable interior of a box.
func (l Layout) BoxRect(b grid.Box) Rect {
	side := l.DotDistance - l.DotWidth
	return Rect{
		X: l.trans(b.Col()) + l.DotWidth,
		Y: l.trans(b.Row()) + l.DotWidth,
		W: side,
		H: side,
	}
}

// HitTest maps a pointer position to the edge whose tolerance band
// contains it. The second result is false on a miss. Bands are tested
// in the stable order of grid.Edges; near the dots, where bands of a
// horizontal and a vertical edge overlap, the first match wins.
func (l Layout) HitTest(p Point) (grid.Edge, bool) {
	allEdges := grid.Edges(l.Size)
	for _, e := range allEdges {
		if l.EdgeRect(e).Contains(p) {
			return e, true
		}
	}
	return 0, false
}
