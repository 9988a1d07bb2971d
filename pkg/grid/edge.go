package grid

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds reports edge coordinates outside the lattice.
var ErrOutOfBounds = errors.New("grid: edge coordinates out of bounds")

// Kind distinguishes the two edge orientations.
type Kind int8

const (
	Horizontal Kind = iota
	Vertical
)

func (k Kind) String() string {
	switch k {
	case Horizontal:
		return "H"
	case Vertical:
		return "V"
	}
	return ""
}

const (
	E        = D << 1
	edgeMod  = 1 << E
	edgeMask = edgeMod - 1
)

// Edge joins two adjacent dots, packed as (dot1 << E) | dot2 with
// dot1 < dot2 so construction order does not matter.
type Edge int

func NewEdge(dot1, dot2 Dot) Edge {
	if dot1 > dot2 {
		dot1, dot2 = dot2, dot1
	}
	return Edge((dot1 << E) + dot2)
}

// HorizontalEdge is the edge from dot (row, col) to (row, col+1).
func HorizontalEdge(row, col int) Edge {
	return NewEdge(NewDot(row, col), NewDot(row, col+1))
}

// VerticalEdge is the edge from dot (row, col) to (row+1, col).
func VerticalEdge(row, col int) Edge {
	return NewEdge(NewDot(row, col), NewDot(row+1, col))
}

// EdgeAt resolves (kind, row, col) addressing against a size×size
// lattice. Horizontal edges live at rows 0..size-1, cols 0..size-2;
// vertical edges at rows 0..size-2, cols 0..size-1.
func EdgeAt(size int, kind Kind, row, col int) (Edge, error) {
	switch kind {
	case Horizontal:
		if row < 0 || row >= size || col < 0 || col >= size-1 {
			return 0, fmt.Errorf("%w: H(%d, %d) on size %d", ErrOutOfBounds, row, col, size)
		}
		return HorizontalEdge(row, col), nil
	case Vertical:
		if row < 0 || row >= size-1 || col < 0 || col >= size {
			return 0, fmt.Errorf("%w: V(%d, %d) on size %d", ErrOutOfBounds, row, col, size)
		}
		return VerticalEdge(row, col), nil
	}
	return 0, fmt.Errorf("%w: unknown edge kind %d", ErrOutOfBounds, kind)
}

func (e Edge) Dot1() Dot {
	return Dot(e) >> E
}

func (e Edge) Dot2() Dot {
	return Dot(e) & edgeMask
}

// Kind reports the edge orientation. The packed order guarantees Dot1
// is the top/left endpoint.
func (e Edge) Kind() Kind {
	if e.Dot1().Row() == e.Dot2().Row() {
		return Horizontal
	}
	return Vertical
}

// Row is the row of the edge's top/left endpoint.
func (e Edge) Row() int {
	return e.Dot1().Row()
}

// Col is the column of the edge's top/left endpoint.
func (e Edge) Col() int {
	return e.Dot1().Col()
}

func (e Edge) String() string {
	return fmt.Sprintf("%s(%d, %d)", e.Kind(), e.Row(), e.Col())
}

// NearBoxes lists the boxes bounded by e, at most two. Both sides are
// always reported when inside the lattice; neither ever suppresses the
// other.
func (e Edge) NearBoxes(size int) (nearBoxes []Box) {
	row, col := e.Row(), e.Col()
	switch e.Kind() {
	case Horizontal:
		if row > 0 {
			nearBoxes = append(nearBoxes, NewBox(row-1, col))
		}
		if row < size-1 {
			nearBoxes = append(nearBoxes, NewBox(row, col))
		}
	case Vertical:
		if col > 0 {
			nearBoxes = append(nearBoxes, NewBox(row, col-1))
		}
		if col < size-1 {
			nearBoxes = append(nearBoxes, NewBox(row, col))
		}
	}
	return
}

var edgesMap = make(map[int][]Edge)

// Edges enumerates every edge of a size×size lattice. Results are
// memoized per size.
func Edges(size int) (edges []Edge) {
	if res, c := edgesMap[size]; c {
		return res
	}

	for i := range size {
		for j := range size {
			d := NewDot(i, j)
			if i+1 < size {
				edges = append(edges, NewEdge(d, NewDot(i+1, j)))
			}

			if j+1 < size {
				edges = append(edges, NewEdge(d, NewDot(i, j+1)))
			}
		}
	}

	edgesMap[size] = edges
	return
}

// EdgeCount is the number of edges of a size×size lattice, 2·size·(size-1).
func EdgeCount(size int) int {
	return 2 * size * (size - 1)
}
