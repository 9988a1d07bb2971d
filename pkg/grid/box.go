package grid

import "fmt"

// Box is a unit cell, keyed by its top-left dot.
type Box Dot

func NewBox(row, col int) Box {
	return Box(NewDot(row, col))
}

func (b Box) Row() int {
	return Dot(b).Row()
}

func (b Box) Col() int {
	return Dot(b).Col()
}

func (b Box) String() string {
	return fmt.Sprintf("B(%d, %d)", b.Row(), b.Col())
}

func (b Box) Dots() [4]Dot {
	row := b.Row()
	col := b.Col()

	return [...]Dot{
		NewDot(row, col),
		NewDot(row, col+1),
		NewDot(row+1, col),
		NewDot(row+1, col+1),
	}
}

// Edges returns the four bounding edges: top, bottom, left, right.
func (b Box) Edges() [4]Edge {
	row := b.Row()
	col := b.Col()

	return [...]Edge{
		HorizontalEdge(row, col),
		HorizontalEdge(row+1, col),
		VerticalEdge(row, col),
		VerticalEdge(row, col+1),
	}
}

var boxesMap = make(map[int][]Box)

// Boxes enumerates every box of a size×size lattice. Results are
// memoized per size.
func Boxes(size int) (boxes []Box) {
	if res, c := boxesMap[size]; c {
		return res
	}

	dots := Dots(size - 1)
	for _, d := range dots {
		boxes = append(boxes, Box(d))
	}

	boxesMap[size] = boxes
	return
}

// BoxCount is the number of boxes of a size×size lattice, (size-1)².
func BoxCount(size int) int {
	return (size - 1) * (size - 1)
}
