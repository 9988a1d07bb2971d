// Package grid models the dot lattice a game is played on: dots, the
// edges between adjacent dots and the boxes those edges bound. Values
// are packed integers so they can key maps and compare cheaply.
package grid

import "fmt"

const (
	// MinSize is the smallest playable lattice, a single box.
	MinSize = 2

	// MaxSize keeps packed coordinates inside their bit fields.
	MaxSize = 1 << (D - 1)

	D       = 8
	dotMod  = 1 << D
	dotMask = dotMod - 1
)

// Dot is a lattice point, packed as (row << D) | col.
type Dot int

func NewDot(row, col int) Dot {
	return Dot((row << D) + col)
}

func (d Dot) Row() int {
	return int(d) >> D
}

func (d Dot) Col() int {
	return int(d) & dotMask
}

func (d Dot) String() string {
	return fmt.Sprintf("(%d, %d)", d.Row(), d.Col())
}

var dotsMap = make(map[int][]Dot)

// Dots enumerates every dot of a size×size lattice in row-major order.
// Results are memoized per size.
func Dots(size int) (dots []Dot) {
	if res, c := dotsMap[size]; c {
		return res
	}

	for i := range size {
		for j := range size {
			dots = append(dots, NewDot(i, j))
		}
	}

	dotsMap[size] = dots
	return
}
