package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"dotsandboxes/pkg/grid"
)

func TestDotRoundTrip(t *testing.T) {
	for row := 0; row < 6; row++ {
		for col := 0; col < 6; col++ {
			d := grid.NewDot(row, col)
			require.Equal(t, row, d.Row())
			require.Equal(t, col, d.Col())
		}
	}
}

func TestNewEdgeNormalizesDotOrder(t *testing.T) {
	d1 := grid.NewDot(1, 2)
	d2 := grid.NewDot(1, 3)
	require.Equal(t, grid.NewEdge(d1, d2), grid.NewEdge(d2, d1))
	require.Equal(t, d1, grid.NewEdge(d2, d1).Dot1())
}

func TestEdgeKindRowCol(t *testing.T) {
	h := grid.HorizontalEdge(2, 1)
	require.Equal(t, grid.Horizontal, h.Kind())
	require.Equal(t, 2, h.Row())
	require.Equal(t, 1, h.Col())

	v := grid.VerticalEdge(0, 4)
	require.Equal(t, grid.Vertical, v.Kind())
	require.Equal(t, 0, v.Row())
	require.Equal(t, 4, v.Col())
}

func TestEdgeAtBounds(t *testing.T) {
	const size = 5
	cases := []struct {
		name     string
		kind     grid.Kind
		row, col int
		ok       bool
	}{
		{"HTopLeft", grid.Horizontal, 0, 0, true},
		{"HBottomRight", grid.Horizontal, 4, 3, true},
		{"HColTooBig", grid.Horizontal, 0, 4, false},
		{"HRowTooBig", grid.Horizontal, 5, 0, false},
		{"HNegativeRow", grid.Horizontal, -1, 0, false},
		{"VTopLeft", grid.Vertical, 0, 0, true},
		{"VBottomRight", grid.Vertical, 3, 4, true},
		{"VRowTooBig", grid.Vertical, 4, 0, false},
		{"VColTooBig", grid.Vertical, 0, 5, false},
		{"VNegativeCol", grid.Vertical, 0, -1, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := grid.EdgeAt(size, tc.kind, tc.row, tc.col)
			if !tc.ok {
				require.True(t, errors.Is(err, grid.ErrOutOfBounds), "got %v", err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.kind, e.Kind())
			require.Equal(t, tc.row, e.Row())
			require.Equal(t, tc.col, e.Col())
		})
	}
}

func TestNearBoxes(t *testing.T) {
	const size = 5
	cases := []struct {
		name string
		edge grid.Edge
		want []grid.Box
	}{
		{"HTopBoundary", grid.HorizontalEdge(0, 0), []grid.Box{grid.NewBox(0, 0)}},
		{"HInterior", grid.HorizontalEdge(2, 1), []grid.Box{grid.NewBox(1, 1), grid.NewBox(2, 1)}},
		{"HBottomBoundary", grid.HorizontalEdge(4, 0), []grid.Box{grid.NewBox(3, 0)}},
		{"VLeftBoundary", grid.VerticalEdge(0, 0), []grid.Box{grid.NewBox(0, 0)}},
		{"VInterior", grid.VerticalEdge(1, 2), []grid.Box{grid.NewBox(1, 1), grid.NewBox(1, 2)}},
		{"VRightBoundary", grid.VerticalEdge(1, 4), []grid.Box{grid.NewBox(1, 3)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.edge.NearBoxes(size))
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := grid.NewBox(1, 2)
	require.Equal(t, [4]grid.Edge{
		grid.HorizontalEdge(1, 2),
		grid.HorizontalEdge(2, 2),
		grid.VerticalEdge(1, 2),
		grid.VerticalEdge(1, 3),
	}, b.Edges())
}

// Every edge of a lattice must bound at least one box, and every box
// must be bounded by exactly the edges that name it in NearBoxes.
func TestNearBoxesMatchesBoxEdges(t *testing.T) {
	const size = 4
	for _, e := range grid.Edges(size) {
		near := e.NearBoxes(size)
		require.NotEmpty(t, near, "edge %s bounds no box", e)
		require.LessOrEqual(t, len(near), 2)
		for _, b := range near {
			require.Contains(t, b.Edges(), e, "edge %s not on box %s", e, b)
		}
	}
}

func TestEnumerationCounts(t *testing.T) {
	for size := 2; size <= 6; size++ {
		require.Len(t, grid.Dots(size), size*size)
		require.Len(t, grid.Edges(size), grid.EdgeCount(size))
		require.Len(t, grid.Boxes(size), grid.BoxCount(size))
	}
	require.Equal(t, 40, grid.EdgeCount(5))
	require.Equal(t, 16, grid.BoxCount(5))
}
