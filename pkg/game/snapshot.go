package game

import (
	"sort"

	"dotsandboxes/pkg/grid"
)

// OwnedBox is a box and its owner in a snapshot.
type OwnedBox struct {
	Row   int  `json:"row"`
	Col   int  `json:"col"`
	Owner Turn `json:"owner"`
}

// Snapshot is a read-only copy of the whole game state, detached from
// the engine. Slices are sorted row-major so equal states marshal
// identically.
type Snapshot struct {
	Size         int           `json:"size"`
	Edges        []ClaimedEdge `json:"edges"`
	Boxes        []OwnedBox    `json:"boxes"`
	Player1Score int           `json:"player1Score"`
	Player2Score int           `json:"player2Score"`
	NextPlayer   Turn          `json:"nextPlayer"`
	Phase        Phase         `json:"phase"`
	Outcome      Outcome       `json:"outcome,omitempty"`
}

// Snapshot copies the current state. The engine keeps no references
// into the returned value.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Size:         e.size,
		Player1Score: e.scores[Player1],
		Player2Score: e.scores[Player2],
		NextPlayer:   e.now,
		Phase:        e.phase,
		Outcome:      e.outcome,
	}

	for edge, by := range e.claims {
		s.Edges = append(s.Edges, ClaimedEdge{Kind: edge.Kind(), Row: edge.Row(), Col: edge.Col(), By: by})
	}
	sort.Slice(s.Edges, func(i, j int) bool {
		a, b := s.Edges[i], s.Edges[j]
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		return a.Col < b.Col
	})

	for box, owner := range e.owners {
		s.Boxes = append(s.Boxes, OwnedBox{Row: box.Row(), Col: box.Col(), Owner: owner})
	}
	sort.Slice(s.Boxes, func(i, j int) bool {
		a, b := s.Boxes[i], s.Boxes[j]
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		return a.Col < b.Col
	})

	return s
}

// FreeEdges lists the edges nobody has claimed yet, in the stable
// order of grid.Edges.
func (e *Engine) FreeEdges() (freeEdges []grid.Edge) {
	allEdges := grid.Edges(e.size)
	for _, edge := range allEdges {
		if _, c := e.claims[edge]; !c {
			freeEdges = append(freeEdges, edge)
		}
	}
	return
}

// EdgesCountInBox counts how many of the box's four edges are claimed.
func (e *Engine) EdgesCountInBox(box grid.Box) (count int) {
	boxEdges := box.Edges()
	for _, edge := range boxEdges {
		if _, c := e.claims[edge]; c {
			count++
		}
	}
	return
}
