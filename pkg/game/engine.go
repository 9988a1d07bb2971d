// Package game holds the rules engine: edge claims, box ownership,
// scoring, the extra-turn rule and win determination. The engine does
// no I/O and owns its state exclusively; rendering and input mapping
// live elsewhere.
package game

import "dotsandboxes/pkg/grid"

// ClosedBox reports a box completed by a move and its new owner.
type ClosedBox struct {
	Row   int  `json:"row"`
	Col   int  `json:"col"`
	Owner Turn `json:"owner"`
}

// ClaimedEdge reports an edge and the player who drew it.
type ClaimedEdge struct {
	Kind grid.Kind `json:"kind"`
	Row  int       `json:"row"`
	Col  int       `json:"col"`
	By   Turn      `json:"by"`
}

// MoveOutcome is the state delta of one successful move.
type MoveOutcome struct {
	Edge         ClaimedEdge `json:"edge"`
	BoxesClosed  []ClosedBox `json:"boxesClosed,omitempty"`
	Player1Score int         `json:"player1Score"`
	Player2Score int         `json:"player2Score"`
	// NextPlayer is NoPlayer once the game has finished.
	NextPlayer Turn    `json:"nextPlayer"`
	Phase      Phase   `json:"phase"`
	Outcome    Outcome `json:"outcome,omitempty"`
}

// Engine is one game session. It is not safe for concurrent use;
// callers serialize access themselves.
type Engine struct {
	size    int
	claims  map[grid.Edge]Turn
	owners  map[grid.Box]Turn
	scores  map[Turn]int
	now     Turn
	phase   Phase
	outcome Outcome
}

// New creates an engine for a size×size dot lattice in its initial
// state: nothing claimed, Player1 to move.
func New(size int) (*Engine, error) {
	if size < grid.MinSize || size > grid.MaxSize {
		return nil, ErrBoardSize
	}

	e := &Engine{size: size}
	e.Reset()
	return e, nil
}

// Reset discards all state unconditionally and returns the engine to
// the initial position. It always succeeds.
func (e *Engine) Reset() {
	e.claims = make(map[grid.Edge]Turn)
	e.owners = make(map[grid.Box]Turn)
	e.scores = map[Turn]int{Player1: 0, Player2: 0}
	e.now = Player1
	e.phase = PhasePlaying
	e.outcome = NoOutcome
}

// ApplyMove claims the addressed edge for the current player, closes
// any boxes it completes, applies the extra-turn rule and checks for
// game end. On any error the engine state is untouched.
func (e *Engine) ApplyMove(kind grid.Kind, row, col int) (MoveOutcome, error) {
	if e.phase == PhaseFinished {
		return MoveOutcome{}, ErrGameFinished
	}

	edge, err := grid.EdgeAt(e.size, kind, row, col)
	if err != nil {
		return MoveOutcome{}, err
	}

	if _, c := e.claims[edge]; c {
		return MoveOutcome{}, ErrAlreadyClaimed
	}

	mover := e.now
	e.claims[edge] = mover

	var closed []ClosedBox
	for _, box := range edge.NearBoxes(e.size) {
		if _, c := e.owners[box]; c {
			continue
		}
		if e.boxComplete(box) {
			e.owners[box] = mover
			e.scores[mover]++
			closed = append(closed, ClosedBox{Row: box.Row(), Col: box.Col(), Owner: mover})
		}
	}

	if len(closed) == 0 {
		e.now = e.now.Other()
	}

	if len(e.owners) == grid.BoxCount(e.size) {
		e.phase = PhaseFinished
		e.outcome = e.finalOutcome()
		e.now = NoPlayer
	}

	return MoveOutcome{
		Edge:         ClaimedEdge{Kind: kind, Row: row, Col: col, By: mover},
		BoxesClosed:  closed,
		Player1Score: e.scores[Player1],
		Player2Score: e.scores[Player2],
		NextPlayer:   e.now,
		Phase:        e.phase,
		Outcome:      e.outcome,
	}, nil
}

func (e *Engine) boxComplete(box grid.Box) bool {
	boxEdges := box.Edges()
	for _, edge := range boxEdges {
		if _, c := e.claims[edge]; !c {
			return false
		}
	}
	return true
}

func (e *Engine) finalOutcome() Outcome {
	switch {
	case e.scores[Player1] > e.scores[Player2]:
		return Player1Wins
	case e.scores[Player2] > e.scores[Player1]:
		return Player2Wins
	}
	return Draw
}

// Size is the dot lattice side length.
func (e *Engine) Size() int {
	return e.size
}

// CurrentPlayer is the player to move, NoPlayer once finished.
func (e *Engine) CurrentPlayer() Turn {
	return e.now
}

// Scores reports both scores.
func (e *Engine) Scores() (player1, player2 int) {
	return e.scores[Player1], e.scores[Player2]
}

// Phase is the current lifecycle phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Result is the outcome of a finished game, NoOutcome while playing.
func (e *Engine) Result() Outcome {
	return e.outcome
}

// EdgeOwner reports who claimed the edge, NoPlayer if nobody has.
func (e *Engine) EdgeOwner(edge grid.Edge) Turn {
	return e.claims[edge]
}

// BoxOwner reports who owns the box, NoPlayer if nobody does.
func (e *Engine) BoxOwner(box grid.Box) Turn {
	return e.owners[box]
}

// ClaimedCount is the number of edges drawn so far.
func (e *Engine) ClaimedCount() int {
	return len(e.claims)
}
