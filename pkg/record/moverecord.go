// Package record journals finished moves to a JSON-lines file so a
// session can be inspected after the fact. It is a log, not a resume
// mechanism; nothing reads it back into an engine.
package record

import (
	"dotsandboxes/pkg/game"
	"dotsandboxes/pkg/grid"
)

// MoveRecord is one journal line: a move and the state right after it.
type MoveRecord struct {
	GameUid      GameUid          `json:"gameUid"`
	Step         int              `json:"step"`
	Player       game.Turn        `json:"player"`
	Kind         grid.Kind        `json:"kind"`
	Row          int              `json:"row"`
	Col          int              `json:"col"`
	BoxesClosed  []game.ClosedBox `json:"boxesClosed,omitempty"`
	Player1Score int              `json:"player1Score"`
	Player2Score int              `json:"player2Score"`
	Phase        game.Phase       `json:"phase"`
	Time         TimeStamp        `json:"time"`
}

// NewMoveRecord captures a MoveOutcome for the journal. Step counts
// from 1.
func NewMoveRecord(uid GameUid, step int, outcome game.MoveOutcome, at TimeStamp) MoveRecord {
	return MoveRecord{
		GameUid:      uid,
		Step:         step,
		Player:       outcome.Edge.By,
		Kind:         outcome.Edge.Kind,
		Row:          outcome.Edge.Row,
		Col:          outcome.Edge.Col,
		BoxesClosed:  outcome.BoxesClosed,
		Player1Score: outcome.Player1Score,
		Player2Score: outcome.Player2Score,
		Phase:        outcome.Phase,
		Time:         at,
	}
}
