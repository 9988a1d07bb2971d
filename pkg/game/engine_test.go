package game_test

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"

	"dotsandboxes/pkg/game"
	"dotsandboxes/pkg/grid"
)

func mustMove(t *testing.T, e *game.Engine, kind grid.Kind, row, col int) game.MoveOutcome {
	t.Helper()
	outcome, err := e.ApplyMove(kind, row, col)
	require.NoError(t, err)
	return outcome
}

func ownedBoxes(e *game.Engine) (count int) {
	for _, box := range grid.Boxes(e.Size()) {
		if e.BoxOwner(box) != game.NoPlayer {
			count++
		}
	}
	return
}

func TestNewRejectsTinyBoards(t *testing.T) {
	for _, size := range []int{-1, 0, 1} {
		_, err := game.New(size)
		require.ErrorIs(t, err, game.ErrBoardSize)
	}
}

func TestInitialState(t *testing.T) {
	e, err := game.New(5)
	require.NoError(t, err)

	require.Equal(t, game.Player1, e.CurrentPlayer())
	require.Equal(t, game.PhasePlaying, e.Phase())
	player1Score, player2Score := e.Scores()
	require.Zero(t, player1Score)
	require.Zero(t, player2Score)
	require.Zero(t, e.ClaimedCount())
	require.Len(t, e.FreeEdges(), grid.EdgeCount(5))
}

func TestApplyMoveErrors(t *testing.T) {
	e, err := game.New(5)
	require.NoError(t, err)

	_, err = e.ApplyMove(grid.Horizontal, 0, 4)
	require.ErrorIs(t, err, game.ErrOutOfBounds)
	_, err = e.ApplyMove(grid.Vertical, 4, 0)
	require.ErrorIs(t, err, game.ErrOutOfBounds)

	mustMove(t, e, grid.Horizontal, 0, 0)
	_, err = e.ApplyMove(grid.Horizontal, 0, 0)
	require.ErrorIs(t, err, game.ErrAlreadyClaimed)
}

// Claiming an already-claimed edge must leave the whole state
// byte-for-byte unchanged.
func TestAlreadyClaimedLeavesStateUntouched(t *testing.T) {
	e, err := game.New(5)
	require.NoError(t, err)
	mustMove(t, e, grid.Horizontal, 0, 0)
	mustMove(t, e, grid.Vertical, 2, 2)

	before, err := sonic.Marshal(e.Snapshot())
	require.NoError(t, err)

	_, err = e.ApplyMove(grid.Horizontal, 0, 0)
	require.ErrorIs(t, err, game.ErrAlreadyClaimed)

	after, err := sonic.Marshal(e.Snapshot())
	require.NoError(t, err)
	require.Equal(t, before, after)
}

// Four edges of box (0,0) in sequence H(0,0), H(1,0), V(0,0), V(0,1)
// under alternating turns. The fourth mover owns the box and keeps the
// turn.
func TestSingleBoxCapture(t *testing.T) {
	e, err := game.New(5)
	require.NoError(t, err)

	o := mustMove(t, e, grid.Horizontal, 0, 0)
	require.Empty(t, o.BoxesClosed)
	require.Equal(t, game.Player2, o.NextPlayer)

	o = mustMove(t, e, grid.Horizontal, 1, 0)
	require.Empty(t, o.BoxesClosed)
	require.Equal(t, game.Player1, o.NextPlayer)

	o = mustMove(t, e, grid.Vertical, 0, 0)
	require.Empty(t, o.BoxesClosed)
	require.Equal(t, game.Player2, o.NextPlayer)

	o = mustMove(t, e, grid.Vertical, 0, 1)
	require.Equal(t, []game.ClosedBox{{Row: 0, Col: 0, Owner: game.Player2}}, o.BoxesClosed)
	require.Equal(t, game.Player2, o.NextPlayer, "closing a box keeps the turn")
	require.Equal(t, 1, o.Player2Score)
	require.Equal(t, 0, o.Player1Score)
	require.Equal(t, game.Player2, e.BoxOwner(grid.NewBox(0, 0)))
}

// Two boxes sharing V(0,1): drawing the shared edge last closes both
// in one move.
func TestSharedEdgeClosesBothBoxes(t *testing.T) {
	e, err := game.New(5)
	require.NoError(t, err)

	mustMove(t, e, grid.Horizontal, 0, 0) // P1
	mustMove(t, e, grid.Horizontal, 1, 0) // P2
	mustMove(t, e, grid.Vertical, 0, 0)   // P1
	mustMove(t, e, grid.Horizontal, 0, 1) // P2
	mustMove(t, e, grid.Horizontal, 1, 1) // P1
	mustMove(t, e, grid.Vertical, 0, 2)   // P2

	require.Equal(t, game.Player1, e.CurrentPlayer())
	o := mustMove(t, e, grid.Vertical, 0, 1)
	require.Len(t, o.BoxesClosed, 2)
	require.Equal(t, 2, o.Player1Score)
	require.Equal(t, game.Player1, o.NextPlayer)
	require.Equal(t, game.Player1, e.BoxOwner(grid.NewBox(0, 0)))
	require.Equal(t, game.Player1, e.BoxOwner(grid.NewBox(0, 1)))
}

// Smallest board: one box, four edges. The fourth move wins outright;
// a draw is impossible with a single box.
func TestTwoByTwoGame(t *testing.T) {
	e, err := game.New(2)
	require.NoError(t, err)

	mustMove(t, e, grid.Horizontal, 0, 0) // P1
	mustMove(t, e, grid.Horizontal, 1, 0) // P2
	mustMove(t, e, grid.Vertical, 0, 0)   // P1
	o := mustMove(t, e, grid.Vertical, 0, 1)

	require.Equal(t, game.PhaseFinished, o.Phase)
	require.Equal(t, game.Player2Wins, o.Outcome)
	require.Equal(t, game.NoPlayer, o.NextPlayer)
	require.Equal(t, 1, o.Player2Score)
	require.NotEqual(t, game.Draw, o.Outcome)
}

func TestFinishedIsTerminal(t *testing.T) {
	e, err := game.New(2)
	require.NoError(t, err)
	for _, edge := range grid.Edges(2) {
		mustMove(t, e, edge.Kind(), edge.Row(), edge.Col())
	}
	require.Equal(t, game.PhaseFinished, e.Phase())

	before, err := sonic.Marshal(e.Snapshot())
	require.NoError(t, err)

	_, err = e.ApplyMove(grid.Horizontal, 0, 0)
	require.ErrorIs(t, err, game.ErrGameFinished)
	// The finished check runs before coordinate validation.
	_, err = e.ApplyMove(grid.Horizontal, 99, 99)
	require.ErrorIs(t, err, game.ErrGameFinished)

	after, err := sonic.Marshal(e.Snapshot())
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestResetRestoresInitialState(t *testing.T) {
	e, err := game.New(3)
	require.NoError(t, err)
	for _, edge := range grid.Edges(3) {
		mustMove(t, e, edge.Kind(), edge.Row(), edge.Col())
	}
	require.Equal(t, game.PhaseFinished, e.Phase())

	e.Reset()
	require.Equal(t, game.PhasePlaying, e.Phase())
	require.Equal(t, game.Player1, e.CurrentPlayer())
	require.Equal(t, game.NoOutcome, e.Result())
	require.Zero(t, e.ClaimedCount())
	require.Zero(t, ownedBoxes(e))

	fresh, err := game.New(3)
	require.NoError(t, err)
	require.Equal(t, fresh.Snapshot(), e.Snapshot())
}

// Playing every edge in enumeration order must keep all invariants
// after every single move: claims are monotone, the score sum tracks
// owned boxes, a move closes at most two boxes, the turn flips exactly
// when nothing closed, and the game finishes exactly on the last box.
func TestFullGameInvariants(t *testing.T) {
	const size = 5
	e, err := game.New(size)
	require.NoError(t, err)

	claimed := 0
	for _, edge := range grid.Edges(size) {
		mover := e.CurrentPlayer()
		o := mustMove(t, e, edge.Kind(), edge.Row(), edge.Col())

		claimed++
		require.Equal(t, claimed, e.ClaimedCount())
		require.Equal(t, mover, e.EdgeOwner(edge), "claims never revert")
		require.LessOrEqual(t, len(o.BoxesClosed), 2)

		player1Score, player2Score := e.Scores()
		require.Equal(t, ownedBoxes(e), player1Score+player2Score)

		if o.Phase == game.PhasePlaying {
			if len(o.BoxesClosed) == 0 {
				require.Equal(t, mover.Other(), o.NextPlayer)
			} else {
				require.Equal(t, mover, o.NextPlayer)
			}
			require.Less(t, ownedBoxes(e), grid.BoxCount(size))
		} else {
			require.Equal(t, grid.BoxCount(size), ownedBoxes(e))
		}
	}

	require.Equal(t, game.PhaseFinished, e.Phase())
	require.NotEqual(t, game.NoOutcome, e.Result())
}

func TestSnapshotIsDetached(t *testing.T) {
	e, err := game.New(3)
	require.NoError(t, err)
	mustMove(t, e, grid.Horizontal, 0, 0)

	s := e.Snapshot()
	require.Len(t, s.Edges, 1)
	s.Edges[0].By = game.Player2
	require.Equal(t, game.Player1, e.EdgeOwner(grid.HorizontalEdge(0, 0)))

	mustMove(t, e, grid.Vertical, 0, 0)
	require.Len(t, s.Edges, 1, "snapshot does not track the engine")
}
