// Command selfplay grinds out complete games against the engine and
// checks its invariants after every move. It exists to shake the rules
// engine, not to provide an opponent.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/schollz/progressbar/v3"

	"dotsandboxes/pkg/game"
	"dotsandboxes/pkg/grid"
)

var (
	games = flag.Int("games", 1000, "number of games to play")
	size  = flag.Int("size", 5, "board size in dots")
	seed  = flag.Int64("seed", 1, "policy shuffle seed")
)

func newBar(length int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(length,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        aurora.Yellow("█").String(),
			SaucerHead:    aurora.Yellow("█").String(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	)
}

func ownedBoxes(e *game.Engine) (count int) {
	for _, box := range grid.Boxes(e.Size()) {
		if e.BoxOwner(box) != game.NoPlayer {
			count++
		}
	}
	return
}

// checkMove verifies the per-move rules: scores match owned boxes, at
// most two boxes close at once, the extra-turn rule, and that the game
// finishes exactly when the board fills.
func checkMove(e *game.Engine, mover game.Turn, outcome game.MoveOutcome) error {
	player1Score, player2Score := e.Scores()
	if owned := ownedBoxes(e); player1Score+player2Score != owned {
		return fmt.Errorf("score sum %d != owned boxes %d", player1Score+player2Score, owned)
	}

	if len(outcome.BoxesClosed) > 2 {
		return fmt.Errorf("move closed %d boxes", len(outcome.BoxesClosed))
	}

	if outcome.Phase == game.PhasePlaying {
		want := mover
		if len(outcome.BoxesClosed) == 0 {
			want = mover.Other()
		}
		if outcome.NextPlayer != want {
			return fmt.Errorf("next player %s, want %s after closing %d boxes",
				outcome.NextPlayer, want, len(outcome.BoxesClosed))
		}
	}

	full := ownedBoxes(e) == grid.BoxCount(e.Size())
	if full != (outcome.Phase == game.PhaseFinished) {
		return fmt.Errorf("phase %s with %d/%d boxes owned", outcome.Phase, ownedBoxes(e), grid.BoxCount(e.Size()))
	}

	return nil
}

func playGame(boardSize int, rng *rand.Rand) (game.Outcome, error) {
	e, err := game.New(boardSize)
	if err != nil {
		return game.NoOutcome, err
	}

	for e.Phase() == game.PhasePlaying {
		mover := e.CurrentPlayer()
		edge := nextEdge(e, rng)
		outcome, err := e.ApplyMove(edge.Kind(), edge.Row(), edge.Col())
		if err != nil {
			return game.NoOutcome, fmt.Errorf("move %s: %w", edge, err)
		}
		if err := checkMove(e, mover, outcome); err != nil {
			return game.NoOutcome, fmt.Errorf("after move %s: %w", edge, err)
		}
	}

	if e.ClaimedCount() != grid.EdgeCount(boardSize) {
		return game.NoOutcome, fmt.Errorf("finished with %d of %d edges claimed", e.ClaimedCount(), grid.EdgeCount(boardSize))
	}

	return e.Result(), nil
}

func main() {
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	bar := newBar(*games, fmt.Sprintf("selfplay %dx%d", *size, *size))
	tally := make(map[game.Outcome]int)

	for i := 0; i < *games; i++ {
		outcome, err := playGame(*size, rng)
		if err != nil {
			fmt.Println()
			fmt.Println(aurora.Red(fmt.Sprintf("game %d: %v", i+1, err)))
			os.Exit(1)
		}
		tally[outcome]++
		bar.Add(1)
	}

	fmt.Println()
	fmt.Println(aurora.Blue(fmt.Sprintf("Player1 wins: %d", tally[game.Player1Wins])))
	fmt.Println(aurora.Red(fmt.Sprintf("Player2 wins: %d", tally[game.Player2Wins])))
	fmt.Println(aurora.Yellow(fmt.Sprintf("Draws:        %d", tally[game.Draw])))
	fmt.Println(aurora.Green("all invariants held"))
}
