package game

// Turn identifies a player. NoPlayer marks unfinished positions in
// outcomes, never a claim.
type Turn int8

const (
	NoPlayer Turn = 0
	Player1  Turn = 1
	Player2  Turn = -1
)

func (t Turn) String() string {
	switch t {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	}
	return ""
}

// Other is the opposing player.
func (t Turn) Other() Turn {
	return -t
}

// Phase is the game lifecycle state. PhaseFinished is terminal; only
// Reset leaves it.
type Phase int8

const (
	PhasePlaying Phase = iota
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseFinished:
		return "finished"
	}
	return ""
}

// Outcome is the final result of a finished game.
type Outcome int8

const (
	NoOutcome Outcome = iota
	Player1Wins
	Player2Wins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Player1Wins:
		return "Player1 wins!"
	case Player2Wins:
		return "Player2 wins!"
	case Draw:
		return "Draw!"
	}
	return ""
}
