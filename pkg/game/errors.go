package game

import (
	"errors"

	"dotsandboxes/pkg/grid"
)

var (
	// ErrBoardSize reports a lattice too small to hold a box.
	ErrBoardSize = errors.New("game: board size must be at least 2")

	// ErrOutOfBounds reports move coordinates outside the lattice.
	// It aliases the grid sentinel so either can be matched.
	ErrOutOfBounds = grid.ErrOutOfBounds

	// ErrAlreadyClaimed reports a move on an edge some player already drew.
	ErrAlreadyClaimed = errors.New("game: edge already claimed")

	// ErrGameFinished reports a move after the game ended.
	ErrGameFinished = errors.New("game: game already finished")
)
