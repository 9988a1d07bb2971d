package main

import (
	"math/rand"

	"dotsandboxes/pkg/game"
	"dotsandboxes/pkg/grid"
)

// nextEdge picks the move a cautious greedy player makes: take any box
// that can be completed now, otherwise prefer an edge that hands the
// opponent as few 3-sided boxes as possible.
func nextEdge(e *game.Engine, rng *rand.Rand) grid.Edge {
	freeEdges := e.FreeEdges()
	rng.Shuffle(len(freeEdges), func(i, j int) {
		freeEdges[i], freeEdges[j] = freeEdges[j], freeEdges[i]
	})

	size := e.Size()
	bestEdge := freeEdges[0]
	enemyMinScore := 3
	for _, edge := range freeEdges {
		enemyScore := 0
		for _, box := range edge.NearBoxes(size) {
			switch e.EdgesCountInBox(box) {
			case 3:
				if e.BoxOwner(box) == game.NoPlayer {
					return edge
				}
			case 2:
				enemyScore++
			}
		}
		if enemyScore < enemyMinScore {
			enemyMinScore = enemyScore
			bestEdge = edge
		}
	}
	return bestEdge
}
