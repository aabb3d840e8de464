package searcher

import (
	"math"

	"golang.org/x/exp/rand"

	"yut/game"
)

// Node is a vertex of the search tree shared by all workers. Decision nodes
// pick a move for a known throw, chance nodes draw the next throw.
type Node interface {
	SelectOrExpand(state game.State, r *rand.Rand) (child Node, childState game.State, selected bool)
	Backup(winner game.Side) Node
	applyLoss()
	stats() (rewards float64, visits float64)
}

func ucb1(rewards, visits, c2LnN float64) float64 {
	if visits == 0 {
		return math.Inf(1)
	}
	return rewards/visits + math.Sqrt(c2LnN/visits)
}

func reward(winner, player game.Side) float64 {
	if winner == player {
		return Win
	}
	return Loss
}
