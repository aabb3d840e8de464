package agent

import (
	"context"
	"fmt"

	"golang.org/x/exp/rand"

	"yut/experiments/metrics"
	"yut/game"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent choosing uniformly among the legal moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(ctx context.Context, state game.State, sticks game.Sticks) (game.Action, metrics.SearchMetric, error) {
	if err := ctx.Err(); err != nil {
		return game.Action{}, metrics.SearchMetric{}, err
	}
	moves := state.LegalMoves(sticks)
	if len(moves) == 0 {
		panic(fmt.Sprintf("no legal move for throw %s", sticks))
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}
