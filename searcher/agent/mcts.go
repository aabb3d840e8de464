package agent

import (
	"context"
	"fmt"

	"yut/experiments/metrics"
	"yut/game"
	"yut/searcher"
)

type mctsAgent struct {
	mcts *searcher.MCTS
}

// NewMCTSAgent returns an agent playing the most visited move of a fresh tree.
func NewMCTSAgent(mcts *searcher.MCTS) Agent {
	return mctsAgent{mcts: mcts}
}

func (a mctsAgent) FindMove(ctx context.Context, state game.State, sticks game.Sticks) (game.Action, metrics.SearchMetric, error) {
	visits, metric, err := a.mcts.Search(ctx, state, sticks)
	if err != nil {
		return game.Action{}, metric, err
	}
	if len(visits) == 0 {
		panic(fmt.Sprintf("no legal move for throw %s", sticks))
	}
	return visits[0].Action, metric, nil
}
