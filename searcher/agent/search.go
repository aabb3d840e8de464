package agent

import (
	"context"
	"fmt"

	"yut/experiments/metrics"
	"yut/game"
	"yut/searcher"
)

type searchAgent struct {
	ranker *searcher.Ranker
}

// NewSearchAgent returns an agent playing the best ranked move.
func NewSearchAgent(ranker *searcher.Ranker) Agent {
	return searchAgent{ranker: ranker}
}

func (a searchAgent) FindMove(ctx context.Context, state game.State, sticks game.Sticks) (game.Action, metrics.SearchMetric, error) {
	candidates, metric, err := a.ranker.Rank(ctx, state, sticks)
	if err != nil {
		return game.Action{}, metric, err
	}
	if len(candidates) == 0 {
		panic(fmt.Sprintf("no legal move for throw %s", sticks))
	}
	return candidates[0].Action, metric, nil
}
