package agent

import (
	"context"

	"yut/experiments/metrics"
	"yut/game"
)

type Agent interface {
	// FindMove picks one of the legal moves for the throw, together with
	// performance metrics (if collected) from the search. The throw must
	// have at least one legal move.
	FindMove(ctx context.Context, state game.State, sticks game.Sticks) (game.Action, metrics.SearchMetric, error)
}
