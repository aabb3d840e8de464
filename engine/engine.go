package engine

import (
	"context"

	"yut/experiments/metrics"
	"yut/game"
)

// MaxMoves bounds a single game; it is far above the length of real games.
const MaxMoves = 10000

type Runner interface {
	// Run plays a game till there's a winner or a max number of moves is reached
	Run(ctx context.Context) (winner game.Side, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
