package searcher

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"yut/game"
)

func TestRank(t *testing.T) {
	t.Run("one candidate per legal move", func(t *testing.T) {
		r := NewRanker(WithPly(1), WithRollouts(2), WithRepeats(3), WithRankSeed(1))

		candidates, _, err := r.Rank(context.Background(), game.New(), 3)

		require.NoError(t, err)
		require.Len(t, candidates, 1)
		require.Len(t, candidates[0].Estimates, 3, "Each repeat should record an estimate")
		require.GreaterOrEqual(t, candidates[0].Value, 0.0)
		require.LessOrEqual(t, candidates[0].Value, 1.0)
	})

	t.Run("independent of goroutine count", func(t *testing.T) {
		state := game.FromPieces(
			[game.NumPieces]game.Position{5, 5, 2, game.Start()},
			[game.NumPieces]game.Position{7, game.Start(), game.Start(), game.Start()},
			game.First,
		)
		sequential := NewRanker(WithGoroutines(1), WithPly(1), WithRollouts(2), WithRankSeed(7))
		parallel := NewRanker(WithGoroutines(8), WithPly(1), WithRollouts(2), WithRankSeed(7))

		got1, _, err := sequential.Rank(context.Background(), state, 2)
		require.NoError(t, err)
		got2, _, err := parallel.Rank(context.Background(), state, 2)
		require.NoError(t, err)

		require.Equal(t, got1, got2, "Per-move seeds should make the ranking deterministic")
		require.Len(t, got1, len(state.LegalMoves(2)))
	})

	t.Run("sorted from best to worst", func(t *testing.T) {
		state := game.FromPieces(
			[game.NumPieces]game.Position{10, 3, game.Start(), game.Start()},
			[game.NumPieces]game.Position{4, game.Start(), game.Start(), game.Start()},
			game.First,
		)
		r := NewRanker(WithGoroutines(4), WithPly(1), WithRollouts(2), WithRankSeed(3))

		candidates, _, err := r.Rank(context.Background(), state, 1)

		require.NoError(t, err)
		for i := 1; i < len(candidates); i++ {
			require.GreaterOrEqual(t, candidates[i-1].Value, candidates[i].Value)
		}
	})

	t.Run("winning move scores one", func(t *testing.T) {
		state := game.FromPieces(allAt(game.NewPosition(30)), allAt(game.Start()), game.First)
		r := NewRanker(WithPly(1), WithRollouts(2), WithRankSeed(1))

		candidates, _, err := r.Rank(context.Background(), state, 1)

		require.NoError(t, err)
		require.Equal(t, 1.0, candidates[0].Value)
		for _, c := range candidates {
			if c.Action.Count == game.NumPieces {
				require.Equal(t, 1.0, c.Value, "Moving the whole stack home should win")
			}
		}
	})

	t.Run("collecting metrics", func(t *testing.T) {
		r := NewRanker(WithPly(1), WithRollouts(2), WithRankSeed(1), WithGoroutines(2), WithMetrics())

		_, metric, err := r.Rank(context.Background(), game.New(), 1)

		require.NoError(t, err)
		require.Equal(t, 2, metric.Goroutines)
		require.Equal(t, 1, metric.Ply)
		require.Positive(t, metric.Nodes, "Search should expand nodes")
		require.Positive(t, metric.Playouts, "Search should run playouts at the horizon")
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := NewRanker(WithRankSeed(1)).Rank(ctx, game.New(), 1)

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestTaskSeed(t *testing.T) {
	require.Equal(t, taskSeed(1, 2, 3), taskSeed(1, 2, 3))
	require.NotEqual(t, taskSeed(1, 2, 3), taskSeed(1, 3, 2))
	require.NotEqual(t, taskSeed(1, 0, 0), taskSeed(2, 0, 0))
}
