package searcher

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"yut/game"
)

// raceState lets first win at once by carrying its last stack home; any other
// move hands second a certain win.
func raceState(t *testing.T) game.State {
	return game.FromPieces(
		[game.NumPieces]game.Position{game.Goal(), game.Goal(), cell(t, "R28"), cell(t, "R28")},
		[game.NumPieces]game.Position{game.Goal(), game.Goal(), game.Goal(), cell(t, "R30")},
		game.First,
	)
}

func TestNewMCTS(t *testing.T) {
	require.Panics(t, func() { NewMCTS(1) }, "Search needs episodes or a duration")
	require.Panics(t, func() { NewMCTS(0, WithEpisodes(10)) }, "Search needs a worker")
	require.NotPanics(t, func() { NewMCTS(2, WithDuration(time.Millisecond)) })
}

func TestMCTSSearch(t *testing.T) {
	t.Run("prefers the winning move", func(t *testing.T) {
		for _, goroutines := range []int{1, 4} {
			m := NewMCTS(goroutines, WithEpisodes(200), WithTreeSeed(3))

			visits, _, err := m.Search(context.Background(), raceState(t), 3)

			require.NoError(t, err)
			require.Len(t, visits, 2)
			require.Equal(t, game.NewAction(cell(t, "R28"), game.Goal(), 2), visits[0].Action)
			require.Equal(t, Win, visits[0].Value, "Carrying the stack home always wins")
			require.Equal(t, Loss, visits[1].Value, "Leaving a piece behind always loses")
			require.Greater(t, visits[0].Share, 0.5)
			require.InDelta(t, 1.0, visits[0].Share+visits[1].Share, 1e-9)
		}
	})

	t.Run("reproducible with one worker", func(t *testing.T) {
		state := cornerState(t)

		v1, _, err := NewMCTS(1, WithEpisodes(100), WithTreeSeed(9)).Search(context.Background(), state, 1)
		require.NoError(t, err)
		v2, _, err := NewMCTS(1, WithEpisodes(100), WithTreeSeed(9)).Search(context.Background(), state, 1)
		require.NoError(t, err)

		require.Equal(t, v1, v2)
	})

	t.Run("counting episodes", func(t *testing.T) {
		m := NewMCTS(2, WithEpisodes(50), WithTreeSeed(1), WithTreeMetrics())

		_, metric, err := m.Search(context.Background(), game.New(), 2)

		require.NoError(t, err)
		require.Equal(t, 50, metric.Episodes)
		require.Equal(t, 50, metric.Playouts, "Every episode should finish one game")
		require.Positive(t, metric.Nodes)
		require.LessOrEqual(t, metric.Nodes, metric.Episodes)
		require.Equal(t, 2, metric.Goroutines)
	})

	t.Run("searching for a duration", func(t *testing.T) {
		m := NewMCTS(2, WithDuration(20*time.Millisecond), WithTreeSeed(1), WithTreeMetrics())

		visits, metric, err := m.Search(context.Background(), cornerState(t), 1)

		require.NoError(t, err)
		require.Len(t, visits, 2)
		require.Positive(t, metric.Episodes)
	})

	t.Run("stopping on cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := NewMCTS(2, WithEpisodes(1000), WithTreeSeed(1)).Search(ctx, game.New(), 4)
		require.ErrorIs(t, err, context.Canceled)

		_, _, err = NewMCTS(2, WithDuration(time.Minute), WithTreeSeed(1)).Search(ctx, game.New(), 4)
		require.ErrorIs(t, err, context.Canceled)
	})
}
