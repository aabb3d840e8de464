package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"yut/game"
)

func cell(t *testing.T, text string) game.Position {
	t.Helper()
	p, err := game.ParsePosition(text)
	require.NoError(t, err)
	return p
}

// cornerState has first to move with one piece on the first branching
// corner, so a throw of 1 offers exactly two moves.
func cornerState(t *testing.T) game.State {
	return game.FromPieces(
		[game.NumPieces]game.Position{cell(t, "R5"), game.Goal(), game.Goal(), game.Goal()},
		[game.NumPieces]game.Position{game.Start(), game.Start(), game.Start(), game.Start()},
		game.First,
	)
}

func TestUCB1(t *testing.T) {
	require.Equal(t, math.Inf(1), ucb1(0, 0, 1), "Unvisited nodes should be tried first")
	require.InDelta(t, 0.5+math.Sqrt(2.0/4), ucb1(2, 4, 2), 1e-12)
	require.Greater(t, ucb1(1, 1, 2), ucb1(0, 1, 2), "Higher mean should score higher at equal visits")
}

func TestReward(t *testing.T) {
	require.Equal(t, Win, reward(game.First, game.First))
	require.Equal(t, Loss, reward(game.Second, game.First))
}
