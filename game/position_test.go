package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPositionZone(t *testing.T) {
	t.Run("classifying every index", func(t *testing.T) {
		counts := map[Zone]int{}
		for i := 0; i < NumPositions; i++ {
			counts[NewPosition(i).Zone()]++
		}

		require.Equal(t, 1, counts[ZoneStart], "Board should have one start cell")
		require.Equal(t, 30, counts[ZoneRoute], "Route should have 6 arcs of 5 cells")
		require.Equal(t, 1, counts[ZoneGoal], "Board should have one goal cell")
		require.Equal(t, 18, counts[ZoneShortcut], "Board should have 6 shortcuts of 3 cells")
		require.Equal(t, 1, counts[ZoneCenter], "Board should have one center cell")
	})

	t.Run("panics out of range", func(t *testing.T) {
		require.Panics(t, func() { NewPosition(-1) }, "Negative index is invalid")
		require.Panics(t, func() { NewPosition(NumPositions) }, "Index past the center is invalid")
	})

	t.Run("shortcut coordinates", func(t *testing.T) {
		path, step := NewPosition(shortcutIndex + 4).Shortcut()

		require.Equal(t, 1, path)
		require.Equal(t, 1, step)
		require.Panics(t, func() { Start().Shortcut() }, "Start is not a shortcut cell")
	})
}

func TestPositionString(t *testing.T) {
	require.Equal(t, "S", Start().String())
	require.Equal(t, "R7", NewPosition(7).String())
	require.Equal(t, "G", Goal().String())
	require.Equal(t, "C", Center().String())
	require.Equal(t, "K2_1", NewPosition(shortcutIndex+7).String())
}

func TestAdvance(t *testing.T) {
	t.Run("every destination is a valid cell", func(t *testing.T) {
		for i := 0; i < NumPositions; i++ {
			for d := 1; d <= int(Special); d++ {
				for _, to := range NewPosition(i).Advance(d) {
					require.GreaterOrEqual(t, int(to), 0)
					require.Less(t, int(to), NumPositions)
					require.NotEqual(t, ZoneStart, to.Zone(), "Pieces never move back to start by themselves")
				}
			}
		}
	})

	t.Run("leaving start lands on the route", func(t *testing.T) {
		for d := 1; d <= int(Special); d++ {
			to := Start().Advance(d)

			require.Len(t, to, 1, "Start should have a single destination")
			require.Equal(t, ZoneRoute, to[0].Zone())
			require.Equal(t, Position(d), to[0], "Start should enter the route at offset distance-1")
		}
	})

	t.Run("plain route cell", func(t *testing.T) {
		require.Equal(t, []Position{7}, NewPosition(4).Advance(3))
	})

	t.Run("branching corners offer a shortcut", func(t *testing.T) {
		for path, corner := range []Position{5, 10, 15} {
			to := corner.Advance(1)

			require.Equal(t, []Position{corner + 1, shortcut(path, 0)}, to,
				"Corner %s should offer the route and near shortcut %d", corner, path)
		}
	})

	t.Run("far corners do not branch", func(t *testing.T) {
		require.Len(t, NewPosition(20).Advance(2), 1)
		require.Len(t, NewPosition(25).Advance(2), 1)
	})

	t.Run("overshooting the goal saturates", func(t *testing.T) {
		require.Equal(t, []Position{Goal()}, NewPosition(30).Advance(1))
		require.Equal(t, []Position{Goal()}, NewPosition(28).Advance(5))
		require.Equal(t, []Position{30}, NewPosition(28).Advance(2))
	})

	t.Run("near shortcut reaches the center", func(t *testing.T) {
		require.Equal(t, []Position{Center()}, shortcut(0, 0).Advance(3))
		require.Equal(t, []Position{Center()}, shortcut(2, 2).Advance(1))
	})

	t.Run("near shortcut continues past the center", func(t *testing.T) {
		require.Equal(t, []Position{shortcut(3, 0)}, shortcut(0, 2).Advance(2))
		require.Equal(t, []Position{shortcut(4, 1)}, shortcut(1, 2).Advance(3))
		require.Equal(t, []Position{shortcut(5, 2)}, shortcut(2, 1).Advance(5))
	})

	t.Run("far shortcut rejoins the route", func(t *testing.T) {
		require.Equal(t, []Position{20}, shortcut(3, 2).Advance(1))
		require.Equal(t, []Position{27}, shortcut(4, 0).Advance(5))
		require.Equal(t, []Position{30}, shortcut(5, 2).Advance(1))
		require.Equal(t, []Position{Goal()}, shortcut(5, 2).Advance(2))
	})

	t.Run("center fans out to every far shortcut", func(t *testing.T) {
		require.Equal(t, []Position{shortcut(3, 1), shortcut(4, 1), shortcut(5, 1)}, Center().Advance(1))
		require.Equal(t, []Position{shortcut(3, 2), shortcut(4, 2), shortcut(5, 2)}, Center().Advance(2))
		require.Equal(t, []Position{20, 25, 30}, Center().Advance(3))
		require.Equal(t, []Position{21, 26, Goal()}, Center().Advance(4))
		require.Equal(t, []Position{22, 27, Goal()}, Center().Advance(5))
	})

	t.Run("goal is terminal", func(t *testing.T) {
		require.Empty(t, Goal().Advance(3))
	})

	t.Run("panics on invalid distance", func(t *testing.T) {
		require.Panics(t, func() { Start().Advance(0) })
		require.Panics(t, func() { Start().Advance(6) })
	})
}

func TestParsePosition(t *testing.T) {
	t.Run("round trips every cell", func(t *testing.T) {
		for i := 0; i < NumPositions; i++ {
			p := NewPosition(i)

			got, err := ParsePosition(p.String())

			require.NoError(t, err)
			require.Equal(t, p, got)
		}
	})

	t.Run("rejects invalid cells", func(t *testing.T) {
		for _, text := range []string{"", "X", "R0", "R31", "Rx", "K6_0", "K0_3", "K1"} {
			_, err := ParsePosition(text)
			require.Error(t, err, "%q should not parse", text)
		}
	})
}
