package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counting concurrently", func(t *testing.T) {
		c := NewCollector()
		c.Start(4, 2, 10)

		var wg sync.WaitGroup
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					c.AddNode()
					c.AddPlayout()
					c.AddEpisode()
				}
			}()
		}
		wg.Wait()

		m := c.Complete()
		require.Equal(t, 400, m.Nodes)
		require.Equal(t, 400, m.Playouts)
		require.Equal(t, 400, m.Episodes)
		require.Equal(t, 4, m.Goroutines)
		require.Equal(t, 2, m.Ply)
		require.Equal(t, 10, m.Rollouts)
	})

	t.Run("restarting resets counters", func(t *testing.T) {
		c := NewCollector()
		c.Start(1, 1, 1)
		c.AddNode()
		c.Start(1, 1, 1)

		require.Zero(t, c.Complete().Nodes, "Start should reset the node count")
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(1, 1, 1)
		c.AddNode()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}
