package searcher

import (
	"sync"

	"golang.org/x/exp/rand"

	"yut/game"
)

// chance follows a move and draws the opponent's throw. Rewards are counted
// for the side that played the move.
type chance struct {
	sync.RWMutex
	parent   *decision
	player   game.Side
	children [game.Special + 1]*decision // Indexed by throw
	rewards  float64
	visits   float64
}

func newChance(parent *decision) *chance {
	return &chance{
		parent: parent,
		player: parent.player,
	}
}

// SelectOrExpand always descends: the drawn throw picks the child, creating it
// on first sight.
func (c *chance) SelectOrExpand(state game.State, r *rand.Rand) (Node, game.State, bool) {
	sticks := game.Throw(r)

	c.Lock()
	defer c.Unlock()

	child := c.children[sticks]
	if child == nil {
		child = newDecision(c, state, sticks)
		c.children[sticks] = child
	}
	child.applyLoss()
	return child, state, true
}

func (c *chance) applyLoss() {
	c.Lock()
	defer c.Unlock()

	c.rewards += Loss
	c.visits++
}

func (c *chance) reverseLoss() {
	c.rewards -= Loss
	c.visits--
}

func (c *chance) stats() (float64, float64) {
	c.RLock()
	defer c.RUnlock()

	return c.rewards, c.visits
}

func (c *chance) Backup(winner game.Side) Node {
	c.Lock()
	defer c.Unlock()

	c.reverseLoss()
	c.rewards += reward(winner, c.player)
	c.visits++
	return c.parent
}
