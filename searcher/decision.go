package searcher

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/exp/rand"

	"yut/game"
)

// decision holds the statistics of one position with a known throw. Rewards
// are counted for the side to move.
type decision struct {
	sync.RWMutex
	parent   *chance
	player   game.Side
	sticks   game.Sticks
	actions  []game.Action
	children []*chance // children[i] follows actions[i]
	rewards  float64
	visits   float64
}

func newDecision(parent *chance, state game.State, sticks game.Sticks) *decision {
	actions := state.LegalMoves(sticks)
	if len(actions) == 0 && !state.IsTerminal() {
		panic(fmt.Sprintf("no legal move for throw %s in %s", sticks, state))
	}

	return &decision{
		parent:   parent,
		player:   state.Player(),
		sticks:   sticks,
		actions:  actions,
		children: make([]*chance, 0, len(actions)),
	}
}

func (d *decision) SelectOrExpand(state game.State, _ *rand.Rand) (Node, game.State, bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.actions) == 0 { // Terminal node
		return d, state, false
	}

	if len(d.actions) > len(d.children) { // Expandable node
		action := d.actions[len(d.children)]
		child := newChance(d)
		d.children = append(d.children, child)
		child.applyLoss()
		state.Apply(action)
		return child, state, false
	}

	// Fully expanded node
	ith := d.pickChild()
	child := d.children[ith]
	child.applyLoss()
	state.Apply(d.actions[ith])
	return child, state, true
}

func (d *decision) pickChild() int {
	// Concurrent workers may fill every child before the first backup
	normalizer := CSquared * math.Log(math.Max(d.visits, 1))

	maxIndex := 0
	maxScore := math.Inf(-1)
	for i, child := range d.children {
		rewards, visits := child.stats()
		score := ucb1(rewards, visits, normalizer)
		if score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

func (d *decision) applyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += Loss
	d.visits++
}

func (d *decision) reverseLoss() {
	d.rewards -= Loss
	d.visits--
}

func (d *decision) stats() (float64, float64) {
	d.RLock()
	defer d.RUnlock()

	return d.rewards, d.visits
}

func (d *decision) Backup(winner game.Side) Node {
	d.Lock()
	defer d.Unlock()

	d.rewards += reward(winner, d.player)
	if d.parent == nil { // Root node
		d.visits++
		return nil
	}
	d.reverseLoss()
	d.visits++
	return d.parent
}
