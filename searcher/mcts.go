package searcher

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/exp/rand"

	"yut/experiments/metrics"
	"yut/game"
)

type MCTSOption func(m *MCTS)

// Visit summarises the root statistics of one legal move.
type Visit struct {
	Action game.Action
	Share  float64 // Fraction of root visits spent on the move
	Value  float64 // Mean reward for the side playing the move
}

// MCTS is a tree parallel Monte Carlo tree search with virtual loss. Workers
// share one tree; each owns a generator for throws and playouts.
type MCTS struct {
	goroutines int
	episodes   int
	duration   time.Duration
	seed       uint64
	metrics    metrics.Collector
}

func WithEpisodes(episodes int) MCTSOption {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithDuration(duration time.Duration) MCTSOption {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithTreeSeed(seed uint64) MCTSOption {
	return func(m *MCTS) {
		m.seed = seed
	}
}

func WithTreeMetrics() MCTSOption {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(goroutines int, options ...MCTSOption) *MCTS {
	m := &MCTS{ // Default values
		goroutines: goroutines,
		seed:       uint64(time.Now().UnixNano()),
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.goroutines <= 0 {
		panic(fmt.Sprintf("goroutines must be positive, got %d", m.goroutines))
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

// Search grows a fresh tree for the throw and returns the legal moves ordered
// by visit share. Moves with equal share keep their enumeration order.
func (m *MCTS) Search(ctx context.Context, state game.State, sticks game.Sticks) ([]Visit, metrics.SearchMetric, error) {
	root := newDecision(nil, state, sticks)

	m.metrics.Start(m.goroutines, 0, 0)
	var err error
	if m.episodes > 0 {
		err = m.iterate(ctx, root, state)
	} else {
		err = m.countdown(ctx, root, state)
	}
	metric := m.metrics.Complete()
	if err != nil {
		return nil, metric, fmt.Errorf("searching moves for throw %s: %w", sticks, err)
	}

	return root.policy(), metric, nil
}

func (m *MCTS) worker(i int) *Evaluator {
	return NewEvaluator(WithSeed(taskSeed(m.seed, i, 0)), WithCollector(m.metrics))
}

func (m *MCTS) iterate(ctx context.Context, root *decision, state game.State) error {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			e := m.worker(i)
			for range task {
				if ctx.Err() != nil {
					return
				}
				m.simulate(root, state, e)
			}
		}()
	}

	wg.Wait()
	return ctx.Err()
}

func (m *MCTS) countdown(ctx context.Context, root *decision, state game.State) error {
	done := make(chan any)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			e := m.worker(i)
			for {
				select {
				case <-done:
					return
				default:
					m.simulate(root, state, e)
				}
			}
		}()
	}

	select {
	case <-time.After(m.duration):
	case <-ctx.Done():
	}
	close(done)
	wg.Wait()
	return ctx.Err()
}

func (m *MCTS) simulate(root *decision, state game.State, e *Evaluator) {
	node, state, expanded := selectThenExpand(root, state, e.rng)
	if expanded {
		m.metrics.AddNode()
	}
	winner := e.finish(state)
	backup(node, winner)
	m.metrics.AddEpisode()
}

// selectThenExpand descends until it adds a node or reaches a finished game.
func selectThenExpand(root Node, state game.State, r *rand.Rand) (Node, game.State, bool) {
	parent := root
	child, state, selected := parent.SelectOrExpand(state, r)
	for selected && (child != parent) {
		parent = child
		child, state, selected = parent.SelectOrExpand(state, r)
	}
	return child, state, child != parent
}

func backup(newNode Node, winner game.Side) {
	node := newNode
	for node != nil {
		node = node.Backup(winner)
	}
}

func (d *decision) policy() []Visit {
	d.RLock()
	defer d.RUnlock()

	visits := make([]Visit, len(d.actions))
	total := 0.0
	for i, action := range d.actions {
		visits[i].Action = action
		if i < len(d.children) {
			rewards, n := d.children[i].stats()
			visits[i].Share = n
			if n > 0 {
				visits[i].Value = rewards / n
			}
			total += n
		}
	}
	if total > 0 {
		for i := range visits {
			visits[i].Share /= total
		}
	}
	sort.SliceStable(visits, func(a, b int) bool {
		return visits[a].Share > visits[b].Share
	})
	return visits
}
