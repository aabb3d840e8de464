package searcher

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"yut/experiments/metrics"
	"yut/game"
)

type Option func(e *Evaluator)

// Evaluator estimates win probabilities by expectimax over throws, falling
// back to random playouts past the search horizon. An Evaluator owns its
// random generator and must not be shared between goroutines.
type Evaluator struct {
	rng     *rand.Rand
	metrics metrics.Collector
}

func WithSeed(seed uint64) Option {
	return func(e *Evaluator) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

func WithSource(src rand.Source) Option {
	return func(e *Evaluator) {
		if src != nil {
			e.rng = rand.New(src)
		}
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(e *Evaluator) {
		if collector != nil {
			e.metrics = collector
		}
	}
}

func NewEvaluator(options ...Option) *Evaluator {
	e := &Evaluator{
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return e
}

// Evaluate returns the probability that the side to move in state wins when
// both sides follow the search policy.
func Evaluate(state game.State, maxPly, rollouts int, seed uint64) float64 {
	return NewEvaluator(WithSeed(seed)).Evaluate(state, maxPly, rollouts)
}

func (e *Evaluator) Evaluate(state game.State, maxPly, rollouts int) float64 {
	if maxPly < 0 {
		panic(fmt.Sprintf("search depth must not be negative, got %d", maxPly))
	}
	if rollouts <= 0 {
		panic(fmt.Sprintf("rollouts must be positive, got %d", rollouts))
	}
	return e.expand(state, maxPly, rollouts)
}

// leaf scores a finished game for the side to move.
func leaf(state game.State) (float64, bool) {
	if !state.IsTerminal() {
		return 0, false
	}
	if state.Winner() == state.Player() {
		return Win, true
	}
	return Loss, true
}

func (e *Evaluator) expand(state game.State, ply, rollouts int) float64 {
	if value, ok := leaf(state); ok {
		return value
	}
	if ply == 0 {
		return e.rollout(state, rollouts)
	}

	e.metrics.AddNode()
	sum := 0.0
	for _, outcome := range game.Distribution() {
		sum += outcome.Probability * e.solve(state, outcome.Sticks, ply, rollouts)
	}
	return sum
}

// solve picks the best reply to a throw. A throw without legal moves
// contributes nothing; ties keep the first move enumerated.
func (e *Evaluator) solve(state game.State, sticks game.Sticks, ply, rollouts int) float64 {
	best := 0.0
	for _, action := range state.LegalMoves(sticks) {
		child := state
		child.Apply(action)
		// Negamax: the child is scored for the opponent
		if value := Win - e.expand(child, ply-1, rollouts); value > best {
			best = value
		}
	}
	return best
}
