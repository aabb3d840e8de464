package searcher

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"yut/experiments/metrics"
	"yut/game"
)

// Candidate is a legal move together with its estimated win probability for
// the side playing it.
type Candidate struct {
	Action    game.Action
	Value     float64   // Mean of Estimates
	Estimates []float64 // One independent evaluation per repeat
}

type RankOption func(r *Ranker)

// Ranker evaluates every move of a throw concurrently. Each evaluation gets its
// own generator derived from the seed, the move index and the repeat, so the
// ranking does not depend on the number of goroutines. A Ranker runs one Rank
// call at a time.
type Ranker struct {
	goroutines int
	ply        int
	rollouts   int
	repeats    int
	seed       uint64
	metrics    metrics.Collector
}

func WithGoroutines(goroutines int) RankOption {
	return func(r *Ranker) {
		if goroutines > 0 {
			r.goroutines = goroutines
		}
	}
}

func WithPly(ply int) RankOption {
	return func(r *Ranker) {
		if ply >= 0 {
			r.ply = ply
		}
	}
}

func WithRollouts(rollouts int) RankOption {
	return func(r *Ranker) {
		if rollouts > 0 {
			r.rollouts = rollouts
		}
	}
}

func WithRepeats(repeats int) RankOption {
	return func(r *Ranker) {
		if repeats > 0 {
			r.repeats = repeats
		}
	}
}

func WithRankSeed(seed uint64) RankOption {
	return func(r *Ranker) {
		r.seed = seed
	}
}

func WithMetrics() RankOption {
	return func(r *Ranker) {
		r.metrics = metrics.NewCollector()
	}
}

func NewRanker(options ...RankOption) *Ranker {
	r := &Ranker{ // Default values
		goroutines: 1,
		ply:        DefaultPly,
		rollouts:   DefaultRollouts,
		repeats:    1,
		seed:       uint64(time.Now().UnixNano()),
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// Rank returns the legal moves of the throw ordered from best to worst. Moves
// with equal value keep their enumeration order.
func (r *Ranker) Rank(ctx context.Context, state game.State, sticks game.Sticks) ([]Candidate, metrics.SearchMetric, error) {
	actions := state.LegalMoves(sticks)
	candidates := make([]Candidate, len(actions))
	for i, action := range actions {
		candidates[i] = Candidate{Action: action, Estimates: make([]float64, r.repeats)}
	}

	r.metrics.Start(r.goroutines, r.ply, r.rollouts)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.goroutines)
	for i := range candidates {
		for j := 0; j < r.repeats; j++ {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				child := state
				child.Apply(candidates[i].Action)
				e := NewEvaluator(WithSeed(taskSeed(r.seed, i, j)), WithCollector(r.metrics))
				candidates[i].Estimates[j] = Win - e.Evaluate(child, r.ply, r.rollouts)
				return nil
			})
		}
	}
	err := g.Wait()
	metric := r.metrics.Complete()
	if err != nil {
		return nil, metric, fmt.Errorf("ranking moves for throw %s: %w", sticks, err)
	}

	for i := range candidates {
		sum := 0.0
		for _, estimate := range candidates[i].Estimates {
			sum += estimate
		}
		candidates[i].Value = sum / float64(len(candidates[i].Estimates))
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].Value > candidates[b].Value
	})
	return candidates, metric, nil
}

// taskSeed mixes the task coordinates into the base seed (splitmix64 finalizer).
func taskSeed(seed uint64, move, repeat int) uint64 {
	z := seed + uint64(move)<<32 + uint64(repeat) + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
