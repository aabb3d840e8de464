package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"yut/experiments/metrics"
	"yut/game"
	"yut/searcher/agent"
)

type Engine struct {
	State  game.State
	Agents [2]agent.Agent // Indexed by game.Side
	rng    *rand.Rand     // Stick throws
}

var _ Runner = (*Engine)(nil)

func LocalEngine(agents [2]agent.Agent, seed uint64) *Engine {
	for _, a := range agents {
		if a == nil {
			panic("both sides need an agent")
		}
	}

	return &Engine{
		State:  game.New(),
		Agents: agents,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Run executes the game loop until a winner is found.
func (e *Engine) Run(ctx context.Context) (game.Side, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Player(),
		Winner:         game.NoSide,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("player %s is starting", e.State.Player())

	step := 1
	for !e.State.IsTerminal() && step <= MaxMoves {
		player := e.State.Player()
		sticks := game.Throw(e.rng)

		record := metrics.MoveMetric{
			Step:   step,
			Player: player,
			Sticks: sticks,
		}
		if len(e.State.LegalMoves(sticks)) == 0 {
			e.State.Pass()
		} else {
			move, searchMetric, err := e.Agents[player].FindMove(ctx, e.State, sticks)
			if err != nil {
				return game.NoSide, gameMetric, moveMetrics, fmt.Errorf("step %d: %w", step, err)
			}
			e.State.Apply(move)
			record.Move = move.String()
			record.SearchMetric = searchMetric
			log.Debug().Int("step", step).Str("player", player.String()).Msgf("threw %s and played %s", sticks, move)
		}
		record.Hash = e.State.Hash()
		moveMetrics = append(moveMetrics, record)
		step++
	}

	gameMetric.Winner = e.State.Winner()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	if gameMetric.Winner == game.NoSide {
		log.Warn().Msgf("stopped after %d moves (no winner yet)", MaxMoves)
	}
	return gameMetric.Winner, gameMetric, moveMetrics, nil
}
