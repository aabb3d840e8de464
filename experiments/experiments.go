package experiments

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"yut/engine"
	"yut/experiments/metrics"
	"yut/game"
	"yut/searcher"
	"yut/searcher/agent"
)

// Experiment pits each configured agent against a baseline for a number of
// games per match-up. Seats alternate between games.
type Experiment struct {
	Name      string
	OutputDir string
	Games     int
	Seed      uint64
	Baseline  metrics.AgentConfig
	Configs   []metrics.AgentConfig
}

// Summary counts wins per agent id.
type Summary struct {
	Games int
	Wins  map[int]int
	Dir   string
}

func Run(ctx context.Context, exp Experiment) (Summary, error) {
	if exp.Games <= 0 {
		return Summary{}, fmt.Errorf("experiment %s needs at least one game", exp.Name)
	}

	count := 0
	summary := Summary{Wins: map[int]int{}}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", exp.Name)

	for mi, config := range exp.Configs {
		log.Info().Msgf("starting matchup %d of %d between baseline=%+v and agent=%+v...", mi+1, len(exp.Configs), exp.Baseline, config)

		for i := 0; i < exp.Games; i++ {
			seats := [2]metrics.AgentConfig{exp.Baseline, config}
			if i%2 == 1 {
				seats = [2]metrics.AgentConfig{config, exp.Baseline}
			}
			count++
			seed := exp.Seed + uint64(count)

			winner, gameMetric, moveMetrics, err := runGame(ctx, seats, seed)
			if err != nil {
				return summary, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     seats[game.First].ID,
				Agent2:     seats[game.Second].ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
			if winner != game.NoSide {
				summary.Wins[seats[winner].ID]++
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(exp.Configs), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(exp.Configs))
	}
	summary.Games = count

	log.Info().Msgf("completed %s experiment", exp.Name)

	writer, err := metrics.NewWriter(exp.OutputDir, exp.Name)
	if err != nil {
		return summary, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	summary.Dir = writer.Dir()

	err = writer.WriteAgentConfigs(append([]metrics.AgentConfig{exp.Baseline}, exp.Configs...))
	if err != nil {
		return summary, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return summary, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return summary, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return summary, nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(ctx context.Context, seats [2]metrics.AgentConfig, seed uint64) (game.Side, metrics.GameMetric, []metrics.MoveMetric, error) {
	agents := [2]agent.Agent{
		createAgent(seats[game.First], seed),
		createAgent(seats[game.Second], seed^0xa5a5a5a5),
	}
	e := engine.LocalEngine(agents, seed)

	return e.Run(ctx)
}

func createAgent(config metrics.AgentConfig, seed uint64) agent.Agent {
	switch config.Kind {
	case metrics.RandomAgent:
		return agent.NewRandomAgent(seed)
	case metrics.SearchAgent:
		options := []searcher.RankOption{searcher.WithRankSeed(seed), searcher.WithMetrics()}
		if config.Goroutines > 0 {
			options = append(options, searcher.WithGoroutines(config.Goroutines))
		}
		if config.Ply >= 0 {
			options = append(options, searcher.WithPly(config.Ply))
		}
		if config.Rollouts > 0 {
			options = append(options, searcher.WithRollouts(config.Rollouts))
		}
		if config.Repeats > 0 {
			options = append(options, searcher.WithRepeats(config.Repeats))
		}
		return agent.NewSearchAgent(searcher.NewRanker(options...))
	case metrics.MCTSAgent:
		goroutines := max(config.Goroutines, 1)
		episodes := config.Episodes
		if episodes <= 0 {
			episodes = searcher.DefaultEpisodes
		}
		mcts := searcher.NewMCTS(goroutines, searcher.WithEpisodes(episodes), searcher.WithTreeSeed(seed), searcher.WithTreeMetrics())
		return agent.NewMCTSAgent(mcts)
	default:
		panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
	}
}
