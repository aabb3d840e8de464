package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"yut/config"
	"yut/experiments"
	"yut/experiments/metrics"
)

func Experiment(cfg *config.Config) *cobra.Command {
	var name string
	var kinds []string

	cmd := &cobra.Command{
		Use:   "experiment",
		Short: "Play search agents against a random baseline and record the games",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			baseline := metrics.AgentConfig{ID: 0, Kind: metrics.RandomAgent}
			configs := make([]metrics.AgentConfig, 0, len(kinds))
			for i, kind := range kinds {
				config, err := agentConfig(cfg, i+1, metrics.AgentKind(kind))
				if err != nil {
					return err
				}
				configs = append(configs, config)
			}

			summary, err := experiments.Run(cmd.Context(), experiments.Experiment{
				Name:      name,
				OutputDir: cfg.OutputDir,
				Games:     cfg.Games,
				Seed:      cfg.Seed,
				Baseline:  baseline,
				Configs:   configs,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, config := range configs {
				fmt.Fprintf(out, "%s won %d of %d games against random\n", config.Kind, summary.Wins[config.ID], cfg.Games)
			}
			fmt.Fprintf(out, "records in %s\n", summary.Dir)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "baseline", "Experiment name, used as the output subdirectory")
	cmd.Flags().StringSliceVar(&kinds, "agents", []string{string(metrics.SearchAgent)}, "Agents to play against the baseline (search, mcts)")
	cmd.Flags().IntVar(&cfg.Games, "games", cfg.Games, "Games per match-up")
	cmd.Flags().StringVar(&cfg.OutputDir, "output", cfg.OutputDir, "Directory for experiment records")

	return cmd
}

func agentConfig(cfg *config.Config, id int, kind metrics.AgentKind) (metrics.AgentConfig, error) {
	switch kind {
	case metrics.SearchAgent:
		return metrics.AgentConfig{
			ID:         id,
			Kind:       kind,
			Goroutines: cfg.Goroutines,
			Ply:        cfg.Ply,
			Rollouts:   cfg.Rollouts,
			Repeats:    cfg.Repeats,
		}, nil
	case metrics.MCTSAgent:
		return metrics.AgentConfig{
			ID:         id,
			Kind:       kind,
			Goroutines: cfg.Goroutines,
			Episodes:   cfg.Episodes,
		}, nil
	default:
		return metrics.AgentConfig{}, fmt.Errorf("unknown agent %q", kind)
	}
}
