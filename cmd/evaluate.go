package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"yut/config"
	"yut/experiments/metrics"
	"yut/searcher"
)

func Evaluate(cfg *config.Config) *cobra.Command {
	var position positionFlags

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Estimate the win probability of the side to move",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := position.state()
			if err != nil {
				return err
			}

			collector := metrics.NewCollector()
			collector.Start(1, cfg.Ply, cfg.Rollouts)
			e := searcher.NewEvaluator(searcher.WithSeed(cfg.Seed), searcher.WithCollector(collector))
			value := e.Evaluate(state, cfg.Ply, cfg.Rollouts)
			metric := collector.Complete()

			log.Debug().Msgf("evaluated %s in %s: nodes=%d playouts=%d", state, metric.Duration, metric.Nodes, metric.Playouts)
			fmt.Fprintf(cmd.OutOrStdout(), "%s to move: %.4f\n", state.Player(), value)
			return nil
		},
	}
	position.register(cmd)

	return cmd
}
