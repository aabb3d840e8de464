package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"yut/config"
	"yut/game"
	"yut/searcher"
)

func Rank(cfg *config.Config) *cobra.Command {
	var position positionFlags
	var throw int

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank the legal moves of a throw from best to worst",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			if throw < 1 || throw > int(game.Special) {
				return fmt.Errorf("throw must be between 1 and %d, got %d", game.Special, throw)
			}
			state, err := position.state()
			if err != nil {
				return err
			}
			if state.IsTerminal() {
				return fmt.Errorf("game is already won by %s", state.Winner())
			}

			ranker := searcher.NewRanker(
				searcher.WithGoroutines(cfg.Goroutines),
				searcher.WithPly(cfg.Ply),
				searcher.WithRollouts(cfg.Rollouts),
				searcher.WithRepeats(cfg.Repeats),
				searcher.WithRankSeed(cfg.Seed),
				searcher.WithMetrics(),
			)
			candidates, metric, err := ranker.Rank(cmd.Context(), state, game.NewSticks(throw))
			if err != nil {
				return err
			}
			log.Debug().Msgf("ranked %d moves in %s: nodes=%d playouts=%d", len(candidates), metric.Duration, metric.Nodes, metric.Playouts)

			out := cmd.OutOrStdout()
			if len(candidates) == 0 {
				fmt.Fprintln(out, "no legal moves, pass")
				return nil
			}
			for i, c := range candidates {
				fmt.Fprintf(out, "%2d. %-20s %.4f\n", i+1, c.Action, c.Value)
			}
			return nil
		},
	}
	position.register(cmd)
	cmd.Flags().IntVarP(&throw, "throw", "n", 0, "Sticks thrown (1-5)")
	_ = cmd.MarkFlagRequired("throw")

	return cmd
}
