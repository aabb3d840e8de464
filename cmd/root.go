package cmd

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"yut/config"
)

// Root builds the command tree. Flags start from cfg, so the environment sets
// the defaults and flags override them.
func Root(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "yut",
		Short: "Evaluate and play yut positions with expectimax search",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			level, _ := cfg.Level()
			zerolog.SetGlobalLevel(level)

			if cfg.Seed == 0 {
				cfg.Seed = uint64(time.Now().UnixNano())
			}
			log.Debug().Msgf("using seed %d", cfg.Seed)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.IntVar(&cfg.Ply, "ply", cfg.Ply, "Full turns searched before falling back to rollouts")
	flags.IntVar(&cfg.Rollouts, "rollouts", cfg.Rollouts, "Random playouts averaged at each leaf")
	flags.IntVar(&cfg.Goroutines, "goroutines", cfg.Goroutines, "Concurrent move evaluations")
	flags.IntVar(&cfg.Repeats, "repeats", cfg.Repeats, "Independent evaluations averaged per move")
	flags.IntVar(&cfg.Episodes, "episodes", cfg.Episodes, "Tree search iterations per move of the mcts agent")
	flags.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed, 0 for a time based seed")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (trace, debug, info, warn, error)")

	root.AddCommand(Evaluate(cfg))
	root.AddCommand(Rank(cfg))
	root.AddCommand(Experiment(cfg))

	return root
}
