package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"yut/cmd"
	"yut/config"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := yut(); err != nil {
		log.Fatal().Err(err).Msg("yut failed")
	}
}

func yut() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cmd.Root(&cfg)
	root.SetArgs(os.Args[1:])
	return root.ExecuteContext(ctx)
}
