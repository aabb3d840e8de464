package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"yut/game"
)

// positionFlags describes a position on the command line, e.g.
// --first S,S,R3,G --second K0_1,S,S,S --turn second.
type positionFlags struct {
	first  string
	second string
	turn   string
}

const allStart = "S,S,S,S"

func (p *positionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.first, "first", allStart, "Pieces of the first side")
	cmd.Flags().StringVar(&p.second, "second", allStart, "Pieces of the second side")
	cmd.Flags().StringVar(&p.turn, "turn", game.First.String(), "Side to move (first or second)")
}

func (p *positionFlags) state() (game.State, error) {
	first, err := parsePieces(p.first)
	if err != nil {
		return game.State{}, fmt.Errorf("first side: %w", err)
	}
	second, err := parsePieces(p.second)
	if err != nil {
		return game.State{}, fmt.Errorf("second side: %w", err)
	}

	var turn game.Side
	switch p.turn {
	case game.First.String():
		turn = game.First
	case game.Second.String():
		turn = game.Second
	default:
		return game.State{}, fmt.Errorf("unknown side %q", p.turn)
	}
	return game.FromPieces(first, second, turn), nil
}

func parsePieces(text string) ([game.NumPieces]game.Position, error) {
	var pieces [game.NumPieces]game.Position
	cells := strings.Split(text, ",")
	if len(cells) != game.NumPieces {
		return pieces, fmt.Errorf("want %d pieces, got %d", game.NumPieces, len(cells))
	}
	for i, cell := range cells {
		p, err := game.ParsePosition(strings.TrimSpace(cell))
		if err != nil {
			return pieces, err
		}
		pieces[i] = p
	}
	return pieces, nil
}
