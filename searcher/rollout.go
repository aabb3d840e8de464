package searcher

import "yut/game"

func (e *Evaluator) rollout(state game.State, trials int) float64 {
	sum := 0.0
	for i := 0; i < trials; i++ {
		sum += e.playout(state)
	}
	return sum / float64(trials)
}

// playout scores a random game from state for the side to move in state.
func (e *Evaluator) playout(state game.State) float64 {
	if e.finish(state) == state.Player() {
		return Win
	}
	return Loss
}

// finish follows a uniformly random policy until the game ends and returns
// the winner.
func (e *Evaluator) finish(state game.State) game.Side {
	for !state.IsTerminal() {
		moves := state.LegalMoves(game.Throw(e.rng))
		if len(moves) == 0 {
			state.Pass()
			continue
		}
		state.Apply(moves[e.rng.Intn(len(moves))])
	}
	e.metrics.AddPlayout()
	return state.Winner()
}
