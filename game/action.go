package game

import "fmt"

// Action moves Count stacked pieces of the side to move from From to To.
type Action struct {
	From  Position
	To    Position
	Count int
}

func NewAction(from, to Position, count int) Action {
	if count < 1 {
		panic(fmt.Sprintf("action must move at least one piece, got %d", count))
	}
	return Action{From: from, To: to, Count: count}
}

func (a Action) String() string {
	return fmt.Sprintf("move %s/%s(%d)", a.From, a.To, a.Count)
}
