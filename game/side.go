package game

// Side identifies one of the two players.
type Side int

const (
	NoSide Side = iota - 1
	First
	Second
)

func (s Side) Opponent() Side {
	switch s {
	case First:
		return Second
	case Second:
		return First
	default:
		panic("no opponent for an undecided side")
	}
}

func (s Side) String() string {
	switch s {
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return "none"
	}
}
