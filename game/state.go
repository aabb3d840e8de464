package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

const NumPieces = 4

type StateHash uint64

// State is a snapshot of the board. It holds arrays only, so assigning a State
// copies it and search branches never share board data.
type State struct {
	pieces [2][NumPieces]Position // Piece positions per side
	turn   Side                   // Side to move
	winner Side                   // NoSide while the game is undecided
}

// New returns the initial position: every piece on start, First to move.
func New() State {
	return FromPieces(
		[NumPieces]Position{Start(), Start(), Start(), Start()},
		[NumPieces]Position{Start(), Start(), Start(), Start()},
		First,
	)
}

// FromPieces sets up an arbitrary position.
func FromPieces(first, second [NumPieces]Position, toMove Side) State {
	if toMove != First && toMove != Second {
		panic("side to move must be first or second")
	}
	for _, pieces := range [][NumPieces]Position{first, second} {
		for _, p := range pieces {
			NewPosition(int(p))
		}
	}
	s := State{
		pieces: [2][NumPieces]Position{first, second},
		turn:   toMove,
		winner: NoSide,
	}
	if s.home(First) && s.home(Second) {
		panic("both sides cannot have every piece on the goal")
	}
	s.checkWinner()
	return s
}

// LegalMoves returns every action available to the side to move for a throw.
// Only one piece may leave start per throw; elsewhere stacks may be split.
func (s State) LegalMoves(sticks Sticks) []Action {
	if s.IsTerminal() {
		return nil
	}

	counts := s.stacks(s.turn)
	var actions []Action
	for i := 0; i < NumPositions; i++ {
		from := Position(i)
		if counts[i] == 0 || from == Goal() {
			continue
		}
		movable := counts[i]
		if from == Start() {
			movable = 1
		}
		for _, to := range from.Advance(int(sticks)) {
			for count := 1; count <= movable; count++ {
				actions = append(actions, NewAction(from, to, count))
			}
		}
	}
	return actions
}

// Apply plays an action drawn from LegalMoves and passes the turn.
func (s *State) Apply(action Action) {
	if s.IsTerminal() {
		panic("cannot apply an action to a finished game")
	}
	if action.Count < 1 {
		panic(fmt.Sprintf("invalid action %s", action))
	}

	if action.From == Goal() {
		panic(fmt.Sprintf("pieces on %s cannot move", action.From))
	}

	own := &s.pieces[s.turn]
	at := s.piecesAt(s.turn, action.From)
	if len(at) == 0 {
		panic(fmt.Sprintf("no %s piece at %s", s.turn, action.From))
	}
	if action.Count > len(at) {
		panic(fmt.Sprintf("cannot move %d pieces from %s holding %d", action.Count, action.From, len(at)))
	}
	for _, i := range at[:action.Count] {
		own[i] = action.To
	}

	// Capture the whole opposing stack
	if action.To != Goal() {
		opp := &s.pieces[s.turn.Opponent()]
		for i := range opp {
			if opp[i] == action.To {
				opp[i] = Start()
			}
		}
	}

	s.checkWinner()
	s.turn = s.turn.Opponent()
}

// Pass forfeits the move of the side to move.
func (s *State) Pass() {
	if s.IsTerminal() {
		panic("cannot pass in a finished game")
	}
	s.turn = s.turn.Opponent()
}

func (s State) IsTerminal() bool {
	return s.winner != NoSide
}

// Winner returns NoSide while the game is undecided.
func (s State) Winner() Side {
	return s.winner
}

// Player returns the side to move.
func (s State) Player() Side {
	return s.turn
}

func (s State) Pieces(side Side) [NumPieces]Position {
	return s.pieces[side]
}

func (s State) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(s.turn))
	for _, pieces := range s.pieces {
		for _, p := range pieces {
			binary.Write(hasher, binary.LittleEndian, int64(p))
		}
	}

	return StateHash(hasher.Sum64())
}

// checkWinner decides the game once all pieces of a side reach the goal.
func (s *State) checkWinner() {
	for _, side := range []Side{First, Second} {
		if s.home(side) {
			s.winner = side
			return
		}
	}
}

func (s State) home(side Side) bool {
	for _, p := range s.pieces[side] {
		if p != Goal() {
			return false
		}
	}
	return true
}

func (s State) stacks(side Side) [NumPositions]int {
	var counts [NumPositions]int
	for _, p := range s.pieces[side] {
		counts[p]++
	}
	return counts
}

func (s State) piecesAt(side Side, at Position) []int {
	var indices []int
	for i, p := range s.pieces[side] {
		if p == at {
			indices = append(indices, i)
		}
	}
	return indices
}

func (s State) String() string {
	var b strings.Builder
	if s.IsTerminal() {
		fmt.Fprintf(&b, "winner: %s\n", s.winner)
	} else {
		fmt.Fprintf(&b, "turn: %s\n", s.turn)
	}
	for _, pieces := range s.pieces {
		for _, p := range pieces {
			fmt.Fprintf(&b, "%s ", p)
		}
		b.WriteString("\n")
	}
	return b.String()
}
