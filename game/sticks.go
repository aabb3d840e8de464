package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

const NumSticks = 4

// Sticks is the number of cells a throw moves. Special replaces the throw in
// which no stick lands face up.
type Sticks int

const Special Sticks = NumSticks + 1

func NewSticks(x int) Sticks {
	if x < 1 || x > int(Special) {
		panic(fmt.Sprintf("invalid throw %d", x))
	}
	return Sticks(x)
}

// Outcome is one throw value together with its probability.
type Outcome struct {
	Probability float64
	Sticks      Sticks
}

// Throw draws four fair sticks from r.
func Throw(r *rand.Rand) Sticks {
	up := 0
	for i := 0; i < NumSticks; i++ {
		up += r.Intn(2)
	}
	if up == 0 {
		return Special
	}
	return Sticks(up)
}

var distribution = binomial()

// binomial weighs each face-up count k by C(NumSticks, k) / 2^NumSticks.
func binomial() []Outcome {
	total := float64(int(1) << NumSticks)
	outcomes := make([]Outcome, 0, NumSticks+1)
	choose := 1.0
	for k := 1; k <= NumSticks; k++ {
		choose = choose * float64(NumSticks-k+1) / float64(k)
		outcomes = append(outcomes, Outcome{Probability: choose / total, Sticks: Sticks(k)})
	}
	// Zero sticks up: C(n, 0) = 1
	return append(outcomes, Outcome{Probability: 1 / total, Sticks: Special})
}

// Distribution lists every throw with its probability. The probabilities sum to 1.
func Distribution() []Outcome {
	out := make([]Outcome, len(distribution))
	copy(out, distribution)
	return out
}

func (s Sticks) String() string {
	return fmt.Sprintf("%d", int(s))
}
