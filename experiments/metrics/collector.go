package metrics

import (
	"sync/atomic"
	"time"

	"yut/game"
)

type SearchMetric struct {
	Goroutines int
	Duration   time.Duration
	Ply        int
	Rollouts   int
	Nodes      int // Expanded search nodes
	Playouts   int // Completed rollout games
	Episodes   int // Tree search iterations
}

type MoveMetric struct {
	Step   int
	Player game.Side
	Sticks game.Sticks
	Move   string // Empty when the throw had no legal move
	Hash   game.StateHash
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Side
	Winner         game.Side
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector is shared by concurrent searches and must be safe for concurrent use.
type Collector interface {
	Start(goroutines, ply, rollouts int)
	AddNode()
	AddPlayout()
	AddEpisode()
	Complete() SearchMetric
}

type collector struct {
	goroutines int
	ply        int
	rollouts   int
	startTime  time.Time
	nodes      atomic.Int64
	playouts   atomic.Int64
	episodes   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, ply, rollouts int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.ply = ply
	m.rollouts = rollouts
	m.nodes.Store(0)
	m.playouts.Store(0)
	m.episodes.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddPlayout() {
	m.playouts.Add(1)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Ply:        m.ply,
		Rollouts:   m.rollouts,
		Nodes:      int(m.nodes.Load()),
		Playouts:   int(m.playouts.Load()),
		Episodes:   int(m.episodes.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, ply, rollouts int) {}
func (m *dummyCollector) AddNode()                            {}
func (m *dummyCollector) AddPlayout()                         {}
func (m *dummyCollector) AddEpisode()                         {}
func (m *dummyCollector) Complete() SearchMetric              { return SearchMetric{} }
