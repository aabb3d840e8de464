package searcher

// Use rewards to estimate the chance of winning
const Win = 1.0
const Loss = 1 - Win

// Defaults taken by the ranker when no option overrides them
const (
	DefaultPly      = 3
	DefaultRollouts = 10
	DefaultEpisodes = 200
)

// CSquared is the squared UCT exploration constant
const CSquared = 2.0
