package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Board layout. Every cell is a dense index; zones are contiguous ranges.
//
//	0 | 1 2 3 4 5 | 6 7 8 9 10 | 11 ...
//	          a0           b0
//	          a1           b1
//	          a2           b2
//	30 f2 f1 f0 C
//	          d0
//	          d1
//	          d2
//	          20
//
// Near shortcuts a, b, c (paths 0-2) leave the route at 5, 10 and 15 and meet
// at the center C. From there the far shortcuts d, e, f (paths 3-5) lead back
// onto the route at 20, 25 and 30.
const (
	startIndex = 0
	onStart    = 1

	routeIndex = startIndex + onStart
	onArc      = 5
	numArcs    = 6
	onRoute    = onArc * numArcs

	goalIndex = routeIndex + onRoute
	onGoal    = 1

	shortcutIndex = goalIndex + onGoal
	numShortcuts  = 6
	NearShortcuts = numShortcuts / 2
	onShortcut    = 3

	centerIndex = shortcutIndex + numShortcuts*onShortcut
	onCenter    = 1

	NumPositions = centerIndex + onCenter
)

type Zone int

const (
	ZoneStart Zone = iota
	ZoneRoute
	ZoneGoal
	ZoneShortcut
	ZoneCenter
)

func (z Zone) String() string {
	switch z {
	case ZoneStart:
		return "start"
	case ZoneRoute:
		return "route"
	case ZoneGoal:
		return "goal"
	case ZoneShortcut:
		return "shortcut"
	case ZoneCenter:
		return "center"
	default:
		return fmt.Sprintf("zone(%d)", int(z))
	}
}

// Position is a cell on the board, indexed in [0, NumPositions).
type Position int

func NewPosition(x int) Position {
	if x < 0 || x >= NumPositions {
		panic(fmt.Sprintf("position %d out of range [0, %d)", x, NumPositions))
	}
	return Position(x)
}

func Start() Position  { return Position(startIndex) }
func Goal() Position   { return Position(goalIndex) }
func Center() Position { return Position(centerIndex) }

func route(x int) Position {
	if x < routeIndex || x >= goalIndex {
		panic(fmt.Sprintf("route index %d out of range", x))
	}
	return Position(x)
}

// alongRoute saturates at the goal; overshooting is not an error.
func alongRoute(x int) Position {
	if x >= goalIndex {
		return Goal()
	}
	return route(x)
}

func shortcut(path, step int) Position {
	if path < 0 || path >= numShortcuts || step < 0 || step >= onShortcut {
		panic(fmt.Sprintf("shortcut %d_%d out of range", path, step))
	}
	return Position(shortcutIndex + path*onShortcut + step)
}

// Zone classifies the cell from its index alone.
func (p Position) Zone() Zone {
	x := int(p)
	switch {
	case x == startIndex:
		return ZoneStart
	case x < goalIndex:
		return ZoneRoute
	case x == goalIndex:
		return ZoneGoal
	case x < centerIndex:
		return ZoneShortcut
	case x == centerIndex:
		return ZoneCenter
	default:
		panic(fmt.Sprintf("position %d out of range", x))
	}
}

// Shortcut returns the path and step of a shortcut cell.
func (p Position) Shortcut() (path, step int) {
	if p.Zone() != ZoneShortcut {
		panic(fmt.Sprintf("position %s is not on a shortcut", p))
	}
	offset := int(p) - shortcutIndex
	return offset / onShortcut, offset % onShortcut
}

// branch reports which near shortcut may be entered from this route cell.
func (p Position) branch() (int, bool) {
	for path := 0; path < NearShortcuts; path++ {
		if int(p) == routeIndex+(path+1)*onArc-1 {
			return path, true
		}
	}
	return 0, false
}

// alongShortcut follows a shortcut chain step cells past its first cell.
func alongShortcut(path, step int) Position {
	if path < NearShortcuts {
		switch {
		case step < onShortcut:
			return shortcut(path, step)
		case step == onShortcut:
			return Center()
		default:
			return alongShortcut(path+NearShortcuts, step-onShortcut-onCenter)
		}
	}
	if step < onShortcut {
		return shortcut(path, step)
	}
	// Far paths rejoin the route at the corner closing arc path.
	return alongRoute(routeIndex + (path+1)*onArc - 1 + step - onShortcut)
}

// Advance returns every cell a piece on p may reach with the given distance.
func (p Position) Advance(distance int) []Position {
	if distance < 1 || distance > int(Special) {
		panic(fmt.Sprintf("cannot advance %d cells", distance))
	}

	switch p.Zone() {
	case ZoneStart:
		return []Position{route(routeIndex + distance - 1)}
	case ZoneRoute:
		simple := alongRoute(int(p) + distance)
		if path, ok := p.branch(); ok {
			return []Position{simple, alongShortcut(path, distance-1)}
		}
		return []Position{simple}
	case ZoneShortcut:
		path, step := p.Shortcut()
		return []Position{alongShortcut(path, step+distance)}
	case ZoneCenter:
		to := make([]Position, 0, numShortcuts-NearShortcuts)
		for path := NearShortcuts; path < numShortcuts; path++ {
			to = append(to, alongShortcut(path, distance))
		}
		return to
	default: // Goal
		return nil
	}
}

func (p Position) String() string {
	switch p.Zone() {
	case ZoneStart:
		return "S"
	case ZoneRoute:
		return fmt.Sprintf("R%d", int(p))
	case ZoneGoal:
		return "G"
	case ZoneCenter:
		return "C"
	default:
		path, step := p.Shortcut()
		return fmt.Sprintf("K%d_%d", path, step)
	}
}

// ParsePosition reads the notation produced by String.
func ParsePosition(text string) (Position, error) {
	switch text {
	case "S":
		return Start(), nil
	case "G":
		return Goal(), nil
	case "C":
		return Center(), nil
	}

	switch {
	case strings.HasPrefix(text, "R"):
		x, err := strconv.Atoi(text[1:])
		if err != nil || x < routeIndex || x >= goalIndex {
			return 0, fmt.Errorf("invalid route cell %q", text)
		}
		return Position(x), nil
	case strings.HasPrefix(text, "K"):
		var path, step int
		n, err := fmt.Sscanf(text, "K%d_%d", &path, &step)
		if err != nil || n != 2 || path < 0 || path >= numShortcuts || step < 0 || step >= onShortcut {
			return 0, fmt.Errorf("invalid shortcut cell %q", text)
		}
		return shortcut(path, step), nil
	default:
		return 0, fmt.Errorf("unknown cell %q", text)
	}
}
