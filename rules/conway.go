package rules

// Transition is what happens to a cell between two generations
type Transition uint8

const (
	// Keep leaves the cell in its current state
	Keep Transition = iota
	// Die kills a living cell (underpopulation or overpopulation)
	Die
	// Live brings a dead cell to life (reproduction)
	Live
)

func (t Transition) String() string {
	switch t {
	case Die:
		return "die"
	case Live:
		return "live"
	default:
		return "keep"
	}
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Classify reports the transition a cell takes given its live neighbour count.
// Die is only returned for living cells and Live only for dead ones.
func Classify(neighbors int, alive bool) Transition {
	next := ApplyConwayRules(neighbors, alive)
	switch {
	case alive && !next:
		return Die
	case !alive && next:
		return Live
	default:
		return Keep
	}
}
