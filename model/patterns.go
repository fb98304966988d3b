package model

import (
	"math/rand/v2"

	"github.com/sheikhrachel/go-life/utils"
)

// Glider returns the five cells of a south-east travelling glider whose
// bounding box starts at origin
func Glider(origin Position) []Position {
	return []Position{
		origin.Offset(0, 1),
		origin.Offset(1, 2),
		origin.Offset(2, 0),
		origin.Offset(2, 1),
		origin.Offset(2, 2),
	}
}

// Blinker returns a horizontal period-2 oscillator starting at origin
func Blinker(origin Position) []Position {
	return []Position{
		origin,
		origin.Offset(0, 1),
		origin.Offset(0, 2),
	}
}

// NewRand returns a deterministic generator for the given seed
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// GiveLifeClipped gives life to the positions that fall inside the grid and
// skips the rest. It returns how many cells were placed.
func (g *Game) GiveLifeClipped(positions []Position) int {
	placed := 0
	for _, p := range positions {
		if g.GiveLife(p) == nil {
			placed++
		}
	}
	return placed
}

// Randomize gives life to each cell with probability density
func (g *Game) Randomize(density float64, rng *rand.Rand) {
	for r := range g.dims.Height {
		for c := range g.dims.Width {
			if rng.Float64() < density {
				// in bounds by construction
				_ = g.GiveLife(Position{Row: r, Col: c})
			}
		}
	}
}

// InjectRandomLife adds some random cells to break stagnation
func (g *Game) InjectRandomLife(count int, rng *rand.Rand) {
	if g.dims.Area() == 0 {
		return
	}
	for range count {
		_ = g.GiveLife(Position{Row: rng.IntN(g.dims.Height), Col: rng.IntN(g.dims.Width)})
	}
}

// ResetWithInterestingPatterns clears the board and adds various interesting patterns
func (g *Game) ResetWithInterestingPatterns(config utils.Config, rng *rand.Rand) {
	g.Genocide()

	h, w := g.dims.Height, g.dims.Width
	if w >= 10 && h >= 10 {
		g.GiveLifeClipped(Glider(Pos(5, 5)))
		if w >= 20 && h >= 15 {
			g.GiveLifeClipped(Glider(Pos(5, w-8)))
		}

		g.GiveLifeClipped(Blinker(Pos(h/4, w/4)))
		if w >= 30 {
			g.GiveLifeClipped(Blinker(Pos(3*h/4, 3*w/4)))
		}
	}

	g.Randomize(config.RandomDensity, rng)
}
