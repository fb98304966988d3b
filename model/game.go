package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// Game is a fixed-size Game of Life board.
//
// The grid and the alive set are kept in lock step by every mutating method:
// a position is in the alive set exactly when the cell stored there is alive.
// A Game is not safe for concurrent use.
type Game struct {
	dims       Dimensions
	grid       [][]Cell
	alive      map[Position]struct{}
	generation uint64
	pool       *PositionPool
}

// OfSize creates a game with every cell dead. Negative dimensions are treated as zero.
func OfSize(height, width int) *Game {
	height, width = max(0, height), max(0, width)
	grid := make([][]Cell, height)
	for i := range grid {
		grid[i] = make([]Cell, width)
	}
	return &Game{
		dims:  Dimensions{Height: height, Width: width},
		grid:  grid,
		alive: make(map[Position]struct{}),
	}
}

// FromSizeAndCells creates a game and gives life to each seed position in order.
// The first out of bounds seed aborts construction and no game is returned.
func FromSizeAndCells(height, width int, seed []Position) (*Game, error) {
	g := OfSize(height, width)
	if err := g.GiveLifeList(seed); err != nil {
		return nil, errors.Wrap(err, "[FromSizeAndCells] invalid seed")
	}
	return g, nil
}

// SetPool makes Next draw its scratch buffers from p. A nil pool allocates per call.
func (g *Game) SetPool(p *PositionPool) {
	g.pool = p
}

// Dimensions returns the height and width of the grid
func (g *Game) Dimensions() Dimensions {
	return g.dims
}

// Generation returns how many times Next has been called
func (g *Game) Generation() uint64 {
	return g.generation
}

// InBounds reports whether pos addresses a cell of the grid
func (g *Game) InBounds(pos Position) bool {
	return g.dims.Contains(pos)
}

// IsAlive reports whether pos holds a living cell. Out of bounds positions are dead.
func (g *Game) IsAlive(pos Position) bool {
	_, ok := g.alive[pos]
	return ok
}

// CellAt returns the cell stored at pos
func (g *Game) CellAt(pos Position) (Cell, error) {
	if !g.InBounds(pos) {
		return Cell{}, outOfBounds(pos, g.dims)
	}
	return g.grid[pos.Row][pos.Col], nil
}

// Population returns the number of living cells
func (g *Game) Population() int {
	return len(g.alive)
}

// AliveCells returns a row-major sorted copy of the living positions
func (g *Game) AliveCells() []Position {
	cells := make([]Position, 0, len(g.alive))
	for p := range g.alive {
		cells = append(cells, p)
	}
	SortPositions(cells)
	return cells
}

// GiveLife makes the cell at pos alive
func (g *Game) GiveLife(pos Position) error {
	if !g.InBounds(pos) {
		return outOfBounds(pos, g.dims)
	}
	g.grid[pos.Row][pos.Col].GiveLife()
	g.alive[pos] = struct{}{}
	return nil
}

// Kill makes the cell at pos dead
func (g *Game) Kill(pos Position) error {
	if !g.InBounds(pos) {
		return outOfBounds(pos, g.dims)
	}
	g.grid[pos.Row][pos.Col].Kill()
	delete(g.alive, pos)
	return nil
}

// ToggleCell flips the state of the cell at pos
func (g *Game) ToggleCell(pos Position) error {
	if g.IsAlive(pos) {
		return g.Kill(pos)
	}
	return g.GiveLife(pos)
}

// GiveLifeList gives life to each position in order, stopping at the first failure.
// Positions before the failing one stay alive.
func (g *Game) GiveLifeList(positions []Position) error {
	for i, p := range positions {
		if err := g.GiveLife(p); err != nil {
			return errors.Wrapf(err, "[GiveLifeList] position %d", i)
		}
	}
	return nil
}

// KillList kills each position in order, stopping at the first failure.
// Positions before the failing one stay dead.
func (g *Game) KillList(positions []Position) error {
	for i, p := range positions {
		if err := g.Kill(p); err != nil {
			return errors.Wrapf(err, "[KillList] position %d", i)
		}
	}
	return nil
}

// Genocide kills every living cell
func (g *Game) Genocide() {
	for p := range g.alive {
		g.grid[p.Row][p.Col].Kill()
	}
	clear(g.alive)
}

// LiveNeighbors counts the living cells in the Moore neighbourhood of pos.
// Neighbours outside the grid are never counted; the board does not wrap.
func (g *Game) LiveNeighbors(pos Position) int {
	count := 0

	minRow := max(0, pos.Row-1)
	maxRow := min(g.dims.Height-1, pos.Row+1)
	minCol := max(0, pos.Col-1)
	maxCol := min(g.dims.Width-1, pos.Col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == pos.Row && c == pos.Col {
				continue
			}
			if g.grid[r][c].IsAlive() {
				count++
			}
		}
	}

	return count
}

// Next advances the board by one generation.
//
// Every cell is classified against the current generation before any cell
// changes, then deaths and births are applied.
func (g *Game) Next() {
	toDie, toLive := g.pool.Get(), g.pool.Get()
	defer g.pool.Put(toDie)
	defer g.pool.Put(toLive)

	for r := range g.dims.Height {
		for c := range g.dims.Width {
			p := Position{Row: r, Col: c}
			switch rules.Classify(g.LiveNeighbors(p), g.grid[r][c].IsAlive()) {
			case rules.Die:
				*toDie = append(*toDie, p)
			case rules.Live:
				*toLive = append(*toLive, p)
			}
		}
	}

	for _, p := range *toDie {
		g.grid[p.Row][p.Col].Kill()
		delete(g.alive, p)
	}
	for _, p := range *toLive {
		g.grid[p.Row][p.Col].GiveLife()
		g.alive[p] = struct{}{}
	}

	g.generation++
}
