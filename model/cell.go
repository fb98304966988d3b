package model

type cellState uint8

const (
	dead cellState = iota
	alive
)

// Cell is a single square of the board. The zero value is a dead cell.
type Cell struct {
	state cellState
}

// GiveLife marks the cell alive
func (c *Cell) GiveLife() {
	c.state = alive
}

// Kill marks the cell dead
func (c *Cell) Kill() {
	c.state = dead
}

// IsAlive reports whether the cell is alive
func (c Cell) IsAlive() bool {
	return c.state == alive
}
