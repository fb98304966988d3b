package model

import (
	"fmt"
	"slices"
)

// Position identifies a cell by row and column
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for Position{Row: row, Col: col}
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Offset returns the position shifted by dr rows and dc columns
func (p Position) Offset(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Dimensions is the fixed size of a grid
type Dimensions struct {
	Height int
	Width  int
}

func (d Dimensions) String() string {
	return fmt.Sprintf("(%d, %d)", d.Height, d.Width)
}

// Area returns the number of cells in the grid
func (d Dimensions) Area() int {
	return d.Height * d.Width
}

// Contains reports whether p lies in [0, Height) x [0, Width)
func (d Dimensions) Contains(p Position) bool {
	return p.Row >= 0 && p.Row < d.Height && p.Col >= 0 && p.Col < d.Width
}

// SortPositions orders positions row-major in place
func SortPositions(ps []Position) {
	slices.SortFunc(ps, func(a, b Position) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
}
