package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer writing to stdout
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Render draws the game as rows of blocks, one row per line
func Render(g *Game) string {
	var b strings.Builder
	b.Grow(g.dims.Height * (g.dims.Width*len(gridPosBlock) + 1))
	for r := range g.dims.Height {
		for c := range g.dims.Width {
			if g.IsAlive(Position{Row: r, Col: c}) {
				b.WriteString(gridPosBlock)
			} else {
				b.WriteString(gridPosEmpty)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Display renders the game to the terminal
func (r *TerminalRenderer) Display(g *Game) {
	if _, err := io.WriteString(r.Out, Render(g)); err != nil {
		fmt.Fprintln(os.Stderr, "Error rendering grid:", err)
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error clearing terminal:", err)
	}
}
