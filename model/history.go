package model

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

const historySize = 5

// History remembers the fingerprints of recent generations for cycle detection
type History struct {
	hashes []uint64
}

// Fingerprint hashes the dimensions and the sorted alive set of g
func Fingerprint(g *Game) uint64 {
	d := xxhash.New()
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(g.dims.Height))
	binary.LittleEndian.PutUint64(buf[8:], uint64(g.dims.Width))
	_, _ = d.Write(buf[:])
	for _, p := range g.AliveCells() {
		binary.LittleEndian.PutUint64(buf[:8], uint64(p.Row))
		binary.LittleEndian.PutUint64(buf[8:], uint64(p.Col))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

// Record adds the current state of g and drops anything older than the last five
func (h *History) Record(g *Game) {
	h.hashes = append(h.hashes, Fingerprint(g))
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// Reset forgets every recorded generation
func (h *History) Reset() {
	h.hashes = nil
}

// Len returns the number of recorded generations
func (h *History) Len() int {
	return len(h.hashes)
}

// IsStagnant reports whether g repeats one of the last three recorded states,
// which covers still lifes and oscillators of period up to three
func (h *History) IsStagnant(g *Game) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := Fingerprint(g)
	for back := 1; back <= 3; back++ {
		if h.hashes[len(h.hashes)-back] == current {
			return true
		}
	}
	return false
}
