package utils

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	ActiveCells          int
	Density              float64

	printer *message.Printer
}

func NewStats() *Stats {
	return &Stats{
		StartTime: time.Now(),
		printer:   message.NewPrinter(language.English),
	}
}

// Update records one frame. area is the number of cells on the board.
func (s *Stats) Update(generation, population, area int, duration time.Duration) {
	s.TotalGenerations = generation
	s.ActiveCells = population
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}
	if area > 0 {
		s.Density = float64(population) / float64(area) * 100
	} else {
		s.Density = 0
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Summary formats the performance line shown under the board
func (s *Stats) Summary(now time.Time) string {
	return s.printer.Sprintf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs",
		s.GenerationsPerSecond, s.AveragePopulation, now.Sub(s.StartTime).Seconds())
}

// Status formats the generation line shown above the board
func (s *Stats) Status(label string) string {
	return s.printer.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s",
		s.TotalGenerations, s.ActiveCells, s.Density, label)
}
