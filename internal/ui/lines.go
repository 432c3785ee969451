package ui

import (
	"fmt"

	"cgol/internal/core"
)

// StatsLines formats a stats snapshot for the overlay, one entry per line.
func StatsLines(s core.Stats) []string {
	return []string{
		fmt.Sprintf("generation %d", s.Generation),
		fmt.Sprintf("population %d", s.Population),
		fmt.Sprintf("seed %d", s.Seed),
		fmt.Sprintf("%.1f gen/s", s.GenerationsPerSecond),
	}
}
