package core

import "time"

// Stats captures a snapshot of a running simulation for display.
type Stats struct {
	Generation           int
	Population           int
	Seed                 int64
	GenerationsPerSecond float64
}

// Update records a new generation. elapsed is the wall time since the
// previous generation; the rate is smoothed with a moving average.
func (s *Stats) Update(generation, population int, elapsed time.Duration) {
	s.Generation = generation
	s.Population = population
	if elapsed <= 0 {
		return
	}
	rate := 1.0 / elapsed.Seconds()
	if s.GenerationsPerSecond == 0 {
		s.GenerationsPerSecond = rate
		return
	}
	s.GenerationsPerSecond = s.GenerationsPerSecond*0.9 + rate*0.1
}
