package ui

import (
	"slices"
	"testing"

	"cgol/internal/core"
)

func TestStatsLines(t *testing.T) {
	got := StatsLines(core.Stats{Generation: 12, Population: 340, Seed: -5, GenerationsPerSecond: 9.96})
	want := []string{"generation 12", "population 340", "seed -5", "10.0 gen/s"}
	if !slices.Equal(got, want) {
		t.Fatalf("StatsLines = %q, want %q", got, want)
	}
}
