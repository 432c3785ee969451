package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"cgol/internal/app"
	"cgol/internal/render"
	"cgol/internal/sims/life"

	"github.com/pkg/errors"
)

type options struct {
	steps     int
	every     int
	pattern   string
	printGrid bool
}

func main() {
	cfg := app.NewConfig()
	cfg.BindGrid(flag.CommandLine)
	var opts options
	flag.IntVar(&opts.steps, "steps", 100, "number of generations to simulate")
	flag.IntVar(&opts.every, "every", 10, "print stats every N generations (0 disables)")
	flag.StringVar(&opts.pattern, "pattern", "", "start from an empty board with a centered pattern: "+strings.Join(life.PatternNames(), ", "))
	flag.BoolVar(&opts.printGrid, "print", false, "print the final grid as text")
	flag.Parse()

	if err := run(cfg, opts, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run builds the board, drives it through the shared frame loop and reports
// progress to out. The seed is only reported when it built the board.
func run(cfg *app.Config, opts options, out io.Writer) error {
	if err := cfg.ValidateGrid(); err != nil {
		return err
	}

	sim := life.New(cfg.GridW, cfg.GridH)
	if opts.pattern != "" {
		p, ok := life.Lookup(opts.pattern)
		if !ok {
			return errors.Errorf("unknown pattern %q", opts.pattern)
		}
		sim.Place(p, cfg.GridH/2-1, cfg.GridW/2-1)
		fmt.Fprintf(out, "pattern=%s size=%dx%d population=%d\n", p.Name, cfg.GridW, cfg.GridH, sim.Population())
	} else {
		sim.Reset(cfg.ResolveSeed())
		fmt.Fprintf(out, "seed=%d size=%dx%d population=%d\n", cfg.Seed, cfg.GridW, cfg.GridH, sim.Population())
	}

	loop := app.NewLoop(sim, render.DefaultColors())
	for i := 0; i < opts.steps; i++ {
		if err := loop.Tick(false); err != nil {
			return err
		}
		stats := loop.Stats()
		if opts.every > 0 && stats.Generation%opts.every == 0 {
			fmt.Fprintf(out, "gen=%d population=%d rate=%.0f/s\n", stats.Generation, stats.Population, stats.GenerationsPerSecond)
		}
	}

	if opts.printGrid {
		return render.WriteText(out, sim.Current())
	}
	return nil
}
