//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"cgol/internal/app"
	"cgol/internal/render"
	"cgol/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	configPath := flag.String("config", "", "optional JSON config file applied before flags")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			log.Fatal(err)
		}
		// Flags given explicitly win over the file.
		flag.Parse()
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	seed := cfg.ResolveSeed()
	log.Printf("starting %dx%d grid at %d gen/s, seed %d", cfg.GridW, cfg.GridH, cfg.TPS, seed)

	sim := life.New(cfg.GridW, cfg.GridH)
	sim.Reset(seed)

	app.Configure(cfg, sim.Name())
	game := app.New(app.NewLoop(sim, render.DefaultColors()), cfg)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
