package app

import (
	"encoding/json"
	"flag"
	"os"

	"cgol/internal/core"

	"github.com/pkg/errors"
)

// Config represents the start-time parameters for the application.
type Config struct {
	GridW   int    `json:"grid_width"`
	GridH   int    `json:"grid_height"`
	WindowW int    `json:"window_width"`
	WindowH int    `json:"window_height"`
	TPS     int    `json:"tps"`
	Seed    int64  `json:"seed"`
	HUD     bool   `json:"hud"`
	Title   string `json:"title"`
}

// NewConfig returns a Config populated with the defaults: an 80x80 grid in
// an 800x800 window advancing 10 generations per second.
func NewConfig() *Config {
	return &Config{
		GridW:   80,
		GridH:   80,
		WindowW: 800,
		WindowH: 800,
		TPS:     10,
		Title:   "Conway's Game of Life",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	c.BindGrid(fs)
	fs.IntVar(&c.WindowW, "window-w", c.WindowW, "window width in pixels")
	fs.IntVar(&c.WindowH, "window-h", c.WindowH, "window height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show generation and population overlay")
	fs.StringVar(&c.Title, "title", c.Title, "window title")
}

// BindGrid attaches only the grid dimensions and seed, for runs without a
// window.
func (c *Config) BindGrid(fs *flag.FlagSet) {
	fs.IntVar(&c.GridW, "grid-w", c.GridW, "grid width in cells")
	fs.IntVar(&c.GridH, "grid-h", c.GridH, "grid height in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial board (0 derives one from the clock)")
}

// LoadFile overlays values from a JSON file onto c. Keys absent from the
// file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %s", path)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %s", path)
	}
	return nil
}

// ValidateGrid checks that the grid keeps at least one interior cell.
func (c *Config) ValidateGrid() error {
	if c.GridW < 3 || c.GridH < 3 {
		return errors.Errorf("grid %dx%d too small: need at least 3x3 for an interior cell", c.GridW, c.GridH)
	}
	return nil
}

// Validate checks the configuration once at start-up.
func (c *Config) Validate() error {
	if err := c.ValidateGrid(); err != nil {
		return err
	}
	if c.WindowW <= 0 || c.WindowH <= 0 {
		return errors.Errorf("window %dx%d must have positive dimensions", c.WindowW, c.WindowH)
	}
	if c.WindowW%c.GridW != 0 || c.WindowH%c.GridH != 0 {
		return errors.Errorf("window %dx%d is not divisible by grid %dx%d", c.WindowW, c.WindowH, c.GridW, c.GridH)
	}
	if c.TPS <= 0 {
		return errors.Errorf("tps must be positive, got %d", c.TPS)
	}
	return nil
}

// CellSize returns the pixel dimensions of a single cell.
func (c *Config) CellSize() (w, h int) {
	return c.WindowW / c.GridW, c.WindowH / c.GridH
}

// WindowTitle combines the configured title with the simulation name.
func (c *Config) WindowTitle(name string) string {
	if name == "" {
		return c.Title
	}
	if c.Title == "" {
		return name
	}
	return c.Title + " — " + name
}

// ResolveSeed replaces a zero seed with one derived from the clock and
// returns the seed in effect.
func (c *Config) ResolveSeed() int64 {
	if c.Seed == 0 {
		c.Seed = core.NewSeed()
	}
	return c.Seed
}
