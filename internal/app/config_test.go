package app

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if w, h := cfg.CellSize(); w != 10 || h != 10 {
		t.Fatalf("CellSize() = %dx%d, want 10x10", w, h)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"narrow grid", func(c *Config) { c.GridW = 2; c.WindowW = 800 }, "too small"},
		{"short grid", func(c *Config) { c.GridH = 1 }, "too small"},
		{"empty window", func(c *Config) { c.WindowH = 0 }, "positive"},
		{"not divisible", func(c *Config) { c.WindowW = 805 }, "not divisible"},
		{"zero tps", func(c *Config) { c.TPS = 0 }, "tps"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestBindFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-grid-w", "40", "-tps", "30", "-seed", "9", "-hud"}); err != nil {
		t.Fatal(err)
	}
	if cfg.GridW != 40 || cfg.GridH != 80 || cfg.TPS != 30 || cfg.Seed != 9 || !cfg.HUD {
		t.Fatalf("unexpected config after parse: %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cgol.json")
	if err := os.WriteFile(path, []byte(`{"grid_width": 20, "window_width": 400, "seed": 5}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := NewConfig()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.GridW != 20 || cfg.WindowW != 400 || cfg.Seed != 5 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.GridH != 80 || cfg.TPS != 10 {
		t.Fatalf("absent keys must keep defaults: %+v", cfg)
	}

	if err := cfg.LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("missing file must fail")
	}
	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := cfg.LoadFile(bad); err == nil || !strings.Contains(err.Error(), "unmarshal") {
		t.Fatalf("malformed file error = %v", err)
	}
}

func TestResolveSeed(t *testing.T) {
	cfg := NewConfig()
	cfg.Seed = 42
	if cfg.ResolveSeed() != 42 {
		t.Fatal("explicit seed must be kept")
	}
	cfg.Seed = 0
	if seed := cfg.ResolveSeed(); seed == 0 || cfg.Seed != seed {
		t.Fatalf("zero seed not replaced: %d", seed)
	}
}

func TestBindGridOnly(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("headless", flag.ContinueOnError)
	cfg.BindGrid(fs)
	if err := fs.Parse([]string{"-grid-w", "12", "-grid-h", "2", "-seed", "4"}); err != nil {
		t.Fatal(err)
	}
	if cfg.GridW != 12 || cfg.GridH != 2 || cfg.Seed != 4 {
		t.Fatalf("unexpected config after parse: %+v", cfg)
	}
	if fs.Lookup("tps") != nil || fs.Lookup("window-w") != nil {
		t.Fatal("BindGrid must not register window flags")
	}
	if err := cfg.ValidateGrid(); err == nil || !strings.Contains(err.Error(), "too small") {
		t.Fatalf("ValidateGrid() = %v, want too small", err)
	}
	cfg.GridH = 3
	cfg.WindowW = 7
	if err := cfg.ValidateGrid(); err != nil {
		t.Fatalf("ValidateGrid must ignore window settings: %v", err)
	}
}

func TestWindowTitle(t *testing.T) {
	cfg := NewConfig()
	if got := cfg.WindowTitle("life"); got != "Conway's Game of Life — life" {
		t.Fatalf("WindowTitle = %q", got)
	}
	if got := cfg.WindowTitle(""); got != cfg.Title {
		t.Fatalf("WindowTitle without name = %q", got)
	}
	cfg.Title = ""
	if got := cfg.WindowTitle("life"); got != "life" {
		t.Fatalf("WindowTitle without title = %q", got)
	}
}
