package main

import (
	"reflect"
	"testing"

	"github.com/lgbarn/chess-ai-go/internal/config"
)

// saveRestore sets a flag value and returns a func restoring the old one.
// Usage: defer saveRestore(noBook, true)()
func saveRestore[T any](ptr *T, val T) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyAIFlags(t *testing.T) {
	t.Run("unseeded by default", func(t *testing.T) {
		defer saveRestore(seed, int64(-1))()
		cfg := config.NewConfig()
		applyAIFlags(cfg)
		if cfg.AI.Seeded {
			t.Error("Seeded = true; want false")
		}
	})

	t.Run("seed", func(t *testing.T) {
		defer saveRestore(seed, int64(7))()
		cfg := config.NewConfig()
		applyAIFlags(cfg)
		if !cfg.AI.Seeded || cfg.AI.Seed != 7 {
			t.Errorf("Seeded, Seed = %v, %d; want true, 7", cfg.AI.Seeded, cfg.AI.Seed)
		}
	})

	t.Run("tier and tables", func(t *testing.T) {
		defer saveRestore(tier, "impossible")()
		defer saveRestore(noBook, true)()
		defer saveRestore(noTB, false)()
		defer saveRestore(delayScale, 0.5)()
		defer saveRestore(batchSize, 32)()
		cfg := config.NewConfig()
		applyAIFlags(cfg)
		if cfg.AI.Tier != "impossible" {
			t.Errorf("Tier = %q; want impossible", cfg.AI.Tier)
		}
		if cfg.AI.OpeningBook {
			t.Error("OpeningBook = true; want false")
		}
		if !cfg.AI.Tablebase {
			t.Error("Tablebase = false; want true")
		}
		if cfg.AI.DelayScale != 0.5 || cfg.AI.BatchSize != 32 {
			t.Errorf("DelayScale, BatchSize = %v, %d; want 0.5, 32", cfg.AI.DelayScale, cfg.AI.BatchSize)
		}
	})
}

func TestApplyMatchFlags(t *testing.T) {
	t.Run("workers default to the config", func(t *testing.T) {
		defer saveRestore(workers, 0)()
		cfg := config.NewConfig()
		want := cfg.Match.Workers
		applyMatchFlags(cfg)
		if cfg.Match.Workers != want {
			t.Errorf("Workers = %d; want %d", cfg.Match.Workers, want)
		}
	})

	t.Run("players and limits", func(t *testing.T) {
		defer saveRestore(white, "easy")()
		defer saveRestore(black, "nightmare")()
		defer saveRestore(workers, 3)()
		defer saveRestore(games, 6)()
		defer saveRestore(maxPlies, 80)()
		defer saveRestore(noAlternate, true)()
		cfg := config.NewConfig()
		applyMatchFlags(cfg)

		got := *cfg.Match
		want := config.MatchConfig{
			Workers:   3,
			Games:     6,
			MaxPlies:  80,
			White:     "easy",
			Black:     "nightmare",
			Alternate: false,
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("MatchConfig = %+v; want %+v", got, want)
		}
	})
}

func TestApplyFlags_Verbosity(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		quiet     bool
		want      int
	}{
		{"default", 1, false, 1},
		{"debug", 2, false, 2},
		{"quiet wins", 2, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestore(verbosity, tt.verbosity)()
			defer saveRestore(quiet, tt.quiet)()
			cfg := config.NewConfig()
			applyFlags(cfg)
			if cfg.Verbosity != tt.want {
				t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, tt.want)
			}
		})
	}
}

func TestSplitMoves(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"e2e4", []string{"e2e4"}},
		{"e2e4 e7e5", []string{"e2e4", "e7e5"}},
		{"e2e4,e7e5, g1f3", []string{"e2e4", "e7e5", "g1f3"}},
		{"  a7a8q\t", []string{"a7a8q"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := splitMoves(tt.in)
			if len(got) != len(tt.want) || (len(got) > 0 && !reflect.DeepEqual(got, tt.want)) {
				t.Errorf("splitMoves(%q) = %v; want %v", tt.in, got, tt.want)
			}
		})
	}
}
