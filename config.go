package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is resolved once at startup: environment first, then flag
// overrides for interactive tuning.
type Config struct {
	GridSize          int           `env:"SNAKE_GRID_SIZE" envDefault:"20"`
	MoveInterval      time.Duration `env:"SNAKE_MOVE_INTERVAL" envDefault:"200ms"`
	CountdownInterval time.Duration `env:"SNAKE_COUNTDOWN_INTERVAL" envDefault:"1s"`
	DataDir           string        `env:"SNAKE_DATA_DIR" envDefault:"data"`
	Seed              uint64        `env:"SNAKE_SEED" envDefault:"0"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	speed := flag.Int("speed", int(cfg.MoveInterval/time.Millisecond), "Movement tick interval in milliseconds (lower = faster)")
	flag.IntVar(&cfg.GridSize, "grid", cfg.GridSize, "Grid size in cells")
	flag.StringVar(&cfg.DataDir, "data", cfg.DataDir, "Directory holding the saved high score")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Food RNG seed (0 = time-based)")
	flag.Parse()

	cfg.MoveInterval = time.Duration(*speed) * time.Millisecond

	if cfg.GridSize <= 0 {
		return Config{}, fmt.Errorf("grid size must be positive, got %d", cfg.GridSize)
	}
	if cfg.MoveInterval <= 0 || cfg.CountdownInterval <= 0 {
		return Config{}, fmt.Errorf("tick intervals must be positive")
	}
	return cfg, nil
}
