// Package config gathers runtime settings from flags, the environment and
// an optional .env file. Flags win over the environment, which wins over
// the .env file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"neon-snake/game/types"
)

const DefaultEnvFile = ".env"

type Config struct {
	Display   string // "raylib" or "term"
	Store     string // "file", "sqlite" or "memory"
	StorePath string
	Speed     float64 // initial ticks per second
	Seed      uint64  // 0 seeds from the clock
	GridSize  int
	GridLines bool
	Sound     bool
	LogFile   string
	LogLevel  string
}

// Load reads .env from the working directory when present, then args.
func Load(args []string) (*Config, error) {
	return LoadWithEnvFile(DefaultEnvFile, args)
}

// LoadWithEnvFile is Load with an explicit .env path. A missing file is
// not an error. godotenv never overrides variables already set.
func LoadWithEnvFile(envFile string, args []string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := &Config{}
	fs := flag.NewFlagSet("neon-snake", flag.ContinueOnError)
	fs.StringVar(&cfg.Display, "display", getEnvOrDefault("SNAKE_DISPLAY", "raylib"), "Display surface: raylib or term")
	fs.StringVar(&cfg.Store, "store", getEnvOrDefault("SNAKE_STORE", "file"), "Best score store: file, sqlite or memory")
	fs.StringVar(&cfg.StorePath, "store-path", getEnvOrDefault("SNAKE_STORE_PATH", ""), "Path of the best score file or database")
	fs.Float64Var(&cfg.Speed, "speed", getEnvFloatOrDefault("SNAKE_SPEED", types.InitialSpeed), "Initial speed in ticks per second")
	fs.Uint64Var(&cfg.Seed, "seed", getEnvUintOrDefault("SNAKE_SEED", 0), "RNG seed (0 = time based)")
	fs.IntVar(&cfg.GridSize, "grid", getEnvIntOrDefault("SNAKE_GRID", types.TileCount), "Tiles per side")
	fs.BoolVar(&cfg.GridLines, "grid-lines", getEnvBoolOrDefault("SNAKE_GRID_LINES", true), "Draw grid lines")
	fs.BoolVar(&cfg.Sound, "sound", getEnvBoolOrDefault("SNAKE_SOUND", true), "Play sound cues")
	fs.StringVar(&cfg.LogFile, "log-file", getEnvOrDefault("SNAKE_LOG_FILE", ""), "Log file (empty = stderr for raylib, discard for term)")
	fs.StringVar(&cfg.LogLevel, "log-level", getEnvOrDefault("SNAKE_LOG_LEVEL", "info"), "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	switch c.Display {
	case "raylib", "term":
	default:
		return fmt.Errorf("invalid display %q", c.Display)
	}
	switch c.Store {
	case "file", "json", "sqlite", "memory", "none":
	default:
		return fmt.Errorf("invalid store %q", c.Store)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("speed must be positive, got %v", c.Speed)
	}
	// The start strip needs room above and below the centre.
	if c.GridSize < types.MinGridSize {
		return fmt.Errorf("grid must be at least %d tiles, got %d", types.MinGridSize, c.GridSize)
	}
	return nil
}

// TickInterval is the initial wait between ticks.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.Speed)
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvUintOrDefault(key string, defaultVal uint64) uint64 {
	if val := os.Getenv(key); val != "" {
		if u, err := strconv.ParseUint(val, 10, 64); err == nil {
			return u
		}
	}
	return defaultVal
}

func getEnvFloatOrDefault(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvBoolOrDefault(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}
