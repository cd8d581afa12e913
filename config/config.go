// Package config resolves the session configuration captured before the first game.
//
// Values are layered: built-in defaults, then an optional .env file, then the
// process environment, then command-line flags. Invalid values never abort
// start-up; they fall back to the layer below with a log line.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPlayerName = "Player"
	DefaultSpeed      = 150 * time.Millisecond
	DefaultGrowth     = 2
	DefaultScoresFile = "data/highscores.json"
	DefaultLogDir     = "logs"
	DefaultEnvFile    = ".env"
	DefaultCellSize   = 20
	MaxNameLength     = 16
)

// Environment variables read by Load
const (
	EnvPlayer     = "SNAKE_PLAYER"
	EnvDifficulty = "SNAKE_DIFFICULTY"
	EnvSpeed      = "SNAKE_SPEED_MS"
	EnvGrowth     = "SNAKE_GROWTH"
	EnvScores     = "SNAKE_SCORES"
	EnvSeed       = "SNAKE_SEED"
	EnvDebug      = "SNAKE_DEBUG"
)

// Session holds the player name and difficulty fixed before play starts
type Session struct {
	PlayerName    string
	InitialSpeed  time.Duration
	GrowthPerFood int
}

// DefaultSession returns the medium preset for "Player"
func DefaultSession() Session {
	return Session{
		PlayerName:    DefaultPlayerName,
		InitialSpeed:  DefaultSpeed,
		GrowthPerFood: DefaultGrowth,
	}
}

// Normalize replaces blank or out of range fields with defaults
func (s Session) Normalize() Session {
	s.PlayerName = CleanName(s.PlayerName)
	if s.InitialSpeed <= 0 {
		s.InitialSpeed = DefaultSpeed
	}
	if s.GrowthPerFood <= 0 {
		s.GrowthPerFood = DefaultGrowth
	}
	return s
}

// WithDifficulty copies the preset's speed and growth into the session
func (s Session) WithDifficulty(d Difficulty) Session {
	s.InitialSpeed = d.Speed
	s.GrowthPerFood = d.Growth
	return s
}

// CleanName trims and caps a player name, defaulting to "Player"
func CleanName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultPlayerName
	}
	if r := []rune(name); len(r) > MaxNameLength {
		name = string(r[:MaxNameLength])
	}
	return name
}

// Config is everything a driver needs to start
type Config struct {
	Session     Session
	Difficulty  string
	ScoresFile  string
	Seed        uint64
	Debug       bool
	LogDir      string
	CellSize    int
	SkipWelcome bool
}

func defaults() Config {
	return Config{
		Session:    DefaultSession(),
		Difficulty: Medium.Name,
		ScoresFile: DefaultScoresFile,
		LogDir:     DefaultLogDir,
		CellSize:   DefaultCellSize,
	}
}

// Load builds a Config from envFile (missing is fine), the environment and args.
// Only malformed command lines are reported as errors.
func Load(args []string, envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Printf("config: ignoring %s: %v", envFile, err)
		}
	}

	cfg := defaults()
	env := cfg.applyEnv()

	flags := flag.NewFlagSet("gridsnake", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	name := flags.String("name", cfg.Session.PlayerName, "Player name shown on the leaderboard")
	difficulty := flags.String("difficulty", cfg.Difficulty, "Difficulty preset: easy, medium, hard")
	speedMs := flags.Int("speed", 0, "Initial step interval in milliseconds (overrides difficulty)")
	growth := flags.Int("growth", 0, "Segments gained per food (overrides difficulty)")
	seed := flags.Uint64("seed", cfg.Seed, "Food placement seed (0 = time based)")
	flags.StringVar(&cfg.ScoresFile, "scores", cfg.ScoresFile, "High score file")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Write logs to the log directory")
	flags.StringVar(&cfg.LogDir, "logdir", cfg.LogDir, "Log directory used with -debug")
	flags.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "Cell size in pixels")
	flags.BoolVar(&cfg.SkipWelcome, "skip-welcome", cfg.SkipWelcome, "Start immediately with the configured session")
	if err := flags.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	// Preset first, explicit speed/growth from env or flags on top.
	preset, ok := ParseDifficulty(*difficulty)
	if !ok {
		log.Printf("config: unknown difficulty %q, using %s", *difficulty, Medium.Name)
		preset = Medium
	}
	cfg.Difficulty = preset.Name
	cfg.Session = cfg.Session.WithDifficulty(preset)
	cfg.Session.PlayerName = *name

	if env.speed > 0 {
		cfg.Session.InitialSpeed = env.speed
	}
	if env.growth > 0 {
		cfg.Session.GrowthPerFood = env.growth
	}
	if *speedMs > 0 {
		cfg.Session.InitialSpeed = time.Duration(*speedMs) * time.Millisecond
	}
	if *growth > 0 {
		cfg.Session.GrowthPerFood = *growth
	}

	cfg.Seed = *seed
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if cfg.CellSize <= 0 {
		cfg.CellSize = DefaultCellSize
	}

	cfg.Session = cfg.Session.Normalize()
	return cfg, nil
}

// envOverrides are difficulty values that must win over the preset
type envOverrides struct {
	speed  time.Duration
	growth int
}

func (cfg *Config) applyEnv() envOverrides {
	var env envOverrides
	if v := os.Getenv(EnvPlayer); v != "" {
		cfg.Session.PlayerName = v
	}
	if v := os.Getenv(EnvDifficulty); v != "" {
		cfg.Difficulty = v
	}
	if v := os.Getenv(EnvSpeed); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			env.speed = time.Duration(ms) * time.Millisecond
		} else {
			log.Printf("config: ignoring %s=%q", EnvSpeed, v)
		}
	}
	if v := os.Getenv(EnvGrowth); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			env.growth = n
		} else {
			log.Printf("config: ignoring %s=%q", EnvGrowth, v)
		}
	}
	if v := os.Getenv(EnvScores); v != "" {
		cfg.ScoresFile = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = n
		} else {
			log.Printf("config: ignoring %s=%q", EnvSeed, v)
		}
	}
	if v := os.Getenv(EnvDebug); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		}
	}
	return env
}
