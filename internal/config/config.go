package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Frontends
const (
	FrontendTerminal = "term"
	FrontendWindow   = "window"
)

// Default values for configuration
const (
	DefaultFrontend = FrontendTerminal
	DefaultLogPath  = "logs/pong.log"
)

// Environment variables that override the defaults
const (
	EnvFrontend = "PONG_FRONTEND"
	EnvSfxDir   = "PONG_SFX_DIR"
	EnvMute     = "PONG_MUTE"
	EnvDebug    = "PONG_DEBUG"
	EnvLogPath  = "PONG_LOG"
)

// Config holds the application configuration
type Config struct {
	Frontend    string
	SfxDir      string
	Mute        bool
	LegacyInput bool
	Debug       bool
	LogPath     string
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Frontend: DefaultFrontend,
		SfxDir:   "sfx",
		LogPath:  DefaultLogPath,
	}
}

// Load reads an optional .env file and the PONG_* environment, then parses args on top
func Load(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	defaults, err := FromEnv(Default())
	if err != nil {
		return nil, err
	}
	return parse(args, defaults)
}

// FromEnv applies PONG_* environment variables to base
func FromEnv(base Config) (Config, error) {
	cfg := base
	if v := os.Getenv(EnvFrontend); v != "" {
		cfg.Frontend = v
	}
	if v, ok := os.LookupEnv(EnvSfxDir); ok {
		cfg.SfxDir = v
	}
	if v := os.Getenv(EnvLogPath); v != "" {
		cfg.LogPath = v
	}

	var err error
	if cfg.Mute, err = envBool(EnvMute, cfg.Mute); err != nil {
		return cfg, err
	}
	if cfg.Debug, err = envBool(EnvDebug, cfg.Debug); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func envBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%s must be a boolean, got %q", key, v)
	}
	return b, nil
}

func parse(args []string, defaults Config) (*Config, error) {
	flags := flag.NewFlagSet("pong", flag.ContinueOnError)

	frontend := flags.String("frontend", defaults.Frontend, "frontend to use (term or window)")
	sfx := flags.String("sfx", defaults.SfxDir, "directory with paddle.mp3, wall.mp3 and score.mp3")
	mute := flags.Bool("mute", defaults.Mute, "disable sound")
	legacy := flags.Bool("legacy-input", defaults.LegacyInput, "player 1 keys take priority over player 2 keys")
	debug := flags.Bool("debug", defaults.Debug, "write debug logs")
	logPath := flags.String("log", defaults.LogPath, "log file used with --debug")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	if flags.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", flags.Arg(0))
	}

	// Validate frontend
	if *frontend != FrontendTerminal && *frontend != FrontendWindow {
		return nil, fmt.Errorf("frontend must be %q or %q, got %q", FrontendTerminal, FrontendWindow, *frontend)
	}

	if *debug && *logPath == "" {
		return nil, errors.New("--debug requires a log path")
	}

	cfg := &Config{
		Frontend:    *frontend,
		SfxDir:      *sfx,
		Mute:        *mute,
		LegacyInput: *legacy,
		Debug:       *debug,
		LogPath:     *logPath,
	}

	return cfg, nil
}
