package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Defaults mirror the board firmware's tuning constants.
const (
	DefaultListenAddr        = ":7777"
	DefaultHTTPAddr          = ":8080"
	DefaultMaxPlayers        = 4
	DefaultHistoryMaxSize    = 10000
	DefaultHistoryChunkSize  = 200
	DefaultTouchDebounceMS   = 50
	DefaultMenuDebounceMS    = 200
	DefaultConfirmDebounceMS = 20
	DefaultPollIntervalMS    = 10
	DefaultResultDisplayMS   = 5000
)

// Config is the full application configuration, loaded from a TOML
// file with environment variables overriding addresses and secrets.
type Config struct {
	Game    GameConfig    `toml:"game"`
	Phases  PhasesConfig  `toml:"phases"`
	Server  ServerConfig  `toml:"server"`
	Storage StorageConfig `toml:"storage"`
}

// GameConfig holds the gameplay tuning knobs
type GameConfig struct {
	MaxPlayers        int  `toml:"max_players,omitempty"`
	HistoryMaxSize    int  `toml:"history_max_size,omitempty"`
	HistoryChunkSize  int  `toml:"history_chunk_size,omitempty"`
	TouchDebounceMS   int  `toml:"touch_debounce_ms,omitempty"`
	MenuDebounceMS    int  `toml:"menu_debounce_ms,omitempty"`
	ConfirmDebounceMS int  `toml:"confirm_debounce_ms,omitempty"`
	PollIntervalMS    int  `toml:"poll_interval_ms,omitempty"`
	ResultDisplayMS   int  `toml:"result_display_ms,omitempty"`
	RemoteStart       bool `toml:"remote_start,omitempty"`
}

// PhasesConfig bounds the randomized phase durations in milliseconds,
// half-open [min, max)
type PhasesConfig struct {
	RedMinMS    int `toml:"red_min_ms,omitempty"`
	RedMaxMS    int `toml:"red_max_ms,omitempty"`
	YellowMinMS int `toml:"yellow_min_ms,omitempty"`
	YellowMaxMS int `toml:"yellow_max_ms,omitempty"`
	GreenMinMS  int `toml:"green_min_ms,omitempty"`
	GreenMaxMS  int `toml:"green_max_ms,omitempty"`
}

// ServerConfig holds the listen addresses
type ServerConfig struct {
	// ListenAddr is the TCP command channel address
	ListenAddr string `toml:"listen_addr,omitempty"`

	// HTTPAddr serves the websocket command endpoint
	HTTPAddr string `toml:"http_addr,omitempty"`
}

// StorageConfig holds the persistence backends. Empty values disable
// the corresponding backend.
type StorageConfig struct {
	RedisAddr     string `toml:"redis_addr,omitempty"`
	RedisPassword string `toml:"redis_password,omitempty"`
	PostgresDSN   string `toml:"postgres_dsn,omitempty"`
}

// Load reads the TOML file at path and applies environment overrides.
// A missing file is reported with os.ErrNotExist so callers can fall
// back to pure defaults.
func Load(path string) (Config, error) {
	var cfg Config

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// FromEnv returns the default configuration with environment overrides
// applied, for running without a config file.
func FromEnv() (Config, error) {
	var cfg Config
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		c.Server.ListenAddr = v
	}
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		c.Server.HTTPAddr = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Storage.RedisAddr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Storage.RedisPassword = v
	}
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		c.Storage.PostgresDSN = v
	}
	if v := os.Getenv("REMOTE_START"); v == "true" || v == "1" {
		c.Game.RemoteStart = true
	}
}

// Validate rejects values a running game cannot use. Zero values are
// fine; they resolve to defaults.
func (c Config) Validate() error {
	sizes := map[string]int{
		"game.max_players":         c.Game.MaxPlayers,
		"game.history_max_size":    c.Game.HistoryMaxSize,
		"game.history_chunk_size":  c.Game.HistoryChunkSize,
		"game.touch_debounce_ms":   c.Game.TouchDebounceMS,
		"game.menu_debounce_ms":    c.Game.MenuDebounceMS,
		"game.confirm_debounce_ms": c.Game.ConfirmDebounceMS,
		"game.poll_interval_ms":    c.Game.PollIntervalMS,
		"game.result_display_ms":   c.Game.ResultDisplayMS,
	}
	for name, v := range sizes {
		if v < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}

	ranges := []struct {
		name     string
		min, max int
	}{
		{"phases.red", c.Phases.RedMinMS, c.Phases.RedMaxMS},
		{"phases.yellow", c.Phases.YellowMinMS, c.Phases.YellowMaxMS},
		{"phases.green", c.Phases.GreenMinMS, c.Phases.GreenMaxMS},
	}
	for _, r := range ranges {
		if r.min < 0 || r.max < 0 {
			return fmt.Errorf("%s range must not be negative", r.name)
		}
		if (r.min != 0 || r.max != 0) && r.min >= r.max {
			return fmt.Errorf("%s range is inverted", r.name)
		}
	}

	return nil
}

// ResolvedListenAddr returns the TCP command address, or the default
func (c Config) ResolvedListenAddr() string {
	return pickString(c.Server.ListenAddr, DefaultListenAddr)
}

// ResolvedHTTPAddr returns the websocket endpoint address, or the default
func (c Config) ResolvedHTTPAddr() string {
	return pickString(c.Server.HTTPAddr, DefaultHTTPAddr)
}

// ResolvedMaxPlayers returns the slot count, or the default
func (c Config) ResolvedMaxPlayers() int {
	return pickInt(c.Game.MaxPlayers, DefaultMaxPlayers)
}

// ResolvedHistoryMaxSize returns the history byte bound, or the default
func (c Config) ResolvedHistoryMaxSize() int {
	return pickInt(c.Game.HistoryMaxSize, DefaultHistoryMaxSize)
}

// ResolvedHistoryChunkSize returns the replay chunk size, or the default
func (c Config) ResolvedHistoryChunkSize() int {
	return pickInt(c.Game.HistoryChunkSize, DefaultHistoryChunkSize)
}

// ResolvedTouchDebounce returns the touch channel debounce window
func (c Config) ResolvedTouchDebounce() time.Duration {
	return ms(pickInt(c.Game.TouchDebounceMS, DefaultTouchDebounceMS))
}

// ResolvedMenuDebounce returns the menu navigation debounce window
func (c Config) ResolvedMenuDebounce() time.Duration {
	return ms(pickInt(c.Game.MenuDebounceMS, DefaultMenuDebounceMS))
}

// ResolvedConfirmDebounce returns the confirm input debounce window
func (c Config) ResolvedConfirmDebounce() time.Duration {
	return ms(pickInt(c.Game.ConfirmDebounceMS, DefaultConfirmDebounceMS))
}

// ResolvedPollInterval returns the sequencer poll tick
func (c Config) ResolvedPollInterval() time.Duration {
	return ms(pickInt(c.Game.PollIntervalMS, DefaultPollIntervalMS))
}

// ResolvedResultDisplayTime returns how long results stay on screen
func (c Config) ResolvedResultDisplayTime() time.Duration {
	return ms(pickInt(c.Game.ResultDisplayMS, DefaultResultDisplayMS))
}

// ResolvedRedRange returns the red phase bounds in durations. Zero
// config means the caller should use its own defaults, so (0, 0) is
// returned untouched.
func (c Config) ResolvedRedRange() (time.Duration, time.Duration) {
	return ms(c.Phases.RedMinMS), ms(c.Phases.RedMaxMS)
}

// ResolvedYellowRange returns the yellow phase bounds in durations
func (c Config) ResolvedYellowRange() (time.Duration, time.Duration) {
	return ms(c.Phases.YellowMinMS), ms(c.Phases.YellowMaxMS)
}

// ResolvedGreenRange returns the green phase bounds in durations
func (c Config) ResolvedGreenRange() (time.Duration, time.Duration) {
	return ms(c.Phases.GreenMinMS), ms(c.Phases.GreenMaxMS)
}

func pickString(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}

func pickInt(v, fallback int) int {
	if v != 0 {
		return v
	}
	return fallback
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}
