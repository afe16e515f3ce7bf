// File: utils/config.go
package utils

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all configurable game parameters.
// Dimensions are fixed for the whole session once the game starts.
type Config struct {
	// Timing
	TickPeriod time.Duration `json:"tickPeriod" yaml:"tickPeriod"` // Time between ticks for ticker-driven hosts

	// Playfield
	FieldWidth  int `json:"fieldWidth" yaml:"fieldWidth"`
	FieldHeight int `json:"fieldHeight" yaml:"fieldHeight"`

	// Paddles
	PaddleWidth   int     `json:"paddleWidth" yaml:"paddleWidth"`
	PaddleHeight  int     `json:"paddleHeight" yaml:"paddleHeight"`
	PaddleMargin  int     `json:"paddleMargin" yaml:"paddleMargin"`   // Gap between a paddle and its side wall
	AIPaddleSpeed float64 `json:"aiPaddleSpeed" yaml:"aiPaddleSpeed"` // Opponent step per tick
	AIDeadZone    float64 `json:"aiDeadZone" yaml:"aiDeadZone"`       // Opponent holds still within this distance of the ball

	// Ball
	BallRadius               float64 `json:"ballRadius" yaml:"ballRadius"`
	BallSpeed                float64 `json:"ballSpeed" yaml:"ballSpeed"`                               // Horizontal speed at spawn and after every point
	BallInitialVerticalSpeed float64 `json:"ballInitialVerticalSpeed" yaml:"ballInitialVerticalSpeed"` // |vy| of the very first serve

	// Randomness. Zero seeds from the clock.
	Seed uint64 `json:"seed" yaml:"seed"`

	// Host
	Frontend    string  `json:"frontend" yaml:"frontend"` // window, terminal or ascii
	WindowTitle string  `json:"windowTitle" yaml:"windowTitle"`
	WindowScale float64 `json:"windowScale" yaml:"windowScale"`

	// Logging
	LogLevel string `json:"logLevel" yaml:"logLevel"` // debug, info, warn, error
	LogFile  string `json:"logFile" yaml:"logFile"`   // Empty logs to stderr
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	return Config{
		TickPeriod: Period,

		FieldWidth:  FieldWidth,
		FieldHeight: FieldHeight,

		PaddleWidth:   PaddleWidth,
		PaddleHeight:  PaddleHeight,
		PaddleMargin:  PaddleMargin,
		AIPaddleSpeed: AIPaddleSpeed,
		AIDeadZone:    AIDeadZone,

		BallRadius:               BallRadius,
		BallSpeed:                BallSpeed,
		BallInitialVerticalSpeed: BallInitialVerticalSpeed,

		Seed: 0,

		Frontend:    FrontendWindow,
		WindowTitle: "solopong",
		WindowScale: 1,

		LogLevel: "info",
		LogFile:  "",
	}
}

// LoadConfig reads a YAML (or JSON) file on top of DefaultConfig.
// An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations that would break the field invariants.
func (c Config) Validate() error {
	var errs []error

	if c.TickPeriod <= 0 {
		errs = append(errs, fmt.Errorf("tickPeriod must be positive, got %s", c.TickPeriod))
	}
	if c.FieldWidth <= 0 || c.FieldHeight <= 0 {
		errs = append(errs, fmt.Errorf("field must be positive, got %dx%d", c.FieldWidth, c.FieldHeight))
	}
	if c.PaddleWidth <= 0 || c.PaddleHeight <= 0 {
		errs = append(errs, fmt.Errorf("paddle must be positive, got %dx%d", c.PaddleWidth, c.PaddleHeight))
	}
	if c.PaddleHeight > c.FieldHeight {
		errs = append(errs, fmt.Errorf("paddleHeight %d exceeds fieldHeight %d", c.PaddleHeight, c.FieldHeight))
	}
	if c.PaddleMargin < 0 || 2*(c.PaddleMargin+c.PaddleWidth) >= c.FieldWidth {
		errs = append(errs, fmt.Errorf("paddles with margin %d do not fit a field %d wide", c.PaddleMargin, c.FieldWidth))
	}
	if c.BallRadius <= 0 || 2*c.BallRadius > float64(c.FieldHeight) {
		errs = append(errs, fmt.Errorf("ballRadius %.1f does not fit a field %d high", c.BallRadius, c.FieldHeight))
	}
	if c.BallSpeed <= 0 {
		errs = append(errs, fmt.Errorf("ballSpeed must be positive, got %.2f", c.BallSpeed))
	}
	if c.BallInitialVerticalSpeed < 0 || c.AIPaddleSpeed < 0 || c.AIDeadZone < 0 {
		errs = append(errs, errors.New("speeds and dead zone must not be negative"))
	}
	switch c.Frontend {
	case FrontendWindow, FrontendTerminal, FrontendASCII:
	default:
		errs = append(errs, fmt.Errorf("unknown frontend %q", c.Frontend))
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		errs = append(errs, fmt.Errorf("unknown logLevel %q", c.LogLevel))
	}
	if c.WindowScale <= 0 {
		errs = append(errs, fmt.Errorf("windowScale must be positive, got %.2f", c.WindowScale))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
