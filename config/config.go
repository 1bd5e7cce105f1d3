// Package config loads engine tunables for hosts and the demo from TOML,
// YAML or JSON files.
package config

import (
	"log/slog"
	"strings"
)

// Config holds the complete engine configuration.
type Config struct {
	// Canvas is the initial canvas size in pixels.
	Canvas CanvasConfig `toml:"canvas" json:"canvas" yaml:"canvas"`

	// Mask controls how targets are fitted and rasterized.
	Mask MaskConfig `toml:"mask" json:"mask" yaml:"mask"`

	// Coverage controls the approximate/exact coverage passes and completion.
	Coverage CoverageConfig `toml:"coverage" json:"coverage" yaml:"coverage"`

	// Brush is the default brush.
	Brush BrushConfig `toml:"brush" json:"brush" yaml:"brush"`

	// Outline is the tracing guide.
	Outline OutlineConfig `toml:"outline" json:"outline" yaml:"outline"`

	// Session controls lifecycle behavior.
	Session SessionConfig `toml:"session" json:"session" yaml:"session"`

	// Fonts are additional font files made available to GlyphText targets.
	Fonts []FontConfig `toml:"fonts" json:"fonts" yaml:"fonts"`

	// Logging configuration.
	Logging LoggingConfig `toml:"logging" json:"logging" yaml:"logging"`
}

// CanvasConfig is the canvas size.
type CanvasConfig struct {
	Width  int `toml:"width" json:"width" yaml:"width"`
	Height int `toml:"height" json:"height" yaml:"height"`
}

// MaskConfig controls mask fitting.
type MaskConfig struct {
	// Margin is the fraction of min(width, height) kept free on each side.
	Margin float64 `toml:"margin" json:"margin" yaml:"margin"`

	// InclusionThreshold is the rendered coverage a cell must exceed.
	InclusionThreshold float64 `toml:"inclusion_threshold" json:"inclusion_threshold" yaml:"inclusion_threshold"`
}

// CoverageConfig controls coverage tracking.
type CoverageConfig struct {
	Watermark           float64 `toml:"watermark" json:"watermark" yaml:"watermark"`
	CompletionThreshold float64 `toml:"completion_threshold" json:"completion_threshold" yaml:"completion_threshold"`
	ExactTolerance      float64 `toml:"exact_tolerance" json:"exact_tolerance" yaml:"exact_tolerance"`
}

// BrushConfig is the default brush.
type BrushConfig struct {
	Radius    float64 `toml:"radius" json:"radius" yaml:"radius"`
	SoftEdges bool    `toml:"soft_edges" json:"soft_edges" yaml:"soft_edges"`

	// Color is a hex color used by hosts that do not pick one per stroke.
	Color string `toml:"color" json:"color" yaml:"color"`
}

// OutlineConfig is the tracing guide.
type OutlineConfig struct {
	// Mode is "auto", "stroke" or "boundary".
	Mode string `toml:"mode" json:"mode" yaml:"mode"`

	// Width in pixels; 0 picks a width proportional to the mask.
	Width float64 `toml:"width" json:"width" yaml:"width"`

	Color string `toml:"color" json:"color" yaml:"color"`
}

// SessionConfig controls lifecycle behavior.
type SessionConfig struct {
	// AllowTargetSwitching lets a new target replace one in progress.
	AllowTargetSwitching bool `toml:"allow_target_switching" json:"allow_target_switching" yaml:"allow_target_switching"`
}

// FontConfig registers one font file under a family and weight.
type FontConfig struct {
	Family string `toml:"family" json:"family" yaml:"family"`

	// Weight is "regular", "bold" or a number from 100 to 900.
	Weight string `toml:"weight" json:"weight" yaml:"weight"`

	Path string `toml:"path" json:"path" yaml:"path"`
}

// LoggingConfig controls the demo's log output.
type LoggingConfig struct {
	// Level is "debug", "info", "warn" or "error".
	Level string `toml:"level" json:"level" yaml:"level"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Canvas: CanvasConfig{Width: 800, Height: 600},
		Mask: MaskConfig{
			Margin:             0.10,
			InclusionThreshold: 0.05,
		},
		Coverage: CoverageConfig{
			Watermark:           0.995,
			CompletionThreshold: 0.999,
			ExactTolerance:      0.04,
		},
		Brush: BrushConfig{
			Radius: 18,
			Color:  "#e53935",
		},
		Outline: OutlineConfig{
			Mode:  "auto",
			Color: "#9e9e9e",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// LogLevel returns the configured slog level, or Info if it is invalid.
func (c *Config) LogLevel() slog.Level {
	lvl, ok := parseLevel(c.Logging.Level)
	if !ok {
		return slog.LevelInfo
	}
	return lvl
}

func parseLevel(s string) (slog.Level, bool) {
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, true
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, false
	}
	return lvl, true
}
