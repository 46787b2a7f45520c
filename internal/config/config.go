// Package config loads the swipe settings from defaults, an optional YAML
// file and SWIPE_ environment variables.
package config

import (
	"time"

	"fortio.org/log"
	"github.com/taigrr/cardswipe/pkg/anim"
	"github.com/taigrr/cardswipe/pkg/gesture"
)

// Config holds all application configuration.
type Config struct {
	Engine  EngineConfig  `mapstructure:"engine"`
	UI      UIConfig      `mapstructure:"ui"`
	Log     LogConfig     `mapstructure:"log"`
	Catalog CatalogConfig `mapstructure:"catalog"`
}

// EngineConfig tunes gesture classification and card animation.
type EngineConfig struct {
	SwipeThreshold   float64       `mapstructure:"swipe_threshold" validate:"gt=0"`
	MaxTilt          float64       `mapstructure:"max_tilt" validate:"gte=0,lte=45"`
	BouncePower      float64       `mapstructure:"bounce_power" validate:"gte=0,lte=1"`
	RotationPower    float64       `mapstructure:"rotation_power" validate:"gte=0,lte=720"`
	SnapBackDuration time.Duration `mapstructure:"snap_back_duration" validate:"gt=0"`
	SettleDuration   time.Duration `mapstructure:"settle_duration" validate:"gte=0"`
	FlickOnSwipe     bool          `mapstructure:"flick_on_swipe"`
	PreventSwipe     []string      `mapstructure:"prevent_swipe" validate:"dive,oneof=left right up down"`
}

// UIConfig controls the terminal front end.
type UIConfig struct {
	FPS float64 `mapstructure:"fps" validate:"gt=0,lte=240"`
	// CellWidth and CellHeight convert terminal cells to pixels so that
	// speeds compare against the pixel-based swipe threshold.
	CellWidth  float64 `mapstructure:"cell_width" validate:"gt=0"`
	CellHeight float64 `mapstructure:"cell_height" validate:"gt=0"`
	Sound      bool    `mapstructure:"sound"`
	CardColor  string  `mapstructure:"card_color" validate:"hexcolor"`
}

// LogConfig selects the log level.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug verbose info warning error"`
}

// CatalogConfig points at the product catalog.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// Settings converts the engine section to animation settings.
func (e EngineConfig) Settings() anim.Settings {
	return anim.Settings{
		SnapBackDuration: e.SnapBackDuration,
		SettleDuration:   e.SettleDuration,
		MaxTilt:          e.MaxTilt,
		BouncePower:      e.BouncePower,
		SwipeThreshold:   e.SwipeThreshold,
		RotationPower:    e.RotationPower,
	}
}

// Prevent returns the prevented directions. Names were validated on load.
func (e EngineConfig) Prevent() []gesture.Direction {
	set, err := gesture.ParseDirectionSet(e.PreventSwipe)
	if err != nil {
		log.Warnf("ignoring prevent_swipe: %v", err)
		return nil
	}
	return set.List()
}

// Apply sets the process log level.
func (l LogConfig) Apply() {
	level := log.Info
	switch l.Level {
	case "debug":
		level = log.Debug
	case "verbose":
		level = log.Verbose
	case "warning":
		level = log.Warning
	case "error":
		level = log.Error
	}
	log.SetLogLevel(level)
}
