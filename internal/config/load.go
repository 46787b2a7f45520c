package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/taigrr/cardswipe/pkg/anim"
)

// EnvPrefix prefixes every environment override, e.g. SWIPE_ENGINE_MAX_TILT.
const EnvPrefix = "SWIPE"

func setDefaults(v *viper.Viper) {
	d := anim.DefaultSettings()
	v.SetDefault("engine.swipe_threshold", d.SwipeThreshold)
	v.SetDefault("engine.max_tilt", d.MaxTilt)
	v.SetDefault("engine.bounce_power", d.BouncePower)
	v.SetDefault("engine.rotation_power", d.RotationPower)
	v.SetDefault("engine.snap_back_duration", d.SnapBackDuration)
	v.SetDefault("engine.settle_duration", d.SettleDuration)
	v.SetDefault("engine.flick_on_swipe", true)
	v.SetDefault("engine.prevent_swipe", []string{"down"})

	v.SetDefault("ui.fps", 60.0)
	v.SetDefault("ui.cell_width", 8.0)
	v.SetDefault("ui.cell_height", 16.0)
	v.SetDefault("ui.sound", false)
	v.SetDefault("ui.card_color", "#eaffff")

	v.SetDefault("log.level", "info")
	v.SetDefault("catalog.path", "")
}

// Load builds the configuration. Environment variables take precedence over
// the config file, which takes precedence over defaults. With an empty path,
// swipe.yaml is looked up in the working directory and is optional.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("swipe")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validate = validator.New()

// Validate checks cfg against its field rules.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}
