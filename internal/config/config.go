package config

import (
	"fmt"

	"github.com/spf13/viper"

	"thegame/internal/game"
)

type Config struct {
	Window WindowConfig `mapstructure:"window"`
	Sim    SimConfig    `mapstructure:"sim"`
}

type WindowConfig struct {
	Title string `mapstructure:"title"`
	Cols  int    `mapstructure:"cols"` // viewport width in tiles
	Rows  int    `mapstructure:"rows"` // viewport height in tiles
	TPS   int    `mapstructure:"tps"`  // simulation ticks per second
}

type SimConfig struct {
	TileSize           float64 `mapstructure:"tile_size"`
	WalkingSpeed       float64 `mapstructure:"walking_speed"`
	RunningSpeed       float64 `mapstructure:"running_speed"`
	AlertDuration      float64 `mapstructure:"alert_duration_s"`
	SightDistance      int     `mapstructure:"sight_distance"`
	LOSBlockedByActors bool    `mapstructure:"los_blocked_by_actors"`
}

// Load reads config from the given YAML file path. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Params().Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Window.Cols <= 0 || cfg.Window.Rows <= 0 || cfg.Window.TPS <= 0 {
		return nil, fmt.Errorf("config: window dimensions and tps must be positive")
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := game.DefaultParams()

	v.SetDefault("window.title", "the game")
	v.SetDefault("window.cols", 40)
	v.SetDefault("window.rows", 22)
	v.SetDefault("window.tps", 60)
	v.SetDefault("sim.tile_size", def.TileSize)
	v.SetDefault("sim.walking_speed", def.WalkingSpeed)
	v.SetDefault("sim.running_speed", def.RunningSpeed)
	v.SetDefault("sim.alert_duration_s", def.AlertDuration)
	v.SetDefault("sim.sight_distance", def.SightDistance)
	v.SetDefault("sim.los_blocked_by_actors", false)
}

// Params converts the sim section into the core tuning struct.
func (c *Config) Params() game.Params {
	return game.Params{
		TileSize:           c.Sim.TileSize,
		WalkingSpeed:       c.Sim.WalkingSpeed,
		RunningSpeed:       c.Sim.RunningSpeed,
		AlertDuration:      c.Sim.AlertDuration,
		SightDistance:      c.Sim.SightDistance,
		LOSBlockedByActors: c.Sim.LOSBlockedByActors,
	}
}
