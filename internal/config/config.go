package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth  = 220
	DefaultHeight = 176
	DefaultFPS    = 30
)

type Config struct {
	Display DisplayConfig `yaml:"display"`
	FPS     int           `yaml:"fps"`
	Seed    int64         `yaml:"seed"`
	Gravity GravityConfig `yaml:"gravity"`
	Stats   bool          `yaml:"stats"`
}

type DisplayConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type GravityConfig struct {
	Enabled  bool `yaml:"enabled"`
	Inverted bool `yaml:"inverted"`
}

func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		FPS:   DefaultFPS,
		Stats: true,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Display.Width <= 8 || c.Display.Height <= 8 {
		return fmt.Errorf("display %dx%d too small for 8x8 bodies", c.Display.Width, c.Display.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	return nil
}
