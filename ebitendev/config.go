package ebitendev

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// RunConfig holds the window options for Run. Zero fields take defaults.
type RunConfig struct {
	Title   string `yaml:"title"`
	Scale   int    `yaml:"scale"`
	TPS     int    `yaml:"tps"`
	ShowFPS bool   `yaml:"show_fps"`
}

// DefaultRunConfig returns the configuration used for missing fields.
func DefaultRunConfig() RunConfig {
	return RunConfig{Title: "maligui", Scale: 2, TPS: 60}
}

// withDefaults fills zero fields from DefaultRunConfig.
func (c RunConfig) withDefaults() RunConfig {
	def := DefaultRunConfig()
	if c.Title == "" {
		c.Title = def.Title
	}
	if c.Scale <= 0 {
		c.Scale = def.Scale
	}
	if c.TPS <= 0 {
		c.TPS = def.TPS
	}
	return c
}

// LoadRunConfig reads a YAML run configuration. A missing file yields the
// defaults; unreadable or malformed files are errors.
func LoadRunConfig(path string) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultRunConfig(), nil
	}
	if err != nil {
		return RunConfig{}, fmt.Errorf("ebitendev: read config: %w", err)
	}
	var cfg RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("ebitendev: parse config %s: %w", path, err)
	}
	return cfg.withDefaults(), nil
}

// Run opens a window sized to the device times cfg.Scale and runs the game
// loop until the window is closed. tick, if non-nil, runs every frame; pass
// a closure over Stacker.Update to drive widget animations.
func (d *Device) Run(cfg RunConfig, tick func(dt float32)) error {
	cfg = cfg.withDefaults()
	d.ShowFPS = cfg.ShowFPS
	if tick != nil {
		d.OnTick = tick
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(d.Width()*cfg.Scale, d.Height()*cfg.Scale)
	ebiten.SetTPS(cfg.TPS)

	logger().Info("starting window", "title", cfg.Title,
		"width", d.Width(), "height", d.Height(), "scale", cfg.Scale, "tps", cfg.TPS)
	if err := ebiten.RunGame(d); err != nil {
		return fmt.Errorf("ebitendev: run: %w", err)
	}
	return nil
}
