// Package config loads smallworld settings from YAML with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/smallworld/game"
)

// Config is the complete smallworld configuration. Zero fields are filled
// by ApplyDefaults.
type Config struct {
	Window             WindowConfig `yaml:"window" json:"window"`
	Map                MapConfig    `yaml:"map" json:"map"`
	Camera             CameraConfig `yaml:"camera" json:"camera"`
	Deck               DeckConfig   `yaml:"deck" json:"deck"`
	Debug              bool         `yaml:"debug" json:"debug"`
	LegacyColorRestore bool         `yaml:"legacy_color_restore" json:"legacy_color_restore"`
	ScreenshotDir      string       `yaml:"screenshot_dir" json:"screenshot_dir"`
	LogLevel           string       `yaml:"log_level" json:"log_level"`
}

// WindowConfig sizes and titles the game window.
type WindowConfig struct {
	Title   string `yaml:"title" json:"title"`
	Width   int    `yaml:"width" json:"width"`
	Height  int    `yaml:"height" json:"height"`
	ShowFPS bool   `yaml:"show_fps" json:"show_fps"`
}

// MapConfig lists tiles row by row using game.ParseTile syntax.
type MapConfig struct {
	Width  uint32   `yaml:"width" json:"width"`
	Height uint32   `yaml:"height" json:"height"`
	Tiles  []string `yaml:"tiles" json:"tiles"`
}

// CameraConfig sets the home view and zoom limits. OffsetX and OffsetY are
// pointers so an explicit 0 is kept; unset offsets default to 40.
type CameraConfig struct {
	OffsetX      *float64 `yaml:"offset_x" json:"offset_x"`
	OffsetY      *float64 `yaml:"offset_y" json:"offset_y"`
	Zoom         float64  `yaml:"zoom" json:"zoom"`
	MinZoom      float64  `yaml:"min_zoom" json:"min_zoom"`
	MaxZoom      float64  `yaml:"max_zoom" json:"max_zoom"`
	ResetSeconds float32  `yaml:"reset_seconds" json:"reset_seconds"`
}

// DeckConfig configures the deck's random source.
type DeckConfig struct {
	// Seed makes deck draws reproducible; 0 seeds from the clock.
	Seed uint64 `yaml:"seed" json:"seed"`
}

// ApplyDefaults fills a 512x512 window titled "Small World".
func (w *WindowConfig) ApplyDefaults() {
	if w.Title == "" {
		w.Title = "Small World"
	}
	if w.Width == 0 {
		w.Width = 512
	}
	if w.Height == 0 {
		w.Height = 512
	}
}

// ApplyDefaults uses the 2x3 starting map when no tiles are listed.
func (m *MapConfig) ApplyDefaults() {
	if len(m.Tiles) > 0 {
		return
	}
	def := game.TestMap()
	m.Width, m.Height = def.Width(), def.Height()
	m.Tiles = m.Tiles[:0]
	def.Each(func(_ game.Coord, t game.Tile) {
		m.Tiles = append(m.Tiles, t.String())
	})
}

// ApplyDefaults fills unset zoom values, offsets, and the reset duration.
func (c *CameraConfig) ApplyDefaults() {
	if c.Zoom == 0 {
		c.Zoom = 1
	}
	if c.MinZoom == 0 {
		c.MinZoom = 0.25
	}
	if c.MaxZoom == 0 {
		c.MaxZoom = 4
	}
	if c.OffsetX == nil {
		c.OffsetX = ptr(defaultCameraOffset)
	}
	if c.OffsetY == nil {
		c.OffsetY = ptr(defaultCameraOffset)
	}
	if c.ResetSeconds == 0 {
		c.ResetSeconds = 0.4
	}
}

// ApplyDefaults fills every unset field.
func (c *Config) ApplyDefaults() {
	c.Window.ApplyDefaults()
	c.Map.ApplyDefaults()
	c.Camera.ApplyDefaults()
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = "screenshots"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks values that defaults cannot repair.
func (c *Config) Validate() error {
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("config: window size %dx%d is negative", c.Window.Width, c.Window.Height)
	}
	cam := c.Camera
	if cam.MinZoom <= 0 || cam.MaxZoom <= 0 {
		return fmt.Errorf("config: camera zoom bounds [%v, %v] must be positive", cam.MinZoom, cam.MaxZoom)
	}
	if cam.MinZoom > cam.MaxZoom {
		return fmt.Errorf("config: camera min_zoom %v exceeds max_zoom %v", cam.MinZoom, cam.MaxZoom)
	}
	if cam.Zoom < cam.MinZoom || cam.Zoom > cam.MaxZoom {
		return fmt.Errorf("config: camera zoom %v outside [%v, %v]", cam.Zoom, cam.MinZoom, cam.MaxZoom)
	}
	if uint64(len(c.Map.Tiles)) != uint64(c.Map.Width)*uint64(c.Map.Height) {
		return fmt.Errorf("config: map lists %d tiles, want %dx%d", len(c.Map.Tiles), c.Map.Width, c.Map.Height)
	}
	return nil
}

// Offset returns the camera home offset, defaulting unset axes.
func (c CameraConfig) Offset() (x, y float64) {
	x, y = defaultCameraOffset, defaultCameraOffset
	if c.OffsetX != nil {
		x = *c.OffsetX
	}
	if c.OffsetY != nil {
		y = *c.OffsetY
	}
	return x, y
}

const defaultCameraOffset = 40.0

func ptr[T any](v T) *T { return &v }

// BuildMap parses the configured tiles into a game map.
func (m MapConfig) BuildMap() (*game.Map, error) {
	if uint64(len(m.Tiles)) != uint64(m.Width)*uint64(m.Height) {
		return nil, fmt.Errorf("config: map lists %d tiles, want %dx%d", len(m.Tiles), m.Width, m.Height)
	}
	tiles := make([]game.Tile, len(m.Tiles))
	for i, s := range m.Tiles {
		t, err := game.ParseTile(s)
		if err != nil {
			return nil, fmt.Errorf("config: map tile %d: %w", i, err)
		}
		tiles[i] = t
	}
	return game.NewMap(m.Width, m.Height, tiles), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	var c Config
	c.ApplyDefaults()
	return &c
}

// Load reads a YAML file, applies environment overrides and defaults, and
// validates the result. An empty path yields the defaults plus overrides.
// A .env file in the working directory is loaded first if present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var c Config
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// applyEnv applies SMALLWORLD_DEBUG, SMALLWORLD_SEED, and LOG_LEVEL.
func (c *Config) applyEnv() error {
	if v := os.Getenv("SMALLWORLD_DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: SMALLWORLD_DEBUG: %w", err)
		}
		c.Debug = b
	}
	if v := os.Getenv("SMALLWORLD_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: SMALLWORLD_SEED: %w", err)
		}
		c.Deck.Seed = seed
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}
