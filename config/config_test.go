package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/smallworld/game"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "smallworld.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SMALLWORLD_DEBUG", "")
	t.Setenv("SMALLWORLD_SEED", "")
	t.Setenv("LOG_LEVEL", "")
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, 512, c.Window.Width)
	assert.Equal(t, 512, c.Window.Height)
	assert.Equal(t, uint32(2), c.Map.Width)
	assert.Equal(t, uint32(3), c.Map.Height)
	assert.Equal(t, []string{"forest", "mountain", "farmland", "city:1000", "farmland", "coal"}, c.Map.Tiles)
	assert.Equal(t, 0.25, c.Camera.MinZoom)
	assert.Equal(t, 4.0, c.Camera.MaxZoom)
	x, y := c.Camera.Offset()
	assert.Equal(t, 40.0, x)
	assert.Equal(t, 40.0, y)
	require.NoError(t, c.Validate())
}

func TestDefaultMapMatchesTestMap(t *testing.T) {
	m, err := Default().Map.BuildMap()
	require.NoError(t, err)
	want := game.TestMap()
	want.Each(func(c game.Coord, tile game.Tile) {
		assert.Equal(t, tile, m.Tile(c), "tile at %v", c)
	})
	assert.Equal(t, uint32(1000), m.Pops())
}

func TestLoadEmptyPath(t *testing.T) {
	clearEnv(t)
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
window:
  title: Island
  width: 800
  height: 600
map:
  width: 2
  height: 1
  tiles: [farmland, "city:250"]
camera:
  min_zoom: 0.5
deck:
  seed: 42
debug: true
legacy_color_restore: true
`)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Island", c.Window.Title)
	assert.Equal(t, 800, c.Window.Width)
	assert.Equal(t, 0.5, c.Camera.MinZoom)
	assert.Equal(t, 4.0, c.Camera.MaxZoom, "unset fields keep defaults")
	assert.Equal(t, uint64(42), c.Deck.Seed)
	assert.True(t, c.Debug)
	assert.True(t, c.LegacyColorRestore)

	m, err := c.Map.BuildMap()
	require.NoError(t, err)
	assert.Equal(t, uint32(250), m.Pops())
	assert.Equal(t, []game.Placement{{Coord: game.Coord{X: 0, Y: 0}, Card: game.CardFarm}}, m.CardOptions())
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SMALLWORLD_DEBUG", "true")
	t.Setenv("SMALLWORLD_SEED", "7")
	t.Setenv("LOG_LEVEL", "debug")

	c, err := Load("")
	require.NoError(t, err)
	assert.True(t, c.Debug)
	assert.Equal(t, uint64(7), c.Deck.Seed)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
	}{
		{name: "bad yaml", body: "window: [1, 2"},
		{name: "tile count", body: "map: {width: 2, height: 2, tiles: [forest]}"},
		{name: "unknown tile", body: "map: {width: 1, height: 1, tiles: [desert]}"},
		{name: "zoom bounds", body: "camera: {min_zoom: 3, max_zoom: 2}"},
		{name: "negative zoom", body: "camera: {zoom: -1}"},
		{name: "negative min zoom", body: "camera: {min_zoom: -0.5}"},
		{name: "zoom above max", body: "camera: {zoom: 10}"},
		{name: "zoom below min", body: "camera: {zoom: 0.5, min_zoom: 0.75}"},
		{name: "bad seed", env: map[string]string{"SMALLWORLD_SEED": "many"}},
		{name: "bad debug", env: map[string]string{"SMALLWORLD_DEBUG": "sometimes"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := writeFile(t, tt.body)
			c, err := Load(path)
			if err == nil {
				_, err = c.Map.BuildMap()
			}
			assert.Error(t, err)
		})
	}
}

func TestLoadKeepsZeroCameraOffset(t *testing.T) {
	clearEnv(t)
	c, err := Load(writeFile(t, "camera: {offset_x: 0, offset_y: 0}"))
	require.NoError(t, err)
	x, y := c.Camera.Offset()
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)

	c, err = Load(writeFile(t, "camera: {offset_y: 12}"))
	require.NoError(t, err)
	x, y = c.Camera.Offset()
	assert.Equal(t, 40.0, x, "unset axis keeps its default")
	assert.Equal(t, 12.0, y)
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
