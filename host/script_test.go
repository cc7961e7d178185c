package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/smallworld/game"
)

func TestLoadScriptErrors(t *testing.T) {
	for name, src := range map[string]string{
		"invalid json":   `{"steps": [`,
		"no steps":       `{"steps": []}`,
		"unknown action": `{"steps": [{"action": "jump"}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadScript([]byte(src))
			assert.Error(t, err)
		})
	}
}

func TestScriptRunnerPlacesCard(t *testing.T) {
	s, buf := newTestSession()
	card := s.Game.Deck.Card(0)
	p, c := targetFor(card)

	r, err := LoadScript([]byte(`{"steps": [
		{"action": "click", "x": 50, "y": 440},
		{"action": "screenshot", "label": "holding"},
		{"action": "wait", "frames": 3}
	]}`))
	require.NoError(t, err)
	s.SetScriptRunner(r)

	for i := 0; !r.Done(); i++ {
		require.Less(t, i, 100, "script never finished")
		tick(s, buf)
		if labels := s.TakeScreenshots(); labels != nil {
			assert.Equal(t, []string{"holding"}, labels)
			assert.Equal(t, game.PlacingCard(card, 0), s.Game.State)
		}
	}

	s.InjectClick(p.X, p.Y, 0)
	drain(t, s, buf)
	placed, ok := s.Game.Map.CardAt(c)
	require.True(t, ok)
	assert.Equal(t, card, placed)
}

func TestScriptRunnerCameraSteps(t *testing.T) {
	s, buf := newTestSession()
	r, err := LoadScript([]byte(`{"steps": [
		{"action": "drag", "x": 0, "y": 0, "toX": 40, "toY": 0, "frames": 3},
		{"action": "scroll", "x": 0, "y": 0, "dy": 1},
		{"action": "reset", "seconds": 0}
	]}`))
	require.NoError(t, err)
	s.SetScriptRunner(r)

	panned := false
	for i := 0; !r.Done(); i++ {
		require.Less(t, i, 100, "script never finished")
		tick(s, buf)
		if s.Camera.Shift.X == 40 {
			panned = true
		}
	}
	assert.True(t, panned)
	assert.Equal(t, s.Camera.HomeShift, s.Camera.Shift)
	assert.Equal(t, 1.0, s.Camera.Zoom)
}

func TestScriptRunnerFinishesAfterLastScreenshot(t *testing.T) {
	s, buf := newTestSession()
	r, err := LoadScript([]byte(`{"steps": [{"action": "screenshot", "label": "last"}]}`))
	require.NoError(t, err)
	s.SetScriptRunner(r)

	s.Update(dt, nil)
	assert.False(t, r.Done(), "queued screenshot has not been captured")
	s.Update(dt, nil)
	assert.False(t, r.Done())

	s.Frame(buf)
	assert.Equal(t, []string{"last"}, s.TakeScreenshots())
	s.Update(dt, nil)
	assert.True(t, r.Done())
}

func TestScriptRunnerFinishesAfterLastClickIsDrawn(t *testing.T) {
	s, buf := newTestSession()
	card := s.Game.Deck.Card(0)
	r, err := LoadScript([]byte(`{"steps": [{"action": "click", "x": 50, "y": 440}]}`))
	require.NoError(t, err)
	s.SetScriptRunner(r)

	for i := 0; !r.Done(); i++ {
		require.Less(t, i, 10, "script never finished")
		tick(s, buf)
	}
	assert.Equal(t, game.PlacingCard(card, 0), s.Game.State)
	assert.Equal(t, uint64(3), s.Frames())
}
