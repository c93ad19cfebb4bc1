package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestEscapeMapsToQuit(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyEscape, glfw.Press)

	assert.True(t, im.JustPressed(ActionQuit))
	assert.True(t, im.IsActive(ActionQuit))
}

func TestPostUpdateClearsEdges(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyEscape, glfw.Press)

	im.PostUpdate()

	assert.False(t, im.JustPressed(ActionQuit))
	assert.True(t, im.IsActive(ActionQuit), "held key stays active")

	im.HandleKeyEvent(glfw.KeyEscape, glfw.Repeat)
	assert.False(t, im.JustPressed(ActionQuit), "repeat is not a new press")

	im.HandleKeyEvent(glfw.KeyEscape, glfw.Release)
	assert.True(t, im.JustReleased(ActionQuit))
	assert.False(t, im.IsActive(ActionQuit))
}

func TestUnboundKeysIgnored(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyQ, glfw.Press)

	assert.False(t, im.JustPressed(ActionQuit))
}

func TestRebind(t *testing.T) {
	im := NewInputManager()
	im.UnbindKey(glfw.KeyEscape)
	im.BindKey(glfw.KeyQ, ActionQuit)

	im.HandleKeyEvent(glfw.KeyEscape, glfw.Press)
	assert.False(t, im.JustPressed(ActionQuit))

	im.HandleKeyEvent(glfw.KeyQ, glfw.Press)
	assert.True(t, im.JustPressed(ActionQuit))
}

func TestOutOfRangeActions(t *testing.T) {
	im := NewInputManager()
	im.BindKey(glfw.KeyA, ActionCount)

	im.HandleKeyEvent(glfw.KeyA, glfw.Press)

	assert.False(t, im.JustPressed(ActionCount))
	assert.False(t, im.IsActive(Action(-1)))
	assert.False(t, im.JustReleased(ActionCount))
}
