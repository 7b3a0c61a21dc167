package input

import (
	"testing"

	hook "github.com/robotn/gohook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherTracksHeldKeys(t *testing.T) {
	w, err := NewWatcher("space", "q")
	require.NoError(t, err)
	assert.Equal(t, Keys{}, w.Poll())

	space := hook.Keycode["space"]
	q := hook.Keycode["q"]

	w.handle(hook.Event{Kind: hook.KeyHold, Keycode: space})
	assert.Equal(t, Keys{Pause: true}, w.Poll())

	w.handle(hook.Event{Kind: hook.KeyDown, Keycode: q})
	assert.Equal(t, Keys{Pause: true, Quit: true}, w.Poll())

	w.handle(hook.Event{Kind: hook.KeyUp, Keycode: space})
	assert.Equal(t, Keys{Quit: true}, w.Poll())
}

func TestWatcherIgnoresOtherKeys(t *testing.T) {
	w, err := NewWatcher("space", "q")
	require.NoError(t, err)

	w.handle(hook.Event{Kind: hook.KeyHold, Keycode: hook.Keycode["a"], Keychar: 'a'})
	w.handle(hook.Event{Kind: hook.MouseDown, Keycode: hook.Keycode["space"]})
	assert.Equal(t, Keys{}, w.Poll())
}

func TestWatcherUnknownKey(t *testing.T) {
	_, err := NewWatcher("space", "no-such-key")
	assert.Error(t, err)
}

func TestWatcherCloseWithoutStart(t *testing.T) {
	w, err := NewWatcher("space", "q")
	require.NoError(t, err)
	w.Close()
}
