// Package input tracks which of a few global keys are currently held down.
package input

import (
	"fmt"
	"sync"

	hook "github.com/robotn/gohook"
)

// Keys is the state of the control keys at one poll.
type Keys struct {
	Pause bool
	Quit  bool
}

// Watcher listens to global keyboard events and keeps a held/released table
// for the pause and quit keys. Events arrive on the hook goroutine; Poll can
// be called from anywhere.
type Watcher struct {
	pauseKey string
	quitKey  string
	codes    map[uint16]string
	chars    map[rune]string

	mu   sync.Mutex
	held map[string]bool

	events chan hook.Event
	done   chan struct{}
}

// NewWatcher resolves the key names (as understood by gohook, e.g. "space",
// "q", "esc") without starting the hook.
func NewWatcher(pauseKey, quitKey string) (*Watcher, error) {
	w := &Watcher{
		pauseKey: pauseKey,
		quitKey:  quitKey,
		codes:    make(map[uint16]string),
		chars:    make(map[rune]string),
		held:     make(map[string]bool),
		done:     make(chan struct{}),
	}
	for _, name := range []string{pauseKey, quitKey} {
		code, ok := hook.Keycode[name]
		if !ok {
			return nil, fmt.Errorf("unknown key %q", name)
		}
		w.codes[code] = name
		if r := []rune(name); len(r) == 1 {
			w.chars[r[0]] = name
		}
	}
	return w, nil
}

// Start installs the global hook and begins consuming its events.
func (w *Watcher) Start() {
	w.events = hook.Start()
	go w.run()
}

func (w *Watcher) run() {
	defer close(w.done)
	for ev := range w.events {
		w.handle(ev)
	}
}

func (w *Watcher) handle(ev hook.Event) {
	name, ok := w.codes[ev.Keycode]
	if !ok {
		name, ok = w.chars[ev.Keychar]
	}
	if !ok {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	switch ev.Kind {
	case hook.KeyDown, hook.KeyHold:
		w.held[name] = true
	case hook.KeyUp:
		w.held[name] = false
	}
}

// Poll returns which control keys are held right now.
func (w *Watcher) Poll() Keys {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Keys{
		Pause: w.held[w.pauseKey],
		Quit:  w.held[w.quitKey],
	}
}

// Close removes the global hook and waits for the event loop to drain.
func (w *Watcher) Close() {
	if w.events == nil {
		return
	}
	hook.End()
	<-w.done
}
