package hotkey

import (
	"sync"

	"github.com/tevino/abool"
)

// Keypad is an in-memory InputSource. Anything that can name a trigger
// (the remote bridge, tests, a scripted harness) can drive the scheduler
// through it with Press and Release.
//
// Presses latch: a press followed by a release between two ticks still
// registers one edge on the next edge query.
type Keypad struct {
	mu    sync.Mutex
	down  map[Trigger]bool
	edges map[Trigger]bool

	enabled *abool.AtomicBool
}

// NewKeypad returns an enabled Keypad with no keys down.
func NewKeypad() *Keypad {
	return &Keypad{
		down:    make(map[Trigger]bool),
		edges:   make(map[Trigger]bool),
		enabled: abool.NewBool(true),
	}
}

// Press marks t as down. Pressing an already-down trigger records no new
// edge; the key must be released first.
func (k *Keypad) Press(t Trigger) {
	k.mu.Lock()
	if !k.down[t] {
		k.down[t] = true
		k.edges[t] = true
	}
	k.mu.Unlock()
}

// Release marks t as up.
func (k *Keypad) Release(t Trigger) {
	k.mu.Lock()
	delete(k.down, t)
	k.mu.Unlock()
}

func (k *Keypad) IsPressed(t Trigger, held bool) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	if held {
		return k.down[t]
	}
	if k.edges[t] {
		delete(k.edges, t)
		return true
	}
	return false
}

func (k *Keypad) Enabled() bool {
	return k.enabled.IsSet()
}

// SetEnabled flips the global hotkey gate.
func (k *Keypad) SetEnabled(enabled bool) {
	k.enabled.SetTo(enabled)
}

// Refresh is a no-op: the Keypad has no backend to pump, its state is
// pushed in by callers.
func (k *Keypad) Refresh() {
}
