package hotkey

import (
	"sync"

	"github.com/leon22heart/dolphin/pkg/emulator"
	"github.com/leon22heart/dolphin/pkg/event"
	"github.com/leon22heart/dolphin/pkg/osd"
)

// fakeInput is a scriptable InputSource for single-goroutine tests.
// Edges are consumed on read, like a real hotkey backend.
type fakeInput struct {
	enabled   bool
	edges     map[Trigger]bool
	held      map[Trigger]bool
	refreshes int
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		enabled: true,
		edges:   make(map[Trigger]bool),
		held:    make(map[Trigger]bool),
	}
}

func (f *fakeInput) press(t Trigger) {
	f.edges[t] = true
}

func (f *fakeInput) hold(t Trigger) {
	f.held[t] = true
}

func (f *fakeInput) release(t Trigger) {
	delete(f.held, t)
}

func (f *fakeInput) IsPressed(t Trigger, held bool) bool {
	if held {
		return f.held[t]
	}
	if f.edges[t] {
		delete(f.edges, t)
		return true
	}
	return false
}

func (f *fakeInput) Enabled() bool {
	return f.enabled
}

func (f *fakeInput) Refresh() {
	f.refreshes++
}

// fakeCore is a scriptable StateSource.
type fakeCore struct {
	state   emulator.State
	started bool
}

func runningCore() *fakeCore {
	return &fakeCore{state: emulator.Running, started: true}
}

func (c *fakeCore) State() emulator.State {
	return c.state
}

func (c *fakeCore) IsRunningAndStarted() bool {
	return c.state == emulator.Running && c.started
}

// collector records dispatched events. It is safe for use from the
// scheduler goroutine.
type collector struct {
	mu     sync.Mutex
	events []event.Event
}

func (c *collector) handle(e event.Event) {
	c.mu.Lock()
	c.events = append(c.events, e)
	c.mu.Unlock()
}

func (c *collector) all() []event.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]event.Event(nil), c.events...)
}

func (c *collector) commands() []event.Command {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]event.Command, len(c.events))
	for i, e := range c.events {
		out[i] = e.Command
	}
	return out
}

func (c *collector) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.events)
}

// fakeView records free-look adjustments.
type fakeView struct {
	moves  [][3]float32
	resets int
}

func (v *fakeView) Translate(x, y, z float32) {
	v.moves = append(v.moves, [3]float32{x, y, z})
}

func (v *fakeView) Reset() {
	v.resets++
}

// fakeNotifier records on-screen-display requests.
type fakeNotifier struct {
	messages []osd.Message
}

func (n *fakeNotifier) ShowMessage(m osd.Message) {
	n.messages = append(n.messages, m)
}
