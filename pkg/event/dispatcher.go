package event

import "sync"

// Handler receives dispatched events. Handlers run synchronously on the
// dispatching goroutine; a handler that needs another goroutine (a UI,
// for example) is responsible for its own marshaling.
type Handler func(Event)

// Dispatcher fans events out to attached handlers, in attachment order.
// Dispatch carries no acknowledgment and no return value.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers []Handler
}

// NewDispatcher returns an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Attach registers a handler. Handlers cannot be detached; attach for the
// lifetime of the dispatcher.
func (d *Dispatcher) Attach(h Handler) {
	d.mu.Lock()
	d.handlers = append(d.handlers, h)
	d.mu.Unlock()
}

// Dispatch delivers e to every attached handler, in attachment order,
// before returning.
func (d *Dispatcher) Dispatch(e Event) {
	d.mu.RLock()
	handlers := d.handlers
	d.mu.RUnlock()

	for _, h := range handlers {
		h(e)
	}
}
