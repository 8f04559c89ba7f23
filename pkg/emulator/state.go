// Package emulator describes the externally visible state of the
// emulation core as seen by the rest of the application. The hotkey
// scheduler only ever reads this state; it never drives transitions
// itself.
package emulator

import (
	"sync/atomic"

	"github.com/tevino/abool"
)

// State represents the lifecycle state of the emulation core. It can be
// one of the following:
//
//   - Uninitialized
//   - Paused
//   - Running
//   - Stopping
//   - Stopped
type State int

const (
	// Uninitialized represents a core that has not booted yet.
	Uninitialized State = iota
	// Paused represents a booted core that is not advancing.
	Paused
	// Running represents a core that is actively emulating.
	Running
	// Stopping represents a core that is tearing down.
	Stopping
	// Stopped represents a core that has fully torn down.
	Stopped
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Paused:
		return "Paused"
	case Running:
		return "Running"
	case Stopping:
		return "Stopping"
	case Stopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// StateSource is the interface the hotkey scheduler uses to observe the
// core. Both methods must be safe to call from any goroutine.
type StateSource interface {
	// State returns the current lifecycle state.
	State() State
	// IsRunningAndStarted reports whether the core is Running and has
	// finished booting. A Running core that is still mid-boot reports
	// false.
	IsRunningAndStarted() bool
}

// ThrottleControl is the optional interface for cores that support
// temporarily lifting the speed limiter while a hotkey is held.
type ThrottleControl interface {
	// SetTempThrottleDisabled is called every scheduler tick with the
	// held state of the throttle hotkey.
	SetTempThrottleDisabled(disabled bool)
}

// Machine is a reference StateSource implementation backed by atomic
// state. It is what the demo binary and the tests run the scheduler
// against; a real core would implement StateSource itself.
type Machine struct {
	state            atomic.Int32
	started          *abool.AtomicBool
	throttleDisabled *abool.AtomicBool
}

// NewMachine returns a Machine in the Uninitialized state.
func NewMachine() *Machine {
	return &Machine{
		started:          abool.New(),
		throttleDisabled: abool.New(),
	}
}

// SetState moves the machine to s. Entering Running marks the machine as
// started; entering Uninitialized or Stopped clears the started mark.
func (m *Machine) SetState(s State) {
	m.state.Store(int32(s))
	switch s {
	case Running:
		m.started.Set()
	case Uninitialized, Stopped:
		m.started.UnSet()
	}
}

func (m *Machine) State() State {
	return State(m.state.Load())
}

func (m *Machine) IsRunningAndStarted() bool {
	return m.State() == Running && m.started.IsSet()
}

func (m *Machine) SetTempThrottleDisabled(disabled bool) {
	m.throttleDisabled.SetTo(disabled)
}

// TempThrottleDisabled reports whether the throttle hotkey is currently
// held.
func (m *Machine) TempThrottleDisabled() bool {
	return m.throttleDisabled.IsSet()
}
