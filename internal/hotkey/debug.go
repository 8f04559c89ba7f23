package hotkey

import "github.com/leon22heart/dolphin/pkg/event"

// checkDebugHotkeys evaluates the debugger bank. It only runs while the
// debug setting is on, and only in the gated part of a tick.
func (s *Scheduler) checkDebugHotkeys() {
	if s.isHotkey(Step) {
		s.emit(event.DebugStep)
	}

	if s.isHotkey(StepOver) {
		s.emit(event.DebugStepOver)
	}

	if s.isHotkey(StepOut) {
		s.emit(event.DebugStepOut)
	}

	if s.isHotkey(Skip) {
		s.emit(event.DebugSkip)
	}

	if s.isHotkey(ShowPC) {
		s.emit(event.DebugShowPC)
	}

	// moving the program counter is handled as a skip
	if s.isHotkey(SetPC) {
		s.emit(event.DebugSkip)
	}

	if s.isHotkey(BreakpointToggle) {
		s.emit(event.DebugToggleBreakpoint)
	}

	if s.isHotkey(BreakpointAdd) {
		s.emit(event.DebugAddBreakpoint)
	}
}
