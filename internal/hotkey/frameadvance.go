package hotkey

import "github.com/leon22heart/dolphin/pkg/event"

const (
	// maxFrameStepDelay is the upper bound on the configurable
	// inter-step delay.
	maxFrameStepDelay = 60
	// frameStepWindow is the number of ticks a step cycle spans before
	// the next step becomes eligible.
	frameStepWindow = 30
)

// frameAdvance converts a held frame-advance trigger into discrete step
// commands. A single press steps once; holding the trigger repeats steps,
// throttled by stepDelay (0 repeats fastest, 60 slowest). Three
// calibration triggers adjust stepDelay and short-circuit the rest of the
// cycle for that tick.
type frameAdvance struct {
	stepCount      int
	stepDelay      int
	stepDelayCount int
	holding        bool
}

func newFrameAdvance() frameAdvance {
	return frameAdvance{stepDelay: 1}
}

func (f *frameAdvance) tick(in InputSource, emit func(event.Command)) {
	if in.IsPressed(FrameAdvanceIncreaseDelay, false) {
		f.stepDelay = min(f.stepDelay+1, maxFrameStepDelay)
		return
	}

	if in.IsPressed(FrameAdvanceDecreaseDelay, false) {
		f.stepDelay = max(f.stepDelay-1, 0)
		return
	}

	if in.IsPressed(FrameAdvanceResetDelay, false) {
		f.stepDelay = 1
		return
	}

	if in.IsPressed(FrameAdvance, true) {
		if f.stepDelayCount < f.stepDelay && f.holding {
			f.stepDelayCount++
		}

		if (f.stepCount == 0 || f.stepCount == frameStepWindow) && !f.holding {
			emit(event.FrameStep)
			f.holding = true
		}

		if f.stepCount < frameStepWindow {
			f.stepCount++
			f.holding = false
		}

		if f.stepCount == frameStepWindow && f.holding && f.stepDelayCount >= f.stepDelay {
			f.holding = false
			f.stepDelayCount = 0
		}

		return
	}

	if f.stepCount > 0 {
		// trigger released mid-cycle, re-arm for the next press
		f.stepCount = 0
		f.holding = false
		f.stepDelayCount = 0
	}
}
