// Package event defines the commands that the hotkey scheduler emits and
// the dispatcher that fans them out to subscribers. This package is
// separate from the scheduler so that subscribers do not have to import
// the scheduler itself.
package event

// Command is a discrete request emitted to subscribers. Commands carry no
// state of their own; a subscriber that needs a slot number reads it from
// the Event.
type Command int

const (
	// Open requests that a file-open prompt be shown.
	Open Command = iota
	// EjectDisc requests that the inserted disc be ejected.
	EjectDisc
	// ChangeDisc requests a disc change.
	ChangeDisc
	// ToggleFullscreen requests a fullscreen toggle.
	ToggleFullscreen
	// RefreshGameList requests that the game list be rescanned.
	RefreshGameList
	// TogglePause requests that emulation be paused or unpaused.
	TogglePause
	// Stop requests that emulation be stopped.
	Stop
	// Reset requests that emulation be reset.
	Reset
	// FrameStep requests that emulation advance by a single frame.
	FrameStep
	// Screenshot requests a screenshot of the current frame.
	Screenshot
	// Exit requests that the application exit.
	Exit
	// StartRecording requests that input recording begin.
	StartRecording
	// ExportRecording requests that the current recording be exported.
	ExportRecording
	// ToggleReadOnlyMode toggles movie read-only mode.
	ToggleReadOnlyMode
	// ConnectWiiRemote requests that the Wii remote in Slot be
	// connected or disconnected. Slot 4 is the balance board.
	ConnectWiiRemote

	// SaveStateToSlot saves a state to Slot.
	SaveStateToSlot
	// LoadStateFromSlot loads the state in Slot.
	LoadStateFromSlot
	// LoadLastState loads the Slot-th most recently saved state.
	LoadLastState
	// SelectStateSlot selects Slot as the active save slot.
	SelectStateSlot
	// SaveStateToSelected saves a state to the active save slot.
	SaveStateToSelected
	// LoadStateFromSelected loads the state in the active save slot.
	LoadStateFromSelected
	// SaveOldestState overwrites the oldest existing save state.
	SaveOldestState
	// UndoLoadState reverts the last state load.
	UndoLoadState
	// UndoSaveState reverts the last state save.
	UndoSaveState

	// DebugStep steps the CPU by one instruction.
	DebugStep
	// DebugStepOver steps over the next call instruction.
	DebugStepOver
	// DebugStepOut runs until the current function returns.
	DebugStepOut
	// DebugSkip skips the instruction at the program counter.
	DebugSkip
	// DebugShowPC centres the debugger view on the program counter.
	DebugShowPC
	// DebugToggleBreakpoint toggles a breakpoint at the program counter.
	DebugToggleBreakpoint
	// DebugAddBreakpoint prompts for a new breakpoint.
	DebugAddBreakpoint
)

// NumSaveSlots is the number of save-state slots, and therefore the size
// of each per-slot trigger bank.
const NumSaveSlots = 10

var commandNames = [...]string{
	"Open",
	"EjectDisc",
	"ChangeDisc",
	"ToggleFullscreen",
	"RefreshGameList",
	"TogglePause",
	"Stop",
	"Reset",
	"FrameStep",
	"Screenshot",
	"Exit",
	"StartRecording",
	"ExportRecording",
	"ToggleReadOnlyMode",
	"ConnectWiiRemote",
	"SaveStateToSlot",
	"LoadStateFromSlot",
	"LoadLastState",
	"SelectStateSlot",
	"SaveStateToSelected",
	"LoadStateFromSelected",
	"SaveOldestState",
	"UndoLoadState",
	"UndoSaveState",
	"DebugStep",
	"DebugStepOver",
	"DebugStepOut",
	"DebugSkip",
	"DebugShowPC",
	"DebugToggleBreakpoint",
	"DebugAddBreakpoint",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "Unknown"
	}
	return commandNames[c]
}

// Event is the value dispatched to subscribers. Slot is only meaningful
// for the slot-carrying commands and is zero otherwise.
type Event struct {
	Command Command
	Slot    int
}
