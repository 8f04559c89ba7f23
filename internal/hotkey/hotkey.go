// Package hotkey implements the background hotkey scheduler. The
// scheduler samples a set of named triggers at 60 ticks/second and turns
// detected presses (or held state) into commands dispatched to
// subscribers. Input capture itself, the emulation core, the settings
// store and the video/audio subsystems are all external collaborators
// reached through the interfaces in this package.
package hotkey

// Trigger names one logical hotkey. A trigger can be queried in edge
// mode (true only on the tick the key goes down) or held mode (true on
// every tick the key is down); the mode is chosen by the caller, not the
// trigger.
type Trigger int

const (
	// Open prompts for a file to run.
	Open Trigger = iota
	// EjectDisc ejects the inserted disc.
	EjectDisc
	// ChangeDisc swaps the inserted disc.
	ChangeDisc
	// ToggleFullscreen toggles fullscreen rendering.
	ToggleFullscreen
	// RefreshGameList rescans the game list.
	RefreshGameList
	// PlayPause pauses or unpauses emulation.
	PlayPause
	// StopEmulation stops emulation.
	StopEmulation
	// ResetEmulation resets emulation.
	ResetEmulation
	// FrameAdvance steps emulation one frame; held, it repeats at a
	// rate set by the three calibration triggers below.
	FrameAdvance
	// FrameAdvanceIncreaseDelay slows the held-repeat rate.
	FrameAdvanceIncreaseDelay
	// FrameAdvanceDecreaseDelay speeds up the held-repeat rate.
	FrameAdvanceDecreaseDelay
	// FrameAdvanceResetDelay restores the default repeat rate.
	FrameAdvanceResetDelay
	// TakeScreenshot captures the current frame.
	TakeScreenshot
	// Exit quits the application.
	Exit
	// StartRecording begins input recording.
	StartRecording
	// ExportRecording exports the current recording.
	ExportRecording
	// ReadOnlyMode toggles movie read-only mode.
	ReadOnlyMode
	// TriggerSyncButton is forwarded, held, to the Bluetooth
	// pass-through device.
	TriggerSyncButton

	// Step steps the CPU by one instruction (debug).
	Step
	// StepOver steps over the next call (debug).
	StepOver
	// StepOut runs until the current function returns (debug).
	StepOut
	// Skip skips the instruction at the program counter (debug).
	Skip
	// ShowPC centres the debugger on the program counter (debug).
	ShowPC
	// SetPC moves the program counter (debug).
	SetPC
	// BreakpointToggle toggles a breakpoint at the program counter
	// (debug).
	BreakpointToggle
	// BreakpointAdd prompts for a new breakpoint (debug).
	BreakpointAdd

	// Wiimote1Connect through BalanceBoardConnect connect the
	// corresponding Wii remote. When several fire on the same tick the
	// last one in this order wins.
	Wiimote1Connect
	Wiimote2Connect
	Wiimote3Connect
	Wiimote4Connect
	BalanceBoardConnect

	// VolumeDown lowers the volume.
	VolumeDown
	// VolumeUp raises the volume.
	VolumeUp
	// VolumeToggleMute mutes or unmutes audio.
	VolumeToggleMute

	// IncreaseIR raises the internal-resolution scale.
	IncreaseIR
	// DecreaseIR lowers the internal-resolution scale.
	DecreaseIR
	// ToggleCrop toggles frame cropping.
	ToggleCrop
	// ToggleAspectRatio cycles the aspect-ratio mode.
	ToggleAspectRatio
	// ToggleEFBCopies toggles the skip-EFB-copies hack.
	ToggleEFBCopies
	// ToggleXFBCopies toggles the skip-XFB-copies hack.
	ToggleXFBCopies
	// ToggleImmediateXFB toggles immediate XFB presentation.
	ToggleImmediateXFB
	// ToggleFog toggles fog emulation.
	ToggleFog
	// ToggleDumpTextures toggles texture dumping.
	ToggleDumpTextures
	// ToggleHiresTextures toggles custom texture loading.
	ToggleHiresTextures
	// ToggleThrottle, held, temporarily lifts the speed limit.
	ToggleThrottle
	// DecreaseEmulationSpeed lowers the speed limit by 0.1.
	DecreaseEmulationSpeed
	// IncreaseEmulationSpeed raises the speed limit by 0.1.
	IncreaseEmulationSpeed

	// ToggleStereoSBS selects side-by-side stereoscopy, or turns
	// stereoscopy off if already selected.
	ToggleStereoSBS
	// ToggleStereoTAB selects top-and-bottom stereoscopy.
	ToggleStereoTAB
	// ToggleStereoAnaglyph selects anaglyph stereoscopy.
	ToggleStereoAnaglyph
	// ToggleStereo3DVision selects 3D Vision stereoscopy.
	ToggleStereo3DVision
	// DecreaseDepth lowers the stereoscopic separation (held).
	DecreaseDepth
	// IncreaseDepth raises the stereoscopic separation (held).
	IncreaseDepth
	// DecreaseConvergence lowers the convergence distance (held).
	DecreaseConvergence
	// IncreaseConvergence raises the convergence distance (held).
	IncreaseConvergence

	// FreeLookDecreaseSpeed divides the free-look speed by 1.1 (held).
	FreeLookDecreaseSpeed
	// FreeLookIncreaseSpeed multiplies the free-look speed by 1.1
	// (held).
	FreeLookIncreaseSpeed
	// FreeLookResetSpeed restores the free-look speed to 1.
	FreeLookResetSpeed
	// FreeLookUp through FreeLookZoomOut translate the free-look
	// camera by the current speed (held).
	FreeLookUp
	FreeLookDown
	FreeLookLeft
	FreeLookRight
	FreeLookZoomIn
	FreeLookZoomOut
	// FreeLookReset restores the default view.
	FreeLookReset

	// SaveStateSlotSelected saves a state to the active slot.
	SaveStateSlotSelected
	// LoadStateSlotSelected loads the state in the active slot.
	LoadStateSlotSelected

	// LoadStateSlot1 through LoadStateSlot10 load a numbered slot. The
	// bank is contiguous so it can be scanned by offset.
	LoadStateSlot1
	LoadStateSlot2
	LoadStateSlot3
	LoadStateSlot4
	LoadStateSlot5
	LoadStateSlot6
	LoadStateSlot7
	LoadStateSlot8
	LoadStateSlot9
	LoadStateSlot10

	// SaveStateSlot1 through SaveStateSlot10 save to a numbered slot.
	SaveStateSlot1
	SaveStateSlot2
	SaveStateSlot3
	SaveStateSlot4
	SaveStateSlot5
	SaveStateSlot6
	SaveStateSlot7
	SaveStateSlot8
	SaveStateSlot9
	SaveStateSlot10

	// LoadLastState1 through LoadLastState10 load the n-th most
	// recently saved state.
	LoadLastState1
	LoadLastState2
	LoadLastState3
	LoadLastState4
	LoadLastState5
	LoadLastState6
	LoadLastState7
	LoadLastState8
	LoadLastState9
	LoadLastState10

	// SelectStateSlot1 through SelectStateSlot10 select the active
	// slot.
	SelectStateSlot1
	SelectStateSlot2
	SelectStateSlot3
	SelectStateSlot4
	SelectStateSlot5
	SelectStateSlot6
	SelectStateSlot7
	SelectStateSlot8
	SelectStateSlot9
	SelectStateSlot10

	// SaveOldestState overwrites the oldest existing save state.
	SaveOldestState
	// UndoLoadState reverts the last state load.
	UndoLoadState
	// UndoSaveState reverts the last state save.
	UndoSaveState

	// NumTriggers is the number of defined triggers.
	NumTriggers
)

var triggerNames = [NumTriggers]string{
	Open:                      "Open",
	EjectDisc:                 "Eject Disc",
	ChangeDisc:                "Change Disc",
	ToggleFullscreen:          "Toggle Fullscreen",
	RefreshGameList:           "Refresh Game List",
	PlayPause:                 "Play/Pause",
	StopEmulation:             "Stop",
	ResetEmulation:            "Reset",
	FrameAdvance:              "Frame Advance",
	FrameAdvanceIncreaseDelay: "Frame Advance Increase Delay",
	FrameAdvanceDecreaseDelay: "Frame Advance Decrease Delay",
	FrameAdvanceResetDelay:    "Frame Advance Reset Delay",
	TakeScreenshot:            "Take Screenshot",
	Exit:                      "Exit",
	StartRecording:            "Start Recording",
	ExportRecording:           "Export Recording",
	ReadOnlyMode:              "Read-Only Mode",
	TriggerSyncButton:         "Trigger Sync Button",
	Step:                      "Step",
	StepOver:                  "Step Over",
	StepOut:                   "Step Out",
	Skip:                      "Skip",
	ShowPC:                    "Show PC",
	SetPC:                     "Set PC",
	BreakpointToggle:          "Toggle Breakpoint",
	BreakpointAdd:             "Add Breakpoint",
	Wiimote1Connect:           "Connect Wii Remote 1",
	Wiimote2Connect:           "Connect Wii Remote 2",
	Wiimote3Connect:           "Connect Wii Remote 3",
	Wiimote4Connect:           "Connect Wii Remote 4",
	BalanceBoardConnect:       "Connect Balance Board",
	VolumeDown:                "Volume Down",
	VolumeUp:                  "Volume Up",
	VolumeToggleMute:          "Volume Toggle Mute",
	IncreaseIR:                "Increase IR",
	DecreaseIR:                "Decrease IR",
	ToggleCrop:                "Toggle Crop",
	ToggleAspectRatio:         "Toggle Aspect Ratio",
	ToggleEFBCopies:           "Toggle EFB Copies",
	ToggleXFBCopies:           "Toggle XFB Copies",
	ToggleImmediateXFB:        "Toggle Immediate XFB",
	ToggleFog:                 "Toggle Fog",
	ToggleDumpTextures:        "Toggle Texture Dumping",
	ToggleHiresTextures:       "Toggle Custom Textures",
	ToggleThrottle:            "Disable Emulation Speed Limit",
	DecreaseEmulationSpeed:    "Decrease Emulation Speed",
	IncreaseEmulationSpeed:    "Increase Emulation Speed",
	ToggleStereoSBS:           "Toggle 3D Side-by-Side",
	ToggleStereoTAB:           "Toggle 3D Top-Bottom",
	ToggleStereoAnaglyph:      "Toggle 3D Anaglyph",
	ToggleStereo3DVision:      "Toggle 3D Vision",
	DecreaseDepth:             "Decrease Depth",
	IncreaseDepth:             "Increase Depth",
	DecreaseConvergence:       "Decrease Convergence",
	IncreaseConvergence:       "Increase Convergence",
	FreeLookDecreaseSpeed:     "Freelook Decrease Speed",
	FreeLookIncreaseSpeed:     "Freelook Increase Speed",
	FreeLookResetSpeed:        "Freelook Reset Speed",
	FreeLookUp:                "Freelook Move Up",
	FreeLookDown:              "Freelook Move Down",
	FreeLookLeft:              "Freelook Move Left",
	FreeLookRight:             "Freelook Move Right",
	FreeLookZoomIn:            "Freelook Zoom In",
	FreeLookZoomOut:           "Freelook Zoom Out",
	FreeLookReset:             "Freelook Reset",
	SaveStateSlotSelected:     "Save to Selected Slot",
	LoadStateSlotSelected:     "Load from Selected Slot",
	LoadStateSlot1:            "Load State Slot 1",
	LoadStateSlot2:            "Load State Slot 2",
	LoadStateSlot3:            "Load State Slot 3",
	LoadStateSlot4:            "Load State Slot 4",
	LoadStateSlot5:            "Load State Slot 5",
	LoadStateSlot6:            "Load State Slot 6",
	LoadStateSlot7:            "Load State Slot 7",
	LoadStateSlot8:            "Load State Slot 8",
	LoadStateSlot9:            "Load State Slot 9",
	LoadStateSlot10:           "Load State Slot 10",
	SaveStateSlot1:            "Save State Slot 1",
	SaveStateSlot2:            "Save State Slot 2",
	SaveStateSlot3:            "Save State Slot 3",
	SaveStateSlot4:            "Save State Slot 4",
	SaveStateSlot5:            "Save State Slot 5",
	SaveStateSlot6:            "Save State Slot 6",
	SaveStateSlot7:            "Save State Slot 7",
	SaveStateSlot8:            "Save State Slot 8",
	SaveStateSlot9:            "Save State Slot 9",
	SaveStateSlot10:           "Save State Slot 10",
	LoadLastState1:            "Load Last State 1",
	LoadLastState2:            "Load Last State 2",
	LoadLastState3:            "Load Last State 3",
	LoadLastState4:            "Load Last State 4",
	LoadLastState5:            "Load Last State 5",
	LoadLastState6:            "Load Last State 6",
	LoadLastState7:            "Load Last State 7",
	LoadLastState8:            "Load Last State 8",
	LoadLastState9:            "Load Last State 9",
	LoadLastState10:           "Load Last State 10",
	SelectStateSlot1:          "Select State Slot 1",
	SelectStateSlot2:          "Select State Slot 2",
	SelectStateSlot3:          "Select State Slot 3",
	SelectStateSlot4:          "Select State Slot 4",
	SelectStateSlot5:          "Select State Slot 5",
	SelectStateSlot6:          "Select State Slot 6",
	SelectStateSlot7:          "Select State Slot 7",
	SelectStateSlot8:          "Select State Slot 8",
	SelectStateSlot9:          "Select State Slot 9",
	SelectStateSlot10:         "Select State Slot 10",
	SaveOldestState:           "Save Oldest State",
	UndoLoadState:             "Undo Load State",
	UndoSaveState:             "Undo Save State",
}

var triggerByName = map[string]Trigger{}

func init() {
	for i, name := range triggerNames {
		triggerByName[name] = Trigger(i)
	}
}

func (t Trigger) String() string {
	if t < 0 || t >= NumTriggers {
		return "Unknown"
	}
	return triggerNames[t]
}

// TriggerByName returns the trigger with the given display name.
func TriggerByName(name string) (Trigger, bool) {
	t, ok := triggerByName[name]
	return t, ok
}

// InputSource answers trigger queries for the scheduler. Implementations
// must be safe to call from the scheduler goroutine while other
// goroutines feed them state.
type InputSource interface {
	// IsPressed reports whether t fired. With held false it reports
	// true only once per press; with held true it reports true for
	// every tick the key is down.
	IsPressed(t Trigger, held bool) bool
	// Enabled is the global hotkey gate. While false the scheduler
	// ticks but performs no work.
	Enabled() bool
	// Refresh polls the underlying input backend. The scheduler calls
	// it while the emulation core is uninitialized or paused, because
	// some backends are only pumped by the core while it runs.
	Refresh()
}
