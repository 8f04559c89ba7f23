package hotkey

import (
	"sync"
	"time"

	"github.com/tevino/abool"

	"github.com/leon22heart/dolphin/internal/bluetooth"
	"github.com/leon22heart/dolphin/internal/config"
	"github.com/leon22heart/dolphin/pkg/emulator"
	"github.com/leon22heart/dolphin/pkg/event"
	"github.com/leon22heart/dolphin/pkg/log"
	"github.com/leon22heart/dolphin/pkg/osd"
)

// tickInterval is the polling cadence, 60 ticks/second.
const tickInterval = time.Second / 60

// duboisShader is the post-processing shader forced by anaglyph
// stereoscopy.
const duboisShader = "dubois"

const (
	volumeStep         = 3
	convergenceStep    = 5
	emulationSpeedStep = 0.1
	// efbScaleAutoIntegral is the scale value selecting automatic
	// integral scaling; the decrease hotkey never goes below it.
	efbScaleAutoIntegral = 0
)

// Config is the slice of the settings store the scheduler reads and
// writes.
type Config interface {
	GetBool(key config.Bool) bool
	SetBool(key config.Bool, v bool)
	GetInt(key config.Int) int
	SetInt(key config.Int, v int)
	GetFloat(key config.Float) float64
	SetFloat(key config.Float, v float64)
	GetString(key config.String) string
	SetString(key config.String, v string)
}

// Scheduler owns the background polling loop. Construct it with
// NewScheduler, attach subscribers, then Start it. Start and Stop are the
// only methods safe to call from other goroutines; everything else runs
// on the scheduler's own goroutine.
type Scheduler struct {
	input InputSource
	core  emulator.StateSource
	cfg   Config

	view     View
	notifier osd.Notifier
	devices  bluetooth.Registry
	throttle emulator.ThrottleControl
	logger   log.Logger

	dispatcher *event.Dispatcher

	frameAdvance frameAdvance
	freeLook     freeLook

	stopRequested *abool.AtomicBool

	mu   sync.Mutex
	done chan struct{}
}

// SchedulerOpt configures a Scheduler.
type SchedulerOpt func(s *Scheduler)

// WithView attaches a free-look camera.
func WithView(v View) SchedulerOpt {
	return func(s *Scheduler) {
		s.view = v
	}
}

// WithNotifier attaches an on-screen-display notifier.
func WithNotifier(n osd.Notifier) SchedulerOpt {
	return func(s *Scheduler) {
		s.notifier = n
	}
}

// WithDevices attaches a Bluetooth device registry for the sync-button
// forward.
func WithDevices(r bluetooth.Registry) SchedulerOpt {
	return func(s *Scheduler) {
		s.devices = r
	}
}

// WithThrottleControl attaches the core's temporary-throttle control.
func WithThrottleControl(t emulator.ThrottleControl) SchedulerOpt {
	return func(s *Scheduler) {
		s.throttle = t
	}
}

// WithLogger sets the scheduler's logger.
func WithLogger(l log.Logger) SchedulerOpt {
	return func(s *Scheduler) {
		s.logger = l
	}
}

// NewScheduler returns a Scheduler polling input against core and cfg.
// The scheduler is not running until Start is called.
func NewScheduler(input InputSource, core emulator.StateSource, cfg Config, opts ...SchedulerOpt) *Scheduler {
	s := &Scheduler{
		input:         input,
		core:          core,
		cfg:           cfg,
		logger:        log.NewNullLogger(),
		dispatcher:    event.NewDispatcher(),
		frameAdvance:  newFrameAdvance(),
		freeLook:      newFreeLook(),
		stopRequested: abool.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Attach registers a subscriber for every command the scheduler emits.
// Attach before Start.
func (s *Scheduler) Attach(h event.Handler) {
	s.dispatcher.Attach(h)
}

// Start spawns the polling loop. Calling Start while the loop is already
// running is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done != nil {
		return
	}

	s.stopRequested.UnSet()
	s.done = make(chan struct{})
	go s.run(s.done)
}

// Stop requests termination and blocks until the loop has fully exited.
// After Stop returns no further command is dispatched. Stop on a
// never-started (or already stopped) scheduler is a no-op; concurrent
// callers all block until the loop is gone.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	if done == nil {
		return
	}

	s.stopRequested.Set()
	<-done

	s.mu.Lock()
	if s.done == done {
		s.done = nil
	}
	s.mu.Unlock()
}

func (s *Scheduler) run(done chan struct{}) {
	defer close(done)

	s.logger.Debugf("hotkey scheduler running")
	for !s.stopRequested.IsSet() {
		// the tick consumes its time slot even when nothing fires
		time.Sleep(tickInterval)
		s.tick()
	}
	s.logger.Debugf("hotkey scheduler stopped")
}

// tick performs one evaluation pass. The stop flag is only sampled
// between ticks, so a tick always runs to completion.
func (s *Scheduler) tick() {
	if !s.input.Enabled() {
		return
	}

	state := s.core.State()

	if state == emulator.Uninitialized || state == emulator.Paused {
		// some input backends are only pumped by the core while it
		// runs, so poll them here
		s.input.Refresh()
	}

	if state != emulator.Stopping {
		if !s.core.IsRunningAndStarted() {
			return
		}
		s.tickGated()
	}

	s.tickAlways()
}

// tickGated evaluates the commands that are suppressed while the core is
// stopping.
func (s *Scheduler) tickGated() {
	if s.isHotkey(Open) {
		s.emit(event.Open)
	}

	// disc
	if s.isHotkey(EjectDisc) {
		s.emit(event.EjectDisc)
	}
	if s.isHotkey(ChangeDisc) {
		s.emit(event.ChangeDisc)
	}

	if s.isHotkey(ToggleFullscreen) {
		s.emit(event.ToggleFullscreen)
	}
	if s.isHotkey(RefreshGameList) {
		s.emit(event.RefreshGameList)
	}
	if s.isHotkey(PlayPause) {
		s.emit(event.TogglePause)
	}
	if s.isHotkey(StopEmulation) {
		s.emit(event.Stop)
	}
	if s.isHotkey(ResetEmulation) {
		s.emit(event.Reset)
	}

	s.frameAdvance.tick(s.input, s.emit)

	if s.isHotkey(TakeScreenshot) {
		s.emit(event.Screenshot)
	}
	if s.isHotkey(Exit) {
		s.emit(event.Exit)
	}

	// recording
	if s.isHotkey(StartRecording) {
		s.emit(event.StartRecording)
	}
	if s.isHotkey(ExportRecording) {
		s.emit(event.ExportRecording)
	}
	if s.isHotkey(ReadOnlyMode) {
		s.emit(event.ToggleReadOnlyMode)
	}

	// sync-button forward; a missing device skips the forward
	if s.cfg.GetBool(config.BluetoothPassthrough) && s.devices != nil {
		if dev := s.devices.DeviceByName(bluetooth.SyncButtonDeviceName); dev != nil {
			dev.UpdateSyncButtonState(s.isHotkeyHeld(TriggerSyncButton))
		}
	}

	if s.cfg.GetBool(config.Debug) {
		s.checkDebugHotkeys()
	}

	if s.cfg.GetBool(config.Wii) {
		// last matching remote in scan order wins
		remote := -1
		if s.isHotkey(Wiimote1Connect) {
			remote = 0
		}
		if s.isHotkey(Wiimote2Connect) {
			remote = 1
		}
		if s.isHotkey(Wiimote3Connect) {
			remote = 2
		}
		if s.isHotkey(Wiimote4Connect) {
			remote = 3
		}
		if s.isHotkey(BalanceBoardConnect) {
			remote = 4
		}

		if remote > -1 {
			s.emitSlot(event.ConnectWiiRemote, remote)
		}
	}

	// volume
	if s.isHotkey(VolumeDown) {
		s.showMessage(osd.VolumeChanged)
		s.cfg.SetInt(config.Volume, max(s.cfg.GetInt(config.Volume)-volumeStep, 0))
	}
	if s.isHotkey(VolumeUp) {
		s.showMessage(osd.VolumeChanged)
		s.cfg.SetInt(config.Volume, min(s.cfg.GetInt(config.Volume)+volumeStep, 100))
	}
	if s.isHotkey(VolumeToggleMute) {
		s.showMessage(osd.VolumeChanged)
		s.cfg.SetBool(config.AudioMuted, !s.cfg.GetBool(config.AudioMuted))
	}

	// graphics
	efbScale := s.cfg.GetInt(config.EFBScale)
	if s.isHotkey(IncreaseIR) {
		s.showMessage(osd.IRChanged)
		s.cfg.SetInt(config.EFBScale, efbScale+1)
	}
	if s.isHotkey(DecreaseIR) {
		s.showMessage(osd.IRChanged)
		if efbScale > efbScaleAutoIntegral {
			s.cfg.SetInt(config.EFBScale, efbScale-1)
		}
	}

	if s.isHotkey(ToggleCrop) {
		s.cfg.SetBool(config.Crop, !s.cfg.GetBool(config.Crop))
	}

	if s.isHotkey(ToggleAspectRatio) {
		s.showMessage(osd.ARToggled)
		s.cfg.SetInt(config.AspectRatio, (s.cfg.GetInt(config.AspectRatio)+1)&3)
	}

	if s.isHotkey(ToggleEFBCopies) {
		s.showMessage(osd.EFBCopyToggled)
		s.cfg.SetBool(config.SkipEFBCopyToRAM, !s.cfg.GetBool(config.SkipEFBCopyToRAM))
	}

	if s.isHotkey(ToggleXFBCopies) {
		s.showMessage(osd.XFBChanged)
		s.cfg.SetBool(config.SkipXFBCopyToRAM, !s.cfg.GetBool(config.SkipXFBCopyToRAM))
	}
	if s.isHotkey(ToggleImmediateXFB) {
		s.showMessage(osd.XFBChanged)
		s.cfg.SetBool(config.ImmediateXFB, !s.cfg.GetBool(config.ImmediateXFB))
	}

	if s.isHotkey(ToggleFog) {
		s.showMessage(osd.FogToggled)
		s.cfg.SetBool(config.DisableFog, !s.cfg.GetBool(config.DisableFog))
	}

	if s.isHotkey(ToggleDumpTextures) {
		s.cfg.SetBool(config.DumpTextures, !s.cfg.GetBool(config.DumpTextures))
	}
	if s.isHotkey(ToggleHiresTextures) {
		s.cfg.SetBool(config.HiresTextures, !s.cfg.GetBool(config.HiresTextures))
	}

	if s.throttle != nil {
		s.throttle.SetTempThrottleDisabled(s.isHotkeyHeld(ToggleThrottle))
	}

	if s.isHotkey(DecreaseEmulationSpeed) {
		s.showMessage(osd.SpeedChanged)

		speed := s.cfg.GetFloat(config.EmulationSpeed) - emulationSpeedStep
		if speed <= 0 || (speed >= 0.95 && speed <= 1.05) {
			speed = 1.0
		}
		s.cfg.SetFloat(config.EmulationSpeed, speed)
	}

	if s.isHotkey(IncreaseEmulationSpeed) {
		s.showMessage(osd.SpeedChanged)

		speed := s.cfg.GetFloat(config.EmulationSpeed) + emulationSpeedStep
		if speed >= 0.95 && speed <= 1.05 {
			speed = 1.0
		}
		s.cfg.SetFloat(config.EmulationSpeed, speed)
	}

	// selected-slot saving / loading
	if s.isHotkey(SaveStateSlotSelected) {
		s.emit(event.SaveStateToSelected)
	}
	if s.isHotkey(LoadStateSlotSelected) {
		s.emit(event.LoadStateFromSelected)
	}

	// stereoscopy
	if s.isHotkey(ToggleStereoSBS) {
		s.toggleStereoMode(config.StereoSBS)
	}
	if s.isHotkey(ToggleStereoTAB) {
		s.toggleStereoMode(config.StereoTAB)
	}
	if s.isHotkey(ToggleStereoAnaglyph) {
		s.toggleStereoMode(config.StereoAnaglyph)
	}
	if s.isHotkey(ToggleStereo3DVision) {
		s.toggleStereoMode(config.Stereo3DVision)
	}
}

// toggleStereoMode selects mode, or turns stereoscopy off if mode is
// already active. Anaglyph needs its reconstruction shader, and
// stereoscopy is itself rendered as a post-processing pass, so the other
// modes evict that shader rather than stack on it.
func (s *Scheduler) toggleStereoMode(mode int) {
	if s.cfg.GetInt(config.StereoMode) == mode {
		s.cfg.SetInt(config.StereoMode, config.StereoOff)
		if mode == config.StereoAnaglyph && s.cfg.GetString(config.PostProcessShader) == duboisShader {
			s.cfg.SetString(config.PostProcessShader, "")
		}
		return
	}

	if mode == config.StereoAnaglyph {
		s.cfg.SetInt(config.StereoMode, mode)
		s.cfg.SetString(config.PostProcessShader, duboisShader)
		return
	}

	if s.cfg.GetString(config.PostProcessShader) == duboisShader {
		s.cfg.SetString(config.PostProcessShader, "")
	}
	s.cfg.SetInt(config.StereoMode, mode)
}

// tickAlways evaluates the commands that keep working while the core is
// stopping.
func (s *Scheduler) tickAlways() {
	stereoDepth := s.cfg.GetInt(config.StereoDepth)
	if s.isHotkeyHeld(DecreaseDepth) {
		s.cfg.SetInt(config.StereoDepth, min(stereoDepth-1, 0))
	}
	if s.isHotkeyHeld(IncreaseDepth) {
		s.cfg.SetInt(config.StereoDepth, min(stereoDepth+1, 100))
	}

	stereoConvergence := s.cfg.GetInt(config.StereoConvergence)
	if s.isHotkeyHeld(DecreaseConvergence) {
		s.cfg.SetInt(config.StereoConvergence, max(stereoConvergence-convergenceStep, 0))
	}
	if s.isHotkeyHeld(IncreaseConvergence) {
		s.cfg.SetInt(config.StereoConvergence, min(stereoConvergence+convergenceStep, 500))
	}

	s.freeLook.tick(s.input, s.view)

	// savestate banks
	for i := 0; i < event.NumSaveSlots; i++ {
		if s.isHotkey(LoadStateSlot1 + Trigger(i)) {
			s.emitSlot(event.LoadStateFromSlot, i+1)
		}
		if s.isHotkey(SaveStateSlot1 + Trigger(i)) {
			s.emitSlot(event.SaveStateToSlot, i+1)
		}
		if s.isHotkey(LoadLastState1 + Trigger(i)) {
			s.emitSlot(event.LoadLastState, i+1)
		}
		if s.isHotkey(SelectStateSlot1 + Trigger(i)) {
			s.emitSlot(event.SelectStateSlot, i+1)
		}
	}

	if s.isHotkey(SaveOldestState) {
		s.emit(event.SaveOldestState)
	}
	if s.isHotkey(UndoLoadState) {
		s.emit(event.UndoLoadState)
	}
	if s.isHotkey(UndoSaveState) {
		s.emit(event.UndoSaveState)
	}
}

func (s *Scheduler) isHotkey(t Trigger) bool {
	return s.input.IsPressed(t, false)
}

func (s *Scheduler) isHotkeyHeld(t Trigger) bool {
	return s.input.IsPressed(t, true)
}

func (s *Scheduler) emit(c event.Command) {
	s.dispatcher.Dispatch(event.Event{Command: c})
}

func (s *Scheduler) emitSlot(c event.Command, slot int) {
	s.dispatcher.Dispatch(event.Event{Command: c, Slot: slot})
}

func (s *Scheduler) showMessage(m osd.Message) {
	if s.notifier != nil {
		s.notifier.ShowMessage(m)
	}
}
