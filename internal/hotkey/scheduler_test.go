package hotkey

import (
	"testing"
	"time"

	"github.com/cespare/xxhash"

	"github.com/leon22heart/dolphin/internal/bluetooth"
	"github.com/leon22heart/dolphin/internal/config"
	"github.com/leon22heart/dolphin/pkg/emulator"
	"github.com/leon22heart/dolphin/pkg/event"
	"github.com/leon22heart/dolphin/pkg/osd"
)

func newTestScheduler(core emulator.StateSource, opts ...SchedulerOpt) (*Scheduler, *fakeInput, *config.Store, *collector) {
	in := newFakeInput()
	store := config.NewStore()
	col := &collector{}

	s := NewScheduler(in, core, store, opts...)
	s.Attach(col.handle)
	return s, in, store, col
}

func TestScheduler_DispatchOrder(t *testing.T) {
	s, in, _, col := newTestScheduler(runningCore())

	in.press(TakeScreenshot)
	in.press(StopEmulation)
	in.press(PlayPause)
	in.press(Open)
	s.tick()

	want := []event.Command{event.Open, event.TogglePause, event.Stop, event.Screenshot}
	got := col.commands()
	if len(got) != len(want) {
		t.Fatalf("expected %d commands, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected command %d to be %v, got %v", i, want[i], got[i])
		}
	}
}

func TestScheduler_StoppingSuppressesMostCommands(t *testing.T) {
	core := &fakeCore{state: emulator.Stopping, started: true}
	s, in, _, col := newTestScheduler(core)

	in.press(PlayPause)
	in.press(TakeScreenshot)
	in.press(LoadStateSlot3)
	in.press(UndoSaveState)
	s.tick()

	want := []event.Event{
		{Command: event.LoadStateFromSlot, Slot: 3},
		{Command: event.UndoSaveState},
	}
	got := col.all()
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected event %d to be %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestScheduler_RefreshesInputWhileIdle(t *testing.T) {
	tests := []struct {
		name string
		core *fakeCore
	}{
		{"uninitialized", &fakeCore{state: emulator.Uninitialized}},
		{"paused", &fakeCore{state: emulator.Paused, started: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, in, _, col := newTestScheduler(tt.core)

			in.press(TakeScreenshot)
			s.tick()
			s.tick()

			if in.refreshes != 2 {
				t.Errorf("expected one refresh per tick, got %d", in.refreshes)
			}
			if col.count() != 0 {
				t.Errorf("expected no commands while not running, got %v", col.commands())
			}
		})
	}
}

func TestScheduler_DisabledInputSkipsTick(t *testing.T) {
	core := &fakeCore{state: emulator.Uninitialized}
	s, in, _, col := newTestScheduler(core)
	in.enabled = false

	in.press(TakeScreenshot)
	s.tick()

	if in.refreshes != 0 {
		t.Error("expected no refresh while input is disabled")
	}
	if col.count() != 0 {
		t.Errorf("expected no commands while input is disabled, got %v", col.commands())
	}
}

func TestScheduler_WiimoteConnect(t *testing.T) {
	s, in, store, col := newTestScheduler(runningCore())
	store.SetBool(config.Wii, true)

	// simultaneous presses resolve to the last slot in scan order
	in.press(Wiimote2Connect)
	in.press(BalanceBoardConnect)
	s.tick()

	got := col.all()
	if len(got) != 1 {
		t.Fatalf("expected a single connect event, got %v", got)
	}
	if got[0].Command != event.ConnectWiiRemote || got[0].Slot != 4 {
		t.Errorf("expected ConnectWiiRemote slot 4, got %+v", got[0])
	}
}

func TestScheduler_WiimoteConnectRequiresWii(t *testing.T) {
	s, in, _, col := newTestScheduler(runningCore())

	in.press(Wiimote1Connect)
	s.tick()

	if col.count() != 0 {
		t.Errorf("expected no connect event outside Wii mode, got %v", col.commands())
	}
}

func TestScheduler_VolumeClamps(t *testing.T) {
	s, in, store, _ := newTestScheduler(runningCore())

	in.press(VolumeUp)
	s.tick()
	if got := store.GetInt(config.Volume); got != 100 {
		t.Errorf("expected volume clamped at 100, got %d", got)
	}

	store.SetInt(config.Volume, 2)
	in.press(VolumeDown)
	s.tick()
	if got := store.GetInt(config.Volume); got != 0 {
		t.Errorf("expected volume clamped at 0, got %d", got)
	}
}

func TestScheduler_VolumeNotifiesBeforeMutation(t *testing.T) {
	var observed []int
	in := newFakeInput()
	store := config.NewStore()
	n := osd.NotifierFunc(func(m osd.Message) {
		observed = append(observed, store.GetInt(config.Volume))
	})
	s := NewScheduler(in, runningCore(), store, WithNotifier(n))

	in.press(VolumeDown)
	s.tick()

	if len(observed) != 1 || observed[0] != 100 {
		t.Errorf("expected the notification to precede the volume change, observed %v", observed)
	}
	if got := store.GetInt(config.Volume); got != 97 {
		t.Errorf("expected volume 97 after the step, got %d", got)
	}
}

func TestScheduler_ToggleMute(t *testing.T) {
	s, in, store, _ := newTestScheduler(runningCore())

	in.press(VolumeToggleMute)
	s.tick()
	if !store.GetBool(config.AudioMuted) {
		t.Error("expected audio muted after toggle")
	}

	in.press(VolumeToggleMute)
	s.tick()
	if store.GetBool(config.AudioMuted) {
		t.Error("expected audio unmuted after second toggle")
	}
}

func TestScheduler_InternalResolutionFloor(t *testing.T) {
	s, in, store, _ := newTestScheduler(runningCore(), WithNotifier(&fakeNotifier{}))

	in.press(IncreaseIR)
	s.tick()
	if got := store.GetInt(config.EFBScale); got != 2 {
		t.Errorf("expected scale 2 after increase, got %d", got)
	}

	store.SetInt(config.EFBScale, 0)
	in.press(DecreaseIR)
	s.tick()
	if got := store.GetInt(config.EFBScale); got != 0 {
		t.Errorf("expected decrease at the floor to do nothing, got %d", got)
	}
}

func TestScheduler_AspectRatioCycles(t *testing.T) {
	s, in, store, _ := newTestScheduler(runningCore())

	want := []int{config.AspectForce169, config.AspectForce43, config.AspectStretch, config.AspectAuto}
	for i, w := range want {
		in.press(ToggleAspectRatio)
		s.tick()
		if got := store.GetInt(config.AspectRatio); got != w {
			t.Errorf("press %d: expected aspect %d, got %d", i+1, w, got)
		}
	}
}

func TestScheduler_GraphicsToggles(t *testing.T) {
	tests := []struct {
		trigger Trigger
		key     config.Bool
	}{
		{ToggleCrop, config.Crop},
		{ToggleEFBCopies, config.SkipEFBCopyToRAM},
		{ToggleXFBCopies, config.SkipXFBCopyToRAM},
		{ToggleImmediateXFB, config.ImmediateXFB},
		{ToggleFog, config.DisableFog},
		{ToggleDumpTextures, config.DumpTextures},
		{ToggleHiresTextures, config.HiresTextures},
	}
	for _, tt := range tests {
		s, in, store, _ := newTestScheduler(runningCore())

		in.press(tt.trigger)
		s.tick()
		if !store.GetBool(tt.key) {
			t.Errorf("%v: expected the setting on after one press", tt.trigger)
		}

		in.press(tt.trigger)
		s.tick()
		if store.GetBool(tt.key) {
			t.Errorf("%v: expected the setting off after two presses", tt.trigger)
		}
	}
}

func TestScheduler_EmulationSpeed(t *testing.T) {
	s, in, store, _ := newTestScheduler(runningCore())

	in.press(IncreaseEmulationSpeed)
	s.tick()
	if got := store.GetFloat(config.EmulationSpeed); got != 1.1 {
		t.Errorf("expected speed 1.1, got %v", got)
	}

	// stepping back down lands inside the snap window around 1.0
	in.press(DecreaseEmulationSpeed)
	s.tick()
	if got := store.GetFloat(config.EmulationSpeed); got != 1.0 {
		t.Errorf("expected speed snapped to 1.0, got %v", got)
	}

	// an increase into the window snaps too
	store.SetFloat(config.EmulationSpeed, 0.85)
	in.press(IncreaseEmulationSpeed)
	s.tick()
	if got := store.GetFloat(config.EmulationSpeed); got != 1.0 {
		t.Errorf("expected 0.85 + 0.1 to snap to 1.0, got %v", got)
	}

	// decreasing to or past zero resets to full speed
	store.SetFloat(config.EmulationSpeed, 0.1)
	in.press(DecreaseEmulationSpeed)
	s.tick()
	if got := store.GetFloat(config.EmulationSpeed); got != 1.0 {
		t.Errorf("expected speed reset to 1.0 at zero, got %v", got)
	}
}

func TestScheduler_StereoModes(t *testing.T) {
	s, in, store, _ := newTestScheduler(runningCore())

	in.press(ToggleStereoSBS)
	s.tick()
	if got := store.GetInt(config.StereoMode); got != config.StereoSBS {
		t.Fatalf("expected side-by-side mode, got %d", got)
	}

	// toggling the active mode turns stereoscopy off
	in.press(ToggleStereoSBS)
	s.tick()
	if got := store.GetInt(config.StereoMode); got != config.StereoOff {
		t.Fatalf("expected stereoscopy off, got %d", got)
	}

	in.press(ToggleStereoAnaglyph)
	s.tick()
	if got := store.GetInt(config.StereoMode); got != config.StereoAnaglyph {
		t.Fatalf("expected anaglyph mode, got %d", got)
	}
	if got := store.GetString(config.PostProcessShader); got != duboisShader {
		t.Fatalf("expected the dubois shader with anaglyph, got %q", got)
	}

	// switching from anaglyph to another mode evicts the shader
	in.press(ToggleStereoTAB)
	s.tick()
	if got := store.GetInt(config.StereoMode); got != config.StereoTAB {
		t.Fatalf("expected top-and-bottom mode, got %d", got)
	}
	if got := store.GetString(config.PostProcessShader); got != "" {
		t.Fatalf("expected the shader cleared, got %q", got)
	}

	// toggling anaglyph off clears its shader too
	in.press(ToggleStereoAnaglyph)
	s.tick()
	in.press(ToggleStereoAnaglyph)
	s.tick()
	if got := store.GetInt(config.StereoMode); got != config.StereoOff {
		t.Errorf("expected stereoscopy off, got %d", got)
	}
	if got := store.GetString(config.PostProcessShader); got != "" {
		t.Errorf("expected the shader cleared, got %q", got)
	}
}

func TestScheduler_StereoDepth(t *testing.T) {
	s, in, store, _ := newTestScheduler(runningCore())

	in.hold(DecreaseDepth)
	s.tick()
	if got := store.GetInt(config.StereoDepth); got != 0 {
		t.Errorf("expected depth 0 after first decrease, got %d", got)
	}
	s.tick()
	if got := store.GetInt(config.StereoDepth); got != -1 {
		t.Errorf("expected depth -1 after second decrease, got %d", got)
	}
	in.release(DecreaseDepth)

	in.hold(IncreaseDepth)
	s.tick()
	if got := store.GetInt(config.StereoDepth); got != 0 {
		t.Errorf("expected depth 0 after increase, got %d", got)
	}

	store.SetInt(config.StereoDepth, 100)
	s.tick()
	if got := store.GetInt(config.StereoDepth); got != 100 {
		t.Errorf("expected depth capped at 100, got %d", got)
	}
}

func TestScheduler_StereoConvergence(t *testing.T) {
	s, in, store, _ := newTestScheduler(runningCore())

	in.hold(DecreaseConvergence)
	s.tick()
	if got := store.GetInt(config.StereoConvergence); got != 15 {
		t.Errorf("expected convergence 15, got %d", got)
	}

	store.SetInt(config.StereoConvergence, 3)
	s.tick()
	if got := store.GetInt(config.StereoConvergence); got != 0 {
		t.Errorf("expected convergence floored at 0, got %d", got)
	}
	in.release(DecreaseConvergence)

	store.SetInt(config.StereoConvergence, 498)
	in.hold(IncreaseConvergence)
	s.tick()
	if got := store.GetInt(config.StereoConvergence); got != 500 {
		t.Errorf("expected convergence capped at 500, got %d", got)
	}
}

type fakeSyncDevice struct {
	states []bool
}

func (d *fakeSyncDevice) UpdateSyncButtonState(pressed bool) {
	d.states = append(d.states, pressed)
}

func TestScheduler_SyncButtonForward(t *testing.T) {
	dev := &fakeSyncDevice{}
	registry := bluetooth.MapRegistry{bluetooth.SyncButtonDeviceName: dev}

	s, in, store, _ := newTestScheduler(runningCore(), WithDevices(registry))
	store.SetBool(config.BluetoothPassthrough, true)

	in.hold(TriggerSyncButton)
	s.tick()
	in.release(TriggerSyncButton)
	s.tick()

	want := []bool{true, false}
	if len(dev.states) != len(want) {
		t.Fatalf("expected %d forwards, got %d", len(want), len(dev.states))
	}
	for i := range want {
		if dev.states[i] != want[i] {
			t.Errorf("expected forward %d to be %v, got %v", i, want[i], dev.states[i])
		}
	}
}

func TestScheduler_SyncButtonMissingDevice(t *testing.T) {
	s, in, store, _ := newTestScheduler(runningCore(), WithDevices(bluetooth.MapRegistry{}))
	store.SetBool(config.BluetoothPassthrough, true)

	in.hold(TriggerSyncButton)
	s.tick()
	// nothing to assert, the tick must simply not panic
}

func TestScheduler_DebugCommands(t *testing.T) {
	s, in, store, col := newTestScheduler(runningCore())

	in.press(Step)
	s.tick()
	if col.count() != 0 {
		t.Fatalf("expected no debug commands outside debug mode, got %v", col.commands())
	}

	store.SetBool(config.Debug, true)
	tests := []struct {
		trigger Trigger
		want    event.Command
	}{
		{Step, event.DebugStep},
		{StepOver, event.DebugStepOver},
		{StepOut, event.DebugStepOut},
		{Skip, event.DebugSkip},
		{ShowPC, event.DebugShowPC},
		{SetPC, event.DebugSkip},
		{BreakpointToggle, event.DebugToggleBreakpoint},
		{BreakpointAdd, event.DebugAddBreakpoint},
	}
	for _, tt := range tests {
		before := col.count()
		in.press(tt.trigger)
		s.tick()

		got := col.all()
		if len(got) != before+1 {
			t.Fatalf("%v: expected one command, got %d", tt.trigger, len(got)-before)
		}
		if got[before].Command != tt.want {
			t.Errorf("%v: expected %v, got %v", tt.trigger, tt.want, got[before].Command)
		}
	}
}

type fakeThrottle struct {
	states []bool
}

func (f *fakeThrottle) SetTempThrottleDisabled(disabled bool) {
	f.states = append(f.states, disabled)
}

func TestScheduler_ThrottlePassthrough(t *testing.T) {
	throttle := &fakeThrottle{}
	s, in, _, _ := newTestScheduler(runningCore(), WithThrottleControl(throttle))

	s.tick()
	in.hold(ToggleThrottle)
	s.tick()
	in.release(ToggleThrottle)
	s.tick()

	want := []bool{false, true, false}
	if len(throttle.states) != len(want) {
		t.Fatalf("expected %d updates, got %d", len(want), len(throttle.states))
	}
	for i := range want {
		if throttle.states[i] != want[i] {
			t.Errorf("expected update %d to be %v, got %v", i, want[i], throttle.states[i])
		}
	}
}

func TestScheduler_SaveStateSlots(t *testing.T) {
	s, in, _, col := newTestScheduler(runningCore())

	in.press(SaveStateSlot1)
	in.press(LoadStateSlot10)
	in.press(SelectStateSlot5)
	in.press(LoadLastState2)
	in.press(SaveStateSlotSelected)
	s.tick()

	want := []event.Event{
		{Command: event.SaveStateToSelected},
		{Command: event.SaveStateToSlot, Slot: 1},
		{Command: event.LoadLastState, Slot: 2},
		{Command: event.SelectStateSlot, Slot: 5},
		{Command: event.LoadStateFromSlot, Slot: 10},
	}
	got := col.all()
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected event %d to be %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestScheduler_StartStop(t *testing.T) {
	keypad := NewKeypad()
	machine := emulator.NewMachine()
	machine.SetState(emulator.Running)

	col := &collector{}
	s := NewScheduler(keypad, machine, config.NewStore(), WithThrottleControl(machine))
	s.Attach(col.handle)

	// stopping before starting is a no-op
	s.Stop()

	s.Start()
	s.Start() // idempotent

	keypad.Press(TakeScreenshot)
	deadline := time.Now().Add(5 * time.Second)
	for col.count() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for the loop to dispatch")
		}
		time.Sleep(time.Millisecond)
	}

	s.Stop()
	seen := col.count()

	// nothing may be dispatched once Stop has returned
	keypad.Release(TakeScreenshot)
	keypad.Press(TakeScreenshot)
	time.Sleep(100 * time.Millisecond)
	if col.count() != seen {
		t.Fatal("expected no dispatches after Stop returned")
	}

	// the scheduler restarts cleanly
	s.Start()
	deadline = time.Now().Add(5 * time.Second)
	for col.count() == seen {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for the restarted loop")
		}
		time.Sleep(time.Millisecond)
	}
	s.Stop()
	s.Stop()
}

// TestScheduler_Deterministic replays the same input script twice and
// checks the dispatched command streams hash identically.
func TestScheduler_Deterministic(t *testing.T) {
	script := func() uint64 {
		s, in, store, col := newTestScheduler(runningCore(), WithNotifier(&fakeNotifier{}))
		store.SetBool(config.Wii, true)
		store.SetBool(config.Debug, true)

		for i := 0; i < 120; i++ {
			switch i % 6 {
			case 0:
				in.press(TakeScreenshot)
			case 1:
				in.hold(FrameAdvance)
			case 2:
				in.press(Wiimote3Connect)
			case 3:
				in.press(SaveStateSlot4)
			case 4:
				in.press(Step)
			case 5:
				in.release(FrameAdvance)
			}
			s.tick()
		}

		var stream []byte
		for _, e := range col.all() {
			stream = append(stream, e.Command.String()...)
			stream = append(stream, byte(e.Slot))
		}
		return xxhash.Sum64(stream)
	}

	first, second := script(), script()
	if first != second {
		t.Errorf("expected identical command streams, got %#x and %#x", first, second)
	}
}
