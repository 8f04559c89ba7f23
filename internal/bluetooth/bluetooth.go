// Package bluetooth models the small slice of the Bluetooth pass-through
// device that the hotkey scheduler talks to: the Wii remote sync button.
// The scheduler forwards the held state of the sync-button hotkey to the
// device every tick; the device decides when a sync is actually
// triggered.
package bluetooth

// SyncButtonDeviceName is the fixed name the pass-through device is
// registered under.
const SyncButtonDeviceName = "/dev/usb/oh1/57e/305"

// Device is a Bluetooth device that reacts to the sync button.
type Device interface {
	// UpdateSyncButtonState is called once per scheduler tick with
	// whether the sync-button hotkey is currently held.
	UpdateSyncButtonState(pressed bool)
}

// Registry resolves devices by name. A missing device is reported with a
// nil Device, never an error; callers skip the forward in that case.
type Registry interface {
	DeviceByName(name string) Device
}

// MapRegistry is a Registry backed by a plain map.
type MapRegistry map[string]Device

func (m MapRegistry) DeviceByName(name string) Device {
	return m[name]
}

// syncButtonHoldTicks is how long the sync button must be held before a
// sync fires, in scheduler ticks (one second at 60 ticks/second).
const syncButtonHoldTicks = 60

// SyncButton is a reference Device implementation. It fires the given
// callback once per hold after the button has been held for a full
// second, then re-arms when the button is released.
type SyncButton struct {
	onSync func()

	heldTicks int
	fired     bool
}

// NewSyncButton returns a SyncButton that calls onSync when a sync
// triggers.
func NewSyncButton(onSync func()) *SyncButton {
	return &SyncButton{onSync: onSync}
}

func (s *SyncButton) UpdateSyncButtonState(pressed bool) {
	if !pressed {
		s.heldTicks = 0
		s.fired = false
		return
	}

	s.heldTicks++
	if s.heldTicks >= syncButtonHoldTicks && !s.fired {
		s.fired = true
		if s.onSync != nil {
			s.onSync()
		}
	}
}

// HeldTicks reports how many consecutive ticks the button has been held.
func (s *SyncButton) HeldTicks() int {
	return s.heldTicks
}
