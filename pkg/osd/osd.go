// Package osd defines the on-screen-display message categories that the
// hotkey scheduler requests when a settings hotkey fires. The notification
// is requested before the setting is mutated, so a renderer can read the
// old value if it wants to show a transition.
package osd

// Message identifies a category of on-screen notification.
type Message int

const (
	// VolumeChanged is shown for volume up/down/mute.
	VolumeChanged Message = iota
	// IRChanged is shown for internal-resolution scale changes.
	IRChanged
	// ARToggled is shown when the aspect-ratio mode cycles.
	ARToggled
	// EFBCopyToggled is shown when the EFB-copy hack toggles.
	EFBCopyToggled
	// XFBChanged is shown when either XFB setting toggles.
	XFBChanged
	// FogToggled is shown when fog is enabled or disabled.
	FogToggled
	// SpeedChanged is shown when the emulation speed changes.
	SpeedChanged
)

func (m Message) String() string {
	switch m {
	case VolumeChanged:
		return "VolumeChanged"
	case IRChanged:
		return "IRChanged"
	case ARToggled:
		return "ARToggled"
	case EFBCopyToggled:
		return "EFBCopyToggled"
	case XFBChanged:
		return "XFBChanged"
	case FogToggled:
		return "FogToggled"
	case SpeedChanged:
		return "SpeedChanged"
	default:
		return "Unknown"
	}
}

// Notifier receives message requests. A nil or absent notifier degrades
// to a no-op at the call site.
type Notifier interface {
	ShowMessage(m Message)
}

// NotifierFunc adapts a func to the Notifier interface.
type NotifierFunc func(m Message)

func (f NotifierFunc) ShowMessage(m Message) {
	f(m)
}
