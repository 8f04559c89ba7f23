// Package config provides the typed settings store consulted and mutated
// by the hotkey scheduler. Settings are addressed by typed keys rather
// than strings so that a key can never be read at the wrong type.
package config

import "sync"

// Bool is a key for a boolean setting.
type Bool int

const (
	// Crop crops the rendered frame to its visible region.
	Crop Bool = iota
	// SkipEFBCopyToRAM skips EFB copies to emulated RAM.
	SkipEFBCopyToRAM
	// SkipXFBCopyToRAM skips XFB copies to emulated RAM.
	SkipXFBCopyToRAM
	// ImmediateXFB presents XFB copies without waiting for the swap.
	ImmediateXFB
	// DisableFog disables fog emulation.
	DisableFog
	// DumpTextures writes decoded textures to disk.
	DumpTextures
	// HiresTextures loads custom texture packs.
	HiresTextures
	// AudioMuted mutes audio output.
	AudioMuted
	// Debug enables the debugger hotkeys.
	Debug
	// Wii reports whether the running title is a Wii title.
	Wii
	// BluetoothPassthrough routes Bluetooth to a real adapter.
	BluetoothPassthrough
)

// Int is a key for an integer setting.
type Int int

const (
	// EFBScale is the internal-resolution multiplier. Zero selects
	// automatic integral scaling.
	EFBScale Int = iota
	// AspectRatio is one of the Aspect* values.
	AspectRatio
	// StereoMode is one of the Stereo* values.
	StereoMode
	// StereoDepth is the stereoscopic separation.
	StereoDepth
	// StereoConvergence is the stereoscopic convergence distance.
	StereoConvergence
	// Volume is the audio volume, 0-100.
	Volume
)

// Float is a key for a float setting.
type Float int

const (
	// EmulationSpeed is the speed limit as a fraction of full speed.
	// 1.0 is normal speed, 0 is unlimited.
	EmulationSpeed Float = iota
)

// String is a key for a string setting.
type String int

const (
	// PostProcessShader is the name of the active post-processing
	// shader, or empty for none.
	PostProcessShader String = iota
)

// Aspect ratio modes, cycled by the aspect-ratio hotkey.
const (
	AspectAuto = iota
	AspectForce169
	AspectForce43
	AspectStretch
)

// Stereoscopy modes. Only one can be active at a time.
const (
	StereoOff = iota
	StereoSBS
	StereoTAB
	StereoAnaglyph
	Stereo3DVision
)

// Store holds current setting values. The zero value is not usable; use
// NewStore, which installs the defaults. All methods are safe for
// concurrent use.
type Store struct {
	mu      sync.RWMutex
	bools   map[Bool]bool
	ints    map[Int]int
	floats  map[Float]float64
	strings map[String]string
}

// NewStore returns a Store populated with default values.
func NewStore() *Store {
	return &Store{
		bools: map[Bool]bool{},
		ints: map[Int]int{
			EFBScale:          1,
			AspectRatio:       AspectAuto,
			StereoMode:        StereoOff,
			StereoDepth:       20,
			StereoConvergence: 20,
			Volume:            100,
		},
		floats: map[Float]float64{
			EmulationSpeed: 1.0,
		},
		strings: map[String]string{},
	}
}

func (s *Store) GetBool(key Bool) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bools[key]
}

func (s *Store) SetBool(key Bool, v bool) {
	s.mu.Lock()
	s.bools[key] = v
	s.mu.Unlock()
}

func (s *Store) GetInt(key Int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ints[key]
}

func (s *Store) SetInt(key Int, v int) {
	s.mu.Lock()
	s.ints[key] = v
	s.mu.Unlock()
}

func (s *Store) GetFloat(key Float) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.floats[key]
}

func (s *Store) SetFloat(key Float, v float64) {
	s.mu.Lock()
	s.floats[key] = v
	s.mu.Unlock()
}

func (s *Store) GetString(key String) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.strings[key]
}

func (s *Store) SetString(key String, v string) {
	s.mu.Lock()
	s.strings[key] = v
	s.mu.Unlock()
}
