package hotkey

// View receives free-look camera adjustments. A renderer implements this;
// the scheduler never inspects the camera itself.
type View interface {
	// Translate moves the camera by (x, y, z) in view space.
	Translate(x, y, z float32)
	// Reset restores the default view.
	Reset()
}

// freeLook accumulates a velocity scalar from held speed triggers and
// applies it to the directional triggers. All triggers here are held
// queries evaluated every tick; several may fire on the same tick, each
// producing its own translation.
type freeLook struct {
	speed float32
}

func newFreeLook() freeLook {
	return freeLook{speed: 1.0}
}

func (f *freeLook) tick(in InputSource, view View) {
	if in.IsPressed(FreeLookDecreaseSpeed, true) {
		f.speed /= 1.1
	}

	if in.IsPressed(FreeLookIncreaseSpeed, true) {
		f.speed *= 1.1
	}

	if in.IsPressed(FreeLookResetSpeed, true) {
		f.speed = 1.0
	}

	if view == nil {
		return
	}

	if in.IsPressed(FreeLookUp, true) {
		view.Translate(0, 0, -f.speed)
	}

	if in.IsPressed(FreeLookDown, true) {
		view.Translate(0, 0, f.speed)
	}

	if in.IsPressed(FreeLookLeft, true) {
		view.Translate(f.speed, 0, 0)
	}

	if in.IsPressed(FreeLookRight, true) {
		view.Translate(-f.speed, 0, 0)
	}

	if in.IsPressed(FreeLookZoomIn, true) {
		view.Translate(0, f.speed, 0)
	}

	if in.IsPressed(FreeLookZoomOut, true) {
		view.Translate(0, -f.speed, 0)
	}

	if in.IsPressed(FreeLookReset, true) {
		view.Reset()
	}
}
