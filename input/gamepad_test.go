package input

import "testing"

type fakeSource struct {
	pads []GamepadState
}

func (f *fakeSource) Gamepads() []GamepadState { return f.pads }

func newPad() GamepadState {
	return GamepadState{
		Connected: true,
		Buttons:   make([]bool, padStateSize),
		Axes:      []float64{0, 0},
	}
}

func TestPadButtonPress(t *testing.T) {
	cases := []struct {
		name  string
		index int
		want  Button
	}{
		{"a_is_ok", 0, ButtonOK},
		{"b_is_cancel", 1, ButtonCancel},
		{"x_is_shift", 2, ButtonShift},
		{"y_is_menu", 3, ButtonMenu},
		{"lb_is_pageup", 4, ButtonPageUp},
		{"rb_is_pagedown", 5, ButtonPageDown},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := New()
			src := &fakeSource{pads: []GamepadState{newPad()}}
			in.SetGamepadSource(src)

			src.pads[0].Buttons[c.index] = true
			in.Update()
			if !in.IsPressed(c.want) || !in.IsTriggered(c.want) {
				t.Fatalf("pad button %d should trigger %v", c.index, c.want)
			}

			src.pads[0].Buttons[c.index] = false
			in.Update()
			if in.IsPressed(c.want) {
				t.Fatalf("pad button %d should release %v", c.index, c.want)
			}
		})
	}
}

func TestAxisSynthesizesDirectionEdge(t *testing.T) {
	in := New()
	src := &fakeSource{pads: []GamepadState{newPad()}}
	in.SetGamepadSource(src)

	// Crossing the threshold looks exactly like a d-pad press.
	src.pads[0].Axes[1] = 0.8
	in.Update()
	if !in.IsTriggered(ButtonDown) {
		t.Fatalf("axis crossing should trigger down")
	}
	if in.IsPressed(ButtonUp) {
		t.Fatalf("opposite direction must stay released")
	}

	// Still past the threshold: held, no re-trigger.
	in.Update()
	if in.IsTriggered(ButtonDown) || !in.IsPressed(ButtonDown) {
		t.Fatalf("held axis should not re-trigger")
	}

	// Back inside the deadzone releases.
	src.pads[0].Axes[1] = 0.2
	in.Update()
	if in.IsPressed(ButtonDown) {
		t.Fatalf("axis inside deadzone should release down")
	}
}

func TestAxisDeadzoneBoundary(t *testing.T) {
	in := New()
	src := &fakeSource{pads: []GamepadState{newPad()}}
	in.SetGamepadSource(src)

	src.pads[0].Axes[0] = 0.5 // exactly at the threshold: not a press
	in.Update()
	if in.IsPressed(ButtonRight) {
		t.Fatalf("threshold magnitude must not count as a press")
	}

	src.pads[0].Axes[0] = -0.51
	in.Update()
	if !in.IsPressed(ButtonLeft) {
		t.Fatalf("past the threshold should press left")
	}
}

func TestDpadAndAxisCoexist(t *testing.T) {
	in := New()
	src := &fakeSource{pads: []GamepadState{newPad()}}
	in.SetGamepadSource(src)

	// Physical d-pad press on index 13.
	src.pads[0].Buttons[padIndexDown] = true
	in.Update()
	if !in.IsPressed(ButtonDown) {
		t.Fatalf("d-pad down should be held")
	}

	// The axis staying neutral is "no change" and must not clear the
	// d-pad's contribution.
	in.Update()
	if !in.IsPressed(ButtonDown) {
		t.Fatalf("neutral axis cleared the d-pad press")
	}

	// Axis past the threshold and back while the d-pad stays held: still
	// held because the merged index never changed.
	src.pads[0].Axes[1] = 0.9
	in.Update()
	src.pads[0].Axes[1] = 0
	in.Update()
	if !in.IsPressed(ButtonDown) {
		t.Fatalf("axis release must not clear a still-held d-pad")
	}
}

func TestDisconnectedSlotSkipped(t *testing.T) {
	in := New()
	pad := newPad()
	pad.Buttons[0] = true
	src := &fakeSource{pads: []GamepadState{{Connected: false, Buttons: []bool{true, true}}, pad}}
	in.SetGamepadSource(src)

	in.Update()
	if !in.IsPressed(ButtonOK) {
		t.Fatalf("connected slot should contribute")
	}
	if in.IsPressed(ButtonCancel) {
		t.Fatalf("disconnected slot must be ignored")
	}
}

func TestNilSourceSkipsPolling(t *testing.T) {
	in := New()
	in.Update() // must not panic without a source
	if in.Dir8() != 0 {
		t.Fatalf("no source should mean neutral state")
	}
}

func TestKeyboardAndPadShareState(t *testing.T) {
	in := New()
	src := &fakeSource{pads: []GamepadState{newPad()}}
	in.SetGamepadSource(src)

	src.pads[0].Buttons[0] = true
	in.KeyDown(codeEnter)
	in.Update()
	if !in.IsPressed(ButtonOK) {
		t.Fatalf("merged press should be held")
	}

	// The sources share one state table and the last edge wins: a
	// keyboard release clears ok, and the unchanged pad index writes
	// nothing until it produces a fresh edge of its own.
	in.KeyUp(codeEnter)
	in.Update()
	if in.IsPressed(ButtonOK) {
		t.Fatalf("keyboard release should clear the shared state")
	}

	src.pads[0].Buttons[0] = false
	in.Update()
	src.pads[0].Buttons[0] = true
	in.Update()
	if !in.IsTriggered(ButtonOK) {
		t.Fatalf("a fresh pad edge should re-assert ok")
	}
}
