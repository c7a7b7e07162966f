// Package driver feeds the input cores from ebiten. It polls the platform
// once per frame, converts edges into core ingestion calls, then ticks both
// components, so a game's Update only ever calls Driver.Update.
package driver

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/framepad/input"
	"github.com/milk9111/framepad/pointer"
)

// maxGamepadSlots caps the slot index accepted from the platform.
const maxGamepadSlots = 16

// SupportsPassiveListeners reports whether the platform accepts passive
// event-listener registration options. Ebiten manages its own listeners, so
// the answer is static; the probe is kept for parity with the inbound
// platform surface.
func SupportsPassiveListeners() bool { return false }

// Driver pumps ebiten input into an Input and a Pointer.
type Driver struct {
	Input   *input.Input
	Pointer *pointer.Pointer

	pads *gamepadSource

	touchIDs     []ebiten.TouchID
	justPressed  []ebiten.TouchID
	justReleased []ebiten.TouchID

	cursorX, cursorY int
	focused          bool
}

// New wires a driver to both components and attaches the gamepad source.
func New(in *input.Input, pt *pointer.Pointer) *Driver {
	d := &Driver{
		Input:   in,
		Pointer: pt,
		pads:    &gamepadSource{},
		focused: true,
	}
	in.SetGamepadSource(d.pads)
	return d
}

// Update pumps platform state into the cores and ticks them. Call exactly
// once per ebiten Update.
func (d *Driver) Update() {
	if !ebiten.IsFocused() {
		// Losing focus must not leave ghost held buttons behind.
		if d.focused {
			d.Input.Clear()
			d.Pointer.Clear()
		}
		d.focused = false
		d.Input.Update()
		d.Pointer.Update()
		return
	}
	d.focused = true

	d.pumpKeyboard()
	d.pumpMouse()
	d.pumpTouch()

	d.Input.Update()
	d.Pointer.Update()
}

func (d *Driver) pumpKeyboard() {
	for key, code := range keyCodes {
		if inpututil.IsKeyJustPressed(key) {
			d.Input.KeyDown(code)
		}
		if inpututil.IsKeyJustReleased(key) {
			d.Input.KeyUp(code)
		}
	}
}

var mouseButtons = [...]struct {
	key   ebiten.MouseButton
	index int
}{
	{ebiten.MouseButtonLeft, pointer.MouseButtonLeft},
	{ebiten.MouseButtonMiddle, pointer.MouseButtonMiddle},
	{ebiten.MouseButtonRight, pointer.MouseButtonRight},
}

func (d *Driver) pumpMouse() {
	x, y := ebiten.CursorPosition()
	if x != d.cursorX || y != d.cursorY {
		d.cursorX, d.cursorY = x, y
		d.Pointer.MouseMove(float64(x), float64(y))
	}
	for _, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb.key) {
			d.Pointer.MouseDown(mb.index, float64(x), float64(y))
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		d.Pointer.MouseUp(pointer.MouseButtonLeft, float64(x), float64(y))
	}
	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		d.Pointer.Wheel(wx, wy)
	}
}

func (d *Driver) pumpTouch() {
	d.touchIDs = ebiten.AppendTouchIDs(d.touchIDs[:0])
	d.justPressed = inpututil.AppendJustPressedTouchIDs(d.justPressed[:0])

	if len(d.justPressed) > 0 {
		points := make([]pointer.TouchPoint, 0, len(d.justPressed))
		for _, id := range d.justPressed {
			x, y := ebiten.TouchPosition(id)
			points = append(points, pointer.TouchPoint{PageX: float64(x), PageY: float64(y)})
		}
		d.Pointer.TouchStart(points, len(d.touchIDs))
	}

	var moved []pointer.TouchPoint
	for _, id := range d.touchIDs {
		if containsTouchID(d.justPressed, id) {
			continue
		}
		x, y := ebiten.TouchPosition(id)
		px, py := inpututil.TouchPositionInPreviousTick(id)
		if x != px || y != py {
			moved = append(moved, pointer.TouchPoint{PageX: float64(x), PageY: float64(y)})
		}
	}
	if len(moved) > 0 {
		d.Pointer.TouchMove(moved)
	}

	d.justReleased = inpututil.AppendJustReleasedTouchIDs(d.justReleased[:0])
	if len(d.justReleased) > 0 {
		points := make([]pointer.TouchPoint, 0, len(d.justReleased))
		for _, id := range d.justReleased {
			x, y := inpututil.TouchPositionInPreviousTick(id)
			points = append(points, pointer.TouchPoint{PageX: float64(x), PageY: float64(y)})
		}
		d.Pointer.TouchEnd(points)
	}
}

func containsTouchID(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// gamepadSource adapts ebiten's gamepad polling to the core's slot snapshot
// shape. Slot index is the stable gamepad ID; disconnected slots stay in the
// slice with Connected false.
type gamepadSource struct {
	ids   []ebiten.GamepadID
	slots []input.GamepadState
}

func (g *gamepadSource) Gamepads() []input.GamepadState {
	g.ids = ebiten.AppendGamepadIDs(g.ids[:0])
	g.slots = g.slots[:0]
	for _, id := range g.ids {
		slot := int(id)
		if slot < 0 || slot >= maxGamepadSlots {
			continue
		}
		for len(g.slots) <= slot {
			g.slots = append(g.slots, input.GamepadState{})
		}

		buttons := make([]bool, ebiten.GamepadButtonNum(id))
		for b := range buttons {
			buttons[b] = ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton(b))
		}
		axes := make([]float64, ebiten.GamepadAxisNum(id))
		for a := range axes {
			axes[a] = ebiten.GamepadAxis(id, a)
		}
		g.slots[slot] = input.GamepadState{Connected: true, Buttons: buttons, Axes: axes}
	}
	return g.slots
}
