package input

import (
	"fmt"
	"time"
)

// Default repeat timing, in frames.
const (
	DefaultRepeatWait     = 24
	DefaultRepeatInterval = 6
)

// Input owns the logical button state for one player. Key events and gamepad
// polls write into the current generation; Update promotes it once per frame
// and advances the hold counter. Queries are read-only and reflect the state
// as of the last Update.
type Input struct {
	keyMap KeyMap
	padMap PadMap

	current  [buttonCount]bool
	previous [buttonCount]bool

	// latest is the most recently activated button. At most one button is
	// tracked; when it releases it reverts to ButtonNone on the next Update
	// with no replacement promoted from other held buttons.
	latest      Button
	pressedTime int
	lastInput   time.Time

	// virtual is a one-frame trigger injected by on-screen UI, consumed by
	// the next Update.
	virtual Button

	repeatWait     int
	repeatInterval int

	dir4, dir8    int
	preferredAxis axis

	source        GamepadSource
	padStates     map[int][]bool
	axisThreshold float64
}

// New creates an Input with the default mapping tables and repeat timing.
func New() *Input {
	return &Input{
		keyMap:         DefaultKeyMap(),
		padMap:         DefaultPadMap(),
		repeatWait:     DefaultRepeatWait,
		repeatInterval: DefaultRepeatInterval,
		padStates:      make(map[int][]bool),
		axisThreshold:  DefaultAxisThreshold,
	}
}

// Clear resets every button, direction and hold counter to the neutral state.
// Called on focus loss or a detected host anomaly to avoid ghost held keys.
func (i *Input) Clear() {
	i.current = [buttonCount]bool{}
	i.previous = [buttonCount]bool{}
	i.latest = ButtonNone
	i.pressedTime = 0
	i.lastInput = time.Time{}
	i.virtual = ButtonNone
	i.dir4 = 0
	i.dir8 = 0
	i.preferredAxis = axisNone
	i.padStates = make(map[int][]bool)
}

// KeyDown records a platform key-down event. Unmapped codes are ignored.
func (i *Input) KeyDown(code int) {
	if code == KeyCodeNumLock {
		i.Clear()
	}
	if b := i.keyMap.Lookup(code); b != ButtonNone {
		i.current[b] = true
	}
}

// KeyUp records a platform key-up event. Unmapped codes are ignored.
func (i *Input) KeyUp(code int) {
	if b := i.keyMap.Lookup(code); b != ButtonNone {
		i.current[b] = false
	}
}

// VirtualClick injects a one-frame trigger of b, as if it had just been
// pressed. Used by on-screen buttons.
func (i *Input) VirtualClick(b Button) {
	if b.Valid() {
		i.virtual = b
	}
}

// SetRepeat overrides the repeat wait and interval, in frames.
func (i *Input) SetRepeat(wait, interval int) {
	if wait > 0 {
		i.repeatWait = wait
	}
	if interval > 0 {
		i.repeatInterval = interval
	}
}

// BindKey rebinds a key code to a logical button.
func (i *Input) BindKey(code int, b Button) error {
	if !b.Valid() {
		return fmt.Errorf("input: bind key code %d: invalid button %d", code, int(b))
	}
	i.keyMap[code] = b
	return nil
}

// BindPadButton rebinds a gamepad button index to a logical button.
func (i *Input) BindPadButton(index int, b Button) error {
	if !b.Valid() {
		return fmt.Errorf("input: bind pad index %d: invalid button %d", index, int(b))
	}
	i.padMap[index] = b
	return nil
}

// Update advances the state by one frame: polls gamepads, promotes press
// edges, advances the hold counter and recomputes the composite direction.
// Must be called exactly once per simulation frame.
func (i *Input) Update() {
	i.pollGamepads()

	if i.latest != ButtonNone && i.current[i.latest] {
		i.pressedTime++
	} else {
		i.latest = ButtonNone
	}

	for b := ButtonNone + 1; b < buttonCount; b++ {
		if i.current[b] && !i.previous[b] {
			i.latest = b
			i.pressedTime = 0
			i.lastInput = time.Now()
		}
		i.previous[b] = i.current[b]
	}

	if i.virtual != ButtonNone {
		i.latest = i.virtual
		i.pressedTime = 0
		i.virtual = ButtonNone
	}

	i.updateDirection()
}

// IsPressed reports whether b is currently held. The raw escape button also
// satisfies cancel and menu.
func (i *Input) IsPressed(b Button) bool {
	if b.escapeCompatible() && i.IsPressed(ButtonEscape) {
		return true
	}
	return b.Valid() && i.current[b]
}

// IsTriggered reports whether b was pressed on this very frame.
func (i *Input) IsTriggered(b Button) bool {
	if b.escapeCompatible() && i.IsTriggered(ButtonEscape) {
		return true
	}
	return i.latest == b && b != ButtonNone && i.pressedTime == 0
}

// IsRepeated reports the trigger frame and then synthetic repeats every
// repeatInterval frames once repeatWait frames have elapsed.
func (i *Input) IsRepeated(b Button) bool {
	if b.escapeCompatible() && i.IsRepeated(ButtonEscape) {
		return true
	}
	if i.latest != b || b == ButtonNone {
		return false
	}
	if i.pressedTime == 0 {
		return true
	}
	return i.pressedTime >= i.repeatWait && (i.pressedTime-i.repeatWait)%i.repeatInterval == 0
}

// IsLongPressed reports whether b has been held continuously past the repeat
// wait threshold.
func (i *Input) IsLongPressed(b Button) bool {
	if b.escapeCompatible() && i.IsLongPressed(ButtonEscape) {
		return true
	}
	return i.latest == b && b != ButtonNone && i.pressedTime >= i.repeatWait
}

// Dir4 returns the 4-way direction in numpad encoding (0 when neutral).
func (i *Input) Dir4() int { return i.dir4 }

// Dir8 returns the 8-way direction in numpad encoding (0 when neutral).
func (i *Input) Dir8() int { return i.dir8 }

// LastInputTime returns the time of the most recent activation edge.
func (i *Input) LastInputTime() time.Time { return i.lastInput }
