// Package input normalizes keyboard and gamepad state into logical buttons
// sampled once per frame. Raw key codes and pad button indices are translated
// through fixed mapping tables; consumers poll with IsPressed, IsTriggered,
// IsRepeated and IsLongPressed after calling Update once per tick.
package input

import "fmt"

// Button is a logical input decoupled from the physical key or pad button
// that produced it.
type Button int

const (
	// ButtonNone is the explicit no-mapping value. Raw codes absent from a
	// mapping table resolve to ButtonNone and never change state.
	ButtonNone Button = iota
	ButtonTab
	ButtonOK
	ButtonShift
	ButtonControl
	ButtonEscape
	ButtonPageUp
	ButtonPageDown
	ButtonLeft
	ButtonUp
	ButtonRight
	ButtonDown
	ButtonDebug
	ButtonCancel
	ButtonMenu

	buttonCount
)

var buttonNames = [buttonCount]string{
	ButtonNone:     "none",
	ButtonTab:      "tab",
	ButtonOK:       "ok",
	ButtonShift:    "shift",
	ButtonControl:  "control",
	ButtonEscape:   "escape",
	ButtonPageUp:   "pageup",
	ButtonPageDown: "pagedown",
	ButtonLeft:     "left",
	ButtonUp:       "up",
	ButtonRight:    "right",
	ButtonDown:     "down",
	ButtonDebug:    "debug",
	ButtonCancel:   "cancel",
	ButtonMenu:     "menu",
}

func (b Button) String() string {
	if b < 0 || b >= buttonCount {
		return "none"
	}
	return buttonNames[b]
}

// Valid reports whether b names a real logical button.
func (b Button) Valid() bool {
	return b > ButtonNone && b < buttonCount
}

// Buttons returns every logical button in declaration order.
func Buttons() []Button {
	bs := make([]Button, 0, buttonCount-1)
	for b := ButtonNone + 1; b < buttonCount; b++ {
		bs = append(bs, b)
	}
	return bs
}

// ParseButton resolves a button name as used in binding configuration.
func ParseButton(name string) (Button, error) {
	for b := ButtonNone + 1; b < buttonCount; b++ {
		if buttonNames[b] == name {
			return b, nil
		}
	}
	return ButtonNone, fmt.Errorf("input: unknown button name %q", name)
}

// escapeCompatible reports whether the raw escape button also satisfies b.
// One physical escape key serves both the cancel and menu roles.
func (b Button) escapeCompatible() bool {
	return b == ButtonCancel || b == ButtonMenu
}
