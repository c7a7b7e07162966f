package input

import "fmt"

// KeyCodeNumLock is observed on key-down and forces a full Clear. A numlock
// toggle can leave ghost held-key state behind on some hosts.
const KeyCodeNumLock = 144

// KeyMap translates platform key codes to logical buttons. Codes not present
// resolve to ButtonNone and are ignored.
type KeyMap map[int]Button

// DefaultKeyMap returns the standard key-code table. Codes follow the
// conventional page key-code numbering.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		9:   ButtonTab,      // tab
		13:  ButtonOK,       // enter
		16:  ButtonShift,    // shift
		17:  ButtonControl,  // control
		18:  ButtonControl,  // alt
		27:  ButtonEscape,   // escape
		32:  ButtonOK,       // space
		33:  ButtonPageUp,   // pageup
		34:  ButtonPageDown, // pagedown
		37:  ButtonLeft,     // left arrow
		38:  ButtonUp,       // up arrow
		39:  ButtonRight,    // right arrow
		40:  ButtonDown,     // down arrow
		45:  ButtonEscape,   // insert
		81:  ButtonPageUp,   // Q
		87:  ButtonPageDown, // W
		88:  ButtonEscape,   // X
		90:  ButtonOK,       // Z
		96:  ButtonEscape,   // numpad 0
		98:  ButtonDown,     // numpad 2
		100: ButtonLeft,     // numpad 4
		102: ButtonRight,    // numpad 6
		104: ButtonUp,       // numpad 8
		120: ButtonDebug,    // F9
	}
}

// Lookup resolves a key code, returning ButtonNone when the code is unmapped.
func (m KeyMap) Lookup(code int) Button {
	return m[code]
}

// Validate rejects tables that bind a code to an out-of-range button.
func (m KeyMap) Validate() error {
	for code, b := range m {
		if !b.Valid() {
			return fmt.Errorf("input: key code %d bound to invalid button %d", code, int(b))
		}
	}
	return nil
}

// Synthetic d-pad indices written by axis binarization. Real pads may also
// report physical d-pad buttons on the same indices.
const (
	padIndexUp    = 12
	padIndexDown  = 13
	padIndexLeft  = 14
	padIndexRight = 15

	// padStateSize is the minimum per-slot state array length; it covers
	// the synthetic indices even on pads reporting fewer buttons.
	padStateSize = 16
)

// PadMap translates gamepad button indices, including the synthetic d-pad
// indices, to logical buttons.
type PadMap map[int]Button

// DefaultPadMap returns the standard gamepad table.
func DefaultPadMap() PadMap {
	return PadMap{
		0:             ButtonOK,       // A
		1:             ButtonCancel,   // B
		2:             ButtonShift,    // X
		3:             ButtonMenu,     // Y
		4:             ButtonPageUp,   // LB
		5:             ButtonPageDown, // RB
		padIndexUp:    ButtonUp,
		padIndexDown:  ButtonDown,
		padIndexLeft:  ButtonLeft,
		padIndexRight: ButtonRight,
	}
}

// Lookup resolves a pad button index, returning ButtonNone when unmapped.
func (m PadMap) Lookup(index int) Button {
	return m[index]
}

// Validate rejects tables that bind an index to an out-of-range button.
func (m PadMap) Validate() error {
	for index, b := range m {
		if !b.Valid() {
			return fmt.Errorf("input: pad index %d bound to invalid button %d", index, int(b))
		}
	}
	return nil
}
