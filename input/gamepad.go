package input

// DefaultAxisThreshold is the stick magnitude past which an analog axis
// counts as a held direction.
const DefaultAxisThreshold = 0.5

// GamepadState is one controller slot's poll snapshot. Slots with Connected
// false are skipped without touching their cached state.
type GamepadState struct {
	Connected bool
	Buttons   []bool
	Axes      []float64
}

// GamepadSource supplies poll snapshots for every controller slot, pulled
// once per Update. A nil source skips gamepad polling entirely.
type GamepadSource interface {
	Gamepads() []GamepadState
}

// SetGamepadSource attaches a poll source. Pass nil to detach.
func (i *Input) SetGamepadSource(src GamepadSource) {
	i.source = src
}

// SetAxisThreshold overrides the analog binarization threshold.
func (i *Input) SetAxisThreshold(t float64) {
	if t > 0 {
		i.axisThreshold = t
	}
}

func (i *Input) pollGamepads() {
	if i.source == nil {
		return
	}
	for slot, pad := range i.source.Gamepads() {
		if !pad.Connected {
			continue
		}
		i.updateGamepadState(slot, pad)
	}
}

// updateGamepadState binarizes one pad's buttons and axes and writes only the
// indices whose value changed since the previous poll of the same slot. A
// physical d-pad press and an axis-as-d-pad press can then coexist: an
// unchanged index never overwrites the other source's contribution.
func (i *Input) updateGamepadState(slot int, pad GamepadState) {
	last := i.padStates[slot]

	size := padStateSize
	if len(pad.Buttons) > size {
		size = len(pad.Buttons)
	}
	state := make([]bool, size)
	copy(state, pad.Buttons)

	// Synthesize d-pad indices from the first two axes. Inside the deadzone
	// both directions of an axis stay false.
	if len(pad.Axes) >= 2 {
		if pad.Axes[1] < -i.axisThreshold {
			state[padIndexUp] = true
		} else if pad.Axes[1] > i.axisThreshold {
			state[padIndexDown] = true
		}
		if pad.Axes[0] < -i.axisThreshold {
			state[padIndexLeft] = true
		} else if pad.Axes[0] > i.axisThreshold {
			state[padIndexRight] = true
		}
	}

	for index, pressed := range state {
		prev := index < len(last) && last[index]
		if pressed == prev {
			continue
		}
		if b := i.padMap.Lookup(index); b != ButtonNone {
			i.current[b] = pressed
		}
	}

	i.padStates[slot] = state
}
