package input

// axis is the tie-break memory for collapsing a true diagonal to 4-way
// movement without oscillating between axes frame to frame.
type axis int

const (
	axisNone axis = iota
	axisX
	axisY
)

// numpadDirection encodes a sign pair as a numeric keypad value:
// 7 8 9 on the top row, 1 2 3 on the bottom, 0 when neutral.
func numpadDirection(x, y int) int {
	if x == 0 && y == 0 {
		return 0
	}
	return 5 - y*3 + x
}

func (i *Input) signX() int {
	x := 0
	if i.IsPressed(ButtonLeft) {
		x--
	}
	if i.IsPressed(ButtonRight) {
		x++
	}
	return x
}

func (i *Input) signY() int {
	y := 0
	if i.IsPressed(ButtonUp) {
		y--
	}
	if i.IsPressed(ButtonDown) {
		y++
	}
	return y
}

// updateDirection recomputes dir8 from the raw sign pair and dir4 from the
// pair with a true diagonal collapsed to the preferred axis. Holding a single
// axis marks the other one as preferred, so a diagonal started from straight
// movement resolves the same way on every following frame.
func (i *Input) updateDirection() {
	x := i.signX()
	y := i.signY()
	i.dir8 = numpadDirection(x, y)

	if x != 0 && y != 0 {
		if i.preferredAxis == axisX {
			y = 0
		} else {
			x = 0
		}
	} else if x != 0 {
		i.preferredAxis = axisY
	} else if y != 0 {
		i.preferredAxis = axisX
	}

	i.dir4 = numpadDirection(x, y)
}
