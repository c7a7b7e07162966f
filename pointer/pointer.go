// Package pointer normalizes mouse and touch events into per-frame gesture
// flags. Platform callbacks write into a pending buffer at any time between
// two frames; Update promotes the buffer into the published snapshot exactly
// once per tick and consumers read only the snapshot.
package pointer

import (
	"math"
	"time"

	"github.com/milk9111/framepad/canvas"
)

// Mouse button indices as reported by the host platform.
const (
	MouseButtonLeft   = 0
	MouseButtonMiddle = 1
	MouseButtonRight  = 2
)

// Default gesture tuning, in frames and canvas pixels.
const (
	DefaultRepeatWait     = 24
	DefaultRepeatInterval = 6
	DefaultMoveThreshold  = 10
)

// TouchPoint is one changed contact point carrying page coordinates.
type TouchPoint struct {
	PageX float64
	PageY float64
}

// pending accumulates edge flags between frames. Pressed states live outside
// it: they persist until an explicit release or cancel.
type pending struct {
	triggered bool
	cancelled bool
	moved     bool
	released  bool
	hovered   bool
	wheelX    float64
	wheelY    float64
}

// Pointer owns the pointer input state for one canvas.
type Pointer struct {
	mapper canvas.Mapper
	policy Policy

	buf pending

	// published snapshot, replaced wholesale by Update
	triggered bool
	cancelled bool
	moved     bool
	released  bool
	hovered   bool
	clicked   bool
	wheelX    float64
	wheelY    float64

	mousePressed bool
	touchPressed bool

	x, y               int
	triggerX, triggerY int
	// movedBeyond latches once the pointer travels past the move threshold
	// from the trigger point; it gates both move events and click detection.
	movedBeyond   bool
	moveThreshold float64

	pressedTime    int
	repeatWait     int
	repeatInterval int

	lastInput time.Time
}

// New creates a Pointer mapping page coordinates through m.
func New(m canvas.Mapper) *Pointer {
	return &Pointer{
		mapper:         m,
		policy:         DefaultPolicy(),
		moveThreshold:  DefaultMoveThreshold,
		repeatWait:     DefaultRepeatWait,
		repeatInterval: DefaultRepeatInterval,
	}
}

// Clear resets pending and published state to neutral. Called on focus loss.
func (p *Pointer) Clear() {
	p.buf = pending{}
	p.triggered = false
	p.cancelled = false
	p.moved = false
	p.released = false
	p.hovered = false
	p.clicked = false
	p.wheelX = 0
	p.wheelY = 0
	p.mousePressed = false
	p.touchPressed = false
	p.x = 0
	p.y = 0
	p.triggerX = 0
	p.triggerY = 0
	p.movedBeyond = false
	p.pressedTime = 0
	p.lastInput = time.Time{}
}

// SetPolicy replaces the touch compatibility policy.
func (p *Pointer) SetPolicy(pol Policy) { p.policy = pol }

// SetRepeat overrides the repeat wait and interval, in frames.
func (p *Pointer) SetRepeat(wait, interval int) {
	if wait > 0 {
		p.repeatWait = wait
	}
	if interval > 0 {
		p.repeatInterval = interval
	}
}

// SetMoveThreshold overrides the pixel distance past which motion counts.
func (p *Pointer) SetMoveThreshold(px float64) {
	if px >= 0 {
		p.moveThreshold = px
	}
}

func (p *Pointer) mapPoint(pageX, pageY float64) (int, int, bool) {
	x := p.mapper.PageToCanvasX(pageX)
	y := p.mapper.PageToCanvasY(pageY)
	return int(math.Round(x)), int(math.Round(y)), p.mapper.Contains(x, y)
}

// MouseDown records a mouse button press at page coordinates. Presses outside
// the canvas are ignored; the middle button is reserved and does nothing.
func (p *Pointer) MouseDown(button int, pageX, pageY float64) {
	x, y, inside := p.mapPoint(pageX, pageY)
	if !inside {
		return
	}
	switch button {
	case MouseButtonLeft:
		p.mousePressed = true
		p.pressedTime = 0
		p.onTrigger(x, y)
	case MouseButtonRight:
		p.onCancel(x, y)
	case MouseButtonMiddle:
		// reserved
	}
}

// MouseMove records cursor motion. While pressed it feeds the move gesture;
// otherwise it reports hover.
func (p *Pointer) MouseMove(pageX, pageY float64) {
	x := int(math.Round(p.mapper.PageToCanvasX(pageX)))
	y := int(math.Round(p.mapper.PageToCanvasY(pageY)))
	if p.mousePressed {
		p.onMove(x, y)
	} else {
		p.onHover(x, y)
	}
}

// MouseUp records a mouse button release.
func (p *Pointer) MouseUp(button int, pageX, pageY float64) {
	if button != MouseButtonLeft {
		return
	}
	x := int(math.Round(p.mapper.PageToCanvasX(pageX)))
	y := int(math.Round(p.mapper.PageToCanvasY(pageY)))
	p.mousePressed = false
	p.onRelease(x, y)
}

// Wheel accumulates scroll deltas; multiple wheel events in one frame sum.
func (p *Pointer) Wheel(deltaX, deltaY float64) {
	p.buf.wheelX += deltaX
	p.buf.wheelY += deltaY
}

// TouchStart records newly started contact points. total is the number of
// simultaneous contacts; a second finger cancels the gesture instead of
// triggering when the two-finger policy is enabled.
func (p *Pointer) TouchStart(points []TouchPoint, total int) {
	for _, tp := range points {
		x, y, inside := p.mapPoint(tp.PageX, tp.PageY)
		if !inside {
			continue
		}
		p.touchPressed = true
		p.pressedTime = 0
		if total >= 2 && p.policy.TwoFingerCancel {
			p.onCancel(x, y)
		} else {
			p.onTrigger(x, y)
		}
	}
}

// TouchMove records contact motion. Unlike the mouse, touch motion feeds the
// move gesture regardless of press state, per contact point.
func (p *Pointer) TouchMove(points []TouchPoint) {
	for _, tp := range points {
		x := int(math.Round(p.mapper.PageToCanvasX(tp.PageX)))
		y := int(math.Round(p.mapper.PageToCanvasY(tp.PageY)))
		p.onMove(x, y)
	}
}

// TouchEnd records the end of the given contact points.
func (p *Pointer) TouchEnd(points []TouchPoint) {
	for _, tp := range points {
		x := int(math.Round(p.mapper.PageToCanvasX(tp.PageX)))
		y := int(math.Round(p.mapper.PageToCanvasY(tp.PageY)))
		p.touchPressed = false
		p.onRelease(x, y)
	}
}

// TouchCancel records a system-level touch interruption: the pressed flag
// clears but no release event is published, distinguishing an interrupted
// gesture from a normal release.
func (p *Pointer) TouchCancel() {
	p.touchPressed = false
}

// PointerDown handles platforms that report multi-touch through a pointer
// event model. A non-primary pointer of type "touch" counts as a second
// contact and cancels, when the policy shim is enabled.
func (p *Pointer) PointerDown(pointerType string, isPrimary bool, pageX, pageY float64) {
	if !p.policy.SecondaryTouchCancel {
		return
	}
	if pointerType != "touch" || isPrimary {
		return
	}
	if x, y, inside := p.mapPoint(pageX, pageY); inside {
		p.onCancel(x, y)
	}
}

func (p *Pointer) onTrigger(x, y int) {
	p.buf.triggered = true
	p.x, p.y = x, y
	p.triggerX, p.triggerY = x, y
	p.movedBeyond = false
	p.lastInput = time.Now()
}

func (p *Pointer) onCancel(x, y int) {
	p.buf.cancelled = true
	p.x, p.y = x, y
}

func (p *Pointer) onMove(x, y int) {
	dx := math.Abs(float64(x - p.triggerX))
	dy := math.Abs(float64(y - p.triggerY))
	if dx > p.moveThreshold || dy > p.moveThreshold {
		p.movedBeyond = true
	}
	if p.movedBeyond {
		p.buf.moved = true
	}
	p.x, p.y = x, y
}

func (p *Pointer) onHover(x, y int) {
	p.buf.hovered = true
	p.x, p.y = x, y
}

func (p *Pointer) onRelease(x, y int) {
	p.buf.released = true
	p.x, p.y = x, y
}

// Update promotes the pending buffer into the published snapshot and clears
// the buffer's edge flags. Pressed states are not cleared; they persist until
// an explicit release or cancel event. Must be called once per frame.
func (p *Pointer) Update() {
	p.triggered = p.buf.triggered
	p.cancelled = p.buf.cancelled
	p.moved = p.buf.moved
	p.released = p.buf.released
	p.hovered = p.buf.hovered
	p.wheelX = p.buf.wheelX
	p.wheelY = p.buf.wheelY
	p.clicked = p.released && !p.movedBeyond
	p.buf = pending{}
	if p.IsPressed() {
		p.pressedTime++
	}
}

// IsPressed reports whether the mouse or any touch contact is currently down.
// It is a live OR over both sources, not a snapshot field, so it reflects
// presses that arrived after the last Update.
func (p *Pointer) IsPressed() bool {
	return p.mousePressed || p.touchPressed
}

// IsTriggered reports whether a press started on this frame.
func (p *Pointer) IsTriggered() bool { return p.triggered }

// IsCancelled reports whether a cancel gesture (right click or second finger)
// arrived on this frame.
func (p *Pointer) IsCancelled() bool { return p.cancelled }

// IsMoved reports whether the pointer travelled past the move threshold on
// this frame.
func (p *Pointer) IsMoved() bool { return p.moved }

// IsHovered reports whether the cursor moved over the canvas while released.
func (p *Pointer) IsHovered() bool { return p.hovered }

// IsReleased reports whether a press ended on this frame.
func (p *Pointer) IsReleased() bool { return p.released }

// IsClicked reports a release that never travelled past the move threshold.
func (p *Pointer) IsClicked() bool { return p.clicked }

// IsRepeated reports the trigger frame and then synthetic repeats while held,
// using the same wait and interval semantics as the keyboard component.
func (p *Pointer) IsRepeated() bool {
	if !p.IsPressed() {
		return false
	}
	if p.triggered {
		return true
	}
	return p.pressedTime >= p.repeatWait && (p.pressedTime-p.repeatWait)%p.repeatInterval == 0
}

// IsLongPressed reports whether the pointer has been held past the wait
// threshold.
func (p *Pointer) IsLongPressed() bool {
	return p.IsPressed() && p.pressedTime >= p.repeatWait
}

// X returns the canvas x coordinate of the latest pointer event.
func (p *Pointer) X() int { return p.x }

// Y returns the canvas y coordinate of the latest pointer event.
func (p *Pointer) Y() int { return p.y }

// WheelX returns the horizontal scroll accumulated over the last frame.
func (p *Pointer) WheelX() float64 { return p.wheelX }

// WheelY returns the vertical scroll accumulated over the last frame.
func (p *Pointer) WheelY() float64 { return p.wheelY }

// LastInputTime returns the time of the most recent trigger.
func (p *Pointer) LastInputTime() time.Time { return p.lastInput }
