// Package canvas maps page coordinates reported by the host platform onto the
// active canvas and answers whether a point lies inside it.
package canvas

// Mapper converts page coordinates to canvas-local coordinates. Input
// components use it to decide whether a pointer event counts at all.
type Mapper interface {
	PageToCanvasX(pageX float64) float64
	PageToCanvasY(pageY float64) float64
	Contains(x, y float64) bool
}

// Transform is an affine page-to-canvas mapping: the canvas sits at
// (OffsetX, OffsetY) on the page, scaled by Scale, and spans Width x Height
// canvas-local pixels. A zero Scale is treated as 1.
type Transform struct {
	OffsetX float64
	OffsetY float64
	Scale   float64
	Width   float64
	Height  float64
}

func (t Transform) scale() float64 {
	if t.Scale == 0 {
		return 1
	}
	return t.Scale
}

func (t Transform) PageToCanvasX(pageX float64) float64 {
	return (pageX - t.OffsetX) / t.scale()
}

func (t Transform) PageToCanvasY(pageY float64) float64 {
	return (pageY - t.OffsetY) / t.scale()
}

// Contains reports whether a canvas-local point lies inside the canvas.
func (t Transform) Contains(x, y float64) bool {
	return x >= 0 && y >= 0 && x < t.Width && y < t.Height
}
