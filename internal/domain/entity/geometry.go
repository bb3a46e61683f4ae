// Package entity defines domain entities for the tiling engine.
package entity

import "fmt"

// Rectangle is an axis-aligned screen region in pixels.
type Rectangle struct {
	X      int16  `json:"x"`
	Y      int16  `json:"y"`
	Width  uint16 `json:"width"`
	Height uint16 `json:"height"`
}

// Wide reports whether the rectangle is split left/right by the BSP rule.
// Squares count as wide.
func (r Rectangle) Wide() bool {
	return r.Width >= r.Height
}

// Split divides r along its longer axis leaving gap pixels between the halves.
// The first half gets (dim-gap)/2; the second half absorbs the rounding loss.
func (r Rectangle) Split(gap uint16) (first, second Rectangle) {
	first, second = r, r
	if r.Wide() {
		first.Width = half(r.Width, gap)
		second.X = r.X + int16(first.Width) + int16(gap)
		second.Width = sub(r.Width, first.Width+gap)
		return first, second
	}
	first.Height = half(r.Height, gap)
	second.Y = r.Y + int16(first.Height) + int16(gap)
	second.Height = sub(r.Height, first.Height+gap)
	return first, second
}

// SplitVertical divides r into a top and bottom half regardless of aspect.
func (r Rectangle) SplitVertical(gap uint16) (top, bottom Rectangle) {
	top, bottom = r, r
	top.Height = half(r.Height, gap)
	bottom.Y = r.Y + int16(top.Height) + int16(gap)
	bottom.Height = sub(r.Height, top.Height+gap)
	return top, bottom
}

// Contains reports whether o lies entirely inside r.
func (r Rectangle) Contains(o Rectangle) bool {
	return o.X >= r.X && o.Y >= r.Y &&
		int(o.X)+int(o.Width) <= int(r.X)+int(r.Width) &&
		int(o.Y)+int(o.Height) <= int(r.Y)+int(r.Height)
}

// Union returns the bounding box of r and o.
func (r Rectangle) Union(o Rectangle) Rectangle {
	x0, y0 := min(r.X, o.X), min(r.Y, o.Y)
	x1 := max(int(r.X)+int(r.Width), int(o.X)+int(o.Width))
	y1 := max(int(r.Y)+int(r.Height), int(o.Y)+int(o.Height))
	return Rectangle{X: x0, Y: y0, Width: uint16(x1 - int(x0)), Height: uint16(y1 - int(y0))}
}

func (r Rectangle) String() string {
	return fmt.Sprintf("{%d,%d,%d,%d}", r.X, r.Y, r.Width, r.Height)
}

func half(dim, gap uint16) uint16 {
	return sub(dim, gap) / 2
}

// sub is a saturating subtraction; degenerate rectangles collapse to zero.
func sub(a, b uint16) uint16 {
	if b > a {
		return 0
	}
	return a - b
}
