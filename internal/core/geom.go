// Package core provides fundamental types and utilities for the survivor platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns the vector multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Box is an axis-aligned bounding box in world space, described by its
// center and full size. World space has its origin in the middle of the
// play area with y pointing up.
type Box struct {
	Center Vec2
	Size   Vec2
}

// NewBox creates a box centered on (cx, cy) with the given full width and height.
func NewBox(cx, cy, w, h float64) Box {
	return Box{Center: Vec2{X: cx, Y: cy}, Size: Vec2{X: w, Y: h}}
}

// Min returns the bottom-left corner.
func (b Box) Min() Vec2 {
	return Vec2{X: b.Center.X - b.Size.X/2, Y: b.Center.Y - b.Size.Y/2}
}

// Max returns the top-right corner.
func (b Box) Max() Vec2 {
	return Vec2{X: b.Center.X + b.Size.X/2, Y: b.Center.Y + b.Size.Y/2}
}

// Overlaps reports whether two boxes intersect.
// Touching edges do not count as an overlap.
func (b Box) Overlaps(other Box) bool {
	aMin, aMax := b.Min(), b.Max()
	bMin, bMax := other.Min(), other.Max()
	return aMin.X < bMax.X && aMax.X > bMin.X &&
		aMin.Y < bMax.Y && aMax.Y > bMin.Y
}

// Shrink returns a box with the same center whose width and height are each
// reduced by margin. Sizes never go below zero.
func (b Box) Shrink(margin float64) Box {
	return Box{
		Center: b.Center,
		Size: Vec2{
			X: max(b.Size.X-margin, 0),
			Y: max(b.Size.Y-margin, 0),
		},
	}
}

// Rect represents an axis-aligned rectangle on the terminal cell grid.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of a float64.
func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
