// Package geom provides the rectangle primitives shared by the tiling
// algorithms and the geometry resolver.
//
// The same Rect type is used in two coordinate spaces: normalized space,
// where all coordinates live in [0,1] and rectangles are screen-independent,
// and pixel space, where coordinates are integer-valued floats produced by
// snapping. Functions that care about the distinction say so in their docs.
package geom

import "math"

// Eps is the tolerance for floating-point comparisons on normalized
// coordinates. Accumulated error from repeated halving stays well below it.
const Eps = 1e-9

// BoundaryEps is the tolerance used to decide whether a normalized edge
// lies on the [0,1] boundary. It is deliberately coarser than Eps so that
// hand-authored layouts with sloppy values (e.g. 0.9999) still count as
// touching the screen edge.
const BoundaryEps = 1e-4

// Rect is an axis-aligned rectangle described by its top-left corner and
// its span. Negative spans are never produced by this package.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center point.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center point.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Area returns the rectangle's area. Empty rectangles have area zero.
func (r Rect) Area() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.W * r.H
}

// IsEmpty reports whether the rectangle has no interior.
func (r Rect) IsEmpty() bool { return r.W <= 0 || r.H <= 0 }

// Canon clamps negative spans to zero. Geometry operations that shrink
// rectangles use it to guarantee the no-negative-span invariant.
func (r Rect) Canon() Rect {
	if r.W < 0 {
		r.W = 0
	}
	if r.H < 0 {
		r.H = 0
	}
	return r
}

// Intersects reports whether r and s share interior area. Rectangles that
// merely touch along an edge do not intersect.
func (r Rect) Intersects(s Rect) bool {
	return r.X < s.Right() && s.X < r.Right() &&
		r.Y < s.Bottom() && s.Y < r.Bottom() &&
		!r.IsEmpty() && !s.IsEmpty()
}

// Intersect returns the overlapping region of r and s, or a zero Rect when
// they do not intersect.
func (r Rect) Intersect(s Rect) Rect {
	x1 := math.Max(r.X, s.X)
	y1 := math.Max(r.Y, s.Y)
	x2 := math.Min(r.Right(), s.Right())
	y2 := math.Min(r.Bottom(), s.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Inset shrinks the rectangle by the given amount on each side, clamping
// the result so spans never go negative.
func (r Rect) Inset(g Gaps) Rect {
	return Rect{
		X: r.X + g.Left,
		Y: r.Y + g.Top,
		W: r.W - g.Left - g.Right,
		H: r.H - g.Top - g.Bottom,
	}.Canon()
}

// Size is a width/height pair, used for per-zone minimum sizes.
type Size struct {
	W, H float64
}
