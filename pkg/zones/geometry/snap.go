package geometry

import (
	"math"

	"github.com/snapzone/snapzone/pkg/geom"
)

// Snap rounds a fractional rectangle to whole pixels by rounding the
// absolute left, top, right, and bottom coordinates independently and
// deriving the spans from the rounded edges.
//
// Rounding x/y/width/height separately instead would let two zones that
// share a boundary round it to different pixels under fractional display
// scaling, producing one-pixel seams or overlaps. Rounding the edge
// coordinate itself guarantees both zones represent the shared boundary
// identically.
func Snap(r geom.Rect) geom.Rect {
	left := math.Round(r.X)
	top := math.Round(r.Y)
	right := math.Round(r.Right())
	bottom := math.Round(r.Bottom())

	return geom.Rect{X: left, Y: top, W: right - left, H: bottom - top}.Canon()
}
