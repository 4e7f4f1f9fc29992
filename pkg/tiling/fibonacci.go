package tiling

import "github.com/snapzone/snapzone/pkg/geom"

// fibonacci peels zones off the remaining area in a spiral. The first
// zone takes the master ratio of the width; every later peel takes half
// of whatever remains, alternating horizontal (top half) and vertical
// (left half) starting with horizontal. The final zone is the untouched
// remainder.
func fibonacci(n int, p Params) []geom.Rect {
	if n == 1 {
		return []geom.Rect{fullArea}
	}

	out := make([]geom.Rect, 0, n)

	ratio := p.ratio()
	out = append(out, geom.Rect{X: 0, Y: 0, W: ratio, H: 1})
	rem := geom.Rect{X: ratio, Y: 0, W: 1 - ratio, H: 1}

	for i := 1; i < n-1; i++ {
		var zone geom.Rect
		if i%2 == 1 {
			// Horizontal peel: take the top half.
			zone = geom.Rect{X: rem.X, Y: rem.Y, W: rem.W, H: rem.H / 2}
			rem = geom.Rect{X: rem.X, Y: zone.Bottom(), W: rem.W, H: rem.H - zone.H}
		} else {
			// Vertical peel: take the left half.
			zone = geom.Rect{X: rem.X, Y: rem.Y, W: rem.W / 2, H: rem.H}
			rem = geom.Rect{X: zone.Right(), Y: rem.Y, W: rem.W - zone.W, H: rem.H}
		}
		out = append(out, zone)
	}

	return append(out, rem)
}
