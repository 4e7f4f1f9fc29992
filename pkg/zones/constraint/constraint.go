// Package constraint post-processes resolved pixel zones so that
// per-zone minimum sizes are respected and no two zones overlap.
//
// # Passes
//
// [EnforceMinimums] grows under-sized zones by borrowing space from
// adjacent neighbors that have surplus above their own minimums. Borrows
// shift whole neighbor runs, so space freed on one side of the screen
// only becomes reachable elsewhere on a later pass; the loop iterates
// until a fixed point or a bounded pass count.
//
// [RemoveOverlaps] then separates any intersecting pair by moving the
// shared boundary into whichever zone can best afford to shrink,
// re-establishing the inner gap across the new boundary. It is
// idempotent on non-overlapping input.
//
// Both passes are soft: infeasible minimums (summing to more than the
// screen) degrade to the best achievable packing, and spans are clamped
// so they never go negative. The only error either pass returns is the
// precondition violation of mismatched zones/minimums slice lengths.
package constraint

import (
	"math"

	"github.com/snapzone/snapzone/pkg/errors"
	"github.com/snapzone/snapzone/pkg/geom"
)

// maxPasses bounds the minimum-size enforcement loop. Each pass can only
// move space between neighbors, so a handful of passes either converges
// or proves the request infeasible; eight is generous for realistic zone
// counts.
const maxPasses = 8

// progressEps is the smallest growth considered progress between passes.
const progressEps = 0.5

// EnforceMinimums grows zones below their minimum size by shrinking
// adjacent neighbors, in place. Neighbors are zones whose facing edges
// lie within gapThreshold of each other; space is borrowed from both
// sides of an axis in proportion to the surplus available there. Zones
// whose neighbors have nothing left to give are left under-sized.
func EnforceMinimums(zs []geom.Rect, mins []geom.Size, gapThreshold float64) error {
	if len(zs) != len(mins) {
		return errors.New(errors.ErrCodeMismatchedLengths,
			"%d zones but %d minimum sizes", len(zs), len(mins))
	}

	for pass := 0; pass < maxPasses; pass++ {
		progressed := false
		for i := range zs {
			if growZone(zs, mins, i, gapThreshold) {
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}
	return nil
}

// growZone brings zone i up to its minimum on both axes as far as its
// neighbors allow. It reports whether any growth happened.
func growZone(zs []geom.Rect, mins []geom.Size, i int, gapThreshold float64) bool {
	grew := false
	if growAxis(zs, mins, i, gapThreshold, horizontal) {
		grew = true
	}
	if growAxis(zs, mins, i, gapThreshold, vertical) {
		grew = true
	}
	return grew
}

// axis selects which dimension growAxis works on.
type axis int

const (
	horizontal axis = iota
	vertical
)

func growAxis(zs []geom.Rect, mins []geom.Size, i int, gapThreshold float64, ax axis) bool {
	span, minSpan := zs[i].W, mins[i].W
	if ax == vertical {
		span, minSpan = zs[i].H, mins[i].H
	}

	need := minSpan - span
	if need <= progressEps {
		return false
	}

	before := neighbors(zs, i, gapThreshold, ax, false)
	after := neighbors(zs, i, gapThreshold, ax, true)

	// Growing toward a side moves the facing edge of every neighbor on
	// that side, so the side can only give the smallest surplus among
	// its neighbors.
	beforeAvail := sideSurplus(zs, mins, before, ax)
	afterAvail := sideSurplus(zs, mins, after, ax)

	total := beforeAvail + afterAvail
	if total <= 0 {
		return false
	}

	take := math.Min(need, total)
	takeAfter := take * afterAvail / total
	takeBefore := take - takeAfter

	if takeBefore > 0 {
		for _, j := range before {
			shrinkSpan(&zs[j], takeBefore, ax)
		}
		if ax == horizontal {
			zs[i].X -= takeBefore
			zs[i].W += takeBefore
		} else {
			zs[i].Y -= takeBefore
			zs[i].H += takeBefore
		}
	}
	if takeAfter > 0 {
		for _, j := range after {
			if ax == horizontal {
				zs[j].X += takeAfter
			} else {
				zs[j].Y += takeAfter
			}
			shrinkSpan(&zs[j], takeAfter, ax)
		}
		if ax == horizontal {
			zs[i].W += takeAfter
		} else {
			zs[i].H += takeAfter
		}
	}

	return take > 0
}

// shrinkSpan reduces a zone's span along ax, clamping at zero.
func shrinkSpan(r *geom.Rect, by float64, ax axis) {
	if ax == horizontal {
		r.W = math.Max(0, r.W-by)
	} else {
		r.H = math.Max(0, r.H-by)
	}
}

// sideSurplus returns how much one side of a zone can give up: the
// smallest surplus above minimum among the neighbors on that side, or
// zero when the side has no neighbors.
func sideSurplus(zs []geom.Rect, mins []geom.Size, idx []int, ax axis) float64 {
	if len(idx) == 0 {
		return 0
	}
	avail := math.Inf(1)
	for _, j := range idx {
		s := zs[j].W - mins[j].W
		if ax == vertical {
			s = zs[j].H - mins[j].H
		}
		avail = math.Min(avail, s)
	}
	return math.Max(0, avail)
}

// neighbors returns the indices of zones adjacent to zone i along ax.
// With after set it looks past the zone's right (or bottom) edge,
// otherwise before its left (or top) edge. Adjacency means the facing
// edges lie within gapThreshold and the zones overlap on the other axis.
func neighbors(zs []geom.Rect, i int, gapThreshold float64, ax axis, after bool) []int {
	var out []int
	z := zs[i]
	for j, o := range zs {
		if j == i || o.IsEmpty() {
			continue
		}
		var edgeGap float64
		var overlaps bool
		if ax == horizontal {
			if after {
				edgeGap = o.X - z.Right()
			} else {
				edgeGap = z.X - o.Right()
			}
			overlaps = z.Y < o.Bottom() && o.Y < z.Bottom()
		} else {
			if after {
				edgeGap = o.Y - z.Bottom()
			} else {
				edgeGap = z.Y - o.Bottom()
			}
			overlaps = z.X < o.Right() && o.X < z.Right()
		}
		if overlaps && math.Abs(edgeGap) <= gapThreshold {
			out = append(out, j)
		}
	}
	return out
}
