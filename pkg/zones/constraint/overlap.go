package constraint

import (
	"math"

	"github.com/snapzone/snapzone/pkg/errors"
	"github.com/snapzone/snapzone/pkg/geom"
)

// RemoveOverlaps separates every intersecting pair of zones in place.
// The shared boundary moves into whichever zone has more surplus above
// its minimum along the separation axis, and padding is re-established
// across the new boundary. Shrinking never creates new overlaps, so one
// sweep over all pairs suffices and the pass is idempotent.
func RemoveOverlaps(zs []geom.Rect, mins []geom.Size, padding float64) error {
	if len(zs) != len(mins) {
		return errors.New(errors.ErrCodeMismatchedLengths,
			"%d zones but %d minimum sizes", len(zs), len(mins))
	}

	for i := range zs {
		for j := i + 1; j < len(zs); j++ {
			if !zs[i].Intersects(zs[j]) {
				continue
			}
			separate(zs, mins, i, j, padding)
		}
	}
	return nil
}

// separate resolves one intersecting pair. The separation axis is the
// one with the smaller penetration, so the zones lose as little area as
// possible.
func separate(zs []geom.Rect, mins []geom.Size, i, j int, padding float64) {
	ov := zs[i].Intersect(zs[j])
	if ov.W <= ov.H {
		separateX(zs, mins, i, j, padding)
	} else {
		separateY(zs, mins, i, j, padding)
	}
}

func separateX(zs []geom.Rect, mins []geom.Size, i, j int, padding float64) {
	left, right := i, j
	if zs[j].X < zs[i].X {
		left, right = j, i
	}

	if zs[left].W-mins[left].W >= zs[right].W-mins[right].W {
		// Pull the left zone's right edge back to padding before the
		// right zone.
		zs[left].W = math.Max(0, zs[right].X-padding-zs[left].X)
	} else {
		// Push the right zone's left edge past the left zone.
		shift := zs[left].Right() + padding - zs[right].X
		zs[right].X += shift
		zs[right].W = math.Max(0, zs[right].W-shift)
	}
}

func separateY(zs []geom.Rect, mins []geom.Size, i, j int, padding float64) {
	top, bottom := i, j
	if zs[j].Y < zs[i].Y {
		top, bottom = j, i
	}

	if zs[top].H-mins[top].H >= zs[bottom].H-mins[bottom].H {
		zs[top].H = math.Max(0, zs[bottom].Y-padding-zs[top].Y)
	} else {
		shift := zs[top].Bottom() + padding - zs[bottom].Y
		zs[bottom].Y += shift
		zs[bottom].H = math.Max(0, zs[bottom].H-shift)
	}
}
