package zones

import (
	"github.com/google/uuid"

	"github.com/snapzone/snapzone/pkg/errors"
	"github.com/snapzone/snapzone/pkg/geom"
)

// Unset marks a numeric override as not provided. Any negative value is
// treated the same way.
const Unset = -1.0

// Zone is a rectangular region of screen space a window can be snapped
// into. Rect is normalized to [0,1] in both axes; MinSize, when non-zero,
// is a minimum display size in pixels enforced after resolution.
type Zone struct {
	ID      uuid.UUID
	Number  int // 1-based display number, follows layout order
	Rect    geom.Rect
	MinSize geom.Size // zero value means no minimum
}

// NewZone creates a zone with a fresh ID and the given display number.
func NewZone(number int, r geom.Rect) Zone {
	return Zone{ID: uuid.New(), Number: number, Rect: r}
}

// Layout is a named, ordered collection of zones plus optional spacing
// overrides. Field semantics follow the gap cascade documented in the
// package comment: negative Padding/OuterGap and nil OuterGaps mean
// "unset".
type Layout struct {
	Name  string
	Zones []Zone

	// Padding overrides the inner gap between adjacent zones.
	Padding float64

	// OuterGap overrides the uniform gap between zones and the screen
	// boundary. OuterGaps, when set and not all-zero, takes precedence
	// and provides per-side values.
	OuterGap  float64
	OuterGaps *geom.Gaps

	// UseFullArea resolves zones against the full screen rather than the
	// available area (the screen minus panels and docks).
	UseFullArea bool
}

// NewLayout returns an empty layout with all spacing overrides unset.
func NewLayout(name string) Layout {
	return Layout{Name: name, Padding: Unset, OuterGap: Unset}
}

// FromRects builds a layout from an ordered rectangle sequence, typically
// the output of a tiling algorithm. Zones are numbered from 1 in input
// order.
func FromRects(name string, rects []geom.Rect) Layout {
	l := NewLayout(name)
	l.Zones = make([]Zone, len(rects))
	for i, r := range rects {
		l.Zones[i] = NewZone(i+1, r)
	}
	return l
}

// Validate checks structural integrity: zones must exist, have rects
// within the unit square, and carry unique display numbers.
func (l Layout) Validate() error {
	if len(l.Zones) == 0 {
		return errors.New(errors.ErrCodeInvalidLayout, "layout %q has no zones", l.Name)
	}

	seen := make(map[int]bool, len(l.Zones))
	for _, z := range l.Zones {
		r := z.Rect
		if r.X < -geom.BoundaryEps || r.Y < -geom.BoundaryEps ||
			r.Right() > 1+geom.BoundaryEps || r.Bottom() > 1+geom.BoundaryEps {
			return errors.New(errors.ErrCodeInvalidZone,
				"zone %d of layout %q exceeds the unit square: %+v", z.Number, l.Name, r)
		}
		if r.IsEmpty() {
			return errors.New(errors.ErrCodeInvalidZone,
				"zone %d of layout %q has no area", z.Number, l.Name)
		}
		if seen[z.Number] {
			return errors.New(errors.ErrCodeInvalidZone,
				"layout %q repeats zone number %d", l.Name, z.Number)
		}
		seen[z.Number] = true
	}
	return nil
}

// MinSizes returns the per-zone minimum sizes in layout order, for use
// with the constraint subpackage.
func (l Layout) MinSizes() []geom.Size {
	mins := make([]geom.Size, len(l.Zones))
	for i, z := range l.Zones {
		mins[i] = z.MinSize
	}
	return mins
}
