// Package geometry maps normalized zone rectangles onto real screens.
//
// Resolution scales a zone into a screen frame, applies the effective
// gaps (outer gap on edges that touch the screen boundary, half the
// inner gap on interior edges so two neighbors together consume exactly
// one gap), and snaps the result to whole pixels with edge-consistent
// rounding. All functions are pure; the screen frame is passed in per
// call and never cached, so hot-plugged or rescaled screens can never be
// observed stale.
package geometry

import (
	"github.com/snapzone/snapzone/pkg/geom"
	"github.com/snapzone/snapzone/pkg/zones"
)

// Resolve turns a normalized zone rectangle into pixel geometry within
// frame. Edges lying on the normalized boundary (within
// [geom.BoundaryEps]) receive the matching side of the outer gaps;
// interior edges receive half the inner padding. A degenerate frame
// yields a zero-area result.
func Resolve(rect geom.Rect, frame geom.Rect, padding float64, outer geom.Gaps) geom.Rect {
	frame = frame.Canon()

	scaled := geom.Rect{
		X: frame.X + rect.X*frame.W,
		Y: frame.Y + rect.Y*frame.H,
		W: rect.W * frame.W,
		H: rect.H * frame.H,
	}

	inset := geom.Gaps{
		Left:   padding / 2,
		Right:  padding / 2,
		Top:    padding / 2,
		Bottom: padding / 2,
	}
	if rect.X <= geom.BoundaryEps {
		inset.Left = outer.Left
	}
	if rect.Right() >= 1-geom.BoundaryEps {
		inset.Right = outer.Right
	}
	if rect.Y <= geom.BoundaryEps {
		inset.Top = outer.Top
	}
	if rect.Bottom() >= 1-geom.BoundaryEps {
		inset.Bottom = outer.Bottom
	}

	return Snap(scaled.Inset(inset))
}

// ResolveZones resolves every zone of a layout against frame, applying
// the gap cascade from the zones package. The returned rectangles are in
// layout order.
func ResolveZones(l zones.Layout, frame geom.Rect, s zones.Settings) []geom.Rect {
	padding := zones.ResolvePadding(l, s)
	outer := zones.ResolveOuterGaps(l, s)

	out := make([]geom.Rect, len(l.Zones))
	for i, z := range l.Zones {
		out[i] = Resolve(z.Rect, frame, padding, outer)
	}
	return out
}
