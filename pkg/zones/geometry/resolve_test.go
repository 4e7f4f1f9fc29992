package geometry

import (
	"testing"

	"github.com/snapzone/snapzone/pkg/geom"
	"github.com/snapzone/snapzone/pkg/tiling"
	"github.com/snapzone/snapzone/pkg/zones"
)

func TestSnap(t *testing.T) {
	tests := []struct {
		name string
		in   geom.Rect
		want geom.Rect
	}{
		{
			name: "already integral",
			in:   geom.Rect{X: 10, Y: 20, W: 30, H: 40},
			want: geom.Rect{X: 10, Y: 20, W: 30, H: 40},
		},
		{
			name: "fractional edges",
			in:   geom.Rect{X: 10.4, Y: 19.6, W: 30, H: 40},
			want: geom.Rect{X: 10, Y: 20, W: 30, H: 40},
		},
		{
			name: "width derived from rounded edges",
			// x=0.5 rounds to 1, right=10.3 rounds to 10: width is 9,
			// not round(9.8)=10.
			in:   geom.Rect{X: 0.5, Y: 0, W: 9.8, H: 10},
			want: geom.Rect{X: 1, Y: 0, W: 9, H: 10},
		},
		{
			name: "degenerate collapses to zero spans",
			in:   geom.Rect{X: 5.2, Y: 5.2, W: 0.1, H: 0.1},
			want: geom.Rect{X: 5, Y: 5, W: 0, H: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Snap(tt.in); got != tt.want {
				t.Errorf("Snap(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

// TestSnapSharedBoundary checks the rounding contract: two zones meeting
// at x=0.5 on an odd-width screen must agree on the boundary pixel.
func TestSnapSharedBoundary(t *testing.T) {
	frame := geom.Rect{X: 0, Y: 0, W: 1001, H: 999}
	left := Resolve(geom.Rect{X: 0, Y: 0, W: 0.5, H: 1}, frame, 0, geom.Gaps{})
	right := Resolve(geom.Rect{X: 0.5, Y: 0, W: 0.5, H: 1}, frame, 0, geom.Gaps{})

	if left.Right() != right.X {
		t.Errorf("shared boundary differs: left ends at %v, right starts at %v",
			left.Right(), right.X)
	}
	if left.X != 0 || right.Right() != 1001 {
		t.Errorf("outer edges moved: left=%+v right=%+v", left, right)
	}
}

func TestResolveGaps(t *testing.T) {
	frame := geom.Rect{X: 0, Y: 0, W: 1000, H: 1000}

	t.Run("boundary edges get outer, interior edges half padding", func(t *testing.T) {
		got := Resolve(geom.Rect{X: 0, Y: 0, W: 0.5, H: 1}, frame, 8, geom.Uniform(10))
		want := geom.Rect{X: 10, Y: 10, W: 486, H: 980}
		if got != want {
			t.Errorf("Resolve() = %+v, want %+v", got, want)
		}
	})

	t.Run("adjacent zones consume exactly one inner gap", func(t *testing.T) {
		a := Resolve(geom.Rect{X: 0, Y: 0, W: 0.5, H: 1}, frame, 8, geom.Uniform(10))
		b := Resolve(geom.Rect{X: 0.5, Y: 0, W: 0.5, H: 1}, frame, 8, geom.Uniform(10))
		if gap := b.X - a.Right(); gap != 8 {
			t.Errorf("inner gap = %v, want 8", gap)
		}
	})

	t.Run("per-side outer gaps", func(t *testing.T) {
		outer := geom.Gaps{Top: 40, Bottom: 4, Left: 12, Right: 6}
		got := Resolve(geom.Rect{X: 0, Y: 0, W: 1, H: 1}, frame, 8, outer)
		want := geom.Rect{X: 12, Y: 40, W: 982, H: 956}
		if got != want {
			t.Errorf("Resolve() = %+v, want %+v", got, want)
		}
	})

	t.Run("offset frame", func(t *testing.T) {
		shifted := geom.Rect{X: 1920, Y: 0, W: 1000, H: 1000}
		got := Resolve(geom.Rect{X: 0, Y: 0, W: 1, H: 1}, shifted, 0, geom.Gaps{})
		if got != shifted {
			t.Errorf("Resolve() = %+v, want %+v", got, shifted)
		}
	})

	t.Run("degenerate frame yields zero area", func(t *testing.T) {
		got := Resolve(geom.Rect{X: 0, Y: 0, W: 0.5, H: 1}, geom.Rect{W: 0, H: 1080}, 8, geom.Uniform(10))
		if got.Area() != 0 {
			t.Errorf("Resolve() on zero-width frame = %+v, want zero area", got)
		}
	})

	t.Run("gaps larger than the zone clamp to zero spans", func(t *testing.T) {
		tiny := geom.Rect{X: 0, Y: 0, W: 10, H: 10}
		got := Resolve(geom.Rect{X: 0, Y: 0, W: 1, H: 1}, tiny, 0, geom.Uniform(50))
		if got.W < 0 || got.H < 0 {
			t.Errorf("Resolve() produced negative spans: %+v", got)
		}
	})
}

func TestResolveZones(t *testing.T) {
	frame := geom.Rect{X: 0, Y: 0, W: 1920, H: 1080}
	layout := zones.FromRects("grid", tiling.Generate(tiling.BSP, 4, tiling.Params{MasterRatio: 0.5}))
	layout.Padding = 10
	layout.OuterGap = 20

	got := ResolveZones(layout, frame, zones.DefaultSettings())
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}

	// No overlaps, and everything stays inside the frame inset by the
	// outer gap.
	inner := frame.Inset(geom.Uniform(20))
	for i, r := range got {
		if r.X < inner.X || r.Y < inner.Y || r.Right() > inner.Right() || r.Bottom() > inner.Bottom() {
			t.Errorf("zone %d escapes the outer gap: %+v", i+1, r)
		}
		for j := i + 1; j < len(got); j++ {
			if r.Intersects(got[j]) {
				t.Errorf("zones %d and %d overlap: %+v / %+v", i+1, j+1, r, got[j])
			}
		}
	}

	// Vertical neighbors consume exactly one inner gap.
	if gap := got[1].Y - got[0].Bottom(); gap != 10 {
		t.Errorf("inner gap = %v, want 10", gap)
	}
}
