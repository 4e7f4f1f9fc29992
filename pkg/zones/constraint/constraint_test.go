package constraint

import (
	"math/rand"
	"testing"

	"github.com/snapzone/snapzone/pkg/errors"
	"github.com/snapzone/snapzone/pkg/geom"
)

func TestEnforceMinimumsMismatchedLengths(t *testing.T) {
	err := EnforceMinimums(make([]geom.Rect, 3), make([]geom.Size, 2), 10)
	if !errors.Is(err, errors.ErrCodeMismatchedLengths) {
		t.Errorf("EnforceMinimums() error = %v, want MISMATCHED_LENGTHS", err)
	}
}

func TestEnforceMinimumsBorrowsFromNeighbor(t *testing.T) {
	zs := []geom.Rect{
		{X: 0, Y: 0, W: 300, H: 1000},
		{X: 308, Y: 0, W: 692, H: 1000},
	}
	mins := []geom.Size{{W: 400}, {}}

	if err := EnforceMinimums(zs, mins, 10); err != nil {
		t.Fatalf("EnforceMinimums() error = %v", err)
	}

	if zs[0].W != 400 {
		t.Errorf("zone 1 width = %v, want 400", zs[0].W)
	}
	want := geom.Rect{X: 408, Y: 0, W: 592, H: 1000}
	if zs[1] != want {
		t.Errorf("zone 2 = %+v, want %+v", zs[1], want)
	}
	if gap := zs[1].X - zs[0].Right(); gap != 8 {
		t.Errorf("inner gap = %v, want 8 (preserved)", gap)
	}
}

func TestEnforceMinimumsBorrowsProportionally(t *testing.T) {
	zs := []geom.Rect{
		{X: 0, Y: 0, W: 300, H: 1000},
		{X: 310, Y: 0, W: 300, H: 1000},
		{X: 620, Y: 0, W: 300, H: 1000},
	}
	mins := []geom.Size{{}, {W: 500}, {}}

	if err := EnforceMinimums(zs, mins, 15); err != nil {
		t.Fatalf("EnforceMinimums() error = %v", err)
	}

	// Both sides have equal surplus, so each gives half of the needed
	// 200 pixels.
	if zs[0].W != 200 {
		t.Errorf("left neighbor width = %v, want 200", zs[0].W)
	}
	if zs[1].W != 500 || zs[1].X != 210 {
		t.Errorf("center zone = %+v, want x=210 w=500", zs[1])
	}
	if zs[2].W != 200 || zs[2].X != 720 {
		t.Errorf("right neighbor = %+v, want x=720 w=200", zs[2])
	}
}

func TestEnforceMinimumsStopsAtNeighborMinimum(t *testing.T) {
	// The third zone needs 160 more pixels but its only neighbor has a
	// surplus of 10 above its own minimum. Borrowing stops there and the
	// zone stays under-sized: this is a soft constraint.
	zs := []geom.Rect{
		{X: 0, Y: 0, W: 500, H: 1000},
		{X: 510, Y: 0, W: 220, H: 1000},
		{X: 740, Y: 0, W: 240, H: 1000},
	}
	mins := []geom.Size{{}, {W: 210}, {W: 400}}

	if err := EnforceMinimums(zs, mins, 15); err != nil {
		t.Fatalf("EnforceMinimums() error = %v", err)
	}

	if zs[0].W != 500 {
		t.Errorf("zone 1 width = %v, want 500 (not adjacent to the grower)", zs[0].W)
	}
	if zs[1].X != 510 || zs[1].W != 210 {
		t.Errorf("zone 2 = %+v, want x=510 w=210 (shrunk to its minimum)", zs[1])
	}
	if zs[2].X != 730 || zs[2].W != 250 {
		t.Errorf("zone 3 = %+v, want x=730 w=250 (best effort)", zs[2])
	}
}

func TestEnforceMinimumsInfeasible(t *testing.T) {
	zs := []geom.Rect{
		{X: 0, Y: 0, W: 100, H: 100},
		{X: 105, Y: 0, W: 100, H: 100},
	}
	mins := []geom.Size{{W: 500, H: 500}, {W: 500, H: 500}}

	if err := EnforceMinimums(zs, mins, 10); err != nil {
		t.Fatalf("EnforceMinimums() error = %v", err)
	}
	for i, z := range zs {
		if z.W < 0 || z.H < 0 {
			t.Errorf("zone %d has negative span: %+v", i+1, z)
		}
	}
}

func TestEnforceMinimumsVertical(t *testing.T) {
	zs := []geom.Rect{
		{X: 0, Y: 0, W: 1000, H: 300},
		{X: 0, Y: 308, W: 1000, H: 692},
	}
	mins := []geom.Size{{H: 450}, {}}

	if err := EnforceMinimums(zs, mins, 10); err != nil {
		t.Fatalf("EnforceMinimums() error = %v", err)
	}

	if zs[0].H != 450 {
		t.Errorf("zone 1 height = %v, want 450", zs[0].H)
	}
	if gap := zs[1].Y - zs[0].Bottom(); gap != 8 {
		t.Errorf("inner gap = %v, want 8", gap)
	}
}

func TestRemoveOverlapsMismatchedLengths(t *testing.T) {
	err := RemoveOverlaps(make([]geom.Rect, 2), make([]geom.Size, 3), 8)
	if !errors.Is(err, errors.ErrCodeMismatchedLengths) {
		t.Errorf("RemoveOverlaps() error = %v, want MISMATCHED_LENGTHS", err)
	}
}

func TestRemoveOverlapsShrinksAffordableZone(t *testing.T) {
	t.Run("left zone has more surplus", func(t *testing.T) {
		zs := []geom.Rect{
			{X: 0, Y: 0, W: 600, H: 1000},
			{X: 500, Y: 0, W: 500, H: 1000},
		}
		mins := []geom.Size{{}, {W: 450}}

		if err := RemoveOverlaps(zs, mins, 8); err != nil {
			t.Fatalf("RemoveOverlaps() error = %v", err)
		}

		if zs[0].W != 492 {
			t.Errorf("left zone width = %v, want 492", zs[0].W)
		}
		if zs[1] != (geom.Rect{X: 500, Y: 0, W: 500, H: 1000}) {
			t.Errorf("right zone moved: %+v", zs[1])
		}
		if gap := zs[1].X - zs[0].Right(); gap != 8 {
			t.Errorf("gap across new boundary = %v, want 8", gap)
		}
	})

	t.Run("right zone has more surplus", func(t *testing.T) {
		zs := []geom.Rect{
			{X: 0, Y: 0, W: 600, H: 1000},
			{X: 500, Y: 0, W: 500, H: 1000},
		}
		mins := []geom.Size{{W: 590}, {}}

		if err := RemoveOverlaps(zs, mins, 8); err != nil {
			t.Fatalf("RemoveOverlaps() error = %v", err)
		}

		if zs[0].W != 600 {
			t.Errorf("left zone width = %v, want 600 (untouched)", zs[0].W)
		}
		want := geom.Rect{X: 608, Y: 0, W: 392, H: 1000}
		if zs[1] != want {
			t.Errorf("right zone = %+v, want %+v", zs[1], want)
		}
	})
}

func TestRemoveOverlapsVertical(t *testing.T) {
	// Penetration is smaller vertically, so the pair separates on Y.
	zs := []geom.Rect{
		{X: 0, Y: 0, W: 1000, H: 550},
		{X: 0, Y: 500, W: 1000, H: 500},
	}
	mins := []geom.Size{{}, {}}

	if err := RemoveOverlaps(zs, mins, 8); err != nil {
		t.Fatalf("RemoveOverlaps() error = %v", err)
	}
	if zs[0].Intersects(zs[1]) {
		t.Errorf("zones still overlap: %+v / %+v", zs[0], zs[1])
	}
	if gap := zs[1].Y - zs[0].Bottom(); gap != 8 {
		t.Errorf("gap = %v, want 8", gap)
	}
}

func TestRemoveOverlapsIdempotent(t *testing.T) {
	zs := []geom.Rect{
		{X: 0, Y: 0, W: 620, H: 700},
		{X: 560, Y: 0, W: 440, H: 1000},
		{X: 0, Y: 650, W: 560, H: 350},
	}
	mins := make([]geom.Size, len(zs))

	if err := RemoveOverlaps(zs, mins, 8); err != nil {
		t.Fatalf("RemoveOverlaps() error = %v", err)
	}
	snapshot := append([]geom.Rect(nil), zs...)

	if err := RemoveOverlaps(zs, mins, 8); err != nil {
		t.Fatalf("second RemoveOverlaps() error = %v", err)
	}
	for i := range zs {
		if zs[i] != snapshot[i] {
			t.Errorf("zone %d changed on second run: %+v -> %+v", i+1, snapshot[i], zs[i])
		}
	}
}

// TestConstraintPipelineProperty runs both passes over randomized zone
// sets and checks the outcome every caller relies on: no overlaps and
// no negative spans.
func TestConstraintPipelineProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 50; trial++ {
		n := 2 + rng.Intn(6)
		zs := make([]geom.Rect, n)
		mins := make([]geom.Size, n)
		for i := range zs {
			zs[i] = geom.Rect{
				X: float64(rng.Intn(1500)),
				Y: float64(rng.Intn(800)),
				W: float64(100 + rng.Intn(800)),
				H: float64(100 + rng.Intn(600)),
			}
			if rng.Intn(2) == 0 {
				mins[i] = geom.Size{
					W: float64(rng.Intn(600)),
					H: float64(rng.Intn(400)),
				}
			}
		}

		if err := EnforceMinimums(zs, mins, 12); err != nil {
			t.Fatalf("trial %d: EnforceMinimums() error = %v", trial, err)
		}
		if err := RemoveOverlaps(zs, mins, 8); err != nil {
			t.Fatalf("trial %d: RemoveOverlaps() error = %v", trial, err)
		}

		for i := range zs {
			if zs[i].W < 0 || zs[i].H < 0 {
				t.Errorf("trial %d: zone %d negative span: %+v", trial, i+1, zs[i])
			}
			for j := i + 1; j < n; j++ {
				if zs[i].Intersects(zs[j]) {
					t.Errorf("trial %d: zones %d and %d overlap: %+v / %+v",
						trial, i+1, j+1, zs[i], zs[j])
				}
			}
		}
	}
}

func TestPairs(t *testing.T) {
	zs := []geom.Rect{
		{X: 0, Y: 0, W: 492, H: 1000},    // left column
		{X: 500, Y: 0, W: 500, H: 492},   // top right
		{X: 500, Y: 500, W: 500, H: 500}, // bottom right
	}

	got := Pairs(zs, 10)
	want := map[[2]int]bool{{0, 1}: true, {0, 2}: true, {1, 2}: true}
	if len(got) != len(want) {
		t.Fatalf("Pairs() = %v, want 3 pairs", got)
	}
	for _, p := range got {
		if !want[p] {
			t.Errorf("unexpected pair %v", p)
		}
	}

	// Distant zones are not adjacent.
	far := []geom.Rect{
		{X: 0, Y: 0, W: 100, H: 100},
		{X: 500, Y: 500, W: 100, H: 100},
	}
	if got := Pairs(far, 10); len(got) != 0 {
		t.Errorf("Pairs() of distant zones = %v, want none", got)
	}
}
