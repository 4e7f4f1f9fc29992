package geom

import "testing"

func TestRectEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	if got := r.Right(); got != 40 {
		t.Errorf("Right() = %v, want 40", got)
	}
	if got := r.Bottom(); got != 60 {
		t.Errorf("Bottom() = %v, want 60", got)
	}
	if got := r.CenterX(); got != 25 {
		t.Errorf("CenterX() = %v, want 25", got)
	}
	if got := r.CenterY(); got != 40 {
		t.Errorf("CenterY() = %v, want 40", got)
	}
}

func TestRectArea(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want float64
	}{
		{name: "unit", rect: Rect{W: 1, H: 1}, want: 1},
		{name: "pixels", rect: Rect{X: 5, Y: 5, W: 10, H: 20}, want: 200},
		{name: "zero width", rect: Rect{W: 0, H: 10}, want: 0},
		{name: "negative span", rect: Rect{W: -3, H: 10}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Area(); got != tt.want {
				t.Errorf("Area() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{
			name: "overlapping",
			a:    Rect{X: 0, Y: 0, W: 10, H: 10},
			b:    Rect{X: 5, Y: 5, W: 10, H: 10},
			want: true,
		},
		{
			name: "touching edges only",
			a:    Rect{X: 0, Y: 0, W: 10, H: 10},
			b:    Rect{X: 10, Y: 0, W: 10, H: 10},
			want: false,
		},
		{
			name: "disjoint",
			a:    Rect{X: 0, Y: 0, W: 10, H: 10},
			b:    Rect{X: 20, Y: 20, W: 10, H: 10},
			want: false,
		},
		{
			name: "contained",
			a:    Rect{X: 0, Y: 0, W: 10, H: 10},
			b:    Rect{X: 2, Y: 2, W: 4, H: 4},
			want: true,
		},
		{
			name: "empty never intersects",
			a:    Rect{X: 0, Y: 0, W: 0, H: 10},
			b:    Rect{X: 0, Y: 0, W: 10, H: 10},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 6, Y: 4, W: 10, H: 10}
	got := a.Intersect(b)
	want := Rect{X: 6, Y: 4, W: 4, H: 6}
	if got != want {
		t.Errorf("Intersect() = %+v, want %+v", got, want)
	}

	if got := a.Intersect(Rect{X: 50, Y: 50, W: 1, H: 1}); got != (Rect{}) {
		t.Errorf("Intersect() of disjoint rects = %+v, want zero", got)
	}
}

func TestRectInset(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 100, H: 100}
	got := r.Inset(Gaps{Top: 10, Bottom: 20, Left: 5, Right: 15})
	want := Rect{X: 5, Y: 10, W: 80, H: 70}
	if got != want {
		t.Errorf("Inset() = %+v, want %+v", got, want)
	}

	// Over-insetting clamps spans to zero instead of going negative.
	got = Rect{W: 10, H: 10}.Inset(Uniform(20))
	if got.W != 0 || got.H != 0 {
		t.Errorf("Inset() over-inset = %+v, want zero spans", got)
	}
}

func TestGapsUniform(t *testing.T) {
	g := Uniform(8)
	want := Gaps{Top: 8, Bottom: 8, Left: 8, Right: 8}
	if g != want {
		t.Errorf("Uniform(8) = %+v, want %+v", g, want)
	}
	if g.IsZero() {
		t.Error("Uniform(8).IsZero() = true, want false")
	}
	if !(Gaps{}).IsZero() {
		t.Error("zero Gaps IsZero() = false, want true")
	}
}
