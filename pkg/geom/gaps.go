package geom

// Gaps holds per-side spacing in pixels. A zero value means no spacing on
// that side; callers that need "unset" semantics use a *Gaps.
type Gaps struct {
	Top, Bottom, Left, Right float64
}

// Uniform returns Gaps with the same value on every side.
func Uniform(v float64) Gaps {
	return Gaps{Top: v, Bottom: v, Left: v, Right: v}
}

// IsZero reports whether every side is zero.
func (g Gaps) IsZero() bool {
	return g.Top == 0 && g.Bottom == 0 && g.Left == 0 && g.Right == 0
}
