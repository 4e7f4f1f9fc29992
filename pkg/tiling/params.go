package tiling

// Parameter bounds. Ratios outside [MinRatio, MaxRatio] would produce
// unusably thin columns, so they are clamped at the point of use rather
// than rejected.
const (
	MinRatio = 0.1
	MaxRatio = 0.9

	// DefaultRatio is the master area share used when callers pass a zero
	// Params value.
	DefaultRatio = 0.55
)

// Params tunes the master-area algorithms. The zero value is usable:
// MasterRatio 0 clamps to MinRatio unless callers pre-fill it with
// [DefaultParams], and MasterCount 0 clamps to 1.
type Params struct {
	// MasterRatio is the share of the screen given to the master area,
	// clamped to [MinRatio, MaxRatio].
	MasterRatio float64

	// MasterCount is how many windows live in the master area, clamped
	// to [1, windowCount].
	MasterCount int
}

// DefaultParams returns the parameters used when a layout specifies none.
func DefaultParams() Params {
	return Params{MasterRatio: DefaultRatio, MasterCount: 1}
}

// ratio returns MasterRatio clamped to its valid range. Algorithms never
// trust unclamped input.
func (p Params) ratio() float64 {
	switch {
	case p.MasterRatio < MinRatio:
		return MinRatio
	case p.MasterRatio > MaxRatio:
		return MaxRatio
	default:
		return p.MasterRatio
	}
}

// masters returns MasterCount clamped to [1, n].
func (p Params) masters(n int) int {
	switch {
	case p.MasterCount < 1:
		return 1
	case p.MasterCount > n:
		return n
	default:
		return p.MasterCount
	}
}
