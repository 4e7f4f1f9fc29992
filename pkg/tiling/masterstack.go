package tiling

import "github.com/snapzone/snapzone/pkg/geom"

// masterStack splits the screen into a master column holding the first
// MasterCount windows and a stack column holding the rest. Each column is
// subdivided evenly by height. When every window fits in the master count
// the master column spans the full width.
func masterStack(n int, p Params) []geom.Rect {
	if n == 1 {
		return []geom.Rect{fullArea}
	}

	masters := p.masters(n)
	out := make([]geom.Rect, 0, n)

	if masters >= n {
		return column(out, fullArea, n)
	}

	ratio := p.ratio()
	master := geom.Rect{X: 0, Y: 0, W: ratio, H: 1}
	stack := geom.Rect{X: ratio, Y: 0, W: 1 - ratio, H: 1}

	out = column(out, master, masters)
	out = column(out, stack, n-masters)
	return out
}
