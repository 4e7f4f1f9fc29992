package tiling

import "github.com/snapzone/snapzone/pkg/geom"

// threeColumn centers a master column between two stack columns, sized
// for ultrawide displays. Stack windows alternate between the sides
// (right first), so the right column holds ceil(stack/2) windows and the
// left the rest. Emission fills the master rows first, then the right
// column top to bottom, then the left. With a single stack window no
// left column is created and the master column sits flush left.
func threeColumn(n int, p Params) []geom.Rect {
	if n == 1 {
		return []geom.Rect{fullArea}
	}

	masters := p.masters(n)
	out := make([]geom.Rect, 0, n)

	if masters >= n {
		return column(out, fullArea, n)
	}

	ratio := p.ratio()
	stack := n - masters
	rightCount := (stack + 1) / 2
	leftCount := stack - rightCount

	if leftCount == 0 {
		master := geom.Rect{X: 0, Y: 0, W: ratio, H: 1}
		right := geom.Rect{X: ratio, Y: 0, W: 1 - ratio, H: 1}
		out = column(out, master, masters)
		return column(out, right, rightCount)
	}

	sideW := (1 - ratio) / 2
	left := geom.Rect{X: 0, Y: 0, W: sideW, H: 1}
	master := geom.Rect{X: sideW, Y: 0, W: ratio, H: 1}
	right := geom.Rect{X: sideW + ratio, Y: 0, W: 1 - sideW - ratio, H: 1}

	out = column(out, master, masters)
	out = column(out, right, rightCount)
	return column(out, left, leftCount)
}
