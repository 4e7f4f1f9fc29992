package tiling

import "github.com/snapzone/snapzone/pkg/geom"

// bspRegion is one pending subdivision in the breadth-first queue.
type bspRegion struct {
	rect  geom.Rect
	depth int
	count int
}

// bsp recursively halves regions until each holds a single window,
// processing regions breadth-first so sibling zones are emitted in
// spatial order. The split axis alternates with depth (even depth splits
// vertically) and only the depth-0 split uses the master ratio; all
// deeper splits are 50/50, giving a balanced subdivision.
func bsp(n int, p Params) []geom.Rect {
	if n == 1 {
		return []geom.Rect{fullArea}
	}

	out := make([]geom.Rect, 0, n)
	queue := make([]bspRegion, 0, 2*n)
	queue = append(queue, bspRegion{rect: fullArea, count: n})

	for len(queue) > 0 {
		reg := queue[0]
		queue = queue[1:]

		if reg.count == 1 {
			out = append(out, reg.rect)
			continue
		}

		first := reg.count / 2
		second := reg.count - first

		ratio := 0.5
		if reg.depth == 0 {
			ratio = p.ratio()
		}

		var a, b geom.Rect
		if reg.depth%2 == 0 {
			// Vertical split: left/right.
			a = geom.Rect{X: reg.rect.X, Y: reg.rect.Y, W: reg.rect.W * ratio, H: reg.rect.H}
			b = geom.Rect{X: a.Right(), Y: reg.rect.Y, W: reg.rect.W - a.W, H: reg.rect.H}
		} else {
			// Horizontal split: top/bottom.
			a = geom.Rect{X: reg.rect.X, Y: reg.rect.Y, W: reg.rect.W, H: reg.rect.H * ratio}
			b = geom.Rect{X: reg.rect.X, Y: a.Bottom(), W: reg.rect.W, H: reg.rect.H - a.H}
		}

		queue = append(queue,
			bspRegion{rect: a, depth: reg.depth + 1, count: first},
			bspRegion{rect: b, depth: reg.depth + 1, count: second},
		)
	}

	return out
}
