package constraint

import "github.com/snapzone/snapzone/pkg/geom"

// Pairs returns every adjacent pair of zones (i < j), using the same
// edge-proximity rule the enforcement pass uses for borrowing. The zone
// adjacency graph is useful for debugging layouts; the snapshot package
// renders it with Graphviz.
func Pairs(zs []geom.Rect, gapThreshold float64) [][2]int {
	var out [][2]int
	for i := range zs {
		seen := make(map[int]bool)
		for _, ax := range []axis{horizontal, vertical} {
			for _, j := range neighbors(zs, i, gapThreshold, ax, true) {
				if j > i && !seen[j] {
					seen[j] = true
					out = append(out, [2]int{i, j})
				}
			}
			for _, j := range neighbors(zs, i, gapThreshold, ax, false) {
				if j > i && !seen[j] {
					seen[j] = true
					out = append(out, [2]int{i, j})
				}
			}
		}
	}
	return out
}
