// Package tiling generates abstract zone partitions from a window count
// and a small parameter set.
//
// # Overview
//
// Each algorithm is a pure function from (windowCount, Params) to an
// ordered sequence of normalized rectangles that exactly tile the unit
// square. Gaps are never baked into algorithm output; spacing is applied
// later by the geometry resolver. Output order is significant: it drives
// zone numbering, keyboard shortcuts, and navigation, and is stable for
// identical inputs.
//
// # Algorithms
//
//   - [Monocle]: one full-area zone, windows stack.
//   - [MasterStack]: master column plus an evenly split stack column.
//   - [BSP]: balanced binary space partition, axis alternating with depth.
//   - [Fibonacci]: greedy spiral of halving peels.
//   - [ThreeColumn]: center master with right and left stack columns,
//     intended for ultrawide displays.
//
// # Basic Usage
//
//	rects := tiling.Generate(tiling.BSP, 4, tiling.Params{MasterRatio: 0.6})
//	for i, r := range rects {
//		fmt.Printf("zone %d: %+v\n", i+1, r)
//	}
//
// Every algorithm returns nil for windowCount <= 0 and the full unit
// square for windowCount == 1.
package tiling
