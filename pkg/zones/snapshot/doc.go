// Package snapshot serializes resolved zone geometry for external
// consumers.
//
// The JSON snapshot is the primary interchange format: zone-selection
// UIs receive the set of empty zones (zones with no window assigned)
// with both the normalized rectangle and the resolved pixel geometry.
// The SVG and DOT sinks are debugging artifacts: SVG draws the resolved
// rectangles to scale, DOT renders the zone adjacency graph the
// constraint passes operate on.
package snapshot
