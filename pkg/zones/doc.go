// Package zones defines the zone and layout model plus the spacing
// cascade that turns layered gap overrides into effective pixel values.
//
// # Overview
//
// A Zone is a normalized rectangle a window can be snapped into; a Layout
// is an ordered collection of zones plus optional spacing overrides. Zone
// rectangles are resolution independent; resolving them against a real
// screen is the job of the geometry subpackage, and post-resolution
// minimum-size enforcement lives in the constraint subpackage.
//
// # Gap cascade
//
// Spacing is resolved through a chain of overrides, stopping at the first
// defined value:
//
//	inner gap:  layout padding → global padding → DefaultGap
//	outer gap:  layout per-side → layout uniform → global per-side →
//	            global uniform → DefaultGap
//
// Negative values mean "unset" and fall through. A per-side override that
// is set but all-zero also falls through to the uniform value, so an
// accidentally zeroed field never silently removes the outer gap.
package zones
