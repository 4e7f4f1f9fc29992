// Package pkg provides the core libraries for Snapzone zone layout
// computation.
//
// # Overview
//
// Snapzone computes window tiling layouts: it turns a tiling algorithm and
// a window count into a set of screen zones, scales them onto a pixel
// frame with configurable gaps, and enforces per-zone minimum sizes. The
// pkg directory is organized into four main areas:
//
//  1. [geom], [tiling], [zones] - Domain logic (rectangles, algorithms, layouts)
//  2. [zones/geometry], [zones/constraint] - Resolution and constraint enforcement
//  3. [zones/snapshot], [layoutfile] - Serialization (JSON/SVG/DOT, TOML files)
//  4. [pipeline] - Orchestration (generate → resolve → constrain → render)
//
// # Architecture
//
// The typical data flow through Snapzone:
//
//	Algorithm + window count (or a TOML layout file)
//	         ↓
//	    [tiling] package (normalized zone rectangles)
//	         ↓
//	    [zones/geometry] package (pixel frames + gap cascade)
//	         ↓
//	    [zones/constraint] package (minimum sizes, overlap removal)
//	         ↓
//	    JSON/SVG/DOT output
//
// # Quick Start
//
// Generate a layout and resolve it onto a screen:
//
//	import (
//	    "github.com/snapzone/snapzone/pkg/geom"
//	    "github.com/snapzone/snapzone/pkg/tiling"
//	    "github.com/snapzone/snapzone/pkg/zones"
//	    "github.com/snapzone/snapzone/pkg/zones/geometry"
//	)
//
//	// 1. Generate normalized zones
//	rects := tiling.Generate(tiling.BSP, 4, tiling.DefaultParams())
//	layout := zones.FromRects("bsp", rects)
//
//	// 2. Resolve onto a 1920x1080 screen with default gaps
//	frame := geom.Rect{W: 1920, H: 1080}
//	resolved := geometry.ResolveZones(layout, frame, zones.DefaultSettings())
//
// Or run the whole pipeline:
//
//	runner := pipeline.NewRunner(nil)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Algorithm:   tiling.Fibonacci,
//	    WindowCount: 5,
//	    Formats:     []string{"json", "svg"},
//	})
//
// # Main Packages
//
// [geom] - Rectangle and gap primitives shared by every other package.
//
// [tiling] - The five tiling algorithms (monocle, master-stack, bsp,
// fibonacci, three-column). Pure functions from window count and
// parameters to normalized rectangles.
//
// [zones] - Zone and Layout types, validation, and the gap cascade that
// resolves effective inner and outer gaps from layout and global settings.
//
// [zones/geometry] - Scales normalized zones onto pixel frames, applies
// gaps with edge-consistent pixel snapping.
//
// [zones/constraint] - Enforces per-zone minimum sizes by borrowing space
// from neighbors, then removes any overlaps introduced.
//
// [zones/snapshot] - Renders resolved layouts as JSON, SVG, or Graphviz
// DOT adjacency graphs.
//
// [layoutfile] - TOML layout and settings files plus the built-in layout
// library.
//
// [pipeline] - Complete layout pipeline (generate → resolve → constrain →
// render) used by the CLI and TUI. Ensures consistent behavior across all
// entry points.
//
// [observability] - Stage hooks for instrumenting pipeline runs.
//
// [errors] - Structured error codes shared across packages.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                 # All tests
//	go test ./pkg/tiling/...          # Specific package
//	go test -run Example              # Examples only
//
// [geom]: https://pkg.go.dev/github.com/snapzone/snapzone/pkg/geom
// [tiling]: https://pkg.go.dev/github.com/snapzone/snapzone/pkg/tiling
// [zones]: https://pkg.go.dev/github.com/snapzone/snapzone/pkg/zones
// [zones/geometry]: https://pkg.go.dev/github.com/snapzone/snapzone/pkg/zones/geometry
// [zones/constraint]: https://pkg.go.dev/github.com/snapzone/snapzone/pkg/zones/constraint
// [zones/snapshot]: https://pkg.go.dev/github.com/snapzone/snapzone/pkg/zones/snapshot
// [layoutfile]: https://pkg.go.dev/github.com/snapzone/snapzone/pkg/layoutfile
// [pipeline]: https://pkg.go.dev/github.com/snapzone/snapzone/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/snapzone/snapzone/pkg/observability
// [errors]: https://pkg.go.dev/github.com/snapzone/snapzone/pkg/errors
package pkg
