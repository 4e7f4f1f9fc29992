// Package pipeline provides the core layout pipeline for Snapzone.
//
// This package implements the complete generate → resolve → constrain →
// render pipeline that can be used by CLI and TUI components. By
// centralizing this logic, we ensure consistent behavior across all entry
// points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Generate: Compute a normalized zone layout from a tiling algorithm
//  2. Resolve: Scale the layout onto a pixel frame and apply gaps
//  3. Constrain: Enforce per-zone minimum sizes and remove overlaps
//  4. Render: Produce output in various formats (JSON, SVG, DOT)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Algorithm:   tiling.BSP,
//	    WindowCount: 4,
//	    Formats:     []string{"json"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data := result.Artifacts["json"]
//
// Run individual stages:
//
//	// Generate only
//	layout, err := runner.Generate(ctx, opts)
//
//	// Resolve with an existing layout
//	rects := runner.Resolve(ctx, layout, opts)
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/snapzone/snapzone/pkg/errors"
	"github.com/snapzone/snapzone/pkg/geom"
	"github.com/snapzone/snapzone/pkg/tiling"
	"github.com/snapzone/snapzone/pkg/zones"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and TUI
// =============================================================================

const (
	// DefaultScreenWidth is the default frame width in pixels.
	DefaultScreenWidth = 1920.0

	// DefaultScreenHeight is the default frame height in pixels.
	DefaultScreenHeight = 1080.0

	// DefaultWindowCount is the number of zones generated when the caller
	// does not specify one.
	DefaultWindowCount = 2

	// DefaultGapThreshold is the maximum pixel distance at which two zone
	// edges are still treated as adjacent by the constraint stage. Twice
	// the default gap keeps zones separated by a standard inner gap
	// adjacent even after rounding.
	DefaultGapThreshold = 2 * zones.DefaultGap
)

// DefaultAlgorithm is the tiling algorithm used when none is specified.
const DefaultAlgorithm = tiling.BSP

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatSVG  = "svg"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatSVG:  true,
	FormatDOT:  true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: json, svg, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the layout pipeline.
// This struct supports JSON serialization so callers can persist runs.
type Options struct {
	// Generate options. Layout takes precedence over Algorithm: when a
	// layout is supplied the generate stage is skipped entirely.
	Algorithm   tiling.Algorithm `json:"algorithm,omitempty"`
	WindowCount int              `json:"window_count,omitempty"`
	Params      tiling.Params    `json:"params,omitzero"`
	Layout      *zones.Layout    `json:"layout,omitempty"`

	// Resolve options. Available, when set, restricts the frame to the
	// usable screen region (minus panels and docks) unless the layout
	// claims the full area.
	Screen    geom.Rect      `json:"screen,omitzero"`
	Available *geom.Rect     `json:"available,omitempty"`
	Settings  zones.Settings `json:"settings,omitzero"`

	// Constrain options.
	GapThreshold float64 `json:"gap_threshold,omitempty"`

	// Render options.
	Formats  []string `json:"formats,omitempty"`
	Assigned []int    `json:"assigned,omitempty"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Layout == nil {
		if o.Algorithm == "" {
			o.Algorithm = DefaultAlgorithm
		}
		if _, err := tiling.Parse(string(o.Algorithm)); err != nil {
			return err
		}
		if o.WindowCount <= 0 {
			o.WindowCount = DefaultWindowCount
		}
	} else if err := o.Layout.Validate(); err != nil {
		return err
	}
	if o.Screen.IsEmpty() {
		o.Screen = geom.Rect{W: DefaultScreenWidth, H: DefaultScreenHeight}
	}
	// A zero Settings value means "nothing configured", not zero gaps.
	// Explicit zero gaps are expressed through layout-level overrides.
	if o.Settings == (zones.Settings{}) {
		o.Settings = zones.DefaultSettings()
	}
	if o.GapThreshold <= 0 {
		o.GapThreshold = DefaultGapThreshold
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// Frame returns the pixel rectangle the layout resolves against: the
// available work area when one is known and the layout does not claim the
// full screen, otherwise the screen itself.
func (o Options) Frame(l zones.Layout) geom.Rect {
	if o.Available != nil && !o.Available.IsEmpty() && !l.UseFullArea {
		return *o.Available
	}
	return o.Screen
}

// =============================================================================
// Result - Pipeline Outputs
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the normalized zone layout used for resolution.
	Layout zones.Layout

	// Resolved contains one pixel rectangle per zone, in zone order.
	Resolved []geom.Rect

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ZoneCount     int
	GenerateTime  time.Duration
	ResolveTime   time.Duration
	ConstrainTime time.Duration
	RenderTime    time.Duration
}

// loggerOrDefault keeps stage logging uniform across entry points.
func loggerOrDefault(l *log.Logger) *log.Logger {
	if l == nil {
		return log.Default()
	}
	return l
}
