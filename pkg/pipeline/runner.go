package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/snapzone/snapzone/pkg/geom"
	"github.com/snapzone/snapzone/pkg/observability"
	"github.com/snapzone/snapzone/pkg/tiling"
	"github.com/snapzone/snapzone/pkg/zones"
	"github.com/snapzone/snapzone/pkg/zones/constraint"
	"github.com/snapzone/snapzone/pkg/zones/geometry"
	"github.com/snapzone/snapzone/pkg/zones/snapshot"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with different
// options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, the default logger is used.
func NewRunner(logger *log.Logger) *Runner {
	return &Runner{Logger: loggerOrDefault(logger)}
}

// Execute runs the complete generate → resolve → constrain → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Generate
	generateStart := time.Now()
	layout, err := r.Generate(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Layout = layout
	result.Stats.GenerateTime = time.Since(generateStart)
	result.Stats.ZoneCount = len(layout.Zones)

	r.Logger.Info("generated layout",
		"layout", layout.Name,
		"zones", len(layout.Zones),
		"duration", result.Stats.GenerateTime)

	// Stage 2: Resolve
	resolveStart := time.Now()
	resolved := r.Resolve(ctx, layout, opts)
	result.Resolved = resolved
	result.Stats.ResolveTime = time.Since(resolveStart)

	r.Logger.Info("resolved geometry",
		"frame", opts.Frame(layout),
		"duration", result.Stats.ResolveTime)

	// Stage 3: Constrain
	constrainStart := time.Now()
	if err := r.Constrain(ctx, layout, resolved, opts); err != nil {
		return nil, fmt.Errorf("constrain: %w", err)
	}
	result.Stats.ConstrainTime = time.Since(constrainStart)

	r.Logger.Info("enforced constraints",
		"threshold", opts.GapThreshold,
		"duration", result.Stats.ConstrainTime)

	// Stage 4: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, layout, resolved, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Generate produces the normalized zone layout for the run. An explicit
// layout in the options wins over algorithmic generation.
func (r *Runner) Generate(ctx context.Context, opts Options) (zones.Layout, error) {
	hooks := observability.Pipeline()
	start := time.Now()

	if opts.Layout != nil {
		hooks.OnGenerateStart(ctx, opts.Layout.Name, len(opts.Layout.Zones))
		if err := opts.Layout.Validate(); err != nil {
			return zones.Layout{}, err
		}
		hooks.OnGenerateComplete(ctx, opts.Layout.Name, len(opts.Layout.Zones), time.Since(start))
		return *opts.Layout, nil
	}

	alg := opts.Algorithm
	if alg == "" {
		alg = DefaultAlgorithm
	}
	hooks.OnGenerateStart(ctx, string(alg), opts.WindowCount)

	rects := tiling.Generate(alg, opts.WindowCount, opts.Params)
	layout := zones.FromRects(string(alg), rects)
	if err := layout.Validate(); err != nil {
		return zones.Layout{}, err
	}

	hooks.OnGenerateComplete(ctx, layout.Name, len(layout.Zones), time.Since(start))
	return layout, nil
}

// Resolve scales the layout onto the pixel frame, applying the gap cascade.
func (r *Runner) Resolve(ctx context.Context, l zones.Layout, opts Options) []geom.Rect {
	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnResolveStart(ctx, l.Name, len(l.Zones))

	resolved := geometry.ResolveZones(l, opts.Frame(l), opts.Settings)

	hooks.OnResolveComplete(ctx, l.Name, time.Since(start))
	return resolved
}

// Constrain enforces per-zone minimum sizes in place and removes any
// overlaps the enforcement introduced.
func (r *Runner) Constrain(ctx context.Context, l zones.Layout, resolved []geom.Rect, opts Options) error {
	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnConstrainStart(ctx, l.Name)

	threshold := opts.GapThreshold
	if threshold <= 0 {
		threshold = DefaultGapThreshold
	}
	mins := l.MinSizes()
	padding := zones.ResolvePadding(l, opts.Settings)

	err := constraint.EnforceMinimums(resolved, mins, threshold)
	if err == nil {
		err = constraint.RemoveOverlaps(resolved, mins, padding)
	}

	hooks.OnConstrainComplete(ctx, l.Name, time.Since(start), err)
	return err
}

// Render produces one artifact per requested format.
func (r *Runner) Render(ctx context.Context, l zones.Layout, resolved []geom.Rect, opts Options) (map[string][]byte, error) {
	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)

	frame := opts.Frame(l)
	artifacts := make(map[string][]byte, len(opts.Formats))
	var err error
	for _, format := range opts.Formats {
		var data []byte
		switch format {
		case FormatJSON:
			jsonOpts := []snapshot.JSONOption{snapshot.WithScreen(frame)}
			if len(opts.Assigned) > 0 {
				jsonOpts = append(jsonOpts, snapshot.WithAssigned(opts.Assigned...))
			}
			data, err = snapshot.RenderJSON(l, resolved, jsonOpts...)
		case FormatSVG:
			data, err = snapshot.RenderSVG(l, resolved, snapshot.WithSVGScreen(frame))
		case FormatDOT:
			data = []byte(snapshot.ToDOT(l, resolved, opts.GapThreshold))
		default:
			err = ValidateFormat(format)
		}
		if err != nil {
			break
		}
		artifacts[format] = data
	}

	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return artifacts, nil
}
