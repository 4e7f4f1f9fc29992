package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snapzone/snapzone/pkg/geom"
	"github.com/snapzone/snapzone/pkg/layoutfile"
	"github.com/snapzone/snapzone/pkg/pipeline"
	"github.com/snapzone/snapzone/pkg/zones"
)

// resolveOpts holds the command-line flags for the resolve command.
type resolveOpts struct {
	file     string   // layout file path (empty = built-in layouts only)
	output   string   // output file path
	width    float64  // screen width in pixels
	height   float64  // screen height in pixels
	availX   float64  // available area origin x
	availY   float64  // available area origin y
	availW   float64  // available area width (0 = whole screen)
	availH   float64  // available area height (0 = whole screen)
	formats  []string // output formats
	assigned []int    // zone numbers with a window assigned
}

// newResolveCmd creates the resolve command. It looks up a named layout in
// a TOML layout file (or the built-in library), resolves it onto the screen
// with the file's gap settings, and renders the result.
func newResolveCmd() *cobra.Command {
	var formatsStr string
	opts := resolveOpts{
		width:  pipeline.DefaultScreenWidth,
		height: pipeline.DefaultScreenHeight,
	}

	cmd := &cobra.Command{
		Use:   "resolve [layout]",
		Short: "Resolve a named layout onto a screen",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return runResolve(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "layout file (TOML); built-in layouts are used when omitted")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "screen width")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "screen height")
	cmd.Flags().Float64Var(&opts.availX, "avail-x", 0, "available area origin x")
	cmd.Flags().Float64Var(&opts.availY, "avail-y", 0, "available area origin y")
	cmd.Flags().Float64Var(&opts.availW, "avail-width", 0, "available area width (0 = whole screen)")
	cmd.Flags().Float64Var(&opts.availH, "avail-height", 0, "available area height (0 = whole screen)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): json (default), svg, dot (comma-separated)")
	cmd.Flags().IntSliceVar(&opts.assigned, "assigned", nil, "zone numbers with a window already assigned")

	return cmd
}

// runResolve loads the layout, runs the pipeline, and writes artifacts.
func runResolve(ctx context.Context, name string, opts *resolveOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	layout, settings, err := lookupLayout(name, opts.file)
	if err != nil {
		return err
	}

	pipeOpts := pipeline.Options{
		Layout:   &layout,
		Screen:   screenRect(opts.width, opts.height),
		Settings: settings,
		Formats:  opts.formats,
		Assigned: opts.assigned,
	}
	if opts.availW > 0 && opts.availH > 0 {
		avail := geom.Rect{X: opts.availX, Y: opts.availY, W: opts.availW, H: opts.availH}
		pipeOpts.Available = &avail
	}

	runner := pipeline.NewRunner(logger)
	result, err := runner.Execute(ctx, pipeOpts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("resolved %q onto %gx%g", layout.Name, opts.width, opts.height))

	return writeArtifacts(opts.output, result.Artifacts, opts.formats)
}

// lookupLayout finds a layout by name in the given file, falling back to
// the built-in library when no file is given.
func lookupLayout(name, path string) (zones.Layout, zones.Settings, error) {
	if path != "" {
		f, err := layoutfile.Load(path)
		if err != nil {
			return zones.Layout{}, zones.Settings{}, err
		}
		l, err := f.Find(name)
		if err != nil {
			return zones.Layout{}, zones.Settings{}, err
		}
		return l, f.Settings, nil
	}

	f := layoutfile.File{Layouts: layoutfile.Builtin(), Settings: zones.DefaultSettings()}
	l, err := f.Find(name)
	if err != nil {
		return zones.Layout{}, zones.Settings{}, err
	}
	return l, f.Settings, nil
}

// screenRect builds the screen frame from width/height flags.
func screenRect(w, h float64) geom.Rect {
	return geom.Rect{W: w, H: h}
}
