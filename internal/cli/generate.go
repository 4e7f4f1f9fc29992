package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/snapzone/snapzone/pkg/pipeline"
	"github.com/snapzone/snapzone/pkg/tiling"
	"github.com/snapzone/snapzone/pkg/zones"
)

// generateOpts holds the command-line flags for the generate command.
// These options control the tiling algorithm, frame geometry, gaps, and
// output formats.
type generateOpts struct {
	output      string   // output file path (or base path for multiple formats)
	algorithm   string   // tiling algorithm name
	windows     int      // number of windows to tile
	masterRatio float64  // master area share
	masterCount int      // windows in the master area
	width       float64  // screen width in pixels
	height      float64  // screen height in pixels
	padding     float64  // inner gap between zones (negative = default)
	outerGap    float64  // gap between zones and screen edges (negative = default)
	formats     []string // output formats: "json", "svg", "dot"
	assigned    []int    // zone numbers with a window assigned
}

// newGenerateCmd creates the generate command for computing layouts.
// It runs the full pipeline and writes one artifact per requested format.
//
// Default settings:
//   - algorithm: bsp
//   - windows: 2, master-ratio: 0.55, master-count: 1
//   - width: 1920px, height: 1080px
//   - padding and outer gap: unset (the gap cascade supplies defaults)
func newGenerateCmd() *cobra.Command {
	var formatsStr string
	opts := generateOpts{
		algorithm:   string(pipeline.DefaultAlgorithm),
		windows:     pipeline.DefaultWindowCount,
		masterRatio: tiling.DefaultRatio,
		masterCount: 1,
		width:       pipeline.DefaultScreenWidth,
		height:      pipeline.DefaultScreenHeight,
		padding:     zones.Unset,
		outerGap:    zones.Unset,
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Compute a zone layout from a tiling algorithm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return runGenerate(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", opts.algorithm, "tiling algorithm: monocle, master-stack, bsp, fibonacci, three-column")
	cmd.Flags().IntVarP(&opts.windows, "windows", "n", opts.windows, "number of windows to tile")
	cmd.Flags().Float64Var(&opts.masterRatio, "master-ratio", opts.masterRatio, "master area share of the screen")
	cmd.Flags().IntVar(&opts.masterCount, "master-count", opts.masterCount, "windows in the master area")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "screen width")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "screen height")
	cmd.Flags().Float64Var(&opts.padding, "padding", opts.padding, "inner gap between zones")
	cmd.Flags().Float64Var(&opts.outerGap, "outer-gap", opts.outerGap, "gap between zones and screen edges")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): json (default), svg, dot (comma-separated)")
	cmd.Flags().IntSliceVar(&opts.assigned, "assigned", nil, "zone numbers with a window already assigned")

	return cmd
}

// runGenerate executes the pipeline for the generate command and writes
// the artifacts.
func runGenerate(ctx context.Context, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	alg, err := tiling.Parse(opts.algorithm)
	if err != nil {
		return err
	}

	settings := zones.DefaultSettings()
	settings.Padding = opts.padding
	settings.OuterGap = opts.outerGap

	runner := pipeline.NewRunner(logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		Algorithm:   alg,
		WindowCount: opts.windows,
		Params: tiling.Params{
			MasterRatio: opts.masterRatio,
			MasterCount: opts.masterCount,
		},
		Screen:   screenRect(opts.width, opts.height),
		Settings: settings,
		Formats:  opts.formats,
		Assigned: opts.assigned,
	})
	if err != nil {
		return err
	}

	printSuccess("computed %s layout with %d zones", result.Layout.Name, len(result.Layout.Zones))
	return writeArtifacts(opts.output, result.Artifacts, opts.formats)
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["json"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatJSON}
	}
	return strings.Split(s, ",")
}

// writeArtifacts writes each artifact to disk, or to stdout when no output
// path was given and only one format was requested.
func writeArtifacts(output string, artifacts map[string][]byte, formats []string) error {
	if output == "" {
		if len(formats) == 1 {
			_, err := os.Stdout.Write(artifacts[formats[0]])
			return err
		}
		output = "layout"
	}

	base := strings.TrimSuffix(output, filepath.Ext(output))
	for _, format := range formats {
		path := output
		if len(formats) > 1 || filepath.Ext(output) == "" {
			path = fmt.Sprintf("%s.%s", base, format)
		}
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}
